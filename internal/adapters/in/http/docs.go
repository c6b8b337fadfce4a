// Package http exposes the order lifecycle over a JSON REST API and a
// provider webhook that accepts a small text command grammar.
//
// Every 2xx body carries "success": true. Errors use {"error": "..."}:
// validation failures map to 400, a missing order to 404 and everything
// else to 500 with a generic message.
package http
