// Package queries contains read-only order lifecycle operations.
package queries
