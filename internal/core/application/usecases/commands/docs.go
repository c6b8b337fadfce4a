// Package commands contains the order lifecycle operations that change state
// or send messages.
//
// Every command follows the same pattern: a constructor validates the input
// and returns an immutable command value guarded against zero-value use, and
// a handler executes it against the ports. Store and validation errors are
// returned unmodified; notification failures after a successful write are
// logged and reported in the result instead of failing the command.
package commands
