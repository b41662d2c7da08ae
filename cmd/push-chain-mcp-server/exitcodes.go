package main

import "fmt"

// Exit codes for the push-chain-mcp-server CLI.
const (
	ExitOK          = 0 // Clean shutdown.
	ExitInvalidArgs = 1 // Invalid arguments or bad configuration.
	ExitDataError   = 2 // Required static data missing or corrupt at startup.
	ExitFetchError  = 3 // Docs refresh could not reach or read the upstream.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
