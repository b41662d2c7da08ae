// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package failure defines the error taxonomy shared by every tool pipeline
// stage. Each stage returns a *Failure instead of a bare error so the
// transport adapter can decide between an in-band error envelope and a typed
// protocol error without the core logic knowing which transport is in use.
package failure

import "fmt"

// Kind classifies a pipeline failure.
type Kind string

const (
	// Validation means caller-supplied arguments violate the declared shape.
	// Recoverable by the caller; never logged as a server fault.
	Validation Kind = "validation"

	// NotFound means a well-formed query matched zero records.
	NotFound Kind = "not_found"

	// Upstream means a remote dependency failed (network, rate limit).
	Upstream Kind = "upstream"

	// DataIntegrity means required static artifacts are missing or corrupt.
	DataIntegrity Kind = "data_integrity"

	// Internal is anything unanticipated. Logged with full detail, surfaced
	// to the caller as a generic message.
	Internal Kind = "internal"
)

// JSON-RPC error code categories for the strict transport variant.
const (
	CodeInvalidParams  = -32602
	CodeMethodNotFound = -32601
	CodeInternal       = -32603
)

// Failure is the structured error carried through a tool pipeline.
type Failure struct {
	Kind    Kind
	Message string // Human-readable cause.
	Hint    string // Suggested alternative tool or remedy, may be empty.
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Hint != "" {
		return f.Message + " " + f.Hint
	}
	return f.Message
}

// ProtocolCode maps the failure kind to a JSON-RPC error code category.
func (f *Failure) ProtocolCode() int {
	switch f.Kind {
	case Validation:
		return CodeInvalidParams
	case NotFound:
		return CodeMethodNotFound
	default:
		return CodeInternal
	}
}

// Expected reports whether this failure is an anticipated caller-side
// condition that must not be logged as a server error.
func (f *Failure) Expected() bool {
	return f.Kind == Validation || f.Kind == NotFound
}

// Validationf creates a Validation failure.
func Validationf(format string, args ...any) *Failure {
	return &Failure{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a NotFound failure with a suggested alternative.
func NotFoundf(hint, format string, args ...any) *Failure {
	return &Failure{Kind: NotFound, Message: fmt.Sprintf(format, args...), Hint: hint}
}

// Upstreamf creates an Upstream failure with a suggested remedy.
func Upstreamf(hint, format string, args ...any) *Failure {
	return &Failure{Kind: Upstream, Message: fmt.Sprintf(format, args...), Hint: hint}
}

// Integrityf creates a DataIntegrity failure.
func Integrityf(format string, args ...any) *Failure {
	return &Failure{Kind: DataIntegrity, Message: fmt.Sprintf(format, args...)}
}

// Internalf creates an Internal failure.
func Internalf(format string, args ...any) *Failure {
	return &Failure{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}
