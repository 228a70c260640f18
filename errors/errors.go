// Package errors provides error handling for the language server.
//
// It re-exports the subset of github.com/cockroachdb/errors the repo uses,
// giving stack traces and error wrapping with a short import path.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// Error inspection.
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// ErrNotFound indicates the requested resource does not exist. Check with
// errors.Is, wrap with errors.Wrap to add context while preserving the type.
var ErrNotFound = New("not found")
