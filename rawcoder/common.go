// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// Package rawcoder implements raw erasure coders over caller-supplied unit
// buffers. A coder is configured once with the shape of its scheme and is
// then driven with fresh buffer sets per call: it reads surviving units and
// writes reconstructed or parity units in place, never allocating or
// retaining caller memory.
package rawcoder

import (
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var (
	// Error is the default rawcoder errs class.
	Error = errs.Class("rawcoder")

	// ErrInvalidInputShape is the class of errors returned when the inputs,
	// erased indexes and outputs handed to a coder disagree on counts or
	// buffer lengths. A failed call leaves every buffer untouched.
	ErrInvalidInputShape = errs.Class("invalid input shape")

	// ErrUnsupportedErasureCount is the class of errors returned when more
	// simultaneous erasures are requested than the scheme supports.
	ErrUnsupportedErasureCount = errs.Class("unsupported erasure count")

	mon = monkit.Package()
)
