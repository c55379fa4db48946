// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package rawcoder

// Options holds the immutable shape of a coding scheme: how many data and
// parity units make up a group, and the chunk size the caller intends to
// drive the coder with. Options are fixed at construction and read-only
// afterwards.
type Options struct {
	DataUnits   int
	ParityUnits int
	ChunkSize   int
}

// RawCoder represents the general contract of any raw erasure coding
// scheme. If this interface can be implemented, a recovery or read pipeline
// can drive the scheme without knowing the concrete algorithm.
type RawCoder interface {
	// NumDataUnits returns the number of data units in a group.
	NumDataUnits() int

	// NumParityUnits returns the number of parity units in a group.
	NumParityUnits() int

	// ChunkSize returns the chunk size the coder was configured with.
	ChunkSize() int

	// PreferNativeBuffer hints whether the implementation is cheaper to
	// drive with Region windows over a shared backing allocation rather
	// than plain Bytes slices.
	PreferNativeBuffer() bool

	// Encode fills outputs with parity units computed over the data unit
	// inputs. One entry per data unit in inputs, one per parity unit in
	// outputs; every buffer must share one length.
	Encode(inputs []Buffer, outputs []Buffer) error

	// Decode reconstructs the units named by erasedIndexes into outputs.
	// inputs holds one entry per unit, data units numbered before parity
	// units; erased slots may be nil. Outputs are written in place, inputs
	// are only read.
	Decode(inputs []Buffer, erasedIndexes []int, outputs []Buffer) error

	// Release tears down any resources held by the coder. It must be
	// called exactly once when the coder is no longer needed; no calls are
	// permitted afterwards.
	Release()
}

// Algorithm enumerates the coding schemes a RawCoder can implement.
type Algorithm byte

const (
	// AlgorithmInvalid is the zero Algorithm and matches no scheme.
	AlgorithmInvalid Algorithm = iota

	// AlgorithmXOR is the single-parity XOR scheme.
	AlgorithmXOR
)

// New returns a RawCoder implementing the given algorithm with the given
// options. Unknown algorithms fail.
func New(alg Algorithm, opts Options) (RawCoder, error) {
	switch alg {
	case AlgorithmXOR:
		return NewXORCoder(opts)
	default:
		return nil, Error.New("unknown algorithm %d", alg)
	}
}

// coderOptions is embedded by concrete coders to hold the configuration
// triple and provide the accessor and default lifecycle methods.
type coderOptions struct {
	opts Options
}

// NumDataUnits returns the number of data units in a group.
func (c coderOptions) NumDataUnits() int { return c.opts.DataUnits }

// NumParityUnits returns the number of parity units in a group.
func (c coderOptions) NumParityUnits() int { return c.opts.ParityUnits }

// ChunkSize returns the configured chunk size.
func (c coderOptions) ChunkSize() int { return c.opts.ChunkSize }

// PreferNativeBuffer reports no preference. Schemes with an accelerated
// backend override it.
func (c coderOptions) PreferNativeBuffer() bool { return false }

// Release does nothing. Schemes holding external resources override it.
func (c coderOptions) Release() {}

// checkBufferLengths verifies that every present buffer across inputs and
// outputs shares a single length and returns that length. Nil input entries
// are absent slots and are skipped; outputs must all be present. Called
// before any output mutation.
func checkBufferLengths(inputs, outputs []Buffer) (int, error) {
	size := -1
	for i, in := range inputs {
		if in == nil {
			continue
		}
		if size == -1 {
			size = in.Len()
		} else if in.Len() != size {
			return 0, ErrInvalidInputShape.New("input %d has length %d, want %d", i, in.Len(), size)
		}
	}
	if size == -1 {
		return 0, ErrInvalidInputShape.New("no input buffers present")
	}
	for i, out := range outputs {
		if out == nil {
			return 0, ErrInvalidInputShape.New("output %d is absent", i)
		}
		if out.Len() != size {
			return 0, ErrInvalidInputShape.New("output %d has length %d, want %d", i, out.Len(), size)
		}
	}
	return size, nil
}
