// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package rawcoder

var (
	monXORDecode      = mon.Counter("xor_decode")
	monXORDecodeBytes = mon.IntVal("xor_decode_bytes")
	monXOREncode      = mon.Counter("xor_encode")
	monXOREncodeBytes = mon.IntVal("xor_encode_bytes")
)

// XORCoder implements the single-parity XOR scheme. The parity unit is the
// byte-wise XOR of all data units, so every byte column satisfies
// data_0 ^ data_1 ^ ... ^ parity == 0 and any one erased unit equals the
// XOR of the survivors.
type XORCoder struct {
	coderOptions
}

// NewXORCoder returns a coder for the XOR scheme. The scheme carries
// exactly one parity unit and reconstructs at most one erasure.
func NewXORCoder(opts Options) (*XORCoder, error) {
	if opts.DataUnits < 1 {
		return nil, Error.New("xor: at least one data unit required, got %d", opts.DataUnits)
	}
	if opts.ParityUnits != 1 {
		return nil, Error.New("xor: exactly one parity unit supported, got %d", opts.ParityUnits)
	}
	return &XORCoder{coderOptions{opts: opts}}, nil
}

// Decode reconstructs the single unit named by erasedIndexes into
// outputs[0]. The entry of inputs at the erased index carries no valid data
// and is never read; every other entry must be present. Calling with an
// empty erased set validates shapes and returns without touching any
// buffer.
func (c *XORCoder) Decode(inputs []Buffer, erasedIndexes []int, outputs []Buffer) error {
	if len(outputs) != len(erasedIndexes) {
		return ErrInvalidInputShape.New("%d outputs for %d erased indexes", len(outputs), len(erasedIndexes))
	}
	if len(erasedIndexes) > 1 {
		return ErrUnsupportedErasureCount.New("xor reconstructs at most one unit, requested %d", len(erasedIndexes))
	}
	bufSize, err := checkBufferLengths(inputs, outputs)
	if err != nil {
		return err
	}
	if len(erasedIndexes) == 0 {
		return nil
	}

	erased := erasedIndexes[0]
	if erased < 0 || erased >= len(inputs) {
		return ErrInvalidInputShape.New("erased index %d out of range for %d inputs", erased, len(inputs))
	}
	for i, in := range inputs {
		if in == nil && i != erased {
			return ErrInvalidInputShape.New("surviving unit %d is absent", i)
		}
	}

	monXORDecode.Inc(1)
	monXORDecodeBytes.Observe(int64(bufSize))

	xorInto(outputs[0], inputs, erased, bufSize)
	return nil
}

// Encode fills outputs[0], the single parity unit, with the byte-wise XOR
// of all data unit inputs.
func (c *XORCoder) Encode(inputs []Buffer, outputs []Buffer) error {
	if len(inputs) != c.NumDataUnits() {
		return ErrInvalidInputShape.New("%d inputs for %d data units", len(inputs), c.NumDataUnits())
	}
	for i, in := range inputs {
		if in == nil {
			return ErrInvalidInputShape.New("data unit %d is absent", i)
		}
	}
	if len(outputs) != c.NumParityUnits() {
		return ErrInvalidInputShape.New("%d outputs for %d parity units", len(outputs), c.NumParityUnits())
	}
	bufSize, err := checkBufferLengths(inputs, outputs)
	if err != nil {
		return err
	}

	monXOREncode.Inc(1)
	monXOREncodeBytes.Observe(int64(bufSize))

	xorInto(outputs[0], inputs, -1, bufSize)
	return nil
}

// xorInto zero-fills out and then accumulates the XOR of every input except
// the one at skip. Inputs are only read; out is the only mutation.
func xorInto(out Buffer, inputs []Buffer, skip int, bufSize int) {
	for j := 0; j < bufSize; j++ {
		out.SetByte(j, 0)
	}
	for i, in := range inputs {
		if i == skip {
			continue
		}
		for j := 0; j < bufSize; j++ {
			out.SetByte(j, out.Byte(j)^in.Byte(j))
		}
	}
}
