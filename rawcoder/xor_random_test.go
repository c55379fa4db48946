// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package rawcoder_test

import (
	"bytes"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"storj.io/stripecode/rawcoder"
)

func TestXORCoderRandomized(t *testing.T) {
	for range 100 {
		dataUnits := 1 + mwc.Intn(9)
		size := mwc.Intn(512)

		units := make([][]byte, dataUnits+1)
		parity := make([]byte, size)
		for i := range dataUnits {
			units[i] = make([]byte, size)
			for j := range units[i] {
				units[i][j] = byte(mwc.Intn(256))
				parity[j] ^= units[i][j]
			}
		}
		units[dataUnits] = parity

		coder, err := rawcoder.NewXORCoder(rawcoder.Options{
			DataUnits:   dataUnits,
			ParityUnits: 1,
			ChunkSize:   size,
		})
		assert.NoError(t, err)

		erased := mwc.Intn(dataUnits + 1)
		inputs := make([]rawcoder.Buffer, len(units))
		for i, unit := range units {
			if i == erased {
				continue
			}
			if mwc.Intn(2) == 0 {
				inputs[i] = rawcoder.Bytes(unit)
			} else {
				inputs[i] = rawcoder.NewRegion(unit, 0, len(unit))
			}
		}

		out := make([]byte, size)
		err = coder.Decode(inputs, []int{erased}, []rawcoder.Buffer{rawcoder.Bytes(out)})
		assert.NoError(t, err)
		assert.That(t, bytes.Equal(units[erased], out))
	}
}
