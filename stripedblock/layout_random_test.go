// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package stripedblock_test

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"storj.io/stripecode/stripedblock"
)

func TestInternalBlockLengthRandomized(t *testing.T) {
	for range 1000 {
		cellSize := 1 + mwc.Intn(1 << 16)
		dataUnits := 1 + mwc.Intn(16)
		parityUnits := 1 + mwc.Intn(4)
		numBytes := int64(mwc.Intn(8 * cellSize * dataUnits))

		// the data units together hold exactly numBytes.
		var total int64
		for idx := range dataUnits {
			length, err := stripedblock.InternalBlockLength(numBytes, cellSize, dataUnits, idx)
			assert.NoError(t, err)
			assert.That(t, length >= 0)
			total += length
		}
		assert.Equal(t, numBytes, total)

		// every parity unit matches the first data unit's length.
		first, err := stripedblock.InternalBlockLength(numBytes, cellSize, dataUnits, 0)
		assert.NoError(t, err)
		for idx := dataUnits; idx < dataUnits+parityUnits; idx++ {
			length, err := stripedblock.InternalBlockLength(numBytes, cellSize, dataUnits, idx)
			assert.NoError(t, err)
			assert.Equal(t, first, length)
		}
	}
}

func TestOffsetInGroupRandomized(t *testing.T) {
	for range 1000 {
		cellSize := 1 + mwc.Intn(1 << 10)
		dataUnits := 1 + mwc.Intn(16)
		idx := mwc.Intn(dataUnits)
		offset := int64(mwc.Intn(16 * cellSize))

		g := stripedblock.OffsetInGroup(cellSize, dataUnits, offset, idx)

		stripe := g / int64(cellSize*dataUnits)
		posInStripe := g % int64(cellSize*dataUnits)
		assert.Equal(t, idx, int(posInStripe/int64(cellSize)))
		assert.Equal(t, offset, stripe*int64(cellSize)+posInStripe%int64(cellSize))
	}
}
