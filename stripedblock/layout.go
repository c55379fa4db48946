// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package stripedblock

// ParseBlockGroup parses a striped block group into its individual internal
// blocks. The returned slice has one slot per logical unit, data units
// numbered before parity units; slots for units with no located entry are
// nil. Entries with an out-of-range logical index are skipped, and later
// duplicates of an already filled slot are ignored.
func ParseBlockGroup(group BlockGroup, cellSize, dataUnits, parityUnits int) ([]*InternalBlock, error) {
	blocks := make([]*InternalBlock, dataUnits+parityUnits)
	for i := range group.Indices {
		idx := group.Indices[i]
		if idx < 0 || idx >= len(blocks) || blocks[idx] != nil {
			continue
		}
		block, err := ConstructInternalBlock(group, i, cellSize, dataUnits, idx)
		if err != nil {
			return nil, err
		}
		blocks[idx] = &block
	}
	return blocks, nil
}

// ConstructInternalBlock builds the internal block stored for logical unit
// idxInGroup of the group, taking its location from entry idxInLocs of the
// group's located slices.
func ConstructInternalBlock(group BlockGroup, idxInLocs, cellSize, dataUnits, idxInGroup int) (InternalBlock, error) {
	length, err := InternalBlockLength(group.Block.NumBytes, cellSize, dataUnits, idxInGroup)
	if err != nil {
		return InternalBlock{}, err
	}
	return InternalBlock{
		Block: Block{
			ID:         group.Block.ID + int64(idxInGroup),
			Generation: group.Block.Generation,
			NumBytes:   length,
		},
		StartOffset: group.StartOffset + int64(idxInGroup)*int64(cellSize),
		Corrupt:     group.Corrupt,
		Location:    group.Locations[idxInLocs],
		StorageID:   group.StorageIDs[idxInLocs],
		StorageType: group.StorageTypes[idxInLocs],
	}, nil
}

// InternalBlockLength computes how many bytes of a group holding numBytes
// of data land on the unit at idxInGroup. Parity indexes (idxInGroup at or
// past dataUnits) are valid: parity cells match the length of the first
// cell of each stripe.
func InternalBlockLength(numBytes int64, cellSize, dataUnits, idxInGroup int) (int64, error) {
	stripeSize := int64(cellSize) * int64(dataUnits)
	if stripeSize <= 0 {
		return 0, ErrInvalidStripeGeometry.New("cell size %d with %d data units", cellSize, dataUnits)
	}

	// A group ending on a stripe boundary gives every unit, parity
	// included, an equal share.
	if numBytes%stripeSize == 0 {
		return numBytes / int64(dataUnits), nil
	}

	numStripes := (numBytes-1)/stripeSize + 1

	// All stripes but the last are full and contribute a whole cell.
	length := (numStripes - 1) * int64(cellSize)

	lastStripeLen := numBytes % stripeSize
	lastParityCellLen := min(int64(cellSize), lastStripeLen)

	if idxInGroup >= dataUnits {
		length += lastParityCellLen
	} else {
		// A full trailing cell if the partial stripe still covers this
		// column, a partial cell if it ends inside it, nothing past it.
		length += min(int64(cellSize), max(0, lastStripeLen-int64(cellSize)*int64(idxInGroup)))
	}
	return length, nil
}

// OffsetInGroup translates a byte offset inside the internal block at
// idxInGroup to the corresponding offset in the logical block group: skip
// the full stripes before the offset's cell, land on this unit's column,
// and add the remainder within the cell.
func OffsetInGroup(cellSize, dataUnits int, offsetInBlock int64, idxInGroup int) int64 {
	cellIdxInBlock := offsetInBlock / int64(cellSize)
	return cellIdxInBlock*int64(cellSize)*int64(dataUnits) +
		int64(idxInGroup)*int64(cellSize) +
		offsetInBlock%int64(cellSize)
}
