// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

package stripedblock

import (
	"storj.io/common/storj"
)

// StorageType identifies the medium a located unit is stored on.
type StorageType byte

const (
	// StorageTypeDisk is rotating or unspecified storage, the default.
	StorageTypeDisk StorageType = iota

	// StorageTypeSSD is flash storage.
	StorageTypeSSD

	// StorageTypeMemory is volatile in-memory storage.
	StorageTypeMemory

	// StorageTypeArchive is high-latency archival storage.
	StorageTypeArchive
)

// String returns the lowercase name of the storage type.
func (s StorageType) String() string {
	switch s {
	case StorageTypeDisk:
		return "disk"
	case StorageTypeSSD:
		return "ssd"
	case StorageTypeMemory:
		return "memory"
	case StorageTypeArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Block identifies one stored block and how many bytes it holds. The
// internal blocks of a group derive their identity by offsetting the
// group's base ID with the logical unit index.
type Block struct {
	ID         int64
	Generation int64
	NumBytes   int64
}

// BlockGroup describes where a logical striped group is physically stored.
// It is produced by an external block-management layer and consumed here
// without being retained.
//
// Block carries the group's base identity and its total data-counted byte
// size. Indices, Locations, StorageIDs and StorageTypes are parallel
// slices with one entry per physically located unit: Indices[i] is the
// logical unit index the entry at i was located for. Units with no entry
// are currently unavailable.
type BlockGroup struct {
	Block       Block
	StartOffset int64
	Corrupt     bool

	Indices      []int
	Locations    []storj.NodeURL
	StorageIDs   []string
	StorageTypes []StorageType
}

// InternalBlock is the physical block materialized for one logical unit
// index of a block group, with its derived identity, byte length, start
// offset within the group, and the single location it was found at.
type InternalBlock struct {
	Block       Block
	StartOffset int64
	Corrupt     bool

	Location    storj.NodeURL
	StorageID   string
	StorageType StorageType
}
