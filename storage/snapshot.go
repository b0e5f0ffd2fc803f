package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// SaveSnapshot writes the accumulator slot vector to db, one entry per tree
// level plus a size record, replacing any snapshot stored before. Zero-digest
// slots are stored like any other so LoadSnapshot reproduces the vector
// exactly.
func SaveSnapshot[D ~[32]byte](db KvStore, slots []D) error {
	prev, err := snapshotSize(db)
	if err != nil {
		return err
	}

	for i, slot := range slots {
		if err := db.Put(slotKey(uint64(i)), slot[:]); err != nil {
			return fmt.Errorf("failed to store slot %d: %w", i, err)
		}
	}

	// a restore may shrink the vector, drop stale levels
	for i := uint64(len(slots)); i < prev; i++ {
		if err := db.Delete(slotKey(i)); err != nil {
			return fmt.Errorf("failed to drop slot %d: %w", i, err)
		}
	}

	return db.Put(sizeKeyValue(uint64(len(slots))))
}

// LoadSnapshot reads back a slot vector written by SaveSnapshot. It returns
// ErrNotFound if no snapshot is stored, and ErrCorrupted if the stored data
// does not add up to a complete vector of 32-byte digests.
func LoadSnapshot[D ~[32]byte](db KvStore) ([]D, error) {
	res, err := db.Get(sizeKey())
	if err != nil {
		return nil, err
	}
	if len(res) != 8 {
		return nil, fmt.Errorf("%w: size record has %d bytes", ErrCorrupted, len(res))
	}

	size := binary.BigEndian.Uint64(res)
	slots := make([]D, size)

	for i := range slots {
		value, err := db.Get(slotKey(uint64(i)))
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: slot %d missing", ErrCorrupted, i)
		}
		if err != nil {
			return nil, err
		}
		if len(value) != len(slots[i]) {
			return nil, fmt.Errorf("%w: slot %d has %d bytes", ErrCorrupted, i, len(value))
		}

		copy(slots[i][:], value)
	}

	return slots, nil
}

func snapshotSize(db KvStore) (uint64, error) {
	res, err := db.Get(sizeKey())
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(res) != 8 {
		return 0, fmt.Errorf("%w: size record has %d bytes", ErrCorrupted, len(res))
	}

	return binary.BigEndian.Uint64(res), nil
}
