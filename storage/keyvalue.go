package storage

import (
	"encoding/binary"
)

const (
	sizeConstantKey = "s"
	slotPrefix      = "t"
)

func slotKey(level uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, level)

	return append([]byte(slotPrefix), key...)
}

func sizeKey() []byte {
	return []byte(sizeConstantKey)
}

func sizeKeyValue(size uint64) ([]byte, []byte) {
	sizeValue := make([]byte, 8)
	binary.BigEndian.PutUint64(sizeValue, size)

	return []byte(sizeConstantKey), sizeValue
}
