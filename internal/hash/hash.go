package hash

import (
	"hash/crc32"

	"github.com/OneOfOne/xxhash"
)

// CRC32Algorithm - The default bucket selection algorithm, implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash % tableSize to get the bucket number.
type CRC32Algorithm struct {
	tableSize int64
}

// NewCRC32Algorithm - Returns a pointer to a new CRC32Algorithm instance
func NewCRC32Algorithm(tableSize int64) *CRC32Algorithm {
	return &CRC32Algorithm{tableSize: tableSize}
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (C *CRC32Algorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// BucketNo - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CRC32Algorithm) BucketNo(key []byte) int64 {
	if C.tableSize <= 0 {
		return 0
	}
	h := int64(crc32.ChecksumIEEE(key))
	return h % C.tableSize
}

// TableSize - Returns the table size the implemented hash function is supporting
func (C *CRC32Algorithm) TableSize() int64 {
	return C.tableSize
}

// XXHashAlgorithm - Alternative bucket selection algorithm implemented using 64 bit xxHash,
// which gives a better spread than crc32 on short, similar keys.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	return &XXHashAlgorithm{tableSize: tableSize}
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// BucketNo - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) BucketNo(key []byte) int64 {
	if X.tableSize <= 0 {
		return 0
	}
	return int64(xxhash.Checksum64(key) % uint64(X.tableSize))
}

// TableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) TableSize() int64 {
	return X.tableSize
}
