package interfaces

// HashAlgorithm - Interface that permits an implementation using the hash table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called whenever the hash table is constructed or reset, hence if a custom
	// hash algorithm is supplied that is already having a table size, it will be overwritten
	// by the number of buckets the table ends up with after capacity selection.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// BucketNo - Given key it generates an index (bucket) between 0 and table size - 1.
	// Any number returned outside that range will result in the insert being rejected down stream.
	BucketNo(key []byte) int64

	// TableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function returns the actual table size as set through
	// SetTableSize and not some internally rounded figure, otherwise the range check in the
	// hash table will reject perfectly fine bucket numbers.
	TableSize() int64
}
