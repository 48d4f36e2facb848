package model

// Record - Represents one stored record. Ordering and equality are defined by Key alone,
// the two value fields are payload and never take part in comparisons.
// Records are immutable once created, and duplicates (same key, any values) are permitted
// in every search structure and must all be retrievable.
type Record struct {
	Key    string
	Value1 int
	Value2 float64
}

// Less - Returns true if the record orders strictly before other, comparing by key only
func (R Record) Less(other Record) bool {
	return R.Key < other.Key
}

// Equal - Returns true if the record has the same key as other
func (R Record) Equal(other Record) bool {
	return R.Key == other.Key
}
