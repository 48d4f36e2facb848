package crt

import "fmt"

// BucketOutOfRange - Custom error to inform that a hash algorithm produced a bucket number
// outside the table range. It indicates a defect in the supplied hash algorithm, not a user error.
type BucketOutOfRange struct {
	Index     int64
	TableSize int64
}

// Error - Used to notify that a bucket number fell outside the table range
func (E BucketOutOfRange) Error() string {
	return fmt.Sprintf("bucket index %d out of range [0, %d)", E.Index, E.TableSize)
}

// MissingRotationChild - Custom error to inform that a tree rotation was invoked on a node
// lacking the child required by the rotation direction. The rotation is a no-op when this
// is returned, the tree is left untouched.
type MissingRotationChild struct {
	Direction string
}

// Error - Used to notify that a rotation precondition did not hold
func (E MissingRotationChild) Error() string {
	if E.Direction == "" {
		return "rotation on node lacking required child"
	}
	return fmt.Sprintf("%s rotation on node lacking required child", E.Direction)
}
