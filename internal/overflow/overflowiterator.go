package overflow

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
)

// Node - One link in a bucket chain
type Node[K comparable, V any] struct {
	Record model.Record[K, V]
	Next   *Node[K, V]
}

// Records - Is used to iterate over chained records one by one.
type Records[K comparable, V any] struct {
	node *Node[K, V]
}

// NewRecords - Returns a pointer to a new Records struct starting at the given chain head
func NewRecords[K comparable, V any](head *Node[K, V]) *Records[K, V] {

	return &Records[K, V]{
		node: head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records[K, V]) HasNext() bool {
	return O.node != nil
}

// Next - Returns record.
// It returns:
//   - record is a copy of the next chained record.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (O *Records[K, V]) Next() (record model.Record[K, V], err error) {
	if O.node == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = O.node.Record
	O.node = O.node.Next

	return
}
