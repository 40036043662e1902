package separatechaining

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/overflow"
	"log/slog"
)

// SCStore - Represents an implementation of storage for the Separate Chaining Collision Resolution Technique.
// It uses an array of directly addressable buckets where each bucket is the head of a single linked chain of records.
type SCStore[K comparable, V any] struct {
	buckets                  []*overflow.Node[K, V]
	numberOfBucketsNeeded    int64
	numberOfBucketsAvailable int64
	hashAlgorithm            hashfunc.HashAlgorithm[K]
	logger                   *slog.Logger
	nOccupied                int64
}

// NewSCStore - Returns a pointer to a new instance of Separate Chaining storage with all buckets empty.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting storage creation and processing
//
// It returns:
//   - scStore which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCStore[K comparable, V any](crtConf model.CRTConf[K]) (scStore *SCStore[K, V], err error) {
	if crtConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if crtConf.Hasher == nil {
		err = fmt.Errorf("a hasher must be given")
		return
	}

	hashAlgorithm, err := hash.NewHashAlgorithm(crt.SeparateChaining, crtConf.Hasher, crtConf.NumberOfBucketsNeeded)
	if err != nil {
		return
	}
	numberOfBuckets := hashAlgorithm.GetTableSize()

	scStore = &SCStore[K, V]{
		buckets:                  make([]*overflow.Node[K, V], numberOfBuckets),
		numberOfBucketsNeeded:    crtConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable: numberOfBuckets,
		hashAlgorithm:            hashAlgorithm,
		logger:                   crtConf.Logger,
	}

	return
}

// Clear - Drops all records, keeping the number of buckets
func (S *SCStore[K, V]) Clear() {
	S.buckets = make([]*overflow.Node[K, V], S.numberOfBucketsAvailable)
	S.nOccupied = 0
}

// GetStorageParameters - Returns a struct with storage parameters from SCStore
func (S *SCStore[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBucketsNeeded:        S.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     S.numberOfBucketsAvailable,
		NumberOfOccupiedRecords:      S.nOccupied,
		NumberOfDeletedRecords:       0,
	}

	return
}

// GetBucket - Returns a bucket with copies of its records given the bucket number
//   - bucketNo is the identifier of a bucket
//
// It returns:
//   - bucket is a model.Bucket struct containing all records in the chain, in chain order
//   - err is standard error
func (S *SCStore[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket.BucketNo = bucketNo

	iter := overflow.NewRecords(S.buckets[bucketNo])
	var record model.Record[K, V]
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		bucket.Records = append(bucket.Records, record)
	}

	return
}

// Get - Gets record that corresponds to the given key.
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCStore[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	for node := S.buckets[bucketNo]; node != nil; node = node.Next {
		if node.Record.Key == key {
			record = node.Record
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}

// Set - Updates an existing record with new data or appends it to the bucket chain if no existing is found with
// same key.
//
// It returns:
//   - result tells whether a record was updated and if the bucket already held other records
//   - err is a standard error, if something went wrong
func (S *SCStore[K, V]) Set(key K, value V) (result model.SetResult, err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	var last *overflow.Node[K, V]
	for node := S.buckets[bucketNo]; node != nil; node = node.Next {
		if node.Record.Key == key {
			node.Record.Value = value
			result.Updated = true
			return
		}
		last = node
	}

	newNode := &overflow.Node[K, V]{
		Record: model.Record[K, V]{
			State:    model.RecordOccupied,
			BucketNo: bucketNo,
			Key:      key,
			Value:    value,
		},
	}

	if last == nil {
		S.buckets[bucketNo] = newNode
	} else {
		last.Next = newNode
		result.Collisions = 1
		S.logger.Debug("chained record in non empty bucket", "bucket", bucketNo)
	}

	S.nOccupied++

	return
}

// Delete - Unlinks the record with the given key from its bucket chain
//
// It returns:
//   - record is the removed record
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCStore[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	var prev *overflow.Node[K, V]
	for node := S.buckets[bucketNo]; node != nil; node = node.Next {
		if node.Record.Key == key {
			if prev == nil {
				S.buckets[bucketNo] = node.Next
			} else {
				prev.Next = node.Next
			}
			S.nOccupied--
			record = node.Record
			return
		}
		prev = node
	}

	err = crt.NoRecordFound{}

	return
}

// getBucketNo - Returns which bucket number that the given key results in
func (S *SCStore[K, V]) getBucketNo(key K) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("received bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}
