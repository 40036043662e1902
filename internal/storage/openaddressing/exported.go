package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"log/slog"
)

// OAStore - Represents an implementation of storage for the Open Addressing Collision Resolution Techniques.
// It uses one array of buckets where each bucket holds exactly one record. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the value.
// Deleted records stay as tombstones so that later probes can see through them.
type OAStore[K comparable, V any] struct {
	slots                        []model.Record[K, V]
	numberOfBucketsNeeded        int64
	numberOfBucketsAvailable     int64
	hashAlgorithm                hashfunc.HashAlgorithm[K]
	logger                       *slog.Logger
	CollisionResolutionTechnique crt.Method
	nEmpty                       int64
	nOccupied                    int64
	nDeleted                     int64
}

// NewOAStore - Returns a pointer to a new instance of Open Addressing storage with all slots empty.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting storage creation and processing
//
// It returns:
//   - oaStore which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOAStore[K comparable, V any](crtConf model.CRTConf[K]) (oaStore *OAStore[K, V], err error) {
	if crtConf.NumberOfBucketsNeeded <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if crtConf.Hasher == nil {
		err = fmt.Errorf("a hasher must be given")
		return
	}

	if !crtConf.CollisionResolutionTechnique.IsOpenAddressing() {
		err = fmt.Errorf("%s is not an open addressing technique", crtConf.CollisionResolutionTechnique)
		return
	}

	hashAlgorithm, err := hash.NewHashAlgorithm(crtConf.CollisionResolutionTechnique, crtConf.Hasher, crtConf.NumberOfBucketsNeeded)
	if err != nil {
		return
	}

	numberOfBuckets := hashAlgorithm.GetTableSize()

	oaStore = &OAStore[K, V]{
		slots:                        make([]model.Record[K, V], numberOfBuckets),
		numberOfBucketsNeeded:        crtConf.NumberOfBucketsNeeded,
		numberOfBucketsAvailable:     numberOfBuckets,
		hashAlgorithm:                hashAlgorithm,
		logger:                       crtConf.Logger,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
		nEmpty:                       numberOfBuckets,
		nOccupied:                    0,
		nDeleted:                     0,
	}

	return
}

// Clear - Resets all slots to empty, keeping the number of buckets
func (O *OAStore[K, V]) Clear() {
	O.slots = make([]model.Record[K, V], O.numberOfBucketsAvailable)
	O.nEmpty = O.numberOfBucketsAvailable
	O.nOccupied = 0
	O.nDeleted = 0
}

// GetStorageParameters - Returns a struct with storage parameters from OAStore
func (O *OAStore[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: O.CollisionResolutionTechnique,
		NumberOfBucketsNeeded:        O.numberOfBucketsNeeded,
		NumberOfBucketsAvailable:     O.numberOfBucketsAvailable,
		NumberOfOccupiedRecords:      O.nOccupied,
		NumberOfDeletedRecords:       O.nDeleted,
	}

	return
}

// GetBucket - Returns a bucket given the bucket number. The bucket holds the slot record if it is occupied, empty
// and deleted slots give a bucket without records.
//   - bucketNo is the identifier of a bucket
//
// It returns:
//   - bucket is a model.Bucket struct
//   - err is standard error
func (O *OAStore[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= O.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket.BucketNo = bucketNo
	if O.slots[bucketNo].State == model.RecordOccupied {
		bucket.Records = []model.Record[K, V]{O.slots[bucketNo]}
	}

	return
}

// GetSlotState - Returns the state of a slot, one of model.RecordEmpty, model.RecordOccupied or model.RecordDeleted
func (O *OAStore[K, V]) GetSlotState(bucketNo int64) (state uint8, err error) {
	if bucketNo < 0 || bucketNo >= O.numberOfBucketsAvailable {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	state = O.slots[bucketNo].State

	return
}

// Get - Gets record that corresponds to the given key.
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (O *OAStore[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo, err := O.probingForGet(key)
	if err != nil {
		return
	}

	record = O.slots[bucketNo]

	return
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// A new record is placed in the first deleted slot of the probe sequence if there is one, otherwise in the
// first empty slot.
//
// It returns:
//   - result tells whether a record was updated, if a deleted slot got reused and how many collisions occurred
//   - err is of type crt.TableFull if no slot could be found, or a standard error if something went wrong
func (O *OAStore[K, V]) Set(key K, value V) (result model.SetResult, err error) {
	bucketNo, collisions, err := O.probingForSet(key)
	if err != nil {
		return
	}

	fromState := O.slots[bucketNo].State

	O.slots[bucketNo] = model.Record[K, V]{
		State:    model.RecordOccupied,
		BucketNo: bucketNo,
		Key:      key,
		Value:    value,
	}

	O.updateUtilizationInfo(fromState, model.RecordOccupied)

	result = model.SetResult{
		Updated:       fromState == model.RecordOccupied,
		ReusedDeleted: fromState == model.RecordDeleted,
		Collisions:    collisions,
	}

	return
}

// Delete - Deletes a record by setting state to RecordDeleted, key and value are reset to their zero values
//
// It returns:
//   - record is the record as it was before deletion
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (O *OAStore[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo, err := O.probingForGet(key)
	if err != nil {
		return
	}

	record = O.slots[bucketNo]

	O.slots[bucketNo] = model.Record[K, V]{
		State:    model.RecordDeleted,
		BucketNo: bucketNo,
	}

	O.updateUtilizationInfo(record.State, model.RecordDeleted)

	return
}
