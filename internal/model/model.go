package model

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"log/slog"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted (a tombstone)
const RecordDeleted uint8 = 2

// Record - Represents one key/value pair in a bucket or slot
type Record[K comparable, V any] struct {
	State    uint8
	BucketNo int64
	Key      K
	Value    V
}

// Bucket - Represents the live records addressed by one bucket number, for open addressing there is at most one
type Bucket[K comparable, V any] struct {
	BucketNo int64
	Records  []Record[K, V]
}

// SetResult - Outcome of a store Set
//   - Updated is true if an existing record got its value replaced, false if a new record was added
//   - ReusedDeleted is true if a new record was written over a deleted record
//   - Collisions is the number of occupied or deleted buckets stepped over (or chained past) before a spot was found
type SetResult struct {
	Updated       bool
	ReusedDeleted bool
	Collisions    int64
}

// StorageParameters - Represents parameters and utilization of a store
type StorageParameters struct {
	CollisionResolutionTechnique crt.Method
	NumberOfBucketsNeeded        int64
	NumberOfBucketsAvailable     int64
	NumberOfOccupiedRecords      int64
	NumberOfDeletedRecords       int64
}

// CRTConf - Is a struct to be passed in the call to NewXXStore and contains configuration that affects
// storage creation and processing.
//   - NumberOfBucketsNeeded is the number of buckets to allocate, it is rounded up by the hash algorithm
//   - CollisionResolutionTechnique is the technique the store implements
//   - Hasher is the hash function the hash algorithm is built on
//   - Logger receives debug traces, it must not be nil
type CRTConf[K comparable] struct {
	NumberOfBucketsNeeded        int64
	CollisionResolutionTechnique crt.Method
	Hasher                       hashfunc.Hasher[K]
	Logger                       *slog.Logger
}
