package openaddressing

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
// Deleted records do not stop the probe, an empty record does.
func (O *OAStore[K, V]) probingForGet(key K) (bucketNo int64, err error) {
	var probe int64

	hf1Value := O.hashAlgorithm.HashFunc1(key)
	hf2Value := O.hashAlgorithm.HashFunc2(key)

	for i := int64(0); i < O.numberOfBucketsAvailable; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < 0 || probe >= O.numberOfBucketsAvailable {
			err = crt.ProbingAlgorithm{}
			return
		}

		switch O.slots[probe].State {
		case model.RecordEmpty:
			err = crt.NoRecordFound{}
			return

		case model.RecordOccupied:
			if O.slots[probe].Key == key {
				bucketNo = probe
				return
			}
		}
	}

	// Relies on the underlying probing function to have gone through every bucket the key can ever be placed in
	err = crt.NoRecordFound{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding the slot to set a record in.
// It returns the slot of a matching record if there is one, otherwise the first deleted slot seen before reaching
// an empty slot, otherwise the empty slot.
func (O *OAStore[K, V]) probingForSet(key K) (bucketNo int64, collisions int64, err error) {
	var deletedBucketNo, probe int64
	var hasCached bool

	hf1Value := O.hashAlgorithm.HashFunc1(key)
	hf2Value := O.hashAlgorithm.HashFunc2(key)

	for i := int64(0); i < O.numberOfBucketsAvailable; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < 0 || probe >= O.numberOfBucketsAvailable {
			err = crt.ProbingAlgorithm{}
			return
		}

		switch O.slots[probe].State {
		case model.RecordEmpty:
			if hasCached {
				bucketNo = deletedBucketNo
			} else {
				bucketNo = probe
			}
			return

		case model.RecordOccupied:
			if O.slots[probe].Key == key {
				bucketNo = probe
				return
			}
			if !hasCached {
				collisions++
			}

		case model.RecordDeleted:
			if !hasCached {
				deletedBucketNo = probe
				hasCached = true
			}
		}
	}

	// No empty slot on the whole probe sequence, the key is not present so a deleted slot is still safe to use
	if hasCached {
		bucketNo = deletedBucketNo
		return
	}

	O.logger.Error("probe sequence exhausted without a free slot",
		"technique", O.CollisionResolutionTechnique.String(),
		"buckets", O.numberOfBucketsAvailable,
		"occupied", O.nOccupied,
		"deleted", O.nDeleted,
	)
	err = crt.TableFull{}
	return
}

// updateUtilizationInfo - Keeps track of the number of records in each state
func (O *OAStore[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.RecordEmpty:
		O.nEmpty--
	case model.RecordOccupied:
		O.nOccupied--
	case model.RecordDeleted:
		O.nDeleted--
	}

	switch toState {
	case model.RecordEmpty:
		O.nEmpty++
	case model.RecordOccupied:
		O.nOccupied++
	case model.RecordDeleted:
		O.nDeleted++
	}
}
