package storage

import (
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"strconv"
	"strings"
)

// Store - Interface for any storage implementation of a collision resolution technique
type Store[K comparable, V any] interface {
	Get(key K) (record model.Record[K, V], err error)
	Set(key K, value V) (result model.SetResult, err error)
	Delete(key K) (record model.Record[K, V], err error)
	GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error)
	GetStorageParameters() (params model.StorageParameters)
	Clear()
}

// headerLength - Length of the binary header
const headerLength int64 = 16

// methodOffset - Header offset to which collision resolution technique is used - 8 bytes
const methodOffset int64 = 0

// capacityOffset - Header offset to the number of buckets - 8 bytes
const capacityOffset int64 = 8

// Header - Represents persisted table header data
type Header struct {
	CollisionResolutionTechnique crt.Method
	NumberOfBuckets              int64
}

// Line - Represents one persisted key/value pair in textual form
//   - LineNo is the 1-based position of the entry in the persisted sequence (header excluded)
//   - Raw is the complete persisted text, used when reporting malformed entries
//   - Malformed is true if no delimiter was found, Key and Value are then empty
type Line struct {
	LineNo    int
	Raw       string
	Key       string
	Value     string
	Malformed bool
}

// HeaderToLine - Converts a Header struct to its textual form <method id><delimiter><number of buckets>
func HeaderToLine(header Header, delimiter string) (line string) {
	return fmt.Sprintf("%d%s%d", int(header.CollisionResolutionTechnique), delimiter, header.NumberOfBuckets)
}

// LineToHeader - Converts a textual header to a Header struct
func LineToHeader(line string, delimiter string) (header Header, err error) {
	parts := strings.SplitN(strings.TrimRight(line, "\r\n"), delimiter, 2)
	if len(parts) != 2 {
		err = fmt.Errorf("malformed header %q", line)
		return
	}

	method, err := strconv.Atoi(parts[0])
	if err != nil {
		err = fmt.Errorf("malformed collision resolution technique in header: %w", err)
		return
	}
	if !crt.Method(method).IsValid() {
		err = fmt.Errorf("unknown collision resolution technique %d in header", method)
		return
	}

	buckets, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		err = fmt.Errorf("malformed number of buckets in header: %w", err)
		return
	}
	if buckets <= 0 || buckets > conf.MaxCapacity {
		err = fmt.Errorf("number of buckets %d in header outside (0, %d]", buckets, conf.MaxCapacity)
		return
	}

	header = Header{
		CollisionResolutionTechnique: crt.Method(method),
		NumberOfBuckets:              buckets,
	}

	return
}

// SplitLine - Splits a persisted entry into key and value at the first delimiter
func SplitLine(lineNo int, raw string, delimiter string) (line Line) {
	raw = strings.TrimRight(raw, "\r\n")
	line = Line{LineNo: lineNo, Raw: raw}

	key, value, found := strings.Cut(raw, delimiter)
	if !found {
		line.Malformed = true
		return
	}

	line.Key = key
	line.Value = value

	return
}

// HeaderToBytes - Converts a Header struct to a slice of bytes
func HeaderToBytes(header Header) (buf []byte) {
	buf = make([]byte, headerLength)

	binary.LittleEndian.PutUint64(buf[methodOffset:], uint64(header.CollisionResolutionTechnique))
	binary.LittleEndian.PutUint64(buf[capacityOffset:], uint64(header.NumberOfBuckets))

	return
}

// BytesToHeader - Converts a slice of bytes to a Header struct
func BytesToHeader(buf []byte) (header Header, err error) {
	if int64(len(buf)) != headerLength {
		err = fmt.Errorf("header has wrong length %d, should be %d", len(buf), headerLength)
		return
	}

	header = Header{
		CollisionResolutionTechnique: crt.Method(binary.LittleEndian.Uint64(buf[methodOffset:])),
		NumberOfBuckets:              int64(binary.LittleEndian.Uint64(buf[capacityOffset:])),
	}

	if !header.CollisionResolutionTechnique.IsValid() {
		err = fmt.Errorf("unknown collision resolution technique %d in header", int(header.CollisionResolutionTechnique))
		return
	}
	if header.NumberOfBuckets <= 0 || header.NumberOfBuckets > conf.MaxCapacity {
		err = fmt.Errorf("number of buckets %d in header outside (0, %d]", header.NumberOfBuckets, conf.MaxCapacity)
		return
	}

	return
}
