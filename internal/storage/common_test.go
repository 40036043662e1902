//go:build unit

package storage

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHeaderToLine(t *testing.T) {
	t.Run("converts header to line and back", func(t *testing.T) {
		// Prepare
		header := Header{CollisionResolutionTechnique: crt.QuadraticProbing, NumberOfBuckets: 1031}

		// Execute
		line := HeaderToLine(header, ";")
		back, err := LineToHeader(line+"\n", ";")

		// Check
		assert.Equal(t, "2;1031", line, "textual header")
		assert.NoError(t, err, "parses header")
		assert.Equal(t, header, back, "same header")
	})
}

func TestLineToHeader(t *testing.T) {
	t.Run("rejects malformed headers", func(t *testing.T) {
		for _, line := range []string{"", "2", "x,11", "4,11", "-1,11", "1,y", "1,0", "1,-5", "1,10000000000000"} {
			// Execute
			_, err := LineToHeader(line, ",")

			// Check
			assert.Errorf(t, err, "rejects %q", line)
		}
	})
}

func TestSplitLine(t *testing.T) {
	t.Run("splits at first delimiter only", func(t *testing.T) {
		// Execute
		line := SplitLine(3, "key,value,with,commas\r\n", ",")

		// Check
		assert.False(t, line.Malformed, "has delimiter")
		assert.Equal(t, 3, line.LineNo, "line number kept")
		assert.Equal(t, "key", line.Key, "key")
		assert.Equal(t, "value,with,commas", line.Value, "value")
		assert.Equal(t, "key,value,with,commas", line.Raw, "raw without line break")
	})

	t.Run("marks line without delimiter as malformed", func(t *testing.T) {
		// Execute
		line := SplitLine(1, "novalue\n", ",")

		// Check
		assert.True(t, line.Malformed, "malformed")
		assert.Equal(t, "novalue", line.Raw, "raw kept")
		assert.Empty(t, line.Key, "no key")
	})

	t.Run("allows empty key and value", func(t *testing.T) {
		// Execute
		line := SplitLine(1, ",", ",")

		// Check
		assert.False(t, line.Malformed, "has delimiter")
		assert.Empty(t, line.Key, "empty key")
		assert.Empty(t, line.Value, "empty value")
	})
}

func TestBytesToHeader(t *testing.T) {
	t.Run("converts header to bytes and back", func(t *testing.T) {
		// Prepare
		header := Header{CollisionResolutionTechnique: crt.DoubleHashing, NumberOfBuckets: 97}

		// Execute
		buf := HeaderToBytes(header)
		back, err := BytesToHeader(buf)

		// Check
		assert.Len(t, buf, 16, "fixed length")
		assert.NoError(t, err, "parses header")
		assert.Equal(t, header, back, "same header")
	})

	t.Run("rejects invalid headers", func(t *testing.T) {
		// Prepare
		wrongLength := make([]byte, 8)
		badMethod := HeaderToBytes(Header{CollisionResolutionTechnique: crt.Method(12), NumberOfBuckets: 11})
		noBuckets := HeaderToBytes(Header{CollisionResolutionTechnique: crt.LinearProbing, NumberOfBuckets: 0})
		tooManyBuckets := HeaderToBytes(Header{CollisionResolutionTechnique: crt.LinearProbing, NumberOfBuckets: 10_000_000_000_000})

		for _, buf := range [][]byte{wrongLength, badMethod, noBuckets, tooManyBuckets} {
			// Execute
			_, err := BytesToHeader(buf)

			// Check
			assert.Error(t, err, "rejects header")
		}
	})
}
