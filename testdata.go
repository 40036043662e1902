package hashtable

import (
	"fmt"
	"golang.org/x/exp/rand"
	"strconv"
)

// DefaultMaxTestKey - Upper bound of keys drawn by IntStringGenerator when no bound is given
const DefaultMaxTestKey int = 2_000_000

// letters - Alphabet of keys drawn by StringIntGenerator
const letters string = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator - Returns one random key/value pair drawn from rnd
type Generator[K comparable, V any] func(rnd *rand.Rand) (key K, value V)

// IntStringGenerator - Returns a Generator drawing int keys in [1, maxKey] with the value "value<key>".
// A maxKey of 0 (zero) or less means DefaultMaxTestKey.
func IntStringGenerator(maxKey int) Generator[int, string] {
	if maxKey <= 0 {
		maxKey = DefaultMaxTestKey
	}

	return func(rnd *rand.Rand) (key int, value string) {
		key = rnd.Intn(maxKey) + 1
		value = "value" + strconv.Itoa(key)
		return
	}
}

// StringIntGenerator - Returns a Generator drawing alphanumeric keys of the given length with a random int value
func StringIntGenerator(keyLength int) Generator[string, int] {
	if keyLength <= 0 {
		keyLength = 1
	}

	return func(rnd *rand.Rand) (key string, value int) {
		buf := make([]byte, keyLength)
		for i := range buf {
			buf[i] = letters[rnd.Intn(len(letters))]
		}
		key = string(buf)
		value = rnd.Intn(DefaultMaxTestKey)
		return
	}
}

// LoadTestData - Inserts count random entries drawn from the generator. Keys drawn more than once update the
// existing entry. The random source is seeded from Conf.Seed so that a given seed always gives the same data.
//   - count is the number of entries to draw
//   - generator draws one key/value pair at a time
//
// It returns:
//   - inserted is the number of new entries added, draws that updated an existing entry are not counted
//   - err is of type ConfigurationError if count is negative, or a standard error if an insert failed
func (T *Table[K, V]) LoadTestData(count int, generator Generator[K, V]) (inserted int, err error) {
	if count < 0 {
		err = newConfigurationError("count must not be negative")
		return
	}
	if generator == nil {
		err = fmt.Errorf("a generator must be given")
		return
	}

	var outcome Outcome
	for i := 0; i < count; i++ {
		key, value := generator(T.rnd)
		outcome, err = T.Insert(key, value)
		if err != nil {
			return
		}
		if outcome == Inserted {
			inserted++
		}
	}

	T.logger.Debug("loaded test data", "draws", count, "inserted", inserted, "len", T.Len())

	return
}
