package hashtable

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/gostonefire/hashtable/internal/storage/leveldb"
	"github.com/gostonefire/hashtable/internal/storage/textfile"
	"strconv"
	"strings"
)

// Codec - Converts keys and values to and from their persisted textual form
//   - FormatKey and FormatValue return the text to persist
//   - ParseKey and ParseValue convert persisted text back, an error makes the entry be skipped on load
//   - Delimiter separates key from value, empty means ","
//
// A persisted key must not contain the delimiter, a value may. Neither may contain a line break when saved to file.
type Codec[K comparable, V any] struct {
	FormatKey   func(key K) string
	ParseKey    func(s string) (K, error)
	FormatValue func(value V) string
	ParseValue  func(s string) (V, error)
	Delimiter   string
}

// delimiter - Returns the delimiter in use
func (C Codec[K, V]) delimiter() string {
	if C.Delimiter == "" {
		return conf.FileDelimiter
	}
	return C.Delimiter
}

// StringStringCodec - Returns a Codec for string keys and string values
func StringStringCodec() Codec[string, string] {
	return Codec[string, string]{
		FormatKey:   func(key string) string { return key },
		ParseKey:    func(s string) (string, error) { return s, nil },
		FormatValue: func(value string) string { return value },
		ParseValue:  func(s string) (string, error) { return s, nil },
	}
}

// IntStringCodec - Returns a Codec for int keys and string values
func IntStringCodec() Codec[int, string] {
	return Codec[int, string]{
		FormatKey:   strconv.Itoa,
		ParseKey:    strconv.Atoi,
		FormatValue: func(value string) string { return value },
		ParseValue:  func(s string) (string, error) { return s, nil },
	}
}

// StringIntCodec - Returns a Codec for string keys and int values
func StringIntCodec() Codec[string, int] {
	return Codec[string, int]{
		FormatKey:   func(key string) string { return key },
		ParseKey:    func(s string) (string, error) { return s, nil },
		FormatValue: strconv.Itoa,
		ParseValue:  strconv.Atoi,
	}
}

// IntFloatCodec - Returns a Codec for int keys and float64 values
func IntFloatCodec() Codec[int, float64] {
	return Codec[int, float64]{
		FormatKey:   strconv.Itoa,
		ParseKey:    strconv.Atoi,
		FormatValue: func(value float64) string { return strconv.FormatFloat(value, 'g', -1, 64) },
		ParseValue:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}
}

// ImportEntries - Removes all entries, then inserts each of the given entries in order. A later entry with the same
// key as an earlier one replaces its value.
//
// It returns:
//   - err is a standard error if an entry could not be inserted, entries before it are kept
func (T *Table[K, V]) ImportEntries(entries []Entry[K, V]) (err error) {
	T.Clear()

	for _, entry := range entries {
		if _, err = T.Insert(entry.Key, entry.Value); err != nil {
			err = fmt.Errorf("error while importing entries: %w", err)
			return
		}
	}

	T.logger.Debug("imported entries", "entries", len(entries), "len", T.Len())

	return
}

// ImportRecords - Converts textual key/value pairs with the codec, then imports them as ImportEntries does.
// Pairs that fail conversion are skipped and reported, the remaining pairs are imported.
//   - records are key/value pairs in textual form
//   - codec converts text to keys and values
//
// It returns:
//   - conversionErrors holds one ConversionError per skipped pair, in input order
//   - err is a standard error if an entry could not be inserted
func (T *Table[K, V]) ImportRecords(records [][2]string, codec Codec[K, V]) (conversionErrors []ConversionError, err error) {
	lines := make([]storage.Line, len(records))
	for i, record := range records {
		lines[i] = storage.Line{
			LineNo: i + 1,
			Raw:    record[0] + codec.delimiter() + record[1],
			Key:    record[0],
			Value:  record[1],
		}
	}

	entries, conversionErrors := T.parseLines(lines, codec)
	err = T.ImportEntries(entries)

	return
}

// SaveToFile - Writes a header line with technique and capacity, then one line per live entry as
// <key><delimiter><value>. An existing file is replaced. A file name ending with ".sz" gives a snappy compressed file.
//   - fileName is the name of the file to write
//   - codec converts keys and values to text
//
// It returns:
//   - err is a standard error if a key or value can not be persisted or the file could not be written. The table is never modified.
func (T *Table[K, V]) SaveToFile(fileName string, codec Codec[K, V]) (err error) {
	records, err := T.formatRecords(codec, true)
	if err != nil {
		return
	}

	err = textfile.WriteFile(fileName, T.header(), records, codec.delimiter())
	if err != nil {
		err = fmt.Errorf("error while saving table to file: %w", err)
		return
	}

	T.logger.Debug("saved table to file", "file", fileName, "entries", len(records))

	return
}

// LoadFromFile - Replaces the content of the table with what was saved by SaveToFile. The table is rebuilt with the
// saved technique and capacity (more if the current max load factor needs it) before entries are imported.
// Entries that fail conversion are skipped and reported.
//   - fileName is the name of the file to read
//   - codec converts text to keys and values
//
// It returns:
//   - conversionErrors holds one ConversionError per skipped entry
//   - err is a standard error if the file could not be read or has an invalid header, the table is then unchanged
func (T *Table[K, V]) LoadFromFile(fileName string, codec Codec[K, V]) (conversionErrors []ConversionError, err error) {
	header, lines, err := textfile.ReadFile(fileName, codec.delimiter())
	if err != nil {
		err = fmt.Errorf("error while loading table from file: %w", err)
		return
	}

	conversionErrors, err = T.load(header, lines, codec)
	if err != nil {
		return
	}

	T.logger.Debug("loaded table from file", "file", fileName, "len", T.Len(), "skipped", len(conversionErrors))

	return
}

// SaveToLevelDB - Writes technique, capacity and all live entries to a LevelDB database at path. An existing
// database at path is replaced.
//   - path is the directory of the database
//   - codec converts keys and values to text
//
// It returns:
//   - err is a standard error if the database could not be written. The table is never modified.
func (T *Table[K, V]) SaveToLevelDB(path string, codec Codec[K, V]) (err error) {
	records, err := T.formatRecords(codec, false)
	if err != nil {
		return
	}

	err = leveldb.WriteDB(path, T.header(), records)
	if err != nil {
		err = fmt.Errorf("error while saving table to database: %w", err)
		return
	}

	T.logger.Debug("saved table to database", "path", path, "entries", len(records))

	return
}

// LoadFromLevelDB - Replaces the content of the table with what was saved by SaveToLevelDB, the same way as
// LoadFromFile does.
//   - path is the directory of the database
//   - codec converts text to keys and values
//
// It returns:
//   - conversionErrors holds one ConversionError per skipped entry
//   - err is a standard error if the database could not be read or has an invalid header, the table is then unchanged
func (T *Table[K, V]) LoadFromLevelDB(path string, codec Codec[K, V]) (conversionErrors []ConversionError, err error) {
	header, lines, err := leveldb.ReadDB(path)
	if err != nil {
		err = fmt.Errorf("error while loading table from database: %w", err)
		return
	}

	conversionErrors, err = T.load(header, lines, codec)
	if err != nil {
		return
	}

	T.logger.Debug("loaded table from database", "path", path, "len", T.Len(), "skipped", len(conversionErrors))

	return
}

// header - Returns the persisted header of the table
func (T *Table[K, V]) header() storage.Header {
	return storage.Header{
		CollisionResolutionTechnique: T.method,
		NumberOfBuckets:              T.Capacity(),
	}
}

// formatRecords - Returns all live entries in textual form
func (T *Table[K, V]) formatRecords(codec Codec[K, V], lineBased bool) (records [][2]string, err error) {
	entries := T.ExportEntries()
	records = make([][2]string, 0, len(entries))

	delimiter := codec.delimiter()
	for _, entry := range entries {
		key := codec.FormatKey(entry.Key)
		value := codec.FormatValue(entry.Value)

		if strings.Contains(key, delimiter) {
			err = fmt.Errorf("key %q contains delimiter %q", key, delimiter)
			return
		}
		if lineBased && (strings.ContainsAny(key, "\r\n") || strings.ContainsAny(value, "\r\n")) {
			err = fmt.Errorf("entry with key %q contains a line break", key)
			return
		}

		records = append(records, [2]string{key, value})
	}

	return
}

// parseLines - Converts persisted lines to entries, collecting a ConversionError for each line that fails
func (T *Table[K, V]) parseLines(lines []storage.Line, codec Codec[K, V]) (entries []Entry[K, V], conversionErrors []ConversionError) {
	entries = make([]Entry[K, V], 0, len(lines))

	for _, line := range lines {
		entry, err := parseLine(line, codec)
		if err != nil {
			T.logger.Warn("skipping entry", "line", line.LineNo, "token", line.Raw, "error", err)
			conversionErrors = append(conversionErrors, ConversionError{Line: line.LineNo, Token: line.Raw, Err: err})
			continue
		}
		entries = append(entries, entry)
	}

	return
}

// parseLine - Converts one persisted line to an entry
func parseLine[K comparable, V any](line storage.Line, codec Codec[K, V]) (entry Entry[K, V], err error) {
	if line.Malformed {
		err = fmt.Errorf("missing delimiter")
		return
	}

	if entry.Key, err = codec.ParseKey(line.Key); err != nil {
		err = fmt.Errorf("invalid key: %w", err)
		return
	}
	if entry.Value, err = codec.ParseValue(line.Value); err != nil {
		err = fmt.Errorf("invalid value: %w", err)
		return
	}

	return
}

// load - Rebuilds the table from a persisted header and imports the persisted lines
func (T *Table[K, V]) load(header storage.Header, lines []storage.Line, codec Codec[K, V]) (conversionErrors []ConversionError, err error) {
	entries, conversionErrors := T.parseLines(lines, codec)

	if err = T.rebuild(header.CollisionResolutionTechnique, T.targetCapacity(header.NumberOfBuckets, int64(len(entries)))); err != nil {
		err = fmt.Errorf("error while rebuilding table from header: %w", err)
		return
	}

	err = T.ImportEntries(entries)

	return
}

// rebuild - Replaces the store with an empty one of the given technique and capacity
func (T *Table[K, V]) rebuild(method crt.Method, capacity int64) (err error) {
	store, err := T.newStore(method, capacity)
	if err != nil {
		return
	}

	T.store = store
	T.method = method
	T.generation++

	return
}
