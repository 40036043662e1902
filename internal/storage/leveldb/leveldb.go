package leveldb

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteDB - Writes the header and all key/value pairs to a LevelDB database at path.
// A new database is created if path does not exist or is an empty directory. An existing database has its stored
// entries replaced in the same batch, a database always reflects exactly one saved table. Any other existing path
// is refused and left as it is.
//   - path is the directory of the database
//   - header is stored under a reserved key
//   - records are key/value pairs already in textual form
func WriteDB(path string, header storage.Header, records [][2]string) (err error) {
	options, err := openOptions(path)
	if err != nil {
		return
	}

	db, err := leveldb.OpenFile(path, options)
	if err != nil {
		err = fmt.Errorf("error while opening database: %w", err)
		return
	}
	defer func(db *leveldb.DB) {
		if cErr := db.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("error while closing database: %w", cErr)
		}
	}(db)

	batch := new(leveldb.Batch)

	iterator := db.NewIterator(util.BytesPrefix([]byte(conf.LevelDBEntryPrefix)), nil)
	for iterator.Next() {
		batch.Delete(append([]byte(nil), iterator.Key()...))
	}
	iterator.Release()
	if err = iterator.Error(); err != nil {
		err = fmt.Errorf("error while clearing existing records: %w", err)
		return
	}

	batch.Put([]byte(conf.LevelDBHeaderKey), storage.HeaderToBytes(header))
	for _, record := range records {
		batch.Put([]byte(conf.LevelDBEntryPrefix+record[0]), []byte(record[1]))
	}

	if err = db.Write(batch, nil); err != nil {
		err = fmt.Errorf("error while writing records: %w", err)
		return
	}

	return
}

// openOptions - Returns options for opening path for writing. A missing path or an empty directory gives a new
// database, a non empty directory must already hold a database.
func openOptions(path string) (options *opt.Options, err error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("unable to check database path: %w", err)
		return
	}
	if !info.IsDir() {
		err = fmt.Errorf("%s exists and is not a database directory", path)
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		err = fmt.Errorf("unable to read database directory: %w", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	if _, err = os.Stat(filepath.Join(path, "CURRENT")); err != nil {
		err = fmt.Errorf("%s is a non empty directory without a database", path)
		return
	}

	options = &opt.Options{ErrorIfMissing: true}

	return
}

// ReadDB - Reads a database written by WriteDB.
//
// It returns:
//   - header is the stored header
//   - lines are all stored key/value pairs in key order
//   - err is a standard error if the database could not be read or the header is missing or invalid
func ReadDB(path string) (header storage.Header, lines []storage.Line, err error) {
	if _, err = os.Stat(path); err != nil {
		err = fmt.Errorf("database not found: %w", err)
		return
	}

	db, err := leveldb.OpenFile(path, &opt.Options{ErrorIfMissing: true, ReadOnly: true})
	if err != nil {
		err = fmt.Errorf("unable to open database: %w", err)
		return
	}
	defer func(db *leveldb.DB) { _ = db.Close() }(db)

	buf, err := db.Get([]byte(conf.LevelDBHeaderKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		err = fmt.Errorf("database has no header")
		return
	}
	if err != nil {
		err = fmt.Errorf("unable to read header: %w", err)
		return
	}

	header, err = storage.BytesToHeader(buf)
	if err != nil {
		return
	}

	iterator := db.NewIterator(util.BytesPrefix([]byte(conf.LevelDBEntryPrefix)), nil)
	defer iterator.Release()

	var lineNo int
	for iterator.Next() {
		lineNo++
		key := string(iterator.Key()[len(conf.LevelDBEntryPrefix):])
		value := string(iterator.Value())
		lines = append(lines, storage.Line{
			LineNo: lineNo,
			Raw:    key + conf.FileDelimiter + value,
			Key:    key,
			Value:  value,
		})
	}

	if err = iterator.Error(); err != nil {
		err = fmt.Errorf("error while iterating database: %w", err)
		return
	}

	return
}
