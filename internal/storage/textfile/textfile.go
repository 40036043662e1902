package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/golang/snappy"
	"github.com/gostonefire/hashtable/internal/storage"
	"io"
	"os"
	"strings"
)

// CompressedSuffix - File names ending with this suffix are written and read as a snappy framed stream
const CompressedSuffix = ".sz"

// IsCompressed - Returns true if the file name ends with CompressedSuffix
func IsCompressed(fileName string) bool {
	return strings.HasSuffix(fileName, CompressedSuffix)
}

// WriteFile - Writes a header line followed by one line per key/value pair to a new (or truncated) file.
// The file is written to a temporary name first and renamed when complete, so an existing file is never left
// half written. A file name ending with CompressedSuffix gives a snappy compressed file.
//   - fileName is the name of the file to write
//   - header is the header to write on the first line
//   - records are key/value pairs already in textual form
//   - delimiter separates method id from number of buckets and key from value
func WriteFile(fileName string, header storage.Header, records [][2]string, delimiter string) (err error) {
	tmpName := fmt.Sprintf("%s.tmp", fileName)

	file, err := os.OpenFile(tmpName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create file: %w", err)
		return
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpName)
		}
	}()

	var out io.Writer = file
	var sw *snappy.Writer
	if IsCompressed(fileName) {
		sw = snappy.NewBufferedWriter(file)
		out = sw
	}

	w := bufio.NewWriter(out)

	if _, err = fmt.Fprintln(w, storage.HeaderToLine(header, delimiter)); err != nil {
		err = fmt.Errorf("error while writing header: %w", err)
		return
	}

	for _, record := range records {
		if _, err = fmt.Fprintf(w, "%s%s%s\n", record[0], delimiter, record[1]); err != nil {
			err = fmt.Errorf("error while writing record: %w", err)
			return
		}
	}

	if err = w.Flush(); err != nil {
		err = fmt.Errorf("error while flushing file: %w", err)
		return
	}

	if sw != nil {
		if err = sw.Close(); err != nil {
			err = fmt.Errorf("error while flushing compressed stream: %w", err)
			return
		}
	}

	_ = file.Sync()
	if err = file.Close(); err != nil {
		err = fmt.Errorf("error while closing file: %w", err)
		return
	}

	if err = os.Rename(tmpName, fileName); err != nil {
		err = fmt.Errorf("error while renaming file: %w", err)
		return
	}

	return
}

// ReadFile - Reads a file written by WriteFile, decompressing it when the name ends with CompressedSuffix.
//
// It returns:
//   - header is the header from the first line
//   - lines are all following non-empty lines split at the first delimiter, lines lacking a delimiter are marked malformed
//   - err is a standard error if the file could not be read or the header is invalid
func ReadFile(fileName string, delimiter string) (header storage.Header, lines []storage.Line, err error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("unable to open file: %w", err)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	var in io.Reader = file
	if IsCompressed(fileName) {
		in = snappy.NewReader(file)
	}

	r := bufio.NewReader(in)

	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		err = fmt.Errorf("unable to read header: %w", err)
		return
	}

	header, err = storage.LineToHeader(line, delimiter)
	if err != nil {
		return
	}

	var lineNo int
	for {
		line, err = r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			err = fmt.Errorf("error while reading line %d: %w", lineNo+1, err)
			return
		}
		eof := err != nil
		err = nil

		if line != "" && line != "\n" && line != "\r\n" {
			lineNo++
			lines = append(lines, storage.SplitLine(lineNo, line, delimiter))
		}

		if eof {
			break
		}
	}

	return
}
