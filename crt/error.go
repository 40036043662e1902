package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that a full probe cycle found neither an empty nor a deleted slot
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// ConcurrentModification - Custom error to inform that a table was rebuilt while being iterated
type ConcurrentModification struct {
	msg string
}

// Error - Used to notify that the iterated table has changed underneath the iterator
func (C ConcurrentModification) Error() string {
	if C.msg == "" {
		return "table was modified during iteration"
	}
	return C.msg
}
