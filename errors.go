package hashtable

import "fmt"

// ConfigurationError - Custom error to inform that a table was given invalid configuration, the table state is
// left unchanged when it is returned
type ConfigurationError struct {
	msg string
}

// Error - Used to notify that configuration was rejected
func (E ConfigurationError) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// newConfigurationError - Returns a ConfigurationError with a formatted message
func newConfigurationError(format string, a ...any) ConfigurationError {
	return ConfigurationError{msg: fmt.Sprintf(format, a...)}
}

// ConversionError - Custom error to inform that a persisted key/value pair could not be converted back to its
// native types. The pair is skipped, processing continues with the next one.
//   - Line is the 1-based number of the entry in the persisted sequence
//   - Token is the raw persisted text of the entry
//   - Err is the cause reported by the codec
type ConversionError struct {
	Line  int
	Token string
	Err   error
}

// Error - Used to notify that one persisted entry was skipped
func (E ConversionError) Error() string {
	return fmt.Sprintf("line %d: unable to convert %q: %v", E.Line, E.Token, E.Err)
}

// Unwrap - Returns the cause reported by the codec
func (E ConversionError) Unwrap() error {
	return E.Err
}
