package errs

import (
	"fmt"
	"strings"
)

// Err represents structure of a custom error
type Err struct {
	Code    string
	Message string
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Is reports whether target carries the same code, so that errors.Is works
// through any number of %w wraps.
func (e Err) Is(target error) bool {
	t, ok := target.(Err)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// Error codes
const (
	CodeMissingToken       = "EMISSINGTOKEN"
	CodeMissingPRID        = "EMISSINGPRID"
	CodeMissingInput       = "EMISSINGINPUT"
	CodeNoPrevCoverage     = "ENOPREVCOVERAGE"
	CodeReadCoverage       = "EREADCOVERAGE"
	CodeMalformedJSON      = "EMALFORMEDJSON"
	CodeMalformedRecord    = "EMALFORMEDRECORD"
	CodeMissingTotal       = "EMISSINGTOTAL"
	CodeAPIStatus          = "EAPISTATUS"
	CodeInvalidConfig      = "EINVALIDCONFIG"
	CodeUnsupportedArchive = "EUNSUPPORTEDARCHIVE"
)

var (
	// ErrMissingToken is returned when no github token is configured.
	ErrMissingToken = Err{
		Code:    CodeMissingToken,
		Message: "Missing github token. Set GITHUB_TOKEN env var."}
	// ErrMissingPRID is returned when the pull request id is missing outside of dry run.
	ErrMissingPRID = Err{
		Code:    CodeMissingPRID,
		Message: "Missing pr_id. Please specify the PR ID"}
	// ErrNoPrevCoverage is returned when the baseline artifact does not exist.
	ErrNoPrevCoverage = Err{
		Code:    CodeNoPrevCoverage,
		Message: "Unable to find previous coverage file"}
	// ErrMissingTotal is returned when a summary has no "total" entry.
	ErrMissingTotal = Err{
		Code:    CodeMissingTotal,
		Message: `coverage summary has no "total" entry`}
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
)

// ErrMissingInput returns an error for a required input that was not provided.
func ErrMissingInput(msgs []string) Err {
	return Err{
		Code:    CodeMissingInput,
		Message: strings.Join(msgs, "\n")}
}

// ErrReadCoverage returns an error for a coverage file that could not be read.
func ErrReadCoverage(path string, err error) Err {
	return Err{
		Code:    CodeReadCoverage,
		Message: fmt.Sprintf("Unable to read coverage file %s: %v", path, err)}
}

// ErrMalformedJSON returns an error for a coverage document that is not a JSON object.
func ErrMalformedJSON(reason string) Err {
	return Err{
		Code:    CodeMalformedJSON,
		Message: fmt.Sprintf("Malformed coverage summary: %s", reason)}
}

// ErrMalformedRecord returns an error for a coverage record missing a field.
func ErrMalformedRecord(key, field string) Err {
	return Err{
		Code:    CodeMalformedRecord,
		Message: fmt.Sprintf("coverage record %q has no numeric %s", key, field)}
}

// ErrAPIStatus returns an error for an unexpected http status.
func ErrAPIStatus(endpoint string, status int) Err {
	return Err{
		Code:    CodeAPIStatus,
		Message: fmt.Sprintf("non OK status %d from %s", status, endpoint)}
}

// ErrInvalidConfig returns an error for a configuration value that can not be used.
func ErrInvalidConfig(msg string) Err {
	return Err{
		Code:    CodeInvalidConfig,
		Message: msg}
}

// ErrUnsupportedArchive returns an error for an artifact name we cannot decompress.
func ErrUnsupportedArchive(name string) Err {
	return Err{
		Code:    CodeUnsupportedArchive,
		Message: fmt.Sprintf("unsupported archive format for %s", name)}
}
