package homework

import "fmt"

// FaultKind classifies a failure so the poll loop can pick a log severity
// and an alert policy for it.
type FaultKind string

const (
	FaultConnection      FaultKind = "connection"      // transport-level failure reaching the API
	FaultBadStatus       FaultKind = "bad_status"      // non-200 HTTP response
	FaultDeserialization FaultKind = "deserialization" // body is not the expected JSON
	FaultMissingKey      FaultKind = "missing_key"     // payload lacks a required key
	FaultBadRecord       FaultKind = "bad_record"      // record lacks fields or carries an unknown status
)

// Fault is a classified failure. Message is the user-facing text that ends
// up in the chat alert; Err is the underlying cause, if any.
type Fault struct {
	Kind    FaultKind
	Op      string
	Message string
	Err     error
}

func NewFault(kind FaultKind, op, message string, err error) *Fault {
	return &Fault{Kind: kind, Op: op, Message: message, Err: err}
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s в функции %s: %v", f.Message, f.Op, f.Err)
	}
	return fmt.Sprintf("%s в функции %s", f.Message, f.Op)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
