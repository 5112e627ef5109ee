package task

// InvalidInputError reports a malformed or out-of-domain request field. The
// reason is safe to return to the caller.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}
