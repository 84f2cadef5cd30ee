package query

import "errors"

// NotFoundError reports a required query that matched zero elements.
type NotFoundError struct {
	Msg        string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return e.Msg + "\nSuggestion: " + e.Suggestion
	}
	return e.Msg
}

// MultipleFoundError reports a required-single query that matched more than
// one element. Count is the number of matches observed; single-result
// variants may stop looking after two.
type MultipleFoundError struct {
	Msg   string
	Count int
}

func (e *MultipleFoundError) Error() string { return e.Msg }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsMultipleFound reports whether err is a MultipleFoundError.
func IsMultipleFound(err error) bool {
	var mf *MultipleFoundError
	return errors.As(err, &mf)
}
