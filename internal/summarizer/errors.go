package summarizer

import (
	"errors"
	"fmt"
)

// ErrUnexpectedFormat reports a success response whose body is not valid
// JSON or lacks choices[0].message.content as a string.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// StatusError reports a non-success HTTP status from the completion
// endpoint. The body is not inspected beyond the status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status: %d", e.Code)
}
