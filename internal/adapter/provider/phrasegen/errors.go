package phrasegen

import (
	"errors"
	"fmt"
)

// ErrService matches every failure returned by the client:
// errors.Is(err, ErrService) holds for both NetworkError and DecodingError.
var ErrService = errors.New("phrase service error")

// NetworkError reports a malformed endpoint URL, a transport failure or a
// non-2xx response. StatusCode is 0 when no response was received.
type NetworkError struct {
	Message    string
	StatusCode int
	// Detail is the backend's {"detail": ...} payload, when it sent one.
	Detail string
	Err    error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Message
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrService }

// DecodingError reports a response whose body or text could not be turned
// into the expected shape.
type DecodingError struct {
	Message string
	Err     error
}

func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding error: %s: %v", e.Message, e.Err)
	}
	return "decoding error: " + e.Message
}

func (e *DecodingError) Unwrap() error { return e.Err }

func (e *DecodingError) Is(target error) bool { return target == ErrService }

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsDecoding reports whether err is (or wraps) a DecodingError.
func IsDecoding(err error) bool {
	var de *DecodingError
	return errors.As(err, &de)
}
