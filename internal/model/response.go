package model

import "encoding/json"

// ClickUpResponse is the outcome of a single ClickUp API call. A value is
// either a success carrying data, a success with no body (deletes, and the
// deployments that answer reads of deleted resources with an empty 2xx), or
// a failure carrying a message. The constructors are the only way to build
// one, so data and error can never both be set.
type ClickUpResponse[T any] struct {
	data   *T
	err    string
	status int
}

// SuccessResponse wraps decoded data with the HTTP status it arrived with.
func SuccessResponse[T any](status int, data T) ClickUpResponse[T] {
	return ClickUpResponse[T]{data: &data, status: status}
}

// EmptyResponse records a status with neither data nor error.
func EmptyResponse[T any](status int) ClickUpResponse[T] {
	return ClickUpResponse[T]{status: status}
}

// ErrorResponse wraps a failure message. Transport failures use status 500;
// remote rejections keep the remote status.
func ErrorResponse[T any](status int, msg string) ClickUpResponse[T] {
	return ClickUpResponse[T]{err: msg, status: status}
}

// Ok reports whether the call did not fail. An empty success is still Ok;
// callers that need data must also check the second return of Data.
func (r ClickUpResponse[T]) Ok() bool {
	return r.err == ""
}

// Data returns the decoded payload and whether one is present.
func (r ClickUpResponse[T]) Data() (T, bool) {
	if r.data == nil {
		var zero T
		return zero, false
	}
	return *r.data, true
}

func (r ClickUpResponse[T]) Err() string {
	return r.err
}

func (r ClickUpResponse[T]) Status() int {
	return r.status
}

func (r ClickUpResponse[T]) MarshalJSON() ([]byte, error) {
	out := struct {
		Data   *T     `json:"data,omitempty"`
		Error  string `json:"error,omitempty"`
		Status int    `json:"status"`
	}{
		Data:   r.data,
		Error:  r.err,
		Status: r.status,
	}
	return json.Marshal(out)
}
