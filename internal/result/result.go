// Package result provides the uniform success/failure envelope returned by
// every configuration store operation.
//
// A Result is either a success carrying data or a failure carrying an error
// message; there is no third state. Expected business-rule outcomes
// (environment gate, policy gate, not-found, parse errors) travel as failures
// inside the envelope rather than as Go errors crossing the store boundary.
package result

import "encoding/json"

// Result is a tagged success/failure pair. The zero value is a failure with
// an empty message and must not be returned; use Ok or Fail.
type Result[T any] struct {
	ok   bool
	data T
	err  string
}

// Ok creates a successful result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

// Fail creates a failed result with the given message.
func Fail[T any](message string) Result[T] {
	if message == "" {
		message = "unknown error"
	}
	return Result[T]{err: message}
}

// FailErr creates a failed result from an error.
func FailErr[T any](err error) Result[T] {
	return Fail[T](err.Error())
}

// IsSuccess reports whether the result is a success.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Data returns the carried data. Only meaningful when IsSuccess is true.
func (r Result[T]) Data() T {
	return r.data
}

// Error returns the failure message, or "" for a success.
func (r Result[T]) Error() string {
	return r.err
}

// envelope is the wire form: {"isSuccess": ..., "data": ..., "error": ...}.
type envelope[T any] struct {
	IsSuccess bool    `json:"isSuccess"`
	Data      *T      `json:"data"`
	Error     *string `json:"error"`
}

// MarshalJSON implements json.Marshaler.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{IsSuccess: r.ok}
	if r.ok {
		data := r.data
		env.Data = &data
	} else {
		msg := r.err
		env.Error = &msg
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var env envelope[T]
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	r.ok = env.IsSuccess
	if env.Data != nil {
		r.data = *env.Data
	}
	if env.Error != nil {
		r.err = *env.Error
	}
	return nil
}
