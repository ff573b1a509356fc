// Package validate checks request input before it reaches storage.
//
// Bodies are inspected with fastjson rather than decoded into structs so that a missing key,
// an explicit null and a value of the wrong type stay distinguishable.
package validate

import (
	"bytes"
	"math"
	"strconv"

	"chat-demo-backend/internal/dto"

	"github.com/google/uuid"
	"github.com/valyala/fastjson"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Error is a client input error. Its message is returned to the caller verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(msg string) error { return &Error{Message: msg} }

var (
	ErrInvalidLimit  = &Error{Message: "limit must be a number between 1 and 1000"}
	ErrMalformedJSON = &Error{Message: "Malformed JSON"}
	ErrNotObject     = &Error{Message: "request body must be a JSON object"}
)

var parserPool fastjson.ParserPool

// Limit parses the limit query parameter. An empty value means DefaultLimit.
func Limit(raw string) (int, error) {
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, ErrInvalidLimit
	}
	return n, nil
}

// ID parses a path parameter holding a UUID; name is used in the error message.
func ID(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, newError(name + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newError(name + " must be a valid UUID")
	}
	return id, nil
}

// parseObject parses body as a JSON object and hands it to fn. An empty body is read as {}.
// Values must not be retained after fn returns: the parser goes back to the pool.
func parseObject(body []byte, fn func(obj *fastjson.Value) error) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return ErrMalformedJSON
	}
	if v.Type() != fastjson.TypeObject {
		return ErrNotObject
	}
	return fn(v)
}

func isNull(v *fastjson.Value) bool {
	return v != nil && v.Type() == fastjson.TypeNull
}

// stringPatch reads an optional string-or-null field
func stringPatch(obj *fastjson.Value, key, msg string) (dto.Patch[string], error) {
	v := obj.Get(key)
	switch {
	case v == nil:
		return dto.Patch[string]{}, nil
	case isNull(v):
		return dto.Null[string](), nil
	case v.Type() == fastjson.TypeString:
		return dto.Set(string(v.GetStringBytes())), nil
	}
	return dto.Patch[string]{}, newError(msg)
}

// uuidPatch reads an optional UUID-string-or-null field
func uuidPatch(obj *fastjson.Value, key string) (dto.Patch[uuid.UUID], error) {
	s, err := stringPatch(obj, key, key+" must be a string or null")
	if err != nil || !s.Set || s.Null {
		return dto.Patch[uuid.UUID]{Set: s.Set, Null: s.Null}, err
	}
	id, err := uuid.Parse(s.Value)
	if err != nil {
		return dto.Patch[uuid.UUID]{}, newError(key + " must be a valid UUID")
	}
	return dto.Set(id), nil
}

// intPatch reads an optional integral-number-or-null field
func intPatch(obj *fastjson.Value, key string) (dto.Patch[int], error) {
	v := obj.Get(key)
	switch {
	case v == nil:
		return dto.Patch[int]{}, nil
	case isNull(v):
		return dto.Null[int](), nil
	case v.Type() != fastjson.TypeNumber:
		return dto.Patch[int]{}, newError(key + " must be a number or null")
	}
	f := v.GetFloat64()
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return dto.Patch[int]{}, newError(key + " must be a whole number")
	}
	return dto.Set(int(f)), nil
}
