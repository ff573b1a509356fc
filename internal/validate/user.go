package validate

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"chat-demo-backend/internal/dto"

	"github.com/valyala/fastjson"
)

// Fields maps a request field to the reason it was rejected
type Fields map[string]string

var (
	// at least 10 characters of digits, spaces, dashes, parentheses or plus
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]{10,}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CreateUser validates the body of POST /api/users. Unlike the other validators it checks every
// field and reports all failures at once; the returned error is only set for unparsable bodies.
func CreateUser(body []byte) (dto.CreateUser, Fields, error) {
	var out dto.CreateUser
	fields := Fields{}
	err := parseObject(body, func(obj *fastjson.Value) error {
		if name, msg := requiredString(obj, "name", "Name"); msg != "" {
			fields["name"] = msg
		} else if utf8.RuneCountInString(name) < 2 {
			fields["name"] = "Name must be at least 2 characters long"
		} else {
			out.Name = name
		}

		if phone, msg := requiredString(obj, "phone", "Phone"); msg != "" {
			fields["phone"] = msg
		} else if !validPhone(phone) {
			fields["phone"] = "Invalid phone number format"
		} else {
			out.Phone = phone
		}

		if email, msg := requiredString(obj, "email", "Email"); msg != "" {
			fields["email"] = msg
		} else if !emailRegex.MatchString(email) {
			fields["email"] = "Invalid email format"
		} else {
			out.Email = email
		}

		if age, msg := validAge(obj.Get("age")); msg != "" {
			fields["age"] = msg
		} else {
			out.Age = age
		}
		return nil
	})
	if err != nil {
		return dto.CreateUser{}, nil, err
	}
	if len(fields) > 0 {
		return dto.CreateUser{}, fields, nil
	}
	return out, nil, nil
}

// requiredString returns the trimmed value of a required non-blank string field,
// or the message describing why it is unusable.
func requiredString(obj *fastjson.Value, key, label string) (string, string) {
	raw := obj.GetStringBytes(key)
	if len(raw) == 0 {
		return "", label + " is required and must be a string"
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "", label + " cannot be empty"
	}
	return s, ""
}

func validPhone(phone string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
	return phoneRegex.MatchString(compact)
}

func validAge(v *fastjson.Value) (int, string) {
	switch {
	case v == nil || isNull(v):
		return 0, "Age is required"
	case v.Type() != fastjson.TypeNumber:
		return 0, "Age must be a number"
	}
	age := v.GetFloat64()
	switch {
	case age <= 0:
		return 0, "Age must be a positive number"
	case age != math.Trunc(age):
		return 0, "Age must be a whole number"
	case age > 150:
		return 0, "Age must be a reasonable value"
	}
	return int(age), ""
}
