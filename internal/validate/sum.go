package validate

import (
	"chat-demo-backend/internal/dto"

	"github.com/valyala/fastjson"
)

// Sum validates the body of POST /api/sum
func Sum(body []byte) (dto.SumRequest, error) {
	var out dto.SumRequest
	err := parseObject(body, func(obj *fastjson.Value) error {
		numbers := obj.Get("numbers")
		if falsy(numbers) {
			return newError("numbers field is required")
		}
		if numbers.Type() != fastjson.TypeArray {
			return newError("numbers must be an array")
		}

		items := numbers.GetArray()
		if len(items) == 0 {
			return newError("numbers array cannot be empty")
		}

		out.Numbers = make([]float64, 0, len(items))
		for _, item := range items {
			if item.Type() != fastjson.TypeNumber {
				return newError("all elements in numbers array must be valid numbers")
			}
			out.Numbers = append(out.Numbers, item.GetFloat64())
		}
		return nil
	})
	return out, err
}

// falsy reports whether v is absent or one of null, false, 0 and ""
func falsy(v *fastjson.Value) bool {
	if v == nil {
		return true
	}
	switch v.Type() {
	case fastjson.TypeNull, fastjson.TypeFalse:
		return true
	case fastjson.TypeNumber:
		return v.GetFloat64() == 0
	case fastjson.TypeString:
		return len(v.GetStringBytes()) == 0
	}
	return false
}
