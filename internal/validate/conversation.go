package validate

import (
	"chat-demo-backend/internal/dto"

	"github.com/valyala/fastjson"
)

// CreateConversation validates the body of POST /api/conversation. All fields are optional.
func CreateConversation(body []byte) (dto.CreateConversation, error) {
	var out dto.CreateConversation
	err := parseObject(body, func(obj *fastjson.Value) error {
		name, err := stringPatch(obj, "name", "name must be a string or null")
		if err != nil {
			return err
		}
		if p := name.Ptr(); p != nil {
			out.Name = *p
		}
		return nil
	})
	return out, err
}

// UpdateConversation validates the body of PATCH /api/conversation/:conversationId.
// Only the name can change; id and created_at are immutable.
func UpdateConversation(body []byte) (dto.UpdateConversation, error) {
	var out dto.UpdateConversation
	err := parseObject(body, func(obj *fastjson.Value) error {
		name, err := stringPatch(obj, "name", "name must be a string or null")
		if err != nil {
			return err
		}
		out.Name = name
		return nil
	})
	if err == nil && out.Empty() {
		return out, newError("At least one field (name) must be provided")
	}
	return out, err
}
