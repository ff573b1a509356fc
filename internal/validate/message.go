package validate

import (
	"chat-demo-backend/internal/dto"

	"github.com/valyala/fastjson"
)

// CreateMessage validates the body of POST /api/messages, failing on the first bad field.
func CreateMessage(body []byte) (dto.CreateMessage, error) {
	var out dto.CreateMessage
	err := parseObject(body, func(obj *fastjson.Value) error {
		text := obj.GetStringBytes("text")
		if len(text) == 0 {
			return newError("text is required and must be a string")
		}
		out.Text = string(text)

		conversationID, err := uuidPatch(obj, "conversationId")
		if err != nil {
			return err
		}
		out.ConversationID = conversationID.Ptr()

		role, err := intPatch(obj, "role")
		if err != nil {
			return err
		}
		out.Role = role.Ptr()

		creatorName, err := stringPatch(obj, "creatorName", "creatorName must be a string or null")
		if err != nil {
			return err
		}
		out.CreatorName = creatorName.Ptr()
		return nil
	})
	return out, err
}

// UpdateMessage validates the body of PUT /api/messages/:id. At least one known field must be
// present; each present field may be null.
func UpdateMessage(body []byte) (dto.UpdateMessage, error) {
	var out dto.UpdateMessage
	err := parseObject(body, func(obj *fastjson.Value) error {
		if !obj.Exists("text") && !obj.Exists("conversationId") && !obj.Exists("role") && !obj.Exists("creatorName") {
			return newError("At least one field (text, conversationId, role, creatorName) must be provided")
		}

		var err error
		if out.Text, err = stringPatch(obj, "text", "text must be a string or null"); err != nil {
			return err
		}
		if out.ConversationID, err = uuidPatch(obj, "conversationId"); err != nil {
			return err
		}
		if out.Role, err = intPatch(obj, "role"); err != nil {
			return err
		}
		out.CreatorName, err = stringPatch(obj, "creatorName", "creatorName must be a string or null")
		return err
	})
	return out, err
}
