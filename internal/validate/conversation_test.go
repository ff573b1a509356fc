package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateConversation(t *testing.T) {
	c, err := CreateConversation([]byte(`{"name":"ngrok"}`))
	require.NoError(t, err)
	require.Equal(t, "ngrok", c.Name)

	c, err = CreateConversation(nil)
	require.NoError(t, err)
	require.Empty(t, c.Name)

	c, err = CreateConversation([]byte(`{"name":null}`))
	require.NoError(t, err)
	require.Empty(t, c.Name)

	_, err = CreateConversation([]byte(`{"name":12}`))
	require.EqualError(t, err, "name must be a string or null")
}

func TestUpdateConversation(t *testing.T) {
	u, err := UpdateConversation([]byte(`{"name":"renamed"}`))
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"name": "renamed"}, u.Columns())

	u, err = UpdateConversation([]byte(`{"name":null}`))
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"name": nil}, u.Columns())

	_, err = UpdateConversation([]byte(`{"id":"x"}`))
	require.EqualError(t, err, "At least one field (name) must be provided")

	_, err = UpdateConversation([]byte(`{"name":[]}`))
	require.EqualError(t, err, "name must be a string or null")
}
