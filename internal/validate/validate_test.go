package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 100},
		{raw: "1", want: 1},
		{raw: "1000", want: 1000},
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "1001", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "10abc", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Limit(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLimit)
				require.Equal(t, "limit must be a number between 1 and 1000", err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestID(t *testing.T) {
	id := uuid.New()

	got, err := ID(id.String(), "conversationId")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = ID("", "conversationId")
	require.EqualError(t, err, "conversationId is required")

	_, err = ID("not-a-uuid", "messageId")
	require.EqualError(t, err, "messageId must be a valid UUID")
}

func TestMalformedBody(t *testing.T) {
	_, err := CreateMessage([]byte(`{"text":`))
	require.ErrorIs(t, err, ErrMalformedJSON)

	_, err = CreateMessage([]byte(`["text"]`))
	require.ErrorIs(t, err, ErrNotObject)
}
