package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse(200, Space{ID: "sp1", Name: "Engineering"})

	assert.True(t, res.Ok())
	assert.Empty(t, res.Err())
	assert.Equal(t, 200, res.Status())

	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, "sp1", data.ID)
}

func TestErrorResponse(t *testing.T) {
	res := ErrorResponse[Space](404, "Space not found")

	assert.False(t, res.Ok())
	assert.Equal(t, "Space not found", res.Err())
	assert.Equal(t, 404, res.Status())

	// An envelope with an error never carries data.
	_, ok := res.Data()
	assert.False(t, ok)
}

func TestEmptyResponse(t *testing.T) {
	res := EmptyResponse[Space](200)

	assert.True(t, res.Ok())
	assert.Equal(t, 200, res.Status())

	_, ok := res.Data()
	assert.False(t, ok)
}

func TestResponseMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		res  ClickUpResponse[Space]
		want string
	}{
		{
			name: "success",
			res:  SuccessResponse(200, Space{ID: "sp1", Name: "Engineering"}),
			want: `{"data":{"id":"sp1","name":"Engineering"},"status":200}`,
		},
		{
			name: "error",
			res:  ErrorResponse[Space](404, "Space not found"),
			want: `{"error":"Space not found","status":404}`,
		},
		{
			name: "empty",
			res:  EmptyResponse[Space](200),
			want: `{"status":200}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.res)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
