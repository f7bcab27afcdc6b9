package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestUpdateSpaceRequest_PartialSerialization(t *testing.T) {
	b, err := json.Marshal(UpdateSpaceRequest{Name: ptr("X")})
	require.NoError(t, err)

	// Fields the caller never set must not appear at all, not even as null;
	// ClickUp would otherwise overwrite them.
	assert.JSONEq(t, `{"name":"X"}`, string(b))
}

func TestUpdateRequests_EmptySerializesToEmptyObject(t *testing.T) {
	tests := []struct {
		name string
		req  any
	}{
		{"space", UpdateSpaceRequest{}},
		{"folder", UpdateFolderRequest{}},
		{"list", UpdateListRequest{}},
		{"task", UpdateTaskRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.Equal(t, "{}", string(b))
		})
	}
}

func TestUpdateTaskRequest_OnlySetFieldsOnWire(t *testing.T) {
	req := UpdateTaskRequest{
		Status:       ptr("in progress"),
		AddAssignees: []int{42},
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"in progress","add_assignees":[42]}`, string(b))
}

func TestCreateSpaceRequest_MinimalPayload(t *testing.T) {
	b, err := json.Marshal(CreateSpaceRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Engineering"}`, string(b))
}

func TestCreateListRequest_OptionalFields(t *testing.T) {
	req := CreateListRequest{
		Name:     "Sprint 12",
		Priority: ptr(2),
		Status:   ptr("backlog"),
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Sprint 12","priority":2,"status":"backlog"}`, string(b))
}

func TestSetTaskDependenciesRequest_OmitsEmptySides(t *testing.T) {
	b, err := json.Marshal(SetTaskDependenciesRequest{DependsOn: []string{"abc"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"depends_on":["abc"]}`, string(b))
}
