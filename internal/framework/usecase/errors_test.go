package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors_Types(t *testing.T) {
	cases := map[ErrorType]*Error{
		TypeArgumentValidation: NewArgumentValidationError("m"),
		TypeBusinessLogic:      NewBusinessLogicError("m"),
		TypeDuplicateResource:  NewDuplicateResourceError("m"),
		TypeResourceNotFound:   NewResourceNotFoundError("m"),
		TypeUnauthorized:       NewUnauthorizedError("m"),
		TypeFailed:             NewFailedError("m"),
	}
	for want, e := range cases {
		assert.Equal(t, want, e.Type)
		assert.Equal(t, []string{"m"}, e.Messages)
	}
}

func TestError_FormattedWireShape(t *testing.T) {
	e := NewBusinessLogicError("message1", "message2", "message3")
	b, err := json.Marshal(e.Formatted())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"type":"business-logic","messages":["message1","message2","message3"]}}`, string(b))
}

func TestError_NoMessagesEncodesEmptyList(t *testing.T) {
	b, err := json.Marshal(NewFailedError().Formatted())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"type":"failed","messages":[]}}`, string(b))

	b, err = json.Marshal((&Error{Type: TypeFailed}).Formatted())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"type":"failed","messages":[]}}`, string(b))
}

func TestError_ImplementsError(t *testing.T) {
	var err error = NewResourceNotFoundError("Post does not exist")
	assert.EqualError(t, err, "resource-not-found: Post does not exist")
	assert.EqualError(t, NewUnauthorizedError(), "unauthorized")
}
