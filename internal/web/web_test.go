package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
)

func TestParseId(t *testing.T) {
	id, err := ParseId("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, param := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := ParseId(param)
		assert.True(t, internal_errors.IsNotFound(err), "param %q", param)
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status carried by the error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, internal_errors.NotFound("Post not found"))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Post not found")
	})

	t.Run("plain errors default to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	assert.NoError(t, ValidateStruct(form{Email: "a@b.com", Name: "Ann"}))
	assert.Error(t, ValidateStruct(form{Email: "not-an-email", Name: "Ann"}))
	assert.Error(t, ValidateStruct(form{Email: "a@b.com"}))
}
