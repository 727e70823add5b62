package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(New(KindConflict, "duplicate request")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindInternal, KindOf(nil))

	// Kinds survive wrapping
	wrapped := fmt.Errorf("submit request: %w", New(KindForbidden, "not the requester"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindForbidden))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestNewf(t *testing.T) {
	err := Newf(KindNotFound, "request %s not found", "abc")
	assert.Equal(t, "request abc not found", err.Error())
	assert.Equal(t, KindNotFound, err.Kind)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindNotFound:     http.StatusNotFound,
		KindForbidden:    http.StatusForbidden,
		KindConflict:     http.StatusConflict,
		KindInvalidState: http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(New(kind, "x")), string(kind))
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
