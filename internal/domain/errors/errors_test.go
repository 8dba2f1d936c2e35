package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	bad := BadRequest("bad")
	assert.Equal(t, http.StatusBadRequest, bad.Status)
	assert.Equal(t, CodeBadRequest, bad.Code)

	unauth := Unauthorized("no session")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)

	forbidden := Forbidden("nope")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	notCfg := NotConfigured("ai missing")
	assert.Equal(t, http.StatusServiceUnavailable, notCfg.Status)
	assert.ErrorIs(t, notCfg, ErrAINotConfigured)

	upstream := UpstreamFailed("ai failed", ErrEmptyPlan)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.ErrorIs(t, upstream, ErrEmptyPlan)

	internal := InternalError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	withErr := NewAppError(http.StatusBadRequest, CodeBadRequest, "msg", errors.New("inner"))
	assert.Equal(t, "inner", withErr.Error())
	assert.EqualError(t, errors.Unwrap(withErr), "inner")

	withoutErr := NewAppError(http.StatusBadRequest, CodeBadRequest, "just message", nil)
	assert.Equal(t, "just message", withoutErr.Error())
	assert.Nil(t, errors.Unwrap(withoutErr))
}
