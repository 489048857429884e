package cserr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "base error must not be mutated by Msg")
	assert.Equal(t, "changed", changedE.Message)
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"cnum"})

	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Equal(t, 400, e.StatusCode)
	if assert.NotNil(t, e.Extras) {
		assert.Equal(t, []string{"cnum"}, (*e.Extras)["violations"])
	}
	assert.Nil(t, ErrInvalidReq.Extras, "shared ErrInvalidReq must stay untouched")
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: resource not found with given parameters", ErrNotFound.Error())
}
