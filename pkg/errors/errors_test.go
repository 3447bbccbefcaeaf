package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("name", "name required").StatusCode())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("incorrect password").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("not found").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Storage(errors.New("boom")).StatusCode())
}

func TestStorageKeepsDriverMessage(t *testing.T) {
	cause := errors.New(`relation "donor" does not exist`)
	err := Storage(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestMessagesAreExposedVerbatim(t *testing.T) {
	assert.Equal(t, "donor not found", NotFound("donor not found").Error())
	assert.Equal(t, "invalid phone format", Validation("ph_no", "invalid phone format").Error())
}
