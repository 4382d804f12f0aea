package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EMISSING, "variant %q is not registered", "bold")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `variant "bold" is not registered`, UserMessage(err))
	assert.True(t, IsMissing(err))
	//
	wrapped := fmt.Errorf("lookup: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped), "code must survive wrapping")
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("bad number")
	err := WrapError(cause, EINVALID, "character U+%04X", 0x28)
	assert.Equal(t, EINVALID, Code(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "[123] character U+0028: bad number", err.Error())
	//
	err = ErrorWithCode(nil, ERANGE)
	assert.Equal(t, "out of range", UserMessage(err))
}
