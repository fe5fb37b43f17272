package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWithCause_KeepsBothInChain(t *testing.T) {
	outer := &codedError{code: "outer"}
	cause := &codedError{code: "cause"}

	err := WithCause(outer, Wrap(cause, "db"))

	assert.True(t, Is(err, outer))
	assert.True(t, Is(err, cause))
	assert.Equal(t, "outer: db: cause", err.Error())

	var first *codedError
	assert.True(t, As(err, &first))
	assert.Same(t, outer, first)
}

func TestWithCause_NilCause(t *testing.T) {
	outer := New("outer")

	err := WithCause(outer, nil)

	assert.True(t, Is(err, outer))
	assert.Equal(t, "outer", err.Error())
}
