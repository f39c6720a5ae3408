package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTrace(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StackTrace(New("plain")))
	assert.Empty(t, StackTrace(nil))

	wrapped := Wrap(Errorf("root cause"), "outer")
	trace := StackTrace(wrapped)
	assert.Contains(t, trace, "TestStackTrace")
}
