package gl45

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportsInitFailureEveryCall(t *testing.T) {
	defer func(init func() error) {
		glInit = init
		glInitOnce = sync.Once{}
		glInitErr = nil
	}(glInit)

	calls := 0
	failure := errors.New("no current context")
	glInit = func() error {
		calls++
		return failure
	}
	glInitOnce = sync.Once{}

	for i := 0; i < 2; i++ {
		d, err := New()
		require.ErrorIs(t, err, failure)
		assert.Nil(t, d)
	}
	assert.Equal(t, 1, calls)
}
