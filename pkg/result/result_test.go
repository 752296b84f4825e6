package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())
}

func TestErr(t *testing.T) {
	cause := errors.New("boom")
	r := Err[int](cause)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), cause)
	assert.Zero(t, r.Value())
}

func TestDone(t *testing.T) {
	r := Done()

	assert.True(t, r.IsSuccess())
	assert.NoError(t, r.Err())
}
