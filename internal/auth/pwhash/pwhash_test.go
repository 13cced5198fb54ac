package pwhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 100000)
	assert.NoError(t, err)

	hash, err := ph.HashPassword("FJKqDyBvr9pAQMB3f8Uj4s")
	assert.NoError(t, err)

	assert.NoError(t, ph.Validate("FJKqDyBvr9pAQMB3f8Uj4s", hash))
	assert.ErrorIs(t, ph.Validate("wrong", hash), ErrMismatch)

	// salts are random, hashes must differ
	hash2, err := ph.HashPassword("FJKqDyBvr9pAQMB3f8Uj4s")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestMalformedHash(t *testing.T) {
	ph, err := New(16, 100000)
	assert.NoError(t, err)

	assert.Error(t, ph.Validate("pw", "not-a-hash"))
	assert.Error(t, ph.Validate("pw", "abc$def$ghi"))
}

func TestWeakParamsRejected(t *testing.T) {
	_, err := New(4, 100000)
	assert.Error(t, err)
	_, err = New(16, 10)
	assert.Error(t, err)
}
