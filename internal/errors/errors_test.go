package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("disk gone")

	assert.Equal(t, "load: disk gone", New(CodeSourceFailed, "load", cause).Error())
	assert.Equal(t, "load", New(CodeSourceFailed, "load", nil).Error())
	assert.Equal(t, "disk gone", New(CodeSourceFailed, "", cause).Error())
	assert.Equal(t, "source_failed", New(CodeSourceFailed, "", nil).Error())
}

func TestCodeOfWalksChain(t *testing.T) {
	base := Newf(CodeDuplicateCandidate, "duplicate candidate id %q", "7")
	wrapped := fmt.Errorf("build picker: %w", base)

	assert.Equal(t, CodeDuplicateCandidate, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeDuplicateCandidate))
	assert.False(t, IsCode(wrapped, CodeInvalidCandidate))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.False(t, IsCode(nil, CodeUnknown))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := New(CodeParseFailed, "parse", cause)
	assert.ErrorIs(t, err, cause)
}
