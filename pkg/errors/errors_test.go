// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "folder_not_found",
			code:    errors.ErrFolderNotFound,
			message: "no ancestor ends with \"src\"",
			wantStr: "[FOLDER_NOT_FOUND] no ancestor ends with \"src\"",
		},
		{
			name:    "value_error",
			code:    errors.ErrValue,
			message: "levels must not be negative",
			wantStr: "[VALUE] levels must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrStackUnderflow, "no caller %d frames up", 3)
	assert.Equal(t, "no caller 3 frames up", err.Message)
	assert.Equal(t, errors.ErrStackUnderflow, err.Code)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileAccess, "cannot read %s", "/tmp/x")
		assert.Equal(t, "[FILE_ACCESS] cannot read /tmp/x: base error", err.Error())
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFolderNotFound, "not found").
		WithDetail("suffix", "src").
		WithDetail("start", "/a/b")

	assert.Equal(t, "src", err.Details["suffix"])
	assert.Equal(t, "/a/b", err.Details["start"])

	var bare errors.MidirError
	bare.WithDetail("skip", 2)
	assert.Equal(t, 2, bare.Details["skip"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrValue, "error 1")
	err2 := errors.New(errors.ErrValue, "error 2")
	err3 := errors.New(errors.ErrType, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(fmt.Errorf("outer: %w", err1), err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotADirectory, "not a directory"),
			code:     errors.ErrNotADirectory,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotADirectory, "not a directory"),
			code:     errors.ErrInvalidArgument,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrValue,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrValue,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrFolderNotFound, "missing").WithDetail("suffix", "lib")

	assert.Equal(t, errors.ErrFolderNotFound, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))

	details := errors.GetErrorDetails(fmt.Errorf("ctx: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, "lib", details["suffix"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var midirErr *errors.MidirError
	require.True(t, stderrors.As(configErr.Unwrap(), &midirErr))
	assert.Equal(t, errors.ErrFileAccess, midirErr.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
