package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Train")
		panic("index out of range")
	}

	err := testFunc()
	require.Error(t, err)

	var panicErr *PanicError
	require.True(t, As(err, &panicErr), "expected *PanicError, got %T", err)
	assert.Equal(t, "Train", panicErr.Operation)
	assert.Equal(t, "index out of range", panicErr.PanicValue)
	assert.NotEmpty(t, panicErr.StackTrace)
	assert.Equal(t, "panic in Train: index out of range", panicErr.Error())
	assert.True(t, strings.Contains(panicErr.String(), "Stack trace:"))
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "Train")
		return nil
	}

	assert.NoError(t, testFunc())
}

func TestRecover_WrapsExistingError(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "LoadReader")
		err = ErrEmptyData
		panic("boom")
	}

	err := testFunc()
	require.Error(t, err)
	assert.True(t, Is(err, ErrEmptyData))
	assert.Contains(t, err.Error(), "panic in LoadReader: boom")
}

func TestSafeExecute(t *testing.T) {
	tests := []struct {
		name    string
		fn      func() error
		wantErr string
	}{
		{
			name:    "string panic",
			fn:      func() error { panic("unexpected nil pointer") },
			wantErr: "panic in Op: unexpected nil pointer",
		},
		{
			name:    "integer panic",
			fn:      func() error { panic(42) },
			wantErr: "panic in Op: 42",
		},
		{
			name:    "plain error",
			fn:      func() error { return ErrEmptyData },
			wantErr: "empty data",
		},
		{
			name: "success",
			fn:   func() error { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SafeExecute("Op", tt.fn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
