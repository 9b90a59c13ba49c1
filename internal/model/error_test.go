package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantOK   bool
	}{
		{name: "Empty input", err: ErrEmptyInput, wantCode: ErrCodeEmptyInput, wantOK: true},
		{name: "Space included", err: ErrSpaceIncluded, wantCode: ErrCodeSpaceIncluded, wantOK: true},
		{name: "Not integer", err: ErrNotInteger, wantCode: ErrCodeNotInteger, wantOK: true},
		{name: "Out of length", err: ErrOutOfLength, wantCode: ErrCodeOutOfLength, wantOK: true},
		{name: "Duplicated", err: ErrDuplicatedNumber, wantCode: ErrCodeDuplicatedNumber, wantOK: true},
		{name: "Out of range", err: ErrOutOfNumberRange, wantCode: ErrCodeOutOfNumberRange, wantOK: true},
		{name: "Wrapped", err: fmt.Errorf("bonus: %w", ErrDuplicatedNumber), wantCode: ErrCodeDuplicatedNumber, wantOK: true},
		{name: "Plain error", err: errors.New("boom"), wantCode: "", wantOK: false},
		{name: "Nil", err: nil, wantCode: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeOf(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyInput))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", ErrOutOfNumberRange)))
	assert.False(t, IsValidationError(NewDomainError(ErrCodeDrawNotFound, "draw not found")))
	assert.False(t, IsValidationError(errors.New("connection refused")))
	assert.False(t, IsValidationError(nil))
}

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "Input must be an integer", ErrNotInteger.Error())
}
