package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ANL_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("ANL_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANL_9000", nil)),
			wantErr: NewInternalError("ANL_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotErr, gotOk := As(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "As() ok value mismatch")
			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "As() should return nil error")
			} else {
				require.NotNil(t, gotErr, "As() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")

	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantStatus   int
		wantInternal bool
	}{
		{
			name:         "invalid argument",
			err:          NewInvalidArgumentError("ANL_1000", "bad", cause),
			wantCategory: categoryInvalidArgument,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "not found",
			err:          NewNotFoundError("ANL_1003", "missing", cause),
			wantCategory: categoryNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "resource conflict",
			err:          NewResourceConflictError("ANL_1002", "exists", cause),
			wantCategory: categoryResourceConflict,
			wantStatus:   http.StatusConflict,
		},
		{
			name:         "internal",
			err:          NewInternalError("ANL_9000", cause),
			wantCategory: categoryInternal,
			wantStatus:   http.StatusInternalServerError,
			wantInternal: true,
		},
		{
			name:         "panic",
			err:          NewInternalErrorPanic(cause),
			wantCategory: categoryInternal,
			wantStatus:   http.StatusInternalServerError,
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestServiceError_Messages(t *testing.T) {
	t.Parallel()

	err := NewInternalError("ANL_9001", errors.New("template failed"))

	assert.Equal(t, "ANL_9001: internal server error", err.Error())
	assert.Equal(t, "ANL_9001: internal server error: template failed", err.Detail())
	assert.Equal(t, "ANL_1000: bad", NewInvalidArgumentError("ANL_1000", "bad", nil).Detail())
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Ensure(nil))

	svcErr := NewInvalidArgumentError("ANL_1000", "bad", nil)
	assert.Same(t, svcErr, Ensure(fmt.Errorf("wrapped: %w", svcErr)))

	plain := errors.New("plain")
	undefined := Ensure(plain)
	assert.Equal(t, errorCodeInternalUndefined, undefined.Code)
	assert.ErrorIs(t, undefined, plain)
}
