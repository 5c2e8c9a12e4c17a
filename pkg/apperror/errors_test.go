package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentMismatchError(t *testing.T) {
	err := NewPaymentMismatchError("3000.00", "2999.00")

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, KindPaymentMismatch, err.Kind)
	assert.Contains(t, err.Message, "3000.00")
	assert.Equal(t, "2999.00", err.Details["received"])
}

func TestStoreWriteErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreWriteError("complete order", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to complete order: connection reset", err.Error())
	assert.True(t, IsKind(err, KindStoreWrite))
}

func TestIsKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Order"))

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestGetAppErrorFallsBackToInternal(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))

	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, "boom", appErr.Message)
}

func TestNewAppErrorDerivesKind(t *testing.T) {
	assert.Equal(t, KindBadRequest, NewAppError(http.StatusBadRequest, "x").Kind)
	assert.Equal(t, KindConflict, NewAppError(http.StatusConflict, "x").Kind)
	assert.Equal(t, KindInternal, NewAppError(http.StatusTeapot, "x").Kind)
}
