package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = &ErrorResponse{Code: ErrorCode("WC-900"), Details: "test failure"}

func TestErrorResponseJSON(t *testing.T) {
	require.Equal(t, `{"code":"WC-900","details":"test failure"}`, errTest.Error())
	require.Equal(t, `{"code":"WC-901"}`, (&ErrorResponse{Code: "WC-901"}).Error())
}

func TestCreateErrorResponseFromError(t *testing.T) {
	require.Nil(t, CreateErrorResponseFromError(nil))

	wrapped := fmt.Errorf("approve: %w", errTest)
	require.Same(t, errTest, CreateErrorResponseFromError(wrapped))

	generic := CreateErrorResponseFromError(errors.New("boom"))
	var resp *ErrorResponse
	require.True(t, errors.As(generic, &resp))
	require.Equal(t, GenericErrorCode, resp.Code)
	require.Equal(t, "boom", resp.Details)
}

func TestErrorResponseIsByCode(t *testing.T) {
	copied := &ErrorResponse{Code: errTest.Code, Details: "other details"}
	require.True(t, errors.Is(fmt.Errorf("wrap: %w", copied), errTest))
	require.False(t, errors.Is(copied, &ErrorResponse{Code: "WC-999"}))
}
