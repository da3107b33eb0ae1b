package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage_KnownCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{AuthMissingToken, "Authorization token is required"},
		{ValidationInvalidType, "Transaction type must be Income or Expense"},
		{TransactionNotFound, "Transaction not found"},
		{ReportDataUnavailable, "Transaction data is temporarily unavailable, please retry"},
		{SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetErrorMessage(tt.code))
	}
}

func TestGetErrorMessage_UnknownCode(t *testing.T) {
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(ValidationInvalidAmount))
	assert.True(t, IsValidErrorCode(SystemDatabaseError))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_999")))
	assert.False(t, IsValidErrorCode(ErrorCode("")))
}

func TestEveryRegisteredCodeHasAMessage(t *testing.T) {
	codes := []ErrorCode{
		AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat, AuthForbidden,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidType, ValidationInvalidAmount, ValidationInvalidDate,
		TransactionNotFound, TransactionInvalidID,
		ReportDataUnavailable, ReportInvalidFilter,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemRateLimitExceeded, SystemNotAvailableInEnv,
	}

	for _, code := range codes {
		assert.True(t, IsValidErrorCode(code), "code %s missing from registry", code)
		assert.NotEqual(t, "An error occurred", GetErrorMessage(code))
	}
}
