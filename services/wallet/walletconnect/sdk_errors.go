package walletconnect

// SdkError is one of the standard errors of the wallet connection protocol.
type SdkError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *SdkError) Error() string {
	return e.Message
}

var (
	ErrInvalidMethod       = &SdkError{Code: 1001, Message: "Invalid method."}
	ErrUserRejected        = &SdkError{Code: 5000, Message: "User rejected."}
	ErrUnsupportedChains   = &SdkError{Code: 5100, Message: "Unsupported chains."}
	ErrUnsupportedAccounts = &SdkError{Code: 5103, Message: "Unsupported accounts."}
)

var sdkErrors = map[string]*SdkError{
	"INVALID_METHOD":       ErrInvalidMethod,
	"USER_REJECTED":        ErrUserRejected,
	"UNSUPPORTED_CHAINS":   ErrUnsupportedChains,
	"UNSUPPORTED_ACCOUNTS": ErrUnsupportedAccounts,
}

// GetSdkError looks an error up by its protocol key, e.g. "USER_REJECTED".
func GetSdkError(key string) (*SdkError, bool) {
	e, ok := sdkErrors[key]
	return e, ok
}

// UnsupportedMethodError is returned when approval is asked for a method the wallet cannot sign.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return ErrInvalidMethod.Message
}

func (e *UnsupportedMethodError) Unwrap() error {
	return ErrInvalidMethod
}
