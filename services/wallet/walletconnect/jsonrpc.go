package walletconnect

import "fmt"

const (
	JSONRPCVersion = "2.0"

	// ServerErrorCode is used for errors formatted from a plain message.
	ServerErrorCode = -32000
)

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Response is the JSON-RPC response delivered back to the peer.
// Exactly one of Result and Error is set.
type Response struct {
	ID      int64       `json:"id"`
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

func (r *Response) IsSuccess() bool {
	return r.Error == nil
}

func FormatJSONRPCResult(id int64, result interface{}) *Response {
	return &Response{
		ID:      id,
		JSONRPC: JSONRPCVersion,
		Result:  result,
	}
}

// FormatJSONRPCError builds an error response carrying message with the generic server error code.
func FormatJSONRPCError(id int64, message string) *Response {
	return &Response{
		ID:      id,
		JSONRPC: JSONRPCVersion,
		Error: &RPCError{
			Code:    ServerErrorCode,
			Message: message,
		},
	}
}

// FormatJSONRPCSdkError builds an error response keeping the SDK error code.
func FormatJSONRPCSdkError(id int64, sdkErr *SdkError) *Response {
	return &Response{
		ID:      id,
		JSONRPC: JSONRPCVersion,
		Error: &RPCError{
			Code:    sdkErr.Code,
			Message: sdkErr.Message,
		},
	}
}
