package params

// JSON-RPC method names of the signing requests a peer can send.
const (
	PersonalSignMethodName      = "personal_sign"
	EthSignMethodName           = "eth_sign"
	SignTypedDataMethodName     = "eth_signTypedData"
	SignTypedDataV3MethodName   = "eth_signTypedData_v3"
	SignTypedDataV4MethodName   = "eth_signTypedData_v4"
	SignTransactionMethodName   = "eth_signTransaction"
	SendTransactionMethodName   = "eth_sendTransaction"
	RespondSessionRequestMethod = "wc_respondSessionRequest"
)
