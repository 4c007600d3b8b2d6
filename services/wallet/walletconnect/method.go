package walletconnect

import "github.com/status-im/wc-signer/params"

// SigningMethod is the closed set of signing methods a peer may request.
type SigningMethod int

const (
	MethodUnknown SigningMethod = iota
	MethodPersonalSign
	MethodEthSign
	MethodSignTypedData
	MethodSignTypedDataV3
	MethodSignTypedDataV4
	MethodSignTransaction
	MethodSendTransaction
)

var methodNames = map[SigningMethod]string{
	MethodPersonalSign:    params.PersonalSignMethodName,
	MethodEthSign:         params.EthSignMethodName,
	MethodSignTypedData:   params.SignTypedDataMethodName,
	MethodSignTypedDataV3: params.SignTypedDataV3MethodName,
	MethodSignTypedDataV4: params.SignTypedDataV4MethodName,
	MethodSignTransaction: params.SignTransactionMethodName,
	MethodSendTransaction: params.SendTransactionMethodName,
}

var methodsByName = func() map[string]SigningMethod {
	m := make(map[string]SigningMethod, len(methodNames))
	for method, name := range methodNames {
		m[name] = method
	}
	return m
}()

// ParseSigningMethod maps a JSON-RPC method name, MethodUnknown if it is not a signing method.
func ParseSigningMethod(name string) SigningMethod {
	if m, ok := methodsByName[name]; ok {
		return m
	}
	return MethodUnknown
}

func (m SigningMethod) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// Supported reports whether approving the method produces a response.
// Typed data and transaction methods are recognised but not implemented.
func (m SigningMethod) Supported() bool {
	return m == MethodPersonalSign || m == MethodEthSign
}

// SupportedMethods lists the method names the wallet can approve.
func SupportedMethods() []string {
	return []string{params.PersonalSignMethodName, params.EthSignMethodName}
}
