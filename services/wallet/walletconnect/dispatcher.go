package walletconnect

import (
	"go.uber.org/zap"

	"github.com/status-im/wc-signer/logutils"
	"github.com/status-im/wc-signer/signal"
)

// SignedMessagePlaceholder is returned in place of a signature. Smart accounts
// can't sign, the dapp verifies by calling isValidSignature on the contract.
const SignedMessagePlaceholder = "0x"

// AlertFunc shows a blocking message to the user.
type AlertFunc func(request SessionRequest, message string)

// SignalAlert delivers alerts to the UI as walletconnect.alert signals.
func SignalAlert(request SessionRequest, message string) {
	signal.SendWalletConnectAlert(request.ID, request.Topic, message)
}

// Dispatcher turns session requests into protocol responses.
type Dispatcher struct {
	settings *Settings
	alert    AlertFunc
	logger   *zap.Logger
}

func NewDispatcher(settings *Settings, alert AlertFunc) *Dispatcher {
	if settings == nil {
		settings = NewSettings()
	}
	if alert == nil {
		alert = SignalAlert
	}
	return &Dispatcher{
		settings: settings,
		alert:    alert,
		logger:   logutils.ZapLogger().Named("wc-dispatcher"),
	}
}

// Approve answers request with the placeholder signature. Methods outside of
// personal_sign and eth_sign produce no response and an *UnsupportedMethodError.
func (d *Dispatcher) Approve(request SessionRequest) (*Response, error) {
	d.settings.SetActiveChainID(request.Params.ChainID)

	switch request.SigningMethod() {
	case MethodPersonalSign, MethodEthSign:
		message, err := SignParamsMessage(request.Params.Request.Params)
		if err != nil {
			d.logger.Error("failed to extract sign message",
				zap.Int64("id", request.ID),
				zap.String("method", request.Method()),
				zap.Error(err))
			d.alert(request, err.Error())
			return FormatJSONRPCError(request.ID, err.Error()), nil
		}

		d.logger.Debug("approving sign request",
			zap.Int64("id", request.ID),
			zap.String("method", request.Method()),
			zap.String("chainId", request.Params.ChainID),
			zap.String("message", message))

		return FormatJSONRPCResult(request.ID, SignedMessagePlaceholder), nil
	default:
		return nil, &UnsupportedMethodError{Method: request.Method()}
	}
}

// Reject answers any request with the user rejected error.
func (d *Dispatcher) Reject(request SessionRequest) *Response {
	return RejectSessionRequest(request)
}

func RejectSessionRequest(request SessionRequest) *Response {
	return FormatJSONRPCError(request.ID, ErrUserRejected.Message)
}
