package walletconnect

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/status-im/wc-signer/common"
	statuserrors "github.com/status-im/wc-signer/errors"
	"github.com/status-im/wc-signer/logutils"
	"github.com/status-im/wc-signer/rpc/network"
)

const UnknownChainName = "Unknown chain"

var (
	ErrMissingRequestData = &statuserrors.ErrorResponse{Code: statuserrors.ErrorCode("WC-002"), Details: "missing request data"}
	ErrModalClosed        = &statuserrors.ErrorResponse{Code: statuserrors.ErrorCode("WC-004"), Details: "session request already answered"}
	ErrNoTransport        = &statuserrors.ErrorResponse{Code: statuserrors.ErrorCode("WC-005"), Details: "no transport to deliver the response"}
)

// ModalData is the request and session the modal presents. Either may be nil
// while the UI state is incomplete.
type ModalData struct {
	RequestEvent   *SessionRequest
	RequestSession *Session
}

// ModalView is what the sign modal displays.
type ModalView struct {
	ID             int64  `json:"id"`
	Topic          string `json:"topic"`
	MissingData    bool   `json:"missingData"`
	PeerIcon       string `json:"peerIcon"`
	PeerName       string `json:"peerName"`
	PeerURL        string `json:"peerUrl"`
	ChainID        string `json:"chainId"`
	ChainName      string `json:"chainName"`
	Method         string `json:"method"`
	Message        string `json:"message"`
	MessageError   string `json:"messageError,omitempty"`
	ApproveLoading bool   `json:"approveLoading"`
	RejectLoading  bool   `json:"rejectLoading"`
	Closed         bool   `json:"closed"`
}

// CloseFunc is called once a response reached the peer.
type CloseFunc func(request SessionRequest, response *Response)

// SignModal asks the user to approve or reject one session request. Every
// request gets its own modal, so loading state never leaks between requests.
type SignModal struct {
	data       ModalData
	dispatcher *Dispatcher
	transport  Transport
	networks   *network.Manager
	onClose    CloseFunc
	logger     *zap.Logger

	mu             sync.Mutex
	approveLoading bool
	rejectLoading  bool
	closed         bool
	settled        bool
}

func NewSignModal(data ModalData, dispatcher *Dispatcher, transport Transport, networks *network.Manager, onClose CloseFunc) *SignModal {
	return &SignModal{
		data:       data,
		dispatcher: dispatcher,
		transport:  transport,
		networks:   networks,
		onClose:    onClose,
		logger:     logutils.ZapLogger().Named("wc-sign-modal"),
	}
}

func (m *SignModal) hasData() bool {
	return m.data.RequestEvent != nil && m.data.RequestSession != nil
}

// Request returns the presented request, nil when missing.
func (m *SignModal) Request() *SessionRequest {
	return m.data.RequestEvent
}

func (m *SignModal) View() ModalView {
	if !m.hasData() {
		return ModalView{MissingData: true}
	}

	request := m.data.RequestEvent
	metadata := m.data.RequestSession.Peer.Metadata

	view := ModalView{
		ID:        request.ID,
		Topic:     request.Topic,
		PeerName:  metadata.Name,
		PeerURL:   metadata.URL,
		ChainID:   request.Params.ChainID,
		ChainName: UnknownChainName,
		Method:    request.Method(),
	}
	if len(metadata.Icons) > 0 {
		view.PeerIcon = metadata.Icons[0]
	}
	if m.networks != nil {
		if n := m.networks.FindByCAIP2(request.Params.ChainID); n != nil {
			view.ChainName = n.ChainName
		}
	}

	message, err := SignParamsMessage(request.Params.Request.Params)
	if err != nil {
		view.MessageError = err.Error()
	} else {
		view.Message = message
	}

	m.mu.Lock()
	view.ApproveLoading = m.approveLoading
	view.RejectLoading = m.rejectLoading
	view.Closed = m.closed
	m.mu.Unlock()

	return view
}

// Approve answers the request through the dispatcher. Unsupported methods are
// answered with the invalid method error so the peer is never left waiting.
func (m *SignModal) Approve(ctx context.Context) error {
	if !m.hasData() {
		return ErrMissingRequestData
	}
	if m.isClosed() {
		return ErrModalClosed
	}

	request := *m.data.RequestEvent
	m.setLoading(&m.approveLoading, true)

	response, err := m.dispatcher.Approve(request)
	if err != nil {
		var unsupported *UnsupportedMethodError
		if !errors.As(err, &unsupported) {
			m.setLoading(&m.approveLoading, false)
			return err
		}
		m.logger.Warn("approval requested for unsupported method",
			zap.Int64("id", request.ID),
			zap.String("method", unsupported.Method))
		m.dispatcher.alert(request, err.Error())
		response = FormatJSONRPCSdkError(request.ID, ErrInvalidMethod)
	}

	return m.respond(ctx, request, response, &m.approveLoading)
}

func (m *SignModal) Reject(ctx context.Context) error {
	if !m.hasData() {
		return ErrMissingRequestData
	}
	if m.isClosed() {
		return ErrModalClosed
	}

	request := *m.data.RequestEvent
	m.setLoading(&m.rejectLoading, true)

	response := m.dispatcher.Reject(request)

	return m.respond(ctx, request, response, &m.rejectLoading)
}

func (m *SignModal) respond(ctx context.Context, request SessionRequest, response *Response, loading *bool) error {
	if common.IsNil(m.transport) {
		m.setLoading(loading, false)
		return ErrNoTransport
	}

	err := m.transport.RespondSessionRequest(ctx, request.Topic, response)
	if err != nil {
		m.setLoading(loading, false)
		m.logger.Error("failed to respond to session request",
			zap.Int64("id", request.ID),
			zap.String("topic", request.Topic),
			zap.Error(err))
		return fmt.Errorf("respond session request %d: %w", request.ID, err)
	}

	m.mu.Lock()
	*loading = false
	m.closed = true
	m.mu.Unlock()

	if m.onClose != nil {
		m.onClose(request, response)
	}
	return nil
}

func (m *SignModal) setLoading(flag *bool, value bool) {
	m.mu.Lock()
	*flag = value
	m.mu.Unlock()
}

func (m *SignModal) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// settle reports whether the caller is the first to account for the end of
// the modal, either by its response or by its expiry.
func (m *SignModal) settle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settled {
		return false
	}
	m.settled = true
	return true
}
