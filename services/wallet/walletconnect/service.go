package walletconnect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/status-im/wc-signer/common"
	statuserrors "github.com/status-im/wc-signer/errors"
	"github.com/status-im/wc-signer/logutils"
	"github.com/status-im/wc-signer/rpc/network"
	"github.com/status-im/wc-signer/services/wallet/walletevent"
	"github.com/status-im/wc-signer/signal"
)

var (
	ErrSessionRequestNotFound = &statuserrors.ErrorResponse{Code: statuserrors.ErrorCode("WC-001"), Details: "session request not found"}
	ErrInvalidSessionRequest  = &statuserrors.ErrorResponse{Code: statuserrors.ErrorCode("WC-003"), Details: "invalid session request"}
)

type Service struct {
	networkManager *network.Manager
	settings       *Settings
	dispatcher     *Dispatcher
	transport      Transport
	pending        *PendingRequests
	eventFeed      *event.Feed
	requestTTL     time.Duration
	logger         *zap.Logger

	receiveMu sync.Mutex

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

func NewService(networkManager *network.Manager, transport Transport, eventFeed *event.Feed, requestTTL time.Duration) *Service {
	s := &Service{
		networkManager: networkManager,
		settings:       NewSettings(),
		transport:      transport,
		eventFeed:      eventFeed,
		requestTTL:     requestTTL,
		logger:         logutils.ZapLogger().Named("walletconnect"),
	}
	s.dispatcher = NewDispatcher(s.settings, SignalAlert)
	s.pending = NewPendingRequests(requestTTL, s.onExpired)
	return s
}

// Start runs the expiry loop of pending requests.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.done = make(chan struct{})

	go func() {
		defer common.LogOnPanic()
		defer close(s.done)
		s.pending.Start()
	}()
	return nil
}

func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	s.pending.Stop()
	<-s.done
	s.started = false
	return nil
}

func (s *Service) APIs() []gethrpc.API {
	return []gethrpc.API{
		{
			Namespace: "walletconnect",
			Version:   "0.1.0",
			Service:   NewAPI(s),
		},
	}
}

// Settings exposes state updated by approved requests.
func (s *Service) Settings() *Settings {
	return s.settings
}

// SessionRequestReceived opens a sign modal for request and notifies the UI.
// A request already pending keeps its modal. A request answered within the
// last ttl gets ErrModalClosed.
func (s *Service) SessionRequestReceived(request SessionRequest, session Session) (*ModalView, error) {
	if err := validateSessionRequest(request, session); err != nil {
		return nil, err
	}

	s.receiveMu.Lock()
	defer s.receiveMu.Unlock()

	if modal, ok := s.pending.Get(request.ID); ok {
		view := modal.View()
		return &view, nil
	}
	if s.pending.Answered(request.ID) {
		return nil, ErrModalClosed
	}

	sessionRequestsCounter.WithLabelValues(request.SigningMethod().String()).Inc()

	var modal *SignModal
	modal = NewSignModal(ModalData{
		RequestEvent:   &request,
		RequestSession: &session,
	}, s.dispatcher, s.transport, s.networkManager, func(request SessionRequest, response *Response) {
		s.onClose(modal, request, response)
	})

	s.pending.Add(request.ID, modal, s.ttlFor(request))
	pendingRequestsGauge.Inc()

	view := modal.View()
	s.logger.Info("session request received",
		zap.Int64("id", request.ID),
		zap.String("topic", request.Topic),
		zap.String("method", request.Method()),
		zap.String("chain", view.ChainName),
		zap.String("peer", view.PeerURL))
	signal.SendWalletConnectSessionRequest(view)

	return &view, nil
}

func (s *Service) ttlFor(request SessionRequest) time.Duration {
	expiry := request.Params.Request.ExpiryTimestamp
	if expiry == 0 {
		return s.requestTTL
	}
	ttl := time.Until(time.Unix(expiry, 0))
	if ttl <= 0 {
		// already expired, keep it just long enough to be rejected
		return time.Second
	}
	return ttl
}

func validateSessionRequest(request SessionRequest, session Session) error {
	if request.Topic == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidSessionRequest)
	}
	if session.Topic != "" && session.Topic != request.Topic {
		return fmt.Errorf("%w: session topic %s does not match request topic %s", ErrInvalidSessionRequest, session.Topic, request.Topic)
	}
	if request.Method() == "" {
		return fmt.Errorf("%w: empty method", ErrInvalidSessionRequest)
	}
	if _, err := network.ParseCAIP2ChainID(request.Params.ChainID); err != nil {
		return fmt.Errorf("%w: chain %q: %v", ErrInvalidSessionRequest, request.Params.ChainID, err)
	}
	return nil
}

func (s *Service) modal(id int64) (*SignModal, error) {
	modal, ok := s.pending.Get(id)
	if !ok {
		return nil, ErrSessionRequestNotFound
	}
	return modal, nil
}

func (s *Service) Approve(ctx context.Context, id int64) error {
	modal, err := s.modal(id)
	if err != nil {
		return err
	}
	if err := modal.Approve(ctx); err != nil {
		s.countFailure(err)
		return err
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, id int64) error {
	modal, err := s.modal(id)
	if err != nil {
		return err
	}
	if err := modal.Reject(ctx); err != nil {
		s.countFailure(err)
		return err
	}
	return nil
}

func (s *Service) countFailure(err error) {
	if !errors.Is(err, ErrModalClosed) && !errors.Is(err, ErrMissingRequestData) {
		transportFailuresCounter.Inc()
	}
}

func (s *Service) View(id int64) (*ModalView, error) {
	modal, err := s.modal(id)
	if err != nil {
		return nil, err
	}
	view := modal.View()
	return &view, nil
}

// Pending lists views of all requests awaiting a decision.
func (s *Service) Pending() []ModalView {
	modals := s.pending.List()
	views := make([]ModalView, 0, len(modals))
	for _, m := range modals {
		views = append(views, m.View())
	}
	return views
}

func (s *Service) onClose(modal *SignModal, request SessionRequest, response *Response) {
	s.pending.MarkAnswered(request.ID)

	outcome := responseOutcome(response)
	sessionResponsesCounter.WithLabelValues(request.SigningMethod().String(), outcome).Inc()
	s.publish(request, response)

	if !modal.settle() {
		s.logger.Warn("session request answered after it expired",
			zap.Int64("id", request.ID),
			zap.String("topic", request.Topic),
			zap.String("outcome", outcome))
		return
	}
	pendingRequestsGauge.Dec()

	s.logger.Info("session request answered",
		zap.Int64("id", request.ID),
		zap.String("topic", request.Topic),
		zap.String("outcome", outcome))

	signal.SendWalletConnectModalClosed(request.ID, request.Topic, response.IsSuccess())
}

// onExpired may run concurrently with a response in flight. Whichever of
// onExpired and onClose settles the modal first reports its end.
func (s *Service) onExpired(modal *SignModal) {
	if !modal.settle() {
		return
	}
	pendingRequestsGauge.Dec()

	request := modal.Request()
	if request == nil {
		return
	}
	s.logger.Warn("session request expired without a decision",
		zap.Int64("id", request.ID),
		zap.String("topic", request.Topic))
	signal.SendWalletConnectModalClosed(request.ID, request.Topic, false)
}

func (s *Service) publish(request SessionRequest, response *Response) {
	if s.eventFeed == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed to marshal response event", zap.Error(err))
		return
	}

	var chainID uint64
	if id, err := network.ParseCAIP2ChainID(request.Params.ChainID); err == nil {
		chainID = id
	}

	s.eventFeed.Send(walletevent.Event{
		Type:      SessionRequestRespondedEvent,
		RequestID: request.ID,
		Topic:     request.Topic,
		Message:   string(payload),
		At:        time.Now().Unix(),
		ChainID:   chainID,
	})
}
