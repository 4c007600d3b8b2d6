package walletconnect

import (
	"context"

	statuserrors "github.com/status-im/wc-signer/errors"
)

// API exposes the sign modal to the UI over JSON-RPC. Errors are returned as
// coded ErrorResponses.
type API struct {
	s *Service
}

func NewAPI(s *Service) *API {
	return &API{s: s}
}

// SessionRequestReceived registers a relayed request and returns what the modal shows.
func (api *API) SessionRequestReceived(ctx context.Context, request SessionRequest, session Session) (*ModalView, error) {
	view, err := api.s.SessionRequestReceived(request, session)
	return view, statuserrors.CreateErrorResponseFromError(err)
}

func (api *API) GetSessionRequestView(ctx context.Context, id int64) (*ModalView, error) {
	view, err := api.s.View(id)
	return view, statuserrors.CreateErrorResponseFromError(err)
}

func (api *API) PendingSessionRequests(ctx context.Context) ([]ModalView, error) {
	return api.s.Pending(), nil
}

func (api *API) ApproveSessionRequest(ctx context.Context, id int64) error {
	return statuserrors.CreateErrorResponseFromError(api.s.Approve(ctx, id))
}

func (api *API) RejectSessionRequest(ctx context.Context, id int64) error {
	return statuserrors.CreateErrorResponseFromError(api.s.Reject(ctx, id))
}

// SupportedMethods lists the signing methods the wallet approves.
func (api *API) SupportedMethods(ctx context.Context) []string {
	return SupportedMethods()
}
