package walletconnect

import (
	"encoding/json"

	"github.com/status-im/wc-signer/services/wallet/walletevent"
)

const SessionRequestRespondedEvent = walletevent.EventType("WalletConnectSessionRequestResponded")

type Metadata struct {
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Icons       []string `json:"icons"`
	Name        string   `json:"name"`
	VerifyURL   string   `json:"verifyUrl"`
}

type Peer struct {
	PublicKey string   `json:"publicKey"`
	Metadata  Metadata `json:"metadata"`
}

// Session is the paired session a request arrives on. Only the fields needed to
// present the requester are kept.
type Session struct {
	Topic        string `json:"topic"`
	PairingTopic string `json:"pairingTopic"`
	Expiry       int64  `json:"expiry"`
	Peer         Peer   `json:"peer"`
}

type VerifyContext struct {
	Verified struct {
		VerifyURL  string `json:"verifyUrl"`
		Validation string `json:"validation"`
		Origin     string `json:"origin"`
		IsScam     bool   `json:"isScam,omitempty"`
	} `json:"verified"`
}

type RequestParams struct {
	Request struct {
		Method          string            `json:"method"`
		Params          []json.RawMessage `json:"params"`
		ExpiryTimestamp int64             `json:"expiryTimestamp,omitempty"`
	} `json:"request"`
	ChainID string `json:"chainId"` // CAIP-2 format e.g. "eip155:1"
}

// SessionRequest is the session_request event relayed from a connected peer.
type SessionRequest struct {
	ID     int64         `json:"id"`
	Topic  string        `json:"topic"`
	Params RequestParams `json:"params"`
	Verify VerifyContext `json:"verifyContext"`
}

func (r *SessionRequest) Method() string {
	return r.Params.Request.Method
}

func (r *SessionRequest) SigningMethod() SigningMethod {
	return ParseSigningMethod(r.Params.Request.Method)
}

// NewSessionRequest builds a request with string params, mostly for tests and the CLI.
func NewSessionRequest(id int64, topic string, chainID string, method string, params ...string) (SessionRequest, error) {
	request := SessionRequest{
		ID:    id,
		Topic: topic,
	}
	request.Params.ChainID = chainID
	request.Params.Request.Method = method
	request.Params.Request.Params = make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return SessionRequest{}, err
		}
		request.Params.Request.Params = append(request.Params.Request.Params, raw)
	}
	return request, nil
}
