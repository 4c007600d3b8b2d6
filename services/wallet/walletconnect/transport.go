package walletconnect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/status-im/wc-signer/params"
)

//go:generate mockgen -package=mock_walletconnect -destination=mock/transport.go -source=transport.go

const RelayDialTimeout = 10 * time.Second

// Transport delivers a response to the peer connected on topic.
type Transport interface {
	RespondSessionRequest(ctx context.Context, topic string, response *Response) error
}

// RPCClientInterface is the subset of the go-ethereum rpc client used by RPCTransport.
type RPCClientInterface interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// RPCTransport forwards responses to a relay exposing wc_respondSessionRequest.
type RPCTransport struct {
	client RPCClientInterface
	closer func()
}

func NewRPCTransport(client RPCClientInterface) *RPCTransport {
	return &RPCTransport{client: client}
}

// DialRPCTransport connects to the relay at rawurl (http, ws or ipc).
// Connection attempts back off exponentially until RelayDialTimeout.
func DialRPCTransport(ctx context.Context, rawurl string) (*RPCTransport, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss", "":
	default:
		return nil, fmt.Errorf("no known transport for relay URL scheme %q", u.Scheme)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = RelayDialTimeout

	var client *gethrpc.Client
	err = backoff.Retry(func() error {
		var err error
		client, err = gethrpc.DialContext(ctx, rawurl)
		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, err
	}
	return &RPCTransport{client: client, closer: client.Close}, nil
}

func (t *RPCTransport) RespondSessionRequest(ctx context.Context, topic string, response *Response) error {
	return t.client.CallContext(ctx, nil, params.RespondSessionRequestMethod, topic, response)
}

func (t *RPCTransport) Close() {
	if t.closer != nil {
		t.closer()
	}
}

// TopicResponse is the line written by WriterTransport.
type TopicResponse struct {
	Topic    string    `json:"topic"`
	Response *Response `json:"response"`
}

// WriterTransport writes every response as a JSON line, used when no relay is configured.
type WriterTransport struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterTransport(w io.Writer) *WriterTransport {
	return &WriterTransport{w: w}
}

func (t *WriterTransport) RespondSessionRequest(ctx context.Context, topic string, response *Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(TopicResponse{Topic: topic, Response: response})
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err = t.w.Write(append(data, '\n'))
	return err
}
