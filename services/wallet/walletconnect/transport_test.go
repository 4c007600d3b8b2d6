package walletconnect_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/wc-signer/services/wallet/walletconnect"
	mock_walletconnect "github.com/status-im/wc-signer/services/wallet/walletconnect/mock"
)

// relayAPI stands in for the relay, served under the "wc" namespace.
type relayAPI struct {
	mu        sync.Mutex
	topics    []string
	responses []walletconnect.Response
	err       error
}

func (r *relayAPI) RespondSessionRequest(topic string, response walletconnect.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.topics = append(r.topics, topic)
	r.responses = append(r.responses, response)
	return nil
}

func newInProcRelay(t *testing.T) (*relayAPI, *gethrpc.Client) {
	relay := &relayAPI{}
	server := gethrpc.NewServer()
	require.NoError(t, server.RegisterName("wc", relay))
	client := gethrpc.DialInProc(server)
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})
	return relay, client
}

func TestRPCTransportDeliversResponse(t *testing.T) {
	relay, client := newInProcRelay(t)
	transport := walletconnect.NewRPCTransport(client)

	err := transport.RespondSessionRequest(context.Background(), "topic-1", walletconnect.FormatJSONRPCResult(1, "0x"))
	require.NoError(t, err)

	err = transport.RespondSessionRequest(context.Background(), "topic-2", walletconnect.FormatJSONRPCError(2, "User rejected."))
	require.NoError(t, err)

	require.Equal(t, []string{"topic-1", "topic-2"}, relay.topics)
	require.Equal(t, int64(1), relay.responses[0].ID)
	require.Equal(t, "0x", relay.responses[0].Result)
	require.Equal(t, "User rejected.", relay.responses[1].Error.Message)
	require.Equal(t, walletconnect.ServerErrorCode, relay.responses[1].Error.Code)
}

func TestRPCTransportReturnsRelayError(t *testing.T) {
	relay, client := newInProcRelay(t)
	relay.err = errors.New("session topic unknown")
	transport := walletconnect.NewRPCTransport(client)

	err := transport.RespondSessionRequest(context.Background(), "topic-1", walletconnect.FormatJSONRPCResult(1, "0x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "session topic unknown")
}

func TestRPCTransportCallsRespondMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_walletconnect.NewMockRPCClientInterface(ctrl)
	transport := walletconnect.NewRPCTransport(client)
	response := walletconnect.FormatJSONRPCResult(7, "0x")

	client.EXPECT().
		CallContext(gomock.Any(), nil, "wc_respondSessionRequest", "abc", response).
		Return(nil)

	require.NoError(t, transport.RespondSessionRequest(context.Background(), "abc", response))
	transport.Close()
}

func TestDialRPCTransportInvalidURL(t *testing.T) {
	_, err := walletconnect.DialRPCTransport(context.Background(), "ftp://relay.invalid")
	require.Error(t, err)
}

func TestDialRPCTransportOverHTTP(t *testing.T) {
	relay := &relayAPI{}
	server := gethrpc.NewServer()
	require.NoError(t, server.RegisterName("wc", relay))
	defer server.Stop()
	ts := httptest.NewServer(server)
	defer ts.Close()

	transport, err := walletconnect.DialRPCTransport(context.Background(), ts.URL)
	require.NoError(t, err)
	defer transport.Close()

	require.NoError(t, transport.RespondSessionRequest(context.Background(), "topic-http", walletconnect.FormatJSONRPCResult(9, "0x")))
	require.Equal(t, []string{"topic-http"}, relay.topics)
}

func TestWriterTransport(t *testing.T) {
	buf := &bytes.Buffer{}
	transport := walletconnect.NewWriterTransport(buf)

	require.NoError(t, transport.RespondSessionRequest(context.Background(), "t1", walletconnect.FormatJSONRPCResult(1, "0x")))
	require.NoError(t, transport.RespondSessionRequest(context.Background(), "t2", walletconnect.FormatJSONRPCError(2, "User rejected.")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.JSONEq(t, `{"topic":"t1","response":{"id":1,"jsonrpc":"2.0","result":"0x"}}`, lines[0])

	var second walletconnect.TopicResponse
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "t2", second.Topic)
	require.Equal(t, "User rejected.", second.Response.Error.Message)
}

func TestWriterTransportCanceledContext(t *testing.T) {
	buf := &bytes.Buffer{}
	transport := walletconnect.NewWriterTransport(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := transport.RespondSessionRequest(ctx, "t1", walletconnect.FormatJSONRPCResult(1, "0x"))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, buf.Len())
}
