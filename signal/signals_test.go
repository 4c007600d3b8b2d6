package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureSignals(t *testing.T) *[]string {
	var received []string
	SetDefaultNodeNotificationHandler(func(jsonEvent string) {
		received = append(received, jsonEvent)
	})
	t.Cleanup(ResetDefaultNodeNotificationHandler)
	return &received
}

func TestSendWalletConnectAlert(t *testing.T) {
	received := captureSignals(t)

	SendWalletConnectAlert(7, "topic-7", "odd length hex string")

	require.Len(t, *received, 1)
	require.JSONEq(t,
		`{"type":"walletconnect.alert","event":{"id":7,"topic":"topic-7","message":"odd length hex string"}}`,
		(*received)[0])
}

func TestSendWalletConnectModalClosed(t *testing.T) {
	received := captureSignals(t)

	SendWalletConnectModalClosed(1, "abc", true)

	var envelope struct {
		Type  string                         `json:"type"`
		Event WalletConnectModalClosedSignal `json:"event"`
	}
	require.Len(t, *received, 1)
	require.NoError(t, json.Unmarshal([]byte((*received)[0]), &envelope))
	require.Equal(t, EventWalletConnectModalClosed, envelope.Type)
	require.Equal(t, WalletConnectModalClosedSignal{ID: 1, Topic: "abc", Approved: true}, envelope.Event)
}

func TestSendWalletConnectSessionRequest(t *testing.T) {
	received := captureSignals(t)

	SendWalletConnectSessionRequest(map[string]string{"peerName": "dapp"})

	require.Len(t, *received, 1)
	require.JSONEq(t, `{"type":"walletconnect.sessionRequest","event":{"peerName":"dapp"}}`, (*received)[0])
}

func TestUnmarshalableEventIsDropped(t *testing.T) {
	received := captureSignals(t)

	SendWalletConnectSessionRequest(make(chan int))

	require.Empty(t, *received)
}
