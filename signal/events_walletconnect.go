package signal

const (
	// EventWalletConnectSessionRequest is triggered when a sign request needs a decision from the user.
	EventWalletConnectSessionRequest = "walletconnect.sessionRequest"

	// EventWalletConnectModalClosed is triggered once a response for the request was delivered.
	EventWalletConnectModalClosed = "walletconnect.modalClosed"

	// EventWalletConnectAlert asks the UI to show a blocking alert.
	EventWalletConnectAlert = "walletconnect.alert"
)

// WalletConnectModalClosedSignal identifies the request whose modal was closed.
type WalletConnectModalClosedSignal struct {
	ID       int64  `json:"id"`
	Topic    string `json:"topic"`
	Approved bool   `json:"approved"`
}

// WalletConnectAlertSignal carries the text of a user facing alert.
type WalletConnectAlertSignal struct {
	ID      int64  `json:"id"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// SendWalletConnectSessionRequest notifies the UI about a request awaiting approval.
func SendWalletConnectSessionRequest(view interface{}) {
	send(EventWalletConnectSessionRequest, view)
}

func SendWalletConnectModalClosed(id int64, topic string, approved bool) {
	send(EventWalletConnectModalClosed, WalletConnectModalClosedSignal{
		ID:       id,
		Topic:    topic,
		Approved: approved,
	})
}

func SendWalletConnectAlert(id int64, topic string, message string) {
	send(EventWalletConnectAlert, WalletConnectAlertSignal{
		ID:      id,
		Topic:   topic,
		Message: message,
	})
}
