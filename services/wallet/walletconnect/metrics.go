package walletconnect

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeApproved = "approved"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	sessionRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walletconnect_session_requests_total",
			Help: "Sign requests received from connected peers",
		},
		[]string{"method"},
	)
	sessionResponsesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walletconnect_session_responses_total",
			Help: "Responses delivered to connected peers",
		},
		[]string{"method", "outcome"},
	)
	transportFailuresCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "walletconnect_transport_failures_total",
			Help: "Failed attempts to deliver a response",
		},
	)
	pendingRequestsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "walletconnect_pending_session_requests",
			Help: "Sign requests waiting for a decision",
		},
	)
)

func init() {
	prometheus.MustRegister(sessionRequestsCounter)
	prometheus.MustRegister(sessionResponsesCounter)
	prometheus.MustRegister(transportFailuresCounter)
	prometheus.MustRegister(pendingRequestsGauge)
}

func responseOutcome(response *Response) string {
	switch {
	case response.IsSuccess():
		return outcomeApproved
	case response.Error.Message == ErrUserRejected.Message:
		return outcomeRejected
	default:
		return outcomeFailed
	}
}
