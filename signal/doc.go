// Package signal implements event-based signalling between the signer service
// and the UI presenting sign requests. Events are JSON envelopes delivered to a
// single registered handler.
package signal
