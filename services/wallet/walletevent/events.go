package walletevent

// EventType type for event types.
type EventType string

// Event is published on the wallet event feed.
type Event struct {
	Type      EventType `json:"type"`
	RequestID int64     `json:"requestId,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Message   string    `json:"message"`
	At        int64     `json:"at"`
	ChainID   uint64    `json:"chainId"`
}
