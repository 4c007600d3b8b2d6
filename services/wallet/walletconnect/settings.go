package walletconnect

import "sync"

// Settings holds wallet state changed by incoming requests.
type Settings struct {
	mu            sync.RWMutex
	activeChainID string
}

func NewSettings() *Settings {
	return &Settings{}
}

func (s *Settings) SetActiveChainID(chainID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeChainID = chainID
}

// ActiveChainID is the CAIP-2 id of the chain of the last approved request.
func (s *Settings) ActiveChainID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeChainID
}
