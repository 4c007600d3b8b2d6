package walletconnect

import (
	"context"
	"sort"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/status-im/wc-signer/common"
)

// PendingRequests keeps the modals of unanswered requests until they are
// answered or expire.
type PendingRequests struct {
	cache    *ttlcache.Cache[int64, *SignModal]
	answered *ttlcache.Cache[int64, struct{}]
}

// NewPendingRequests creates the store. onExpire is called for modals evicted
// because nobody answered them in time.
func NewPendingRequests(ttl time.Duration, onExpire func(*SignModal)) *PendingRequests {
	cache := ttlcache.New[int64, *SignModal](
		ttlcache.WithTTL[int64, *SignModal](ttl),
		ttlcache.WithDisableTouchOnHit[int64, *SignModal](),
	)
	if onExpire != nil {
		cache.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[int64, *SignModal]) {
			if reason == ttlcache.EvictionReasonExpired {
				onExpire(item.Value())
			}
		})
	}
	answered := ttlcache.New[int64, struct{}](
		ttlcache.WithTTL[int64, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[int64, struct{}](),
	)
	return &PendingRequests{cache: cache, answered: answered}
}

// Add stores modal under its request id. A zero ttl uses the store default.
func (p *PendingRequests) Add(id int64, modal *SignModal, ttl time.Duration) {
	if ttl <= 0 {
		ttl = ttlcache.DefaultTTL
	}
	p.cache.Set(id, modal, ttl)
}

func (p *PendingRequests) Get(id int64) (*SignModal, bool) {
	item := p.cache.Get(id)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (p *PendingRequests) Delete(id int64) {
	p.cache.Delete(id)
}

// MarkAnswered drops the modal of id and remembers for one ttl that a
// response was sent, so a redelivered request is not answered twice.
func (p *PendingRequests) MarkAnswered(id int64) {
	p.answered.Set(id, struct{}{}, ttlcache.DefaultTTL)
	p.cache.Delete(id)
}

func (p *PendingRequests) Answered(id int64) bool {
	return p.answered.Get(id) != nil
}

// List returns unexpired modals ordered by request id.
func (p *PendingRequests) List() []*SignModal {
	keys := p.cache.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	res := make([]*SignModal, 0, len(keys))
	for _, id := range keys {
		if modal, ok := p.Get(id); ok {
			res = append(res, modal)
		}
	}
	return res
}

func (p *PendingRequests) Len() int {
	return len(p.List())
}

// DeleteExpired evicts expired modals now instead of waiting for the cleanup loop.
func (p *PendingRequests) DeleteExpired() {
	p.cache.DeleteExpired()
	p.answered.DeleteExpired()
}

// Start runs the cleanup loops, blocking until Stop.
func (p *PendingRequests) Start() {
	go func() {
		defer common.LogOnPanic()
		p.answered.Start()
	}()
	p.cache.Start()
}

func (p *PendingRequests) Stop() {
	p.answered.Stop()
	p.cache.Stop()
}
