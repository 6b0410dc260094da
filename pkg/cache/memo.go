package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a computed result (or failure) is served
	// before the next access recomputes it.
	DefaultTTL = 24 * time.Hour

	defaultComputeTimeout = 15 * time.Second
)

// FetchFunc computes the value for a key on a cache miss.
type FetchFunc[V any] func(ctx context.Context) (V, error)

type entry[V any] struct {
	value      V
	err        error
	computedAt time.Time
}

// Options configure a Memo.
type Options struct {
	TTL            time.Duration
	ComputeTimeout time.Duration
	Now            func() time.Time
}

type Option func(*Options)

func WithTTL(ttl time.Duration) Option {
	return func(o *Options) { o.TTL = ttl }
}

func WithComputeTimeout(d time.Duration) Option {
	return func(o *Options) { o.ComputeTimeout = d }
}

// WithClock overrides the time source, used by tests to force expiry.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Now = now }
}

// Memo is an in-memory, keyed result cache with single-flight computation.
// A settled entry holds whatever the computation produced, error included,
// until it expires; expiry is checked lazily on access, there is no sweeper.
// At most one computation per key is in flight at any time, and every
// concurrent caller for that key receives its result.
type Memo[V any] struct {
	ttl            time.Duration
	computeTimeout time.Duration
	now            func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
	sf      singleflight.Group
}

// New creates a Memo with DefaultTTL unless overridden.
func New[V any](opts ...Option) *Memo[V] {
	options := &Options{
		TTL:            DefaultTTL,
		ComputeTimeout: defaultComputeTimeout,
		Now:            time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.TTL <= 0 {
		options.TTL = DefaultTTL
	}
	return &Memo[V]{
		ttl:            options.TTL,
		computeTimeout: options.ComputeTimeout,
		now:            options.Now,
		entries:        make(map[string]entry[V]),
	}
}

// GetOrCompute returns the cached result for key, computing it with fn if
// no fresh entry exists. The computation runs detached from the caller's
// cancellation (with its own timeout) so that a caller disconnecting never
// aborts a result other waiters, or future callers, will share.
func (m *Memo[V]) GetOrCompute(ctx context.Context, key string, fn FetchFunc[V]) (V, error) {
	if e, ok := m.lookup(key); ok {
		return e.value, e.err
	}

	v, err, _ := m.sf.Do(key, func() (any, error) {
		// A previous flight may have settled the entry between the
		// caller's lookup and joining this flight.
		if e, ok := m.lookup(key); ok {
			return e.value, e.err
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.computeTimeout)
		defer cancel()

		value, err := fn(fetchCtx)
		m.store(key, value, err)
		return value, err
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len reports the number of entries currently held, expired or not.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memo[V]) lookup(key string) (entry[V], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || m.now().Sub(e.computedAt) >= m.ttl {
		return entry[V]{}, false
	}
	return e, true
}

func (m *Memo[V]) store(key string, value V, err error) {
	m.mu.Lock()
	m.entries[key] = entry[V]{value: value, err: err, computedAt: m.now()}
	m.mu.Unlock()
}
