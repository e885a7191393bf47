package memo

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Site is the registry of one memoized call site. The zero value is ready
// to use; NewSite is only needed to pass options. A Site must not be copied
// after first use.
type Site struct {
	opts []SiteOption

	once sync.Once
	root *root
}

// SiteOption configures a Site before its registry is initialized.
type SiteOption func(*root)

// WithLogger sets the logger used for store creation and poisoning events.
func WithLogger(logger *zap.Logger) SiteOption {
	return func(r *root) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithName names the site in logs and stats.
func WithName(name string) SiteOption {
	return func(r *root) {
		r.name = name
	}
}

// NewSite returns a Site configured with opts. A zero Site works just as
// well when no option is needed.
func NewSite(opts ...SiteOption) *Site {
	return &Site{opts: opts}
}

// root is the lazily initialized state behind a Site.
type root struct {
	id      uuid.UUID
	name    string
	logger  *zap.Logger
	created time.Time

	mu       sync.Mutex
	stores   map[reflect.Type]any
	kinds    map[reflect.Type]StoreKind
	poisoned error

	hits   atomic.Uint64
	misses atomic.Uint64
}

// acquire returns the site's registry, initializing it exactly once.
func (s *Site) acquire() *root {
	s.once.Do(func() {
		r := &root{
			id:      uuid.New(),
			logger:  zap.NewNop(),
			created: time.Now(),
			stores:  make(map[reflect.Type]any),
			kinds:   make(map[reflect.Type]StoreKind),
		}
		for _, opt := range s.opts {
			opt(r)
		}
		if r.name == "" {
			r.name = r.id.String()
		}
		r.logger = r.logger.With(zap.String("site", r.name), zap.Stringer("site_id", r.id))
		s.root = r
	})
	return s.root
}

// critical runs fn holding the site's lock. A panic escaping fn poisons the
// site and is re-raised; later calls panic with ErrPoisoned.
func (r *root) critical(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.poisoned != nil {
		panic(r.poisoned)
	}
	defer func() {
		if p := recover(); p != nil {
			r.poisoned = fmt.Errorf("%w: %s: %v", ErrPoisoned, r.name, p)
			r.logger.Error("call site poisoned", zap.Any("panic", p))
			panic(p)
		}
	}()
	fn()
}
