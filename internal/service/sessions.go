package service

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// Session bundles the per-client stores: one browse session and one cart.
type Session struct {
	ID     string
	Browse *BrowseSession
	Cart   CartStore

	saver    *cartSaver
	lastSeen time.Time
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithCartRepository enables durable cart snapshots: carts are restored on
// first access and saved after every mutation.
func WithCartRepository(repo repository.CartRepositoryInterface) SessionOption {
	return func(m *SessionManager) {
		m.carts = repo
	}
}

// WithSessionTTL sets how long an idle session survives before eviction.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(m *SessionManager) {
		m.ttl = ttl
	}
}

// WithPageSize sets the page size for new browse sessions.
func WithPageSize(pageSize int) SessionOption {
	return func(m *SessionManager) {
		m.pageSize = pageSize
	}
}

// WithSessionNotifications installs the optional add-to-cart callback
// passed through to every session's cart store.
func WithSessionNotifications(sink NotificationSink) SessionOption {
	return func(m *SessionManager) {
		m.notify = sink
	}
}

// SessionManager owns all live sessions, keyed by session id. Sessions
// are created lazily, restored from the cart repository when one is
// configured, and evicted after sitting idle for the configured TTL.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	pageSize int
	ttl      time.Duration
	carts    repository.CartRepositoryInterface
	notify   NotificationSink
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionManager creates a session manager and starts its eviction loop.
func NewSessionManager(opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		sessions: make(map[string]*Session),
		pageSize: DefaultPageSize,
		ttl:      30 * time.Minute,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	go m.evictLoop()
	return m
}

// Get returns the session for id, creating and restoring it when absent.
func (m *SessionManager) Get(ctx context.Context, id string) *Session {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	// touch re-checks membership: the eviction loop may have closed the
	// session between the lookup above and here, and a closed session must
	// never be handed to a request.
	if ok && m.touch(session) {
		return session
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have created it while we upgraded the lock.
	if session, ok := m.sessions[id]; ok {
		session.lastSeen = time.Now()
		return session
	}

	session = m.newSession(ctx, id)
	m.sessions[id] = session
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return session
}

// newSession builds the per-client stores and restores a persisted cart.
func (m *SessionManager) newSession(ctx context.Context, id string) *Session {
	cartOpts := []CartOption{}
	if m.notify != nil {
		cartOpts = append(cartOpts, WithNotificationSink(m.notify))
	}
	var saver *cartSaver
	if m.carts != nil {
		saver = newCartSaver(id, m.carts)
		cartOpts = append(cartOpts, WithSnapshotSink(saver.enqueue))
	}

	session := &Session{
		ID:       id,
		Browse:   NewBrowseSession(m.pageSize),
		Cart:     NewCartStore(cartOpts...),
		saver:    saver,
		lastSeen: time.Now(),
	}

	if m.carts != nil {
		snapshot, err := m.carts.Load(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("session_id", id).Msg("Failed to restore cart snapshot")
		} else if snapshot != nil {
			session.Cart.Restore(*snapshot)
		}
	}

	return session
}

// cartSaver persists cart snapshots for one session off the command loop's
// critical path. A single goroutine performs the saves and the pending slot
// holds only the newest unsaved state, so snapshots can never land in the
// repository out of mutation order. Persistence failures degrade to
// in-memory-only carts; they are never surfaced to the client.
type cartSaver struct {
	sessionID string
	carts     repository.CartRepositoryInterface
	pending   chan model.CartState
	done      chan struct{}
}

func newCartSaver(sessionID string, carts repository.CartRepositoryInterface) *cartSaver {
	s := &cartSaver{
		sessionID: sessionID,
		carts:     carts,
		pending:   make(chan model.CartState, 1),
		done:      make(chan struct{}),
	}
	go s.run()
	return s
}

// enqueue hands a snapshot to the saver without ever blocking the caller.
// When a save is already pending the stale snapshot is dropped in favor of
// the newer one (latest wins).
func (s *cartSaver) enqueue(state model.CartState) {
	for {
		select {
		case s.pending <- state:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *cartSaver) run() {
	for {
		select {
		case state := <-s.pending:
			s.save(state)
		case <-s.done:
			// Flush the final pending snapshot before exiting.
			select {
			case state := <-s.pending:
				s.save(state)
			default:
			}
			return
		}
	}
}

func (s *cartSaver) save(state model.CartState) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.carts.Save(ctx, s.sessionID, state); err != nil {
		log.Warn().Err(err).Str("session_id", s.sessionID).Msg("Failed to save cart snapshot")
	}
}

func (s *cartSaver) stop() {
	close(s.done)
}

// touch refreshes lastSeen and reports whether the session is still live.
// Eviction deletes from the map under the same lock, so a session found
// here cannot be mid-close, and the refreshed lastSeen keeps it out of the
// next eviction pass.
func (m *SessionManager) touch(session *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[session.ID] != session {
		return false
	}
	session.lastSeen = time.Now()
	return true
}

// evictLoop closes sessions that have been idle longer than the TTL.
// The cart snapshot survives in the repository, so an evicted session's
// cart comes back on the client's next request.
func (m *SessionManager) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle()
		case <-m.stopCh:
			return
		}
	}
}

func (m *SessionManager) evictIdle() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, session := range m.sessions {
		if session.lastSeen.Before(cutoff) {
			expired = append(expired, session)
			delete(m.sessions, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	for _, session := range expired {
		session.Browse.Close()
		session.Cart.Close()
		if session.saver != nil {
			session.saver.stop()
		}
	}
	if len(expired) > 0 {
		log.Debug().Int("evicted", len(expired)).Msg("Evicted idle sessions")
	}
}

// Stop shuts down the eviction loop and closes every live session.
func (m *SessionManager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Browse.Close()
		s.Cart.Close()
		if s.saver != nil {
			s.saver.stop()
		}
	}
}
