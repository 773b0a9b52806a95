package session

import (
	"sync"

	"github.com/google/uuid"
)

// Default content seeded into every new session.
const (
	DefaultDocument = "// Start coding here..."
	DefaultLanguage = "javascript"
)

// Snapshot is a consistent read of a session's shared state.
type Snapshot struct {
	Document string
	Language string
}

// Store is the authoritative, concurrency-safe registry of sessions.
//
// The member type M is an opaque comparable handle supplied by the caller;
// the store never inspects it. The relay uses its connection type, tests can
// use plain strings or ints.
//
// Each session carries its own lock, so operations on different sessions do
// not contend. All mutations of a session's document, language, and member
// set are serialized on that lock; delivery callbacks run while it is held,
// which makes apply order equal to delivery order for every recipient.
// Callbacks must therefore never block (the relay enqueues into buffered
// per-connection channels).
type Store[M comparable] struct {
	mu       sync.RWMutex
	sessions map[string]*state[M]

	defaultDocument string
	defaultLanguage string
}

type state[M comparable] struct {
	mu       sync.Mutex
	document string
	language string
	members  map[M]struct{}
}

// New creates an empty store. Sessions live until process termination; there
// is no expiry or eviction.
func New[M comparable](opts ...Option) *Store[M] {
	cfg := config{
		defaultDocument: DefaultDocument,
		defaultLanguage: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[M]{
		sessions:        make(map[string]*state[M]),
		defaultDocument: cfg.defaultDocument,
		defaultLanguage: cfg.defaultLanguage,
	}
}

// Create allocates a fresh session seeded with the default document and
// language and returns its identifier.
func (s *Store[M]) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &state[M]{
		document: s.defaultDocument,
		language: s.defaultLanguage,
		members:  make(map[M]struct{}),
	}
	return id
}

// Get returns a snapshot of the session's document and language,
// or ErrNotFound if the id is unknown.
func (s *Store[M]) Get(id string) (Snapshot, error) {
	st, err := s.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return Snapshot{Document: st.document, Language: st.language}, nil
}

// Join atomically adds m to the session's member set and returns the current
// snapshot for initial sync. If deliver is non-nil it is invoked with the
// snapshot while the session lock is held, so no concurrent edit can slip in
// between the snapshot and its delivery.
func (s *Store[M]) Join(id string, m M, deliver func(Snapshot)) (Snapshot, error) {
	st, err := s.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.members[m] = struct{}{}
	snap := Snapshot{Document: st.document, Language: st.language}
	if deliver != nil {
		deliver(snap)
	}
	return snap, nil
}

// Leave removes m from the session's member set. It is a no-op, not an
// error, if m was never a member or the id is unknown.
func (s *Store[M]) Leave(id string, m M) {
	st, err := s.lookup(id)
	if err != nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.members, m)
}

// SetDocument overwrites the session's document, last writer wins. Every
// member except sender is passed to deliver (if non-nil) under the session
// lock, preserving apply order toward each recipient.
func (s *Store[M]) SetDocument(id, text string, sender M, deliver func(M)) error {
	st, err := s.lookup(id)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.document = text
	if deliver != nil {
		for m := range st.members {
			if m != sender {
				deliver(m)
			}
		}
	}
	return nil
}

// SetLanguage overwrites the session's language tag, last writer wins. Every
// member, including the originator, is passed to deliver (if non-nil) under
// the session lock.
func (s *Store[M]) SetLanguage(id, language string, deliver func(M)) error {
	st, err := s.lookup(id)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.language = language
	if deliver != nil {
		for m := range st.members {
			deliver(m)
		}
	}
	return nil
}

// BroadcastTargets returns the member set minus excluding, as of the moment
// of the call. Useful for fan-out that must not run under the store's locks.
func (s *Store[M]) BroadcastTargets(id string, excluding M) []M {
	st, err := s.lookup(id)
	if err != nil {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	targets := make([]M, 0, len(st.members))
	for m := range st.members {
		if m != excluding {
			targets = append(targets, m)
		}
	}
	return targets
}

// Len reports the number of sessions currently held.
func (s *Store[M]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// MemberCount reports the number of members attached to the session,
// or zero if the id is unknown.
func (s *Store[M]) MemberCount(id string) int {
	st, err := s.lookup(id)
	if err != nil {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.members)
}

func (s *Store[M]) lookup(id string) (*state[M], error) {
	s.mu.RLock()
	st, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return st, nil
}
