// Package session holds the process-wide per-user conversational state.
package session

import (
	"sync"

	"tunebot/internal/domain"
)

// Store maps user IDs to their sessions. State lives only in memory and is
// lost on restart. The mutex protects the map itself; there is no
// cross-update isolation per user — concurrent updates from the same user
// race and the last write wins.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.UserSession
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*domain.UserSession)}
}

// Get returns a copy of the session for userID, creating a default one
// (English, not editing) if the user has never interacted before.
func (s *Store) Get(userID int64) domain.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := *s.getOrCreate(userID)
	if sess.Edit != nil {
		edit := *sess.Edit
		sess.Edit = &edit
	}
	return sess
}

// SetLanguage sets the user's language. Edit state is left untouched.
func (s *Store) SetLanguage(userID int64, lang domain.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).Language = lang
}

// StartEdit opens an edit session awaiting a file. An already-recorded
// file is discarded.
func (s *Store) StartEdit(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).Edit = &domain.EditSession{}
}

// BeginEdit records the file a user submitted for metadata editing,
// overwriting any pending edit session.
func (s *Store) BeginEdit(userID int64, filePath, fileName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).Edit = &domain.EditSession{
		FilePath: filePath,
		FileName: fileName,
	}
}

// EndEdit clears the user's edit session, if any.
func (s *Store) EndEdit(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(userID).Edit = nil
}

// IsEditing reports whether the user has an edit session in flight.
func (s *Store) IsEditing(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return ok && sess.Edit != nil
}

func (s *Store) getOrCreate(userID int64) *domain.UserSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &domain.UserSession{Language: domain.DefaultLanguage}
		s.sessions[userID] = sess
	}
	return sess
}
