package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/floppoker-console/models"
)

// EditingKind - какая форма открыта.
type EditingKind string

const (
	EditingNone       EditingKind = ""
	EditingTournament EditingKind = "tournament"
	EditingRating     EditingKind = "rating"
	EditingPlayer     EditingKind = "player"
)

// EditingTarget - открытая форма. ID == 0 при непустом Kind означает создание.
type EditingTarget struct {
	Kind EditingKind
	ID   int
}

func (e EditingTarget) IsCreate() bool {
	return e.Kind != EditingNone && e.ID == 0
}

// ViewKind - представление, для которого ведётся счётчик поколений.
type ViewKind string

const (
	ViewTournaments ViewKind = "tournaments"
	ViewDetail      ViewKind = "detail"
	ViewTables      ViewKind = "tables"
	ViewRating      ViewKind = "rating"
	ViewPlayers     ViewKind = "players"
)

// Ticket выдаётся перед загрузкой представления.
type Ticket struct {
	view ViewKind
	gen  uint64
}

// AppState - состояние одной браузерной сессии. Единственный владелец - SessionStore.
type AppState struct {
	id string

	mu             sync.Mutex
	user           models.User
	editing        EditingTarget
	openTournament int
	generations    map[ViewKind]uint64
	expiresAt      time.Time
}

func (s *AppState) ID() string {
	return s.id
}

func (s *AppState) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *AppState) setProfile(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Profile = p
}

func (s *AppState) Editing() EditingTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *AppState) beginEditing(kind EditingKind, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = EditingTarget{Kind: kind, ID: id}
}

// finishEditing сбрасывает цель, только если она не сменилась за время запроса.
func (s *AppState) finishEditing(target EditingTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == target {
		s.editing = EditingTarget{}
	}
}

func (s *AppState) clearEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = EditingTarget{}
}

func (s *AppState) OpenTournament() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openTournament
}

func (s *AppState) setOpenTournament(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openTournament = id
}

func (s *AppState) closeTournament(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openTournament == id {
		s.openTournament = 0
	}
}

// begin выдаёт новый билет; все ранее выданные билеты того же представления устаревают.
func (s *AppState) begin(view ViewKind) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[view]++
	return Ticket{view: view, gen: s.generations[view]}
}

// commit сообщает, остаётся ли билет последним для своего представления.
func (s *AppState) commit(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[t.view] == t.gen
}

func (s *AppState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.User{}
	s.editing = EditingTarget{}
	s.openTournament = 0
	// Счётчики только растут, чтобы запоздавшие ответы не совпали с новыми билетами.
	for view := range s.generations {
		s.generations[view]++
	}
}

// SessionStore хранит состояния сессий в памяти процесса.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*AppState
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*AppState),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create открывает сессию для пользователя.
func (s *SessionStore) Create(user models.User) *AppState {
	st := &AppState{
		id:          uuid.NewString(),
		user:        user,
		generations: make(map[ViewKind]uint64),
		expiresAt:   s.now().Add(s.ttl),
	}
	s.mu.Lock()
	s.sessions[st.id] = st
	s.mu.Unlock()
	return st
}

// Get возвращает живую сессию.
func (s *SessionStore) Get(id string) (*AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionRequired
	}
	if s.now().After(st.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionRequired
	}
	return st, nil
}

// Delete закрывает сессию и безусловно очищает её состояние.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		st.reset()
	}
}

// Sweep удаляет истёкшие сессии и возвращает их количество.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, st := range s.sessions {
		if now.After(st.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
