package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/pkg/entity"
)

// memStore keeps rows in maps and enforces the same unique keys as the schema:
// grades by name, sessions by (user, date).
type memStore struct {
	mu       sync.Mutex
	grades   map[uuid.UUID]entity.Grade
	sessions map[uuid.UUID]entity.Session
	climbs   map[uuid.UUID]entity.Climb

	dayLocksMu sync.Mutex
	dayLocks   map[string]*sync.Mutex
}

type memTxKey struct{}

type memTx struct {
	held []*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		grades:   make(map[uuid.UUID]entity.Grade),
		sessions: make(map[uuid.UUID]entity.Session),
		climbs:   make(map[uuid.UUID]entity.Climb),
		dayLocks: make(map[string]*sync.Mutex),
	}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return fn(ctx)
	}
	tx := &memTx{}
	defer func() {
		for _, l := range tx.held {
			l.Unlock()
		}
	}()
	return fn(context.WithValue(ctx, memTxKey{}, tx))
}

func (m *memStore) gradeCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, g := range m.grades {
		if g.Name == name {
			n++
		}
	}
	return n
}

func (m *memStore) sessionsOf(userID uuid.UUID) []entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entity.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result
}

func (m *memStore) climbCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.climbs)
}

// grades

type memGrades struct{ *memStore }

func (m memGrades) FindByName(ctx context.Context, name string) (*entity.Grade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.grades {
		if g.Name == name {
			grade := g
			return &grade, nil
		}
	}
	return nil, errorvalues.ErrGradeNotFound
}

func (m memGrades) Create(ctx context.Context, name string) (*entity.Grade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.grades {
		if g.Name == name {
			return nil, errorvalues.ErrGradeExists
		}
	}
	grade := entity.Grade{ID: uuid.New(), Name: name}
	m.grades[grade.ID] = grade
	return &grade, nil
}

// sessions

type memSessions struct{ *memStore }

func (m memSessions) LockDay(ctx context.Context, userID uuid.UUID, day time.Time) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return nil
	}
	key := repository.DayLockKey(userID, day)
	m.dayLocksMu.Lock()
	l, ok := m.dayLocks[key]
	if !ok {
		l = &sync.Mutex{}
		m.dayLocks[key] = l
	}
	m.dayLocksMu.Unlock()
	l.Lock()
	tx.held = append(tx.held, l)
	return nil
}

func (m memSessions) FindByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserID == userID && !s.Date.Before(from) && s.Date.Before(to) {
			session := s
			return &session, nil
		}
	}
	return nil, errorvalues.ErrSessionNotFound
}

func (m memSessions) Create(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserID == userID && s.Date.Equal(day) {
			return nil, errorvalues.ErrSessionExists
		}
	}
	session := entity.Session{ID: uuid.New(), UserID: userID, Date: day, CreatedAt: time.Now()}
	m.sessions[session.ID] = session
	return &session, nil
}

// climbs

type memClimbs struct{ *memStore }

func (m memClimbs) Create(ctx context.Context, climb *entity.Climb) (*entity.Climb, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[climb.SessionID]; !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	if _, ok := m.grades[climb.GradeID]; !ok {
		return nil, errorvalues.ErrGradeNotFound
	}
	created := *climb
	created.ID = uuid.New()
	m.climbs[created.ID] = created
	return &created, nil
}

func (m memClimbs) GetOwnedByID(ctx context.Context, id uuid.UUID) (*entity.OwnedClimb, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.climbs[id]
	if !ok {
		return nil, errorvalues.ErrClimbNotFound
	}
	return &entity.OwnedClimb{Climb: c, UserID: m.sessions[c.SessionID].UserID}, nil
}

func (m memClimbs) update(id uuid.UUID, fn func(c *entity.Climb)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.climbs[id]
	if !ok {
		return errorvalues.ErrClimbNotFound
	}
	fn(&c)
	m.climbs[id] = c
	return nil
}

func (m memClimbs) UpdateDescription(ctx context.Context, id uuid.UUID, description *string) error {
	return m.update(id, func(c *entity.Climb) { c.Description = description })
}

func (m memClimbs) UpdateGrade(ctx context.Context, id, gradeID uuid.UUID) error {
	return m.update(id, func(c *entity.Climb) { c.GradeID = gradeID })
}

func (m memClimbs) UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error {
	return m.update(id, func(c *entity.Climb) { c.Attempts = attempts })
}

func (m memClimbs) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.climbs[id]; !ok {
		return errorvalues.ErrClimbNotFound
	}
	delete(m.climbs, id)
	return nil
}

func (m memClimbs) ListByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.ClimbRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]repository.ClimbRow, 0)
	for _, c := range m.climbs {
		s := m.sessions[c.SessionID]
		if s.UserID != userID || s.Date.Before(from) || !s.Date.Before(to) {
			continue
		}
		row := repository.ClimbRow{ID: c.ID, SessionID: s.ID, Description: c.Description, Attempts: c.Attempts}
		if g, ok := m.grades[c.GradeID]; ok {
			name := g.Name
			row.GradeName = &name
		}
		result = append(result, row)
	}
	return result, nil
}

func (m memClimbs) CountByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[time.Time]int)
	for _, c := range m.climbs {
		s := m.sessions[c.SessionID]
		if s.UserID == userID && !s.Date.Before(from) && s.Date.Before(to) {
			counts[s.Date]++
		}
	}
	result := make([]entity.ClimbDay, 0, len(counts))
	for d, n := range counts {
		result = append(result, entity.ClimbDay{Date: d, Climbs: n})
	}
	return result, nil
}

// stats

type memStats struct{ *memStore }

func (m memStats) CountClimbs(ctx context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.climbs {
		if m.sessions[c.SessionID].UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m memStats) CountSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[uuid.UUID]struct{})
	for _, c := range m.climbs {
		if m.sessions[c.SessionID].UserID == userID {
			seen[c.SessionID] = struct{}{}
		}
	}
	return len(seen), nil
}

func (m memStats) GradeTallies(ctx context.Context, userID uuid.UUID) ([]repository.GradeTally, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byGrade := make(map[string]*repository.GradeTally)
	for _, c := range m.climbs {
		if m.sessions[c.SessionID].UserID != userID {
			continue
		}
		name := m.grades[c.GradeID].Name
		tally, ok := byGrade[name]
		if !ok {
			tally = &repository.GradeTally{Grade: name}
			byGrade[name] = tally
		}
		tally.Climbs++
		tally.Attempts += c.Attempts
	}
	result := make([]repository.GradeTally, 0, len(byGrade))
	for _, tally := range byGrade {
		result = append(result, *tally)
	}
	return result, nil
}
