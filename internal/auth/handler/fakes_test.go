package handler_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*domain.User{}} }

func (m *memUsers) find(match func(*domain.User) bool) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Email == email }), nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Username == username }), nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.ID == id }), nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperror.ErrEmailAlreadyInUse
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, userID, hash string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.PasswordHash = hash
		u.UpdatedAt = at
	}
	return nil
}

type memLogs struct {
	mu   sync.Mutex
	seq  int
	rows []*domain.LoginLog
	ord  map[string]int
}

func newMemLogs() *memLogs { return &memLogs{ord: map[string]int{}} }

func (m *memLogs) CreateLoginLog(_ context.Context, l *domain.LoginLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *l
	m.seq++
	m.ord[l.ID] = m.seq
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memLogs) ListLoginLogs(_ context.Context, userID string, limit, offset int) ([]domain.LoginLog, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LoginLog
	for _, l := range m.rows {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.ord[out[i].ID] > m.ord[out[j].ID] })
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memLogs) GetLoginLog(_ context.Context, userID, id string) (*domain.LoginLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.rows {
		if l.ID == id && l.UserID == userID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memLogs) ListActiveLoginLogs(_ context.Context, userID string, now time.Time) ([]domain.LoginLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LoginLog
	for _, l := range m.rows {
		if l.UserID == userID && l.State(now) == domain.SessionActive {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memLogs) MarkLoggedOut(_ context.Context, userID string, tokens []string, at time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, l := range m.rows {
		if l.UserID != userID || l.LoggedOutAt != nil {
			continue
		}
		for _, t := range tokens {
			if l.Token == t {
				stamp := at
				l.LoggedOutAt = &stamp
				n++
			}
		}
	}
	return n, nil
}

func (m *memLogs) DeleteLoginLog(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.rows {
		if l.ID == id && l.UserID == userID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}
