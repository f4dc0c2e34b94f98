package quiz

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("quiz not found")

type Store interface {
	PutQuiz(q Quiz) error
	GetQuiz(id string) (Quiz, error)
	ListQuizzesByOwner(ownerID string) ([]Quiz, error)
	DeleteQuiz(id, ownerID string) error
}

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

func NewInMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) PutQuiz(q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuiz(id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryStore) ListQuizzesByOwner(ownerID string) ([]Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Quiz, 0)
	for _, q := range m.quizzes {
		if q.OwnerID == ownerID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) DeleteQuiz(id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[id]
	if !ok || q.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.quizzes, id)
	return nil
}
