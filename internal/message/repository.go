package message

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("message not found")
)

type Repository interface {
	List() ([]Message, error)
	GetByID(id int) (Message, error)
	Create(m Message) (Message, error)
	Delete(id int) error
}

// InMemoryRepository keeps messages in descending creation order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Message
	nextID  int
}

func NewInMemoryRepository(seed []Message) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Message, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, m := range seed {
		r.storage = append(r.storage, m)
		if m.ID > maxID {
			maxID = m.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.storage {
		if m.ID == id {
			return m, nil
		}
	}
	return Message{}, ErrNotFound
}

func (r *InMemoryRepository) Create(m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	r.storage = append([]Message{m}, r.storage...)
	return m, nil
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return nil
}
