package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	List() ([]Order, error)
	// ListByStatuses returns orders whose status is in the given set,
	// newest first. An empty set means no filter.
	ListByStatuses(statuses []string) ([]Order, error)
	GetByID(id int) (Order, error)
	Create(ord Order) (Order, error)
	UpdateStatus(id int, status string) (Order, error)
	Delete(id int) error
}

// InMemoryRepository keeps orders in descending creation order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Order, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, ord := range seed {
		r.storage = append(r.storage, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListByStatuses(statuses []string) ([]Order, error) {
	if len(statuses) == 0 {
		return r.List()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.storage {
		for _, s := range statuses {
			if ord.Status == s {
				out = append(out, ord)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	r.storage = append([]Order{ord}, r.storage...)
	return ord, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return r.storage[i], nil
		}
	}
	return Order{}, ErrNotFound
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
