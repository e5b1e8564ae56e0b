package customer

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("customer not found")
)

type Repository interface {
	List() ([]Customer, error)
	GetByID(id int) (Customer, error)
	Create(c Customer) (Customer, error)
	Update(id int, c Customer) (Customer, error)
	Delete(id int) error
	// UpsertByPhone inserts a new customer unless a row with the same
	// phone exists, in which case the non-key fields are overwritten
	// (last write wins). The original created_at is preserved.
	UpsertByPhone(c Customer) (Customer, error)
}

// InMemoryRepository keeps customers in descending creation order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Customer
	nextID  int
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Customer, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, c := range seed {
		r.storage = append(r.storage, c)
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(c), nil
}

func (r *InMemoryRepository) Update(id int, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			c.ID = id
			if c.CreatedAt == "" {
				c.CreatedAt = r.storage[i].CreatedAt
			}
			r.storage[i] = c
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
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

func (r *InMemoryRepository) UpsertByPhone(c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Phone == c.Phone {
			existing := r.storage[i]
			existing.Name = c.Name
			existing.Address = c.Address
			if c.Email != nil {
				existing.Email = c.Email
			}
			r.storage[i] = existing
			return existing, nil
		}
	}
	return r.insertLocked(c), nil
}

func (r *InMemoryRepository) insertLocked(c Customer) Customer {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.storage = append([]Customer{c}, r.storage...)
	return c
}
