package admin

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	GetByID(id int) (Admin, error)
	GetByEmail(email string) (Admin, error)
	Create(a Admin) (Admin, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	admins []Admin
	nextID int
}

func NewInMemoryRepository(seed []Admin) *InMemoryRepository {
	repo := &InMemoryRepository{
		admins: make([]Admin, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, a := range seed {
		repo.admins = append(repo.admins, a)
		if a.ID > maxID {
			maxID = a.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) GetByID(id int) (Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Admin) (Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return Admin{}, ErrEmailExists
		}
	}

	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.admins = append(r.admins, a)
	return a, nil
}
