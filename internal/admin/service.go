package admin

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (Admin, error) {
	return s.repo.GetByID(id)
}

// EnsureAccount creates the admin account for the given credentials when it
// does not exist yet. Used at startup to seed the back-office login.
func (s *Service) EnsureAccount(email, password string) (Admin, error) {
	if existing, err := s.repo.GetByEmail(email); err == nil {
		return existing, nil
	} else if err != ErrNotFound {
		return Admin{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, err
	}

	return s.repo.Create(Admin{
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Authenticate(email, password string) (Admin, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}

	return a, nil
}
