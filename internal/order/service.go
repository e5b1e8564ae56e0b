package order

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/denimstore/jeans-shop-backend/internal/customer"
	"github.com/denimstore/jeans-shop-backend/internal/product"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidStatus  = errors.New("invalid order status")
)

// ProductGetter is the slice of the product service that order placement
// needs to snapshot the product name.
type ProductGetter interface {
	GetByID(id int) (product.Product, error)
}

// CustomerUpserter dedups customer records by phone during placement.
type CustomerUpserter interface {
	UpsertByPhone(c customer.Customer) (customer.Customer, error)
}

type Service struct {
	repo      Repository
	products  ProductGetter
	customers CustomerUpserter

	// strictFlow gates the status transition table; off means the admin
	// selector may move an order to any status.
	strictFlow bool
}

func NewService(repo Repository, products ProductGetter, customers CustomerUpserter, strictFlow bool) *Service {
	return &Service{repo: repo, products: products, customers: customers, strictFlow: strictFlow}
}

// PlacementInput carries the storefront order form fields.
type PlacementInput struct {
	ProductID       int
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
}

// Place runs the two-step placement sequence: upsert the customer keyed on
// phone, then insert the order with status pending. The two writes are
// independent — a failed upsert is logged and does not abort the order,
// and a failed insert does not roll the customer record back.
func (s *Service) Place(in PlacementInput) (Order, error) {
	p, err := s.products.GetByID(in.ProductID)
	if err != nil {
		return Order{}, ErrUnknownProduct
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.customers.UpsertByPhone(customer.Customer{
		Name:      in.CustomerName,
		Phone:     in.CustomerPhone,
		Address:   in.CustomerAddress,
		CreatedAt: now,
	}); err != nil {
		log.Printf("order: customer upsert failed for phone %s: %v", in.CustomerPhone, err)
	}

	return s.repo.Create(Order{
		ProductID:       p.ID,
		ProductName:     p.Name,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Status:          StatusPending,
		CreatedAt:       now,
	})
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) ListByStatuses(statuses []string) ([]Order, error) {
	for _, st := range statuses {
		if !ValidStatus(st) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, st)
		}
	}
	return s.repo.ListByStatuses(statuses)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus writes a new status for the order. Only members of
// AllowedStatuses are ever sent to the store; when strict flow is on the
// move must also be legal under the transition table.
func (s *Service) UpdateStatus(id int, status string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if s.strictFlow {
		current, err := s.repo.GetByID(id)
		if err != nil {
			return Order{}, err
		}
		if !CanTransition(current.Status, status) {
			return Order{}, fmt.Errorf("%w: cannot move %s to %s", ErrInvalidStatus, current.Status, status)
		}
	}

	return s.repo.UpdateStatus(id, status)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
