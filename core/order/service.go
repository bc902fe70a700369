package order

import (
	"errors"
	"time"

	"github.com/gmarcondes/prioriza/core"
)

var (
	// errors
	ErrNotFound = errors.New("order not found")
)

type (
	Repository interface {
		CreateOrder(o Order) (Order, error)
		GetOrderByID(id int) (Order, error)
		// QueryOpenOrders returns a snapshot of all open orders in insertion
		// (ID) order.
		QueryOpenOrders() ([]Order, error)
		UpdateOrderStatus(id int, status string) (Order, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new open Order. Callers validate the NewOrder beforehand;
// the score is computed here, once, and stored with the record.
// The name guard holds regardless: the store never accepts a nameless order.
func (svc *Service) Create(no NewOrder) (Order, error) {
	if no.Name = core.CleanString(no.Name); no.Name == "" {
		return Order{}, core.NewValidationError(
			errors.New("invalid order"),
			core.FieldError{Field: "name", Error: "this field is required"},
		)
	}

	o := Order{
		Name:       no.Name,
		Urgency:    no.Urgency,
		Complexity: no.Complexity,
		Cost:       no.Cost,
		Score:      Score(no.Urgency, no.Complexity, no.Cost),
		Due:        no.Due,
		Status:     StatusOpen,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateOrder(o)
}

func (svc *Service) ListOpen() ([]Order, error) {
	return svc.repo.QueryOpenOrders()
}

func (svc *Service) GetByID(id int) (Order, error) {
	return svc.repo.GetOrderByID(id)
}

// Complete marks the order as completed. The identifier must be valid
// (ErrNotFound otherwise); completing an already-completed order is a no-op.
func (svc *Service) Complete(id int) (Order, error) {
	o, err := svc.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if !o.IsOpen() {
		return o, nil
	}
	return svc.repo.UpdateOrderStatus(id, StatusCompleted)
}
