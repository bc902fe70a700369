package order

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gmarcondes/prioriza/core"
)

// Statuses
const (
	StatusOpen      = "open"
	StatusCompleted = "completed"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.ParseInLocation(DateLayout, s[1:len(s)-1], time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Order is a unit of requested work (pedido). Score is computed once at
// creation from the urgency/complexity/cost attributes and stored; it is
// never recomputed on read, even if the weights change later.
type Order struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Urgency    int       `json:"urgency"`
	Complexity int       `json:"complexity"`
	Cost       int       `json:"cost"`
	Score      float64   `json:"score"`
	Due        Date      `json:"due"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (o Order) IsOpen() bool {
	return o.Status == StatusOpen
}

// NewOrder contains information needed to create a new Order. The 1-10
// bounds enforced here are what the scoring function relies on.
type NewOrder struct {
	Name       string `json:"name" validate:"required"`
	Urgency    int    `json:"urgency" validate:"required,min=1,max=10"`
	Complexity int    `json:"complexity" validate:"required,min=1,max=10"`
	Cost       int    `json:"cost" validate:"required,min=1,max=10"`
	Due        Date   `json:"due" validate:"required"`
}

func (no *NewOrder) Validate(validate *validator.Validate) error {
	no.Name = core.CleanString(no.Name)
	return validate.Struct(no)
}
