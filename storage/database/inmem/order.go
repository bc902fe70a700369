package inmem

import (
	"fmt"
	"sort"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/order"
)

type orderRepository struct {
	db *orderTable
}

func NewOrderRepository(db *DB) order.Repository {
	return &orderRepository{db: db.order}
}

// query snapshots the table in insertion (ID) order.
func (r *orderRepository) query() []order.Order {
	res := make([]order.Order, 0, len(r.db.t))
	for _, o := range r.db.t {
		res = append(res, *o)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *orderRepository) CreateOrder(o order.Order) (order.Order, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pkCount++
	o.ID = r.db.pkCount
	// a row already holding the fresh pk means the table is corrupted;
	// nothing sane can continue from here
	if _, exists := r.db.t[o.ID]; exists {
		return order.Order{}, core.NewShutdownError(fmt.Sprintf("order table corrupted: duplicate id %d", o.ID))
	}
	r.db.t[o.ID] = &o
	return o, nil
}

func (r *orderRepository) GetOrderByID(id int) (order.Order, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if o, ok := r.db.t[id]; ok {
		return *o, nil
	}
	return order.Order{}, order.ErrNotFound
}

func (r *orderRepository) QueryOpenOrders() ([]order.Order, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]order.Order, 0)
	for _, o := range r.query() {
		if o.IsOpen() {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r *orderRepository) UpdateOrderStatus(id int, status string) (order.Order, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	o, ok := r.db.t[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	o.Status = status
	return *o, nil
}
