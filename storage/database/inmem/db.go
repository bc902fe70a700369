package inmem

import (
	"sync"

	"github.com/gmarcondes/prioriza/core/order"
)

type (
	// DB is the session-scoped in-memory store. It is created empty at
	// session start and discarded at session end; a restart loses all orders.
	DB struct {
		order *orderTable
	}

	orderTable struct {
		t       map[int]*order.Order
		pkCount int
		mutex   sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		order: &orderTable{t: make(map[int]*order.Order)},
	}
	return db, nil
}
