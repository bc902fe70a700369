package testutil

import (
	"testing"
	"time"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/order"
)

// NewConfig returns a Config suitable for tests: no env lookups, no dotenv.
func NewConfig() *core.Config {
	conf := &core.Config{
		AppName:   "Prioriza",
		Env:       "TEST",
		Debug:     false,
		Build:     "test",
		SecretKey: "secret",
	}
	conf.Server.Host = ""
	conf.Server.ShutdownTimeout = time.Second
	conf.Server.JWTExpirationDelta = 7 * 24 * time.Hour
	conf.Dashboard.DueSoonWindowDays = 2
	return conf
}

// Directory returns the credential directory used across tests: the two
// historical entries.
func Directory() []core.Credential {
	return []core.Credential{
		{Username: "admin", Password: "1234", Expires: "2025-12-31"},
		{Username: "usuario1", Password: "abcd", Expires: "2025-11-30"},
	}
}

func CreateOrder(
	t *testing.T,
	repo order.Repository,
	name string,
	urgency, complexity, cost int,
	due order.Date,
) order.Order {
	t.Helper()

	o, err := order.NewService(repo).Create(order.NewOrder{
		Name:       name,
		Urgency:    urgency,
		Complexity: complexity,
		Cost:       cost,
		Due:        due,
	})
	if err != nil {
		t.Fatalf("CreateOrder() failed: %v", err)
	}
	return o
}
