package services_test

import (
	"testing"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/config"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

const testAdminUID = "7382970242"

func setupTestServices(t *testing.T) (*services.Store, *services.Ledger, *services.Deposits, *services.Orders) {
	t.Helper()

	cfg := &config.Config{
		RedisURL:  "localhost:6379",
		RedisPass: "",
		RedisDB:   15,
		JWTSecret: "test-secret",
		AdminUID:  testAdminUID,
	}

	store, err := services.NewStore(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	if err := store.DeleteAllData(); err != nil {
		t.Fatalf("Failed to clear test data: %v", err)
	}

	t.Cleanup(func() {
		store.DeleteAllData()
		store.Close()
	})

	bus := services.NewUpdateBus()
	ledger := services.NewLedger(store, bus, cfg)
	deposits := services.NewDeposits(store, bus)
	orders := services.NewOrders(store, bus)

	return store, ledger, deposits, orders
}
