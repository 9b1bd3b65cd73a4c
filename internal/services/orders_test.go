package services_test

import (
	"testing"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

func walletOrder(amount float64) *models.OrderRequest {
	return &models.OrderRequest{
		CategoryID:     "ff-id",
		PackageDetails: "115 Diamonds",
		BasePrice:      amount,
		Tax:            0,
		Amount:         amount,
		PaymentMethod:  models.PaymentWallet,
		TargetPlayerID: "123456789",
	}
}

func fundUser(t *testing.T, ledger *services.Ledger, deposits *services.Deposits, uid string, amount float64) {
	t.Helper()
	dep, err := deposits.Create(uid, &models.DepositRequestInput{
		Amount: amount,
		Method: models.DepositBkash,
		TrxID:  "FUND",
	})
	if err != nil {
		t.Fatalf("Funding deposit failed: %v", err)
	}
	deposits.SetStatus(dep.ID, models.DepositStatusApproved)
	if got := ledger.FindUser(uid); got.Balance < amount {
		t.Fatalf("Funding failed, balance=%f", got.Balance)
	}
}

func TestWalletOrderDebitsAtCreation(t *testing.T) {
	_, ledger, deposits, orders := setupTestServices(t)

	user, _, _ := ledger.LoginOrRegister("00000001", "pw")
	fundUser(t, ledger, deposits, user.UID, 1000)

	order, err := orders.Create(user.UID, walletOrder(430))
	if err != nil {
		t.Fatalf("Wallet order failed: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("New order should be pending, got %s", order.Status)
	}

	if got := ledger.FindUser(user.UID); got.Balance != 570 {
		t.Errorf("Wallet order should debit at creation, balance=%f", got.Balance)
	}

	// Status transitions never touch the balance: the debit already happened.
	orders.SetStatus(order.ID, models.OrderStatusCompleted)
	if got := ledger.FindUser(user.UID); got.Balance != 570 {
		t.Errorf("Completing should not move money, balance=%f", got.Balance)
	}

	orders.SetStatus(order.ID, models.OrderStatusRejected)
	if got := ledger.FindUser(user.UID); got.Balance != 570 {
		t.Errorf("Rejecting should not refund, balance=%f", got.Balance)
	}
	if got := orders.List()[0]; got.Status != models.OrderStatusRejected {
		t.Errorf("Status should follow the last update, got %s", got.Status)
	}
}

func TestWalletOrderInsufficientBalance(t *testing.T) {
	_, ledger, deposits, orders := setupTestServices(t)

	user, _, _ := ledger.LoginOrRegister("00000001", "pw")
	fundUser(t, ledger, deposits, user.UID, 100)

	if _, err := orders.Create(user.UID, walletOrder(430)); err != services.ErrInsufficientBalance {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}

	// The failed order leaves no trace: no debit, no record.
	if got := ledger.FindUser(user.UID); got.Balance != 100 {
		t.Errorf("Failed order should not debit, balance=%f", got.Balance)
	}
	if got := orders.List(); len(got) != 0 {
		t.Errorf("Failed order should not be recorded, got %d orders", len(got))
	}
}

func TestDirectPaymentValidation(t *testing.T) {
	_, ledger, _, orders := setupTestServices(t)

	user, _, _ := ledger.LoginOrRegister("00000001", "pw")

	req := walletOrder(175)
	req.PaymentMethod = models.PaymentBkash

	if _, err := orders.Create(user.UID, req); err != services.ErrMissingTrxID {
		t.Errorf("bKash order without trx ID should fail, got %v", err)
	}

	req.TrxID = "TX77"
	if _, err := orders.Create(user.UID, req); err != services.ErrMissingSenderNumber {
		t.Errorf("bKash order without sender number should fail, got %v", err)
	}

	req.SenderNumber = "01712345678"
	order, err := orders.Create(user.UID, req)
	if err != nil {
		t.Fatalf("Complete bKash order should succeed: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Order should be pending, got %s", order.Status)
	}

	// Direct payments never move the ledger.
	if got := ledger.FindUser(user.UID); got.Balance != 0 {
		t.Errorf("Direct payment should not touch the balance, got %f", got.Balance)
	}

	// Binance needs a trx ID but no sender number.
	binance := walletOrder(880)
	binance.PaymentMethod = models.PaymentBinance
	binance.TrxID = "BIN1"
	if _, err := orders.Create(user.UID, binance); err != nil {
		t.Errorf("Binance order without sender number should succeed, got %v", err)
	}
}

func TestOrderUserNotFound(t *testing.T) {
	_, _, _, orders := setupTestServices(t)

	if _, err := orders.Create("ghost", walletOrder(85)); err != services.ErrUserNotFound {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestOrderListing(t *testing.T) {
	_, ledger, deposits, orders := setupTestServices(t)

	alice, _, _ := ledger.LoginOrRegister("00000001", "pw")
	bob, _, _ := ledger.LoginOrRegister("00000002", "pw")
	fundUser(t, ledger, deposits, alice.UID, 1000)
	fundUser(t, ledger, deposits, bob.UID, 1000)

	first, _ := orders.Create(alice.UID, walletOrder(85))
	second, _ := orders.Create(bob.UID, walletOrder(95))
	third, _ := orders.Create(alice.UID, walletOrder(160))

	all := orders.List()
	if len(all) != 3 {
		t.Fatalf("Expected 3 orders, got %d", len(all))
	}
	if all[0].ID != third.ID || all[2].ID != first.ID {
		t.Error("Order list should be newest first")
	}

	mine := orders.ListForUser(alice.UID)
	if len(mine) != 2 {
		t.Fatalf("Expected 2 orders for alice, got %d", len(mine))
	}
	if mine[0].ID != third.ID {
		t.Error("Per-user list should be newest first")
	}

	recent := orders.Recent(2)
	if len(recent) != 2 || recent[0].ID != third.ID || recent[1].ID != second.ID {
		t.Error("Recent should cap the newest-first list")
	}

	orders.SetStatus("ORD-does-not-exist", models.OrderStatusCompleted)
	if got := orders.List(); len(got) != 3 {
		t.Error("Unknown order id should be a no-op")
	}
}

// Balance conservation: after any sequence of operations the balance equals
// approved deposits minus wallet-paid orders, with direct payments
// contributing nothing.
func TestBalanceConservation(t *testing.T) {
	_, ledger, deposits, orders := setupTestServices(t)

	user, _, _ := ledger.LoginOrRegister("00000001", "pw")

	d1, _ := deposits.Create(user.UID, &models.DepositRequestInput{Amount: 500, Method: models.DepositBkash, TrxID: "T1"})
	d2, _ := deposits.Create(user.UID, &models.DepositRequestInput{Amount: 300, Method: models.DepositNagad, TrxID: "T2"})
	d3, _ := deposits.Create(user.UID, &models.DepositRequestInput{Amount: 900, Method: models.DepositRocket, TrxID: "T3"})

	deposits.SetStatus(d1.ID, models.DepositStatusApproved)
	deposits.SetStatus(d2.ID, models.DepositStatusRejected)
	deposits.SetStatus(d3.ID, models.DepositStatusApproved)
	deposits.SetStatus(d3.ID, models.DepositStatusApproved) // repeat approve

	if _, err := orders.Create(user.UID, walletOrder(430)); err != nil {
		t.Fatalf("Wallet order failed: %v", err)
	}

	direct := walletOrder(850)
	direct.PaymentMethod = models.PaymentNagad
	direct.TrxID = "TX"
	direct.SenderNumber = "018"
	if _, err := orders.Create(user.UID, direct); err != nil {
		t.Fatalf("Direct order failed: %v", err)
	}

	if _, err := orders.Create(user.UID, walletOrder(5000)); err != services.ErrInsufficientBalance {
		t.Fatalf("Oversized wallet order should fail, got %v", err)
	}

	// 500 + 900 approved, 430 wallet-paid: 970 left. The rejected deposit,
	// the repeated approval, the direct order and the failed order all
	// contribute nothing.
	if got := ledger.FindUser(user.UID); got.Balance != 970 {
		t.Errorf("Expected balance 970, got %f", got.Balance)
	}
}
