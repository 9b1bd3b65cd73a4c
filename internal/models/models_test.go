package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
)

func TestNewUser(t *testing.T) {
	user := models.NewUser("7382970242", "secret", models.RoleAdmin)

	if user.ID == "" {
		t.Error("User should have an ID")
	}
	if user.Name != "Player_0242" {
		t.Errorf("Expected name Player_0242, got %s", user.Name)
	}
	if user.Balance != 0 || user.Tokens != 0 || user.StreakDays != 0 {
		t.Error("New user should start with zero balance, tokens and streak")
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("Expected admin role, got %s", user.Role)
	}
	if !strings.HasPrefix(user.ReferralCode, "REF") {
		t.Errorf("Referral code should carry the REF prefix, got %s", user.ReferralCode)
	}
	if user.LastClaimDate != "" {
		t.Error("New user should have no claim date")
	}

	short := models.NewUser("42", "pw", models.RoleUser)
	if short.Name != "Player_42" {
		t.Errorf("Short uid should use the whole uid as suffix, got %s", short.Name)
	}
}

func TestGeneratedIDs(t *testing.T) {
	orderID := models.GenerateOrderID()
	if !strings.HasPrefix(orderID, "ORD") {
		t.Errorf("Order ID should carry the ORD prefix, got %s", orderID)
	}

	depositID := models.GenerateDepositID()
	if !strings.HasPrefix(depositID, "DEP") {
		t.Errorf("Deposit ID should carry the DEP prefix, got %s", depositID)
	}

	if models.GenerateOrderID() == models.GenerateOrderID() {
		t.Error("Consecutive order IDs should differ")
	}
}

func TestOrderRequestValidate(t *testing.T) {
	req := &models.OrderRequest{
		CategoryID:     "ff-id",
		PackageDetails: "115 Diamonds",
		Amount:         85,
		PaymentMethod:  models.PaymentWallet,
		TargetPlayerID: "555",
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Valid order request failed validation: %v", err)
	}

	req.Amount = 0
	if err := req.Validate(); err == nil {
		t.Error("Zero amount should fail validation")
	}

	req.Amount = 85
	req.PaymentMethod = "PayPal"
	if err := req.Validate(); err == nil {
		t.Error("Unknown payment method should fail validation")
	}
}

func TestDepositInputValidate(t *testing.T) {
	input := &models.DepositRequestInput{
		Amount: 500,
		Method: models.DepositBkash,
		TrxID:  "TX123",
	}
	if err := input.Validate(); err != nil {
		t.Errorf("Valid deposit input failed validation: %v", err)
	}

	input.TrxID = ""
	if err := input.Validate(); err == nil {
		t.Error("Missing trx ID should fail validation")
	}

	input.TrxID = "TX123"
	input.Amount = -5
	if err := input.Validate(); err == nil {
		t.Error("Negative amount should fail validation")
	}

	input.Amount = 500
	input.Method = "PayPal"
	if err := input.Validate(); err == nil {
		t.Error("Unknown method should fail validation")
	}
}

func TestDateOnly(t *testing.T) {
	day := models.DateOnly(time.Date(2024, 3, 9, 23, 50, 0, 0, time.Local))
	if day != "2024-03-09" {
		t.Errorf("Expected 2024-03-09, got %s", day)
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := models.DefaultSettings()
	if settings.MarqueeNotice == "" {
		t.Error("Default settings should seed a marquee notice")
	}
	if settings.PaymentNumbers.Bkash == "" || settings.PaymentNumbers.Binance == "" {
		t.Error("Default settings should seed payment numbers")
	}
}

func TestCatalogLookups(t *testing.T) {
	if _, ok := models.FindCategory("ff-id"); !ok {
		t.Error("ff-id category should exist")
	}
	if _, ok := models.FindCategory("nope"); ok {
		t.Error("Unknown category should not resolve")
	}

	packages := models.PackagesForCategory("ff-id")
	if len(packages) == 0 {
		t.Fatal("ff-id should have packages")
	}
	for _, p := range packages {
		if p.CategoryID != "ff-id" {
			t.Errorf("Package %s belongs to %s, not ff-id", p.ID, p.CategoryID)
		}
	}

	statuses := []models.OrderStatus{models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusRejected}
	for _, s := range statuses {
		if !s.Valid() {
			t.Errorf("Status %s should be valid", s)
		}
	}
	if models.OrderStatus("shipped").Valid() {
		t.Error("Unknown order status should be invalid")
	}
}
