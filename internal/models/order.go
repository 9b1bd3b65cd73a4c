package models

import "fmt"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRejected  OrderStatus = "rejected"
)

type PaymentMethod string

const (
	PaymentWallet  PaymentMethod = "Wallet"
	PaymentBkash   PaymentMethod = "bKash"
	PaymentNagad   PaymentMethod = "Nagad"
	PaymentBinance PaymentMethod = "Binance"
)

// Order is a top-up purchase request. PackageDetails is a display snapshot,
// not a catalog reference, so later catalog edits don't rewrite history.
type Order struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	UserUID        string        `json:"userUid"`
	CategoryID     string        `json:"categoryId"`
	PackageDetails string        `json:"packageDetails"`
	Amount         float64       `json:"amount"`
	BasePrice      float64       `json:"basePrice"`
	Tax            float64       `json:"tax"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	TrxID          string        `json:"trxId,omitempty"`
	SenderNumber   string        `json:"senderNumber,omitempty"`
	Status         OrderStatus   `json:"status"`
	Date           string        `json:"date"`
	TargetPlayerID string        `json:"targetPlayerId"`
	TargetName     string        `json:"targetPlayerName,omitempty"`
}

type OrderRequest struct {
	CategoryID     string        `json:"category_id" binding:"required"`
	PackageDetails string        `json:"package_details" binding:"required"`
	BasePrice      float64       `json:"base_price"`
	Tax            float64       `json:"tax"`
	Amount         float64       `json:"amount"`
	PaymentMethod  PaymentMethod `json:"payment_method" binding:"required"`
	TrxID          string        `json:"trx_id"`
	SenderNumber   string        `json:"sender_number"`
	TargetPlayerID string        `json:"target_player_id" binding:"required"`
	TargetName     string        `json:"target_player_name"`
}

func (r *OrderRequest) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("order amount must be positive")
	}
	switch r.PaymentMethod {
	case PaymentWallet, PaymentBkash, PaymentNagad, PaymentBinance:
	default:
		return fmt.Errorf("invalid payment method: %s", r.PaymentMethod)
	}
	return nil
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusRejected:
		return true
	}
	return false
}
