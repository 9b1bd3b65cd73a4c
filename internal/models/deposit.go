package models

import "fmt"

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

type DepositMethod string

const (
	DepositBkash   DepositMethod = "bKash"
	DepositNagad   DepositMethod = "Nagad"
	DepositRocket  DepositMethod = "Rocket"
	DepositBinance DepositMethod = "Binance"
)

// DepositRequest is a user's claim that money was sent to one of the
// collection numbers. The balance credit happens only when an admin moves
// it from pending to approved.
type DepositRequest struct {
	ID      string        `json:"id"`
	UserID  string        `json:"userId"`
	UserUID string        `json:"userUid"`
	Amount  float64       `json:"amount"`
	Method  DepositMethod `json:"method"`
	TrxID   string        `json:"trxId"`
	Status  DepositStatus `json:"status"`
	Date    string        `json:"date"`
}

type DepositRequestInput struct {
	Amount float64       `json:"amount"`
	Method DepositMethod `json:"method" binding:"required"`
	TrxID  string        `json:"trx_id"`
}

func (r *DepositRequestInput) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}
	if r.TrxID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	switch r.Method {
	case DepositBkash, DepositNagad, DepositRocket, DepositBinance:
	default:
		return fmt.Errorf("invalid deposit method: %s", r.Method)
	}
	return nil
}

func (s DepositStatus) Valid() bool {
	switch s {
	case DepositStatusPending, DepositStatusApproved, DepositStatusRejected:
		return true
	}
	return false
}
