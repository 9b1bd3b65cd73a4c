package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID prefixes follow the storefront convention: a millisecond timestamp keeps
// ids sortable by creation time, the uuid suffix keeps same-millisecond
// creations distinct.

func GenerateOrderID() string {
	return fmt.Sprintf("ORD%d%04d", time.Now().UnixMilli(), uuid.New().ID()%10000)
}

func GenerateDepositID() string {
	return fmt.Sprintf("DEP%d%04d", time.Now().UnixMilli(), uuid.New().ID()%10000)
}

func GenerateUserID() string {
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}

func GenerateReferralCode() string {
	return fmt.Sprintf("REF%04d", uuid.New().ID()%10000)
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// NewUser builds a fresh account for a never-seen uid. The display name is
// derived from the uid suffix, like the storefront did.
func NewUser(uid, password string, role UserRole) *User {
	suffix := uid
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return &User{
		ID:           GenerateUserID(),
		UID:          uid,
		Name:         fmt.Sprintf("Player_%s", suffix),
		Password:     password,
		Balance:      0,
		Tokens:       0,
		Role:         role,
		ReferralCode: GenerateReferralCode(),
		StreakDays:   0,
	}
}

func FormatBDT(amount float64) string {
	return fmt.Sprintf("৳%.2f", amount)
}

// DateOnly formats a time at calendar-day granularity in the local zone,
// matching the daily-claim bookkeeping.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
