package models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is an account identified by the player UID used at login.
// Balance only moves through deposit approval and wallet-paid orders.
type User struct {
	ID           string   `json:"id"`
	UID          string   `json:"uid"`
	Name         string   `json:"name"`
	Password     string   `json:"password,omitempty"`
	Balance      float64  `json:"balance"`
	Tokens       int64    `json:"tokens"`
	Role         UserRole `json:"role"`
	ReferralCode string   `json:"referralCode"`
	StreakDays   int64    `json:"streakDays"`
	// LastClaimDate is a date-only string (2006-01-02), empty until the first claim.
	LastClaimDate string `json:"lastClaimDate,omitempty"`
}

// Public returns a copy safe to hand to API clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserSession struct {
	UID          string `json:"uid"`
	SessionID    string `json:"session_id"`
	CreatedAt    int64  `json:"created_at"`
	LastAccessed int64  `json:"last_accessed"`
}
