package services

import "time"

// The persisted state is five independent keyed records: three collections,
// the settings singleton, and per-client session records.
const (
	KeyUsers    = "jio:users"
	KeyOrders   = "jio:orders"
	KeyDeposits = "jio:deposits"
	KeySettings = "jio:settings"

	KeySession   = "jio:session:%s:%s"
	KeyRateLimit = "jio:ratelimit:%s:%s"

	TTLSession = 7 * 24 * time.Hour

	DefaultRateLimitLogin    = 10 // logins per minute per client
	DefaultRateLimitOrders   = 20 // order creations per minute per uid
	DefaultRateLimitDeposits = 20 // deposit declarations per minute per uid
)
