package models

// PaymentNumbers maps each collection method to the account shown on the
// checkout and deposit forms.
type PaymentNumbers struct {
	Bkash   string `json:"bkash"`
	Nagad   string `json:"nagad"`
	Rocket  string `json:"rocket"`
	Binance string `json:"binance"`
}

// AppSettings is the singleton site configuration, replaced whole on save.
type AppSettings struct {
	MarqueeNotice  string         `json:"marqueeNotice"`
	PaymentNumbers PaymentNumbers `json:"paymentNumbers"`
}

const initialMarquee = "Welcome to JIO Store! 💎 Instant Top-Up available 24/7. Use code WELCOME for a bonus on your first deposit! 🚀"

// DefaultSettings seeds the settings singleton until an admin saves one.
func DefaultSettings() AppSettings {
	return AppSettings{
		MarqueeNotice: initialMarquee,
		PaymentNumbers: PaymentNumbers{
			Bkash:   "01700000000",
			Nagad:   "01800000000",
			Rocket:  "01900000000",
			Binance: "1210169527",
		},
	}
}
