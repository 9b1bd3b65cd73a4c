package models

type CategoryGroup string

const (
	GroupFreeFire     CategoryGroup = "FreeFire"
	GroupPUBG         CategoryGroup = "PUBG"
	GroupSubscription CategoryGroup = "Subscription"
)

type Category struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Group CategoryGroup `json:"group"`
	Image string        `json:"image"`
}

type Package struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"categoryId"`
	Diamonds   string  `json:"diamonds"`
	PriceBDT   float64 `json:"priceBDT"`
	Bonus      string  `json:"bonus,omitempty"`
	Tag        string  `json:"tag,omitempty"`
}

// The catalog is built in; orders snapshot package details as display strings
// so these entries can be edited without rewriting order history.
var Categories = []Category{
	{ID: "ff-id", Title: "Free Fire UID", Group: GroupFreeFire, Image: "https://images.unsplash.com/photo-1580234797602-22c37b2a6230?q=80&w=800&auto=format&fit=crop"},
	{ID: "ff-weekly", Title: "Weekly/Monthly", Group: GroupFreeFire, Image: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=800&auto=format&fit=crop"},
	{ID: "pubg-uc", Title: "PUBG UC", Group: GroupPUBG, Image: "https://images.unsplash.com/photo-1593305841991-05c297ba4575?q=80&w=800&auto=format&fit=crop"},
	{ID: "netflix-sub", Title: "Netflix Premium", Group: GroupSubscription, Image: "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?q=80&w=800&auto=format&fit=crop"},
}

var Packages = []Package{
	{ID: "ff1", CategoryID: "ff-id", Diamonds: "115 Diamonds", PriceBDT: 85, Tag: "POPULAR"},
	{ID: "ff2", CategoryID: "ff-id", Diamonds: "240 Diamonds", PriceBDT: 175},
	{ID: "ff3", CategoryID: "ff-id", Diamonds: "610 Diamonds", PriceBDT: 430, Tag: "HOT"},
	{ID: "ff4", CategoryID: "ff-id", Diamonds: "1240 Diamonds", PriceBDT: 850},
	{ID: "ff5", CategoryID: "ff-id", Diamonds: "2530 Diamonds", PriceBDT: 1700},

	{ID: "fw1", CategoryID: "ff-weekly", Diamonds: "Weekly Membership", PriceBDT: 160, Tag: "HOT"},
	{ID: "fm1", CategoryID: "ff-weekly", Diamonds: "Monthly Membership", PriceBDT: 750},

	{ID: "p1", CategoryID: "pubg-uc", Diamonds: "60 UC", PriceBDT: 95},
	{ID: "p2", CategoryID: "pubg-uc", Diamonds: "325 UC", PriceBDT: 450, Tag: "POPULAR"},
	{ID: "p3", CategoryID: "pubg-uc", Diamonds: "660 UC", PriceBDT: 880},
}

func PackagesForCategory(categoryID string) []Package {
	var out []Package
	for _, p := range Packages {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func FindCategory(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
