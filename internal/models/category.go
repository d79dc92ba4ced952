// Package models provides the data structures used throughout the application.
package models

// Expense categories. The set is fixed at process start and shared by the
// classifiers and every consumer that renders a category selection.
const (
	CategoryFoodBeverage   = "Food & Beverage"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryPersonalCare   = "Personal Care"
	CategoryGiftsDonations = "Gifts & Donations"
	CategoryOther          = "Other"
)

// Categories is the ordered list of all expense categories. The order is
// significant: the trainable classifier maps categories to dense integer ids
// by position in this slice, so it must never be reordered at runtime.
var Categories = []string{
	CategoryFoodBeverage,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHousing,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryPersonalCare,
	CategoryGiftsDonations,
	CategoryOther,
}

// IsValidCategory reports whether name is one of the fixed expense categories.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
