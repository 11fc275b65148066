package models

// Category labels produced by the categorizer.
const (
	CategoryFood          = "Food"
	CategoryFuel          = "Fuel"
	CategoryShopping      = "Shopping"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryRent          = "Rent"

	// CategoryOther is the categorizer's fallback when no rule matches.
	CategoryOther = "Other"

	// CategoryUncategorized labels records with an empty category field
	// inside category-total aggregation. It is a distinct fallback from
	// CategoryOther and the two must not be unified.
	CategoryUncategorized = "Uncategorized"
)

// File permissions
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0750
)
