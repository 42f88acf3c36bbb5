package model

// Guest is an attendee record. Guests are stored alongside the plan,
// keyed by plan id, but are not part of the plan document itself.
type Guest struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Occupancy is the number of people this guest brings (at least 1).
	Occupancy int `json:"occupancy"`

	// Group is a free-form label like "Family" or "Work Friends".
	// Stored as "tag" for compatibility with the guest table shape.
	Group string `json:"tag"`

	// Selected controls whether the guest counts toward head counts.
	Selected bool `json:"selected"`
}
