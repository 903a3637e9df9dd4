package models

// Concept is a recurring or one-off financial item (rent, taxes, ...).
type Concept struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	IsOrdinary  bool    `json:"is_ordinary"`
	Periodicity *int32  `json:"periodicity,omitempty"` // months
	Description *string `json:"description,omitempty"`
}
