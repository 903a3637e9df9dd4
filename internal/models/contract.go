package models

import "time"

type Contract struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Details    *string   `json:"details,omitempty"`
}

// Overlaps reports whether both contracts are in force on at least one common day.
func (c *Contract) Overlaps(start, end time.Time) bool {
	return !c.EndDate.Before(start) && !end.Before(c.StartDate)
}
