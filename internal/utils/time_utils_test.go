package utils

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   civil.Date
		n    int
		want civil.Date
	}{
		{"same day next month", civil.Date{Year: 2026, Month: time.October, Day: 19}, 1, civil.Date{Year: 2026, Month: time.November, Day: 19}},
		{"clamps to end of february", civil.Date{Year: 2026, Month: time.January, Day: 31}, 1, civil.Date{Year: 2026, Month: time.February, Day: 28}},
		{"leap year february", civil.Date{Year: 2028, Month: time.January, Day: 31}, 1, civil.Date{Year: 2028, Month: time.February, Day: 29}},
		{"crosses year", civil.Date{Year: 2026, Month: time.November, Day: 30}, 3, civil.Date{Year: 2027, Month: time.February, Day: 28}},
		{"twelve months", civil.Date{Year: 2026, Month: time.March, Day: 15}, 12, civil.Date{Year: 2027, Month: time.March, Day: 15}},
		{"negative", civil.Date{Year: 2026, Month: time.March, Day: 31}, -1, civil.Date{Year: 2026, Month: time.February, Day: 28}},
		{"negative crosses year", civil.Date{Year: 2026, Month: time.January, Day: 10}, -2, civil.Date{Year: 2025, Month: time.November, Day: 10}},
		{"zero", civil.Date{Year: 2026, Month: time.May, Day: 5}, 0, civil.Date{Year: 2026, Month: time.May, Day: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonthsClamped(tt.in, tt.n))
		})
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	ts := time.Date(2026, time.October, 19, 23, 30, 0, 0, loc)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 19}, Today(ts))
}
