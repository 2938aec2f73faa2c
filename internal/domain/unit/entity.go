package unit

import "time"

// Unit is an isolated business-unit partition. Features holds the codes of
// app modules enabled for the unit.
type Unit struct {
	ID        string
	Name      string
	Features  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFeature reports whether a feature code is enabled for the unit.
func (u *Unit) HasFeature(code string) bool {
	for _, f := range u.Features {
		if f == code {
			return true
		}
	}
	return false
}
