package database

import (
	"time"
)

// Location is the place an owner picked for sunrise, sunset and moon data.
type Location struct {
	ID        int64      `json:"id"`
	Owner     string     `json:"-"`
	Label     string     `json:"label"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
