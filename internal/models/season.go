package models

import (
	"gorm.io/gorm"
)

const (
	SeasonActive = "active"
	SeasonClosed = "closed"
)

// Season is an enrollment window of the camp calendar. Only active seasons
// are offered on the public registration form.
type Season struct {
	gorm.Model
	Name   string `json:"name" gorm:"uniqueIndex"`
	Status string `json:"status" gorm:"default:active"`
}

// Period is a date slot inside a season. Dates are stored as ISO date
// strings (YYYY-MM-DD), matching the form payloads.
type Period struct {
	gorm.Model
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	SeasonID  uint   `json:"season_id"`
	Season    Season `json:"-" gorm:"foreignKey:SeasonID"`
}
