package models

import "time"

// CheckIn records that a participant attended an event. Re-marking a
// participant overwrites At rather than erroring.
type CheckIn struct {
	Event         string    `gorm:"primaryKey;size:255" json:"event"`
	ParticipantID int       `gorm:"primaryKey" json:"participant_id"`
	At            time.Time `gorm:"not null" json:"at"`
}

// EmailContact maps a participant to the address status emails are sent to.
// It is kept in sync by the profile webhook, not by this service's users.
type EmailContact struct {
	ParticipantID int    `gorm:"primaryKey" json:"participant_id"`
	Address       string `gorm:"size:255;not null" json:"address"`
}
