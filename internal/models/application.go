package models

import "time"

// Application statuses. Pending is the only status an application can be
// created with; accepted and rejected are terminal.
const (
	StatusPending    = "pending"
	StatusWaitlisted = "waitlisted"
	StatusRejected   = "rejected"
	StatusAccepted   = "accepted"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusWaitlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// DraftApplication is an in-progress application from a participant. Every
// substantive field is nullable because the draft is filled incrementally
// across sessions. A draft is keyed by (event, participant) and is destroyed
// when it is promoted to an Application.
type DraftApplication struct {
	Event         string `gorm:"primaryKey;size:255" json:"event"`
	ParticipantID int    `gorm:"primaryKey" json:"participant_id"`

	Gender        *string    `gorm:"size:32" json:"gender"`
	RaceEthnicity *string    `gorm:"size:64" json:"race_ethnicity"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Referrer      *string    `gorm:"size:64" json:"referrer"`

	Education          *string `gorm:"size:64" json:"education"`
	GraduationYear     *int    `json:"graduation_year"`
	Major              *string `gorm:"size:255" json:"major"`
	HackathonsAttended *int    `json:"hackathons_attended"`

	VCSURL       *string `gorm:"size:255" json:"vcs_url"`
	PortfolioURL *string `gorm:"size:255" json:"portfolio_url"`
	DevpostURL   *string `gorm:"size:255" json:"devpost_url"`

	AddressLine1       *string `gorm:"size:255" json:"address_line1"`
	AddressLine2       *string `gorm:"size:255" json:"address_line2"`
	AddressLine3       *string `gorm:"size:255" json:"address_line3"`
	Locality           *string `gorm:"size:255" json:"locality"`
	AdministrativeArea *string `gorm:"size:255" json:"administrative_area"`
	PostalCode         *string `gorm:"size:32" json:"postal_code"`
	Country            *string `gorm:"size:2" json:"country"`

	ShareInformation *bool `json:"share_information"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Application is a submitted, organizer-reviewable application. At most one
// row exists per (event, participant); the demographic snapshot is immutable
// once created and only Status, Flagged and Notes are ever updated.
type Application struct {
	Event         string `gorm:"primaryKey;size:255" json:"event"`
	ParticipantID int    `gorm:"primaryKey" json:"participant_id"`

	Gender        string    `gorm:"size:32;not null" json:"gender"`
	RaceEthnicity string    `gorm:"size:64;not null" json:"race_ethnicity"`
	DateOfBirth   time.Time `gorm:"not null" json:"date_of_birth"`
	Referrer      *string   `gorm:"size:64" json:"referrer"`

	Education          string  `gorm:"size:64;not null" json:"education"`
	GraduationYear     int     `gorm:"not null" json:"graduation_year"`
	Major              *string `gorm:"size:255" json:"major"`
	HackathonsAttended int     `gorm:"not null" json:"hackathons_attended"`

	VCSURL       *string `gorm:"size:255" json:"vcs_url"`
	PortfolioURL *string `gorm:"size:255" json:"portfolio_url"`
	DevpostURL   *string `gorm:"size:255" json:"devpost_url"`

	AddressLine1       string  `gorm:"size:255;not null" json:"address_line1"`
	AddressLine2       *string `gorm:"size:255" json:"address_line2"`
	AddressLine3       *string `gorm:"size:255" json:"address_line3"`
	Locality           *string `gorm:"size:255" json:"locality"`
	AdministrativeArea *string `gorm:"size:255" json:"administrative_area"`
	PostalCode         string  `gorm:"size:32;not null" json:"postal_code"`
	Country            string  `gorm:"size:2;not null" json:"country"`

	ShareInformation bool `gorm:"not null" json:"share_information"`

	Status  string `gorm:"size:16;not null;default:pending" json:"status"`
	Flagged bool   `gorm:"not null;default:false" json:"flagged"`
	Notes   string `gorm:"not null;default:''" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
