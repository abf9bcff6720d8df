package application

import (
	"time"

	"github.com/hackpass/portal-api/internal/models"
	"github.com/hackpass/portal-api/pkg/constants"
	apperrors "github.com/hackpass/portal-api/pkg/errors"
	"github.com/hackpass/portal-api/pkg/patch"
)

// SaveDraftRequest is a field-level patch against a draft. Each field is
// tri-state: omit it to keep the stored value, send null to clear it, or
// send a value to overwrite it. A naive overwrite-everything save would wipe
// fields written by another session of the same participant.
type SaveDraftRequest struct {
	Gender        patch.Field[string]    `json:"gender"`
	RaceEthnicity patch.Field[string]    `json:"race_ethnicity"`
	DateOfBirth   patch.Field[time.Time] `json:"date_of_birth"`
	Referrer      patch.Field[string]    `json:"referrer"`

	Education          patch.Field[string] `json:"education"`
	GraduationYear     patch.Field[int]    `json:"graduation_year"`
	Major              patch.Field[string] `json:"major"`
	HackathonsAttended patch.Field[int]    `json:"hackathons_attended"`

	VCSURL       patch.Field[string] `json:"vcs_url"`
	PortfolioURL patch.Field[string] `json:"portfolio_url"`
	DevpostURL   patch.Field[string] `json:"devpost_url"`

	AddressLine1       patch.Field[string] `json:"address_line1"`
	AddressLine2       patch.Field[string] `json:"address_line2"`
	AddressLine3       patch.Field[string] `json:"address_line3"`
	Locality           patch.Field[string] `json:"locality"`
	AdministrativeArea patch.Field[string] `json:"administrative_area"`
	PostalCode         patch.Field[string] `json:"postal_code"`
	Country            patch.Field[string] `json:"country"`

	ShareInformation patch.Field[bool] `json:"share_information"`
}

// ApplyTo merges the patch into the draft.
func (req *SaveDraftRequest) ApplyTo(draft *models.DraftApplication) {
	req.Gender.Apply(&draft.Gender)
	req.RaceEthnicity.Apply(&draft.RaceEthnicity)
	req.DateOfBirth.Apply(&draft.DateOfBirth)
	req.Referrer.Apply(&draft.Referrer)
	req.Education.Apply(&draft.Education)
	req.GraduationYear.Apply(&draft.GraduationYear)
	req.Major.Apply(&draft.Major)
	req.HackathonsAttended.Apply(&draft.HackathonsAttended)
	req.VCSURL.Apply(&draft.VCSURL)
	req.PortfolioURL.Apply(&draft.PortfolioURL)
	req.DevpostURL.Apply(&draft.DevpostURL)
	req.AddressLine1.Apply(&draft.AddressLine1)
	req.AddressLine2.Apply(&draft.AddressLine2)
	req.AddressLine3.Apply(&draft.AddressLine3)
	req.Locality.Apply(&draft.Locality)
	req.AdministrativeArea.Apply(&draft.AdministrativeArea)
	req.PostalCode.Apply(&draft.PostalCode)
	req.Country.Apply(&draft.Country)
	req.ShareInformation.Apply(&draft.ShareInformation)
}

// UpdateApplicationRequest carries the organizer-mutable fields. Nil means
// leave unchanged; a request with neither field is a no-op.
type UpdateApplicationRequest struct {
	Flagged *bool   `json:"flagged" binding:"omitempty"`
	Notes   *string `json:"notes" binding:"omitempty,max=10000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending waitlisted rejected accepted"`
}

type DraftResponse struct {
	Event         string `json:"event"`
	ParticipantID int    `json:"participant_id"`

	Gender        *string    `json:"gender"`
	RaceEthnicity *string    `json:"race_ethnicity"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Referrer      *string    `json:"referrer"`

	Education          *string `json:"education"`
	GraduationYear     *int    `json:"graduation_year"`
	Major              *string `json:"major"`
	HackathonsAttended *int    `json:"hackathons_attended"`

	VCSURL       *string `json:"vcs_url"`
	PortfolioURL *string `json:"portfolio_url"`
	DevpostURL   *string `json:"devpost_url"`

	AddressLine1       *string `json:"address_line1"`
	AddressLine2       *string `json:"address_line2"`
	AddressLine3       *string `json:"address_line3"`
	Locality           *string `json:"locality"`
	AdministrativeArea *string `json:"administrative_area"`
	PostalCode         *string `json:"postal_code"`
	Country            *string `json:"country"`

	ShareInformation *bool `json:"share_information"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ApplicationResponse struct {
	Event         string `json:"event"`
	ParticipantID int    `json:"participant_id"`

	Gender        string    `json:"gender"`
	RaceEthnicity string    `json:"race_ethnicity"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Referrer      *string   `json:"referrer"`

	Education          string  `json:"education"`
	GraduationYear     int     `json:"graduation_year"`
	Major              *string `json:"major"`
	HackathonsAttended int     `json:"hackathons_attended"`

	VCSURL       *string `json:"vcs_url"`
	PortfolioURL *string `json:"portfolio_url"`
	DevpostURL   *string `json:"devpost_url"`

	AddressLine1       string  `json:"address_line1"`
	AddressLine2       *string `json:"address_line2"`
	AddressLine3       *string `json:"address_line3"`
	Locality           *string `json:"locality"`
	AdministrativeArea *string `json:"administrative_area"`
	PostalCode         string  `json:"postal_code"`
	Country            string  `json:"country"`

	ShareInformation bool `json:"share_information"`

	Status  string `json:"status"`
	Flagged bool   `json:"flagged"`
	Notes   string `json:"notes"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ========================================
// Mappers
// ========================================

func ToDraftResponse(draft *models.DraftApplication) DraftResponse {
	if draft == nil {
		return DraftResponse{}
	}
	return DraftResponse{
		Event:              draft.Event,
		ParticipantID:      draft.ParticipantID,
		Gender:             draft.Gender,
		RaceEthnicity:      draft.RaceEthnicity,
		DateOfBirth:        draft.DateOfBirth,
		Referrer:           draft.Referrer,
		Education:          draft.Education,
		GraduationYear:     draft.GraduationYear,
		Major:              draft.Major,
		HackathonsAttended: draft.HackathonsAttended,
		VCSURL:             draft.VCSURL,
		PortfolioURL:       draft.PortfolioURL,
		DevpostURL:         draft.DevpostURL,
		AddressLine1:       draft.AddressLine1,
		AddressLine2:       draft.AddressLine2,
		AddressLine3:       draft.AddressLine3,
		Locality:           draft.Locality,
		AdministrativeArea: draft.AdministrativeArea,
		PostalCode:         draft.PostalCode,
		Country:            draft.Country,
		ShareInformation:   draft.ShareInformation,
		CreatedAt:          draft.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:          draft.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func ToApplicationResponse(app *models.Application) ApplicationResponse {
	if app == nil {
		return ApplicationResponse{}
	}
	return ApplicationResponse{
		Event:              app.Event,
		ParticipantID:      app.ParticipantID,
		Gender:             app.Gender,
		RaceEthnicity:      app.RaceEthnicity,
		DateOfBirth:        app.DateOfBirth,
		Referrer:           app.Referrer,
		Education:          app.Education,
		GraduationYear:     app.GraduationYear,
		Major:              app.Major,
		HackathonsAttended: app.HackathonsAttended,
		VCSURL:             app.VCSURL,
		PortfolioURL:       app.PortfolioURL,
		DevpostURL:         app.DevpostURL,
		AddressLine1:       app.AddressLine1,
		AddressLine2:       app.AddressLine2,
		AddressLine3:       app.AddressLine3,
		Locality:           app.Locality,
		AdministrativeArea: app.AdministrativeArea,
		PostalCode:         app.PostalCode,
		Country:            app.Country,
		ShareInformation:   app.ShareInformation,
		Status:             app.Status,
		Flagged:            app.Flagged,
		Notes:              app.Notes,
		CreatedAt:          app.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:          app.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

// requiredDraftFields pairs each field required for submission with its
// accessor, in the order completeness errors report them.
var requiredDraftFields = []struct {
	name    string
	present func(*models.DraftApplication) bool
}{
	{"gender", func(d *models.DraftApplication) bool { return d.Gender != nil }},
	{"race_ethnicity", func(d *models.DraftApplication) bool { return d.RaceEthnicity != nil }},
	{"date_of_birth", func(d *models.DraftApplication) bool { return d.DateOfBirth != nil }},
	{"education", func(d *models.DraftApplication) bool { return d.Education != nil }},
	{"graduation_year", func(d *models.DraftApplication) bool { return d.GraduationYear != nil }},
	{"hackathons_attended", func(d *models.DraftApplication) bool { return d.HackathonsAttended != nil }},
	{"address_line1", func(d *models.DraftApplication) bool { return d.AddressLine1 != nil }},
	{"postal_code", func(d *models.DraftApplication) bool { return d.PostalCode != nil }},
	{"country", func(d *models.DraftApplication) bool { return d.Country != nil }},
	{"share_information", func(d *models.DraftApplication) bool { return d.ShareInformation != nil }},
}

// applicationFromDraft copies a complete draft into a pending application.
// It returns an Incomplete user error naming the first missing field.
func applicationFromDraft(draft *models.DraftApplication) (*models.Application, *apperrors.UserError) {
	for _, field := range requiredDraftFields {
		if !field.present(draft) {
			return nil, NewIncompleteError(field.name)
		}
	}

	return &models.Application{
		Event:              draft.Event,
		ParticipantID:      draft.ParticipantID,
		Gender:             *draft.Gender,
		RaceEthnicity:      *draft.RaceEthnicity,
		DateOfBirth:        *draft.DateOfBirth,
		Referrer:           draft.Referrer,
		Education:          *draft.Education,
		GraduationYear:     *draft.GraduationYear,
		Major:              draft.Major,
		HackathonsAttended: *draft.HackathonsAttended,
		VCSURL:             draft.VCSURL,
		PortfolioURL:       draft.PortfolioURL,
		DevpostURL:         draft.DevpostURL,
		AddressLine1:       *draft.AddressLine1,
		AddressLine2:       draft.AddressLine2,
		AddressLine3:       draft.AddressLine3,
		Locality:           draft.Locality,
		AdministrativeArea: draft.AdministrativeArea,
		PostalCode:         *draft.PostalCode,
		Country:            *draft.Country,
		ShareInformation:   *draft.ShareInformation,
		Status:             models.StatusPending,
	}, nil
}
