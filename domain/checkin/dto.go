package checkin

import (
	"github.com/hackpass/portal-api/internal/models"
	"github.com/hackpass/portal-api/pkg/constants"
)

// CheckInRequest optionally names another participant to check in. When
// omitted, the caller checks themself in.
type CheckInRequest struct {
	ID *int `json:"id" binding:"omitempty,gt=0"`
}

type CheckInResponse struct {
	Event         string `json:"event"`
	ParticipantID int    `json:"participant_id"`
	At            string `json:"at"`
}

func ToCheckInResponse(checkIn *models.CheckIn) CheckInResponse {
	if checkIn == nil {
		return CheckInResponse{}
	}
	return CheckInResponse{
		Event:         checkIn.Event,
		ParticipantID: checkIn.ParticipantID,
		At:            checkIn.At.Format(constants.RFC3339DateTimeFormat),
	}
}
