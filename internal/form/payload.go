package form

import (
	"strconv"

	"github.com/izzat1998/exhibition-bot/internal/api"
	"github.com/izzat1998/exhibition-bot/internal/lead"
)

// BuildPayload assembles the lead-creation request from a finished draft.
// Direction ids arrive from the backend as strings; anything non-numeric is
// dropped rather than failing the whole submission.
func BuildPayload(telegramID int64, d *lead.Draft) api.LeadPayload {
	var directions []int
	for _, id := range d.Directions.IDs() {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		directions = append(directions, n)
	}

	var exhibitionID int64
	if d.ExhibitionID != "" {
		exhibitionID, _ = strconv.ParseInt(d.ExhibitionID, 10, 64)
	}

	return api.LeadPayload{
		TelegramID:         strconv.FormatInt(telegramID, 10),
		FullName:           d.FullName,
		Position:           d.Position,
		PhoneNumber:        d.PhoneNumber,
		Email:              d.Email,
		CompanyName:        d.CompanyName,
		SphereOfActivity:   d.SphereOfActivity,
		CompanyType:        d.CompanyType,
		Cargo:              d.Cargo,
		ModeOfTransport:    d.ModeOfTransport,
		ShipmentVolume:     d.ShipmentVolume,
		ShipmentDirections: directions,
		Comments:           d.Comments,
		MeetingPlace:       d.MeetingPlace,
		ExhibitionID:       exhibitionID,
	}
}
