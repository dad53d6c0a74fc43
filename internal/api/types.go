package api

import (
	"encoding/json"
	"strconv"
)

// Company is a company the backend allows agents to register under.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exhibition is an active exhibition a lead can be attached to.
type Exhibition struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DirectionDTO is a shipment direction as the backend serves it.
type DirectionDTO struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// directionList accepts both a bare JSON array and the paginated
// {"results": [...]} envelope.
type directionList []DirectionDTO

func (l *directionList) UnmarshalJSON(data []byte) error {
	var bare []DirectionDTO
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Results []DirectionDTO `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Results
	return nil
}

// LeadPayload is the lead-creation request body. Shipment directions are
// numeric backend ids; non-numeric ids are dropped before assembly.
type LeadPayload struct {
	TelegramID         string `json:"telegram_id"`
	FullName           string `json:"full_name"`
	Position           string `json:"position"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	CompanyName        string `json:"company_name"`
	SphereOfActivity   string `json:"sphere_of_activity"`
	CompanyType        string `json:"company_type"`
	Cargo              string `json:"cargo"`
	ModeOfTransport    string `json:"mode_of_transport"`
	ShipmentVolume     string `json:"shipment_volume"`
	ShipmentDirections []int  `json:"shipment_directions"`
	Comments           string `json:"comments"`
	MeetingPlace       string `json:"meeting_place"`
	ExhibitionID       int64  `json:"exhibition_id,omitempty"`
}

// fields renders the payload as flat form fields for multipart submission.
// List values repeat the field name once per element.
func (p LeadPayload) fields() [][2]string {
	out := [][2]string{
		{"telegram_id", p.TelegramID},
		{"full_name", p.FullName},
		{"position", p.Position},
		{"phone_number", p.PhoneNumber},
		{"email", p.Email},
		{"company_name", p.CompanyName},
		{"sphere_of_activity", p.SphereOfActivity},
		{"company_type", p.CompanyType},
		{"cargo", p.Cargo},
		{"mode_of_transport", p.ModeOfTransport},
		{"shipment_volume", p.ShipmentVolume},
	}
	for _, id := range p.ShipmentDirections {
		out = append(out, [2]string{"shipment_directions", strconv.Itoa(id)})
	}
	out = append(out,
		[2]string{"comments", p.Comments},
		[2]string{"meeting_place", p.MeetingPlace},
	)
	if p.ExhibitionID > 0 {
		out = append(out, [2]string{"exhibition_id", strconv.FormatInt(p.ExhibitionID, 10)})
	}
	return out
}

// SubmitResult reports the backend's verdict on a lead submission.
// OK is true only for 200 and 201.
type SubmitResult struct {
	Status int
	Detail string
}

// OK reports whether the backend accepted the lead.
func (r SubmitResult) OK() bool {
	return r.Status == 200 || r.Status == 201
}

// errorDetail pulls a human-readable message out of an error body, trying
// the "detail" key first and falling back to "error".
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Err
}
