package lead

// Choice is a machine value paired with the label shown to the user.
type Choice struct {
	Value string
	Label string
}

// CompanyTypeChoices is the fixed company-type menu.
var CompanyTypeChoices = []Choice{
	{Value: "importer_exporter", Label: "Importer/Exporter"},
	{Value: "forwarder", Label: "Forwarder"},
	{Value: "agent", Label: "Agent"},
}

// TransportChoices is the fixed mode-of-transport menu.
var TransportChoices = []Choice{
	{Value: "wagons", Label: "Wagons"},
	{Value: "containers", Label: "Containers"},
	{Value: "lcl", Label: "LCL"},
	{Value: "air", Label: "Air"},
	{Value: "auto", Label: "Auto"},
}

// MeetingPlaceChoices is the fixed meeting-place menu.
var MeetingPlaceChoices = []Choice{
	{Value: "our_booth", Label: "Our Booth"},
	{Value: "partner_booth", Label: "Partner Booth"},
}

// ChoiceLabel resolves a stored value to its display label, falling back to
// the raw value for anything unknown.
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// Draft is the in-progress lead record of a single conversation. Fields are
// only ever written after their validator accepted the input; an empty string
// means the slot has not been filled yet.
type Draft struct {
	ExhibitionID string

	FullName    string
	Position    string
	PhoneNumber string
	Email       string
	CompanyName string

	SphereOfActivity string
	CompanyType      string

	Cargo           string
	ModeOfTransport string
	ShipmentVolume  string

	Directions SelectionSet
	Available  []Direction

	Comments     string
	MeetingPlace string

	// BusinessCardPhoto holds the messaging-platform file reference of the
	// uploaded card; BusinessCardSkipped records an explicit skip so the
	// meeting-place step knows not to ask again.
	BusinessCardPhoto   string
	BusinessCardSkipped bool

	// Extracted is the OCR result cache. It outlives a step-by-step reset of
	// the auto-filled fields so later steps can still offer suggestions.
	Extracted ExtractedData
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Empty reports whether no form field has been collected yet. The OCR cache,
// the exhibition choice and the card photo reference do not count: a user who
// uploaded a card that failed OCR and came back is still at the very start,
// and a skip or re-upload there must open the form, not the review screen.
func (d *Draft) Empty() bool {
	return d.FullName == "" &&
		d.Position == "" &&
		d.PhoneNumber == "" &&
		d.Email == "" &&
		d.CompanyName == "" &&
		d.SphereOfActivity == "" &&
		d.CompanyType == "" &&
		d.Cargo == "" &&
		d.ModeOfTransport == "" &&
		d.ShipmentVolume == "" &&
		d.Directions.Len() == 0 &&
		d.Comments == "" &&
		d.MeetingPlace == ""
}

// CardResolved reports whether the business-card slot no longer needs a
// prompt: either a photo was uploaded or the user explicitly skipped it.
func (d *Draft) CardResolved() bool {
	return d.BusinessCardPhoto != "" || d.BusinessCardSkipped
}

// ResetAutoFilled clears the five contact fields that OCR may have written
// while keeping the extraction cache, so the user can re-enter them step by
// step with one-tap suggestions still available.
func (d *Draft) ResetAutoFilled() {
	d.FullName = ""
	d.Position = ""
	d.PhoneNumber = ""
	d.Email = ""
	d.CompanyName = ""
}
