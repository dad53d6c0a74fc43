package lead

// Step identifies one slot of the guided lead form. The form walks the
// fourteen ordered steps below; StepOCRConfirm is a transient state that only
// exists between a successful initial business-card scan and the full-name
// step and never appears in the fixed order.
type Step string

const (
	StepBusinessCard Step = "business_card"
	StepFullName     Step = "full_name"
	StepPosition     Step = "position"
	StepPhone        Step = "phone_number"
	StepEmail        Step = "email"
	StepCompanyName  Step = "company_name"
	StepSphere       Step = "sphere_of_activity"
	StepCompanyType  Step = "company_type"
	StepCargo        Step = "cargo"
	StepTransport    Step = "mode_of_transport"
	StepVolume       Step = "shipment_volume"
	StepDirections   Step = "shipment_directions"
	StepComments     Step = "comments"
	StepMeetingPlace Step = "meeting_place"

	// StepOCRConfirm is the transient confirmation state after an initial scan.
	StepOCRConfirm Step = "ocr_confirmation"

	// StepExhibition precedes the form proper: the user picks which exhibition
	// the lead belongs to before the business-card step.
	StepExhibition Step = "exhibition_selection"
)

// Order is the fixed sequence of form steps. Navigation and progress are
// derived from it; transient states are deliberately absent.
var Order = []Step{
	StepBusinessCard,
	StepFullName,
	StepPosition,
	StepPhone,
	StepEmail,
	StepCompanyName,
	StepSphere,
	StepCompanyType,
	StepCargo,
	StepTransport,
	StepVolume,
	StepDirections,
	StepComments,
	StepMeetingPlace,
}

// TotalSteps is the number of slots shown in step counters and progress bars.
// It must equal len(Order); the step tests hold the two together.
const TotalSteps = 14

// Index returns the position of s in the fixed order, or -1 for states
// outside of it.
func Index(s Step) int {
	for i, st := range Order {
		if st == s {
			return i
		}
	}
	return -1
}

// Number returns the 1-based step counter used in prompts ("Step N/14").
// The transient confirmation state reports the business-card slot it follows.
func Number(s Step) int {
	if s == StepOCRConfirm {
		return 1
	}
	if i := Index(s); i >= 0 {
		return i + 1
	}
	return 0
}

// Prev returns the predecessor of s in the form flow and whether one exists.
// The transient confirmation state routes back to the business-card step;
// the first step has no predecessor.
func Prev(s Step) (Step, bool) {
	if s == StepOCRConfirm {
		return StepBusinessCard, true
	}
	i := Index(s)
	if i <= 0 {
		return "", false
	}
	return Order[i-1], true
}

// Next returns the successor of s in the fixed order and whether one exists.
// Branch points (skip logic, OCR confirmation, the final business-card
// prompt) are decided by the handlers on top of this order.
func Next(s Step) (Step, bool) {
	i := Index(s)
	if i < 0 || i+1 >= len(Order) {
		return "", false
	}
	return Order[i+1], true
}
