package lead

// ExtractedData is the raw per-field output of a business-card OCR call. It
// is kept for the lifetime of the conversation so suggestion buttons can
// resolve full values even after a truncated token or a field reset.
type ExtractedData map[string]string

// HasData reports whether the extraction produced anything usable.
func (e ExtractedData) HasData() bool {
	for _, v := range e {
		if v != "" {
			return true
		}
	}
	return false
}

// FullName returns the extracted full name, if any.
func (e ExtractedData) FullName() string { return e["full_name"] }

// Position returns the extracted position, if any.
func (e ExtractedData) Position() string { return e["position"] }

// Phone returns the extracted phone. The backend is inconsistent about the
// key, so both spellings are accepted.
func (e ExtractedData) Phone() string {
	if v := e["phone"]; v != "" {
		return v
	}
	return e["phone_number"]
}

// Email returns the extracted email, if any.
func (e ExtractedData) Email() string { return e["email"] }

// CompanyName returns the extracted company name, if any.
func (e ExtractedData) CompanyName() string { return e["company_name"] }

// ApplyExtraction fills the draft's contact fields from an OCR result.
// Name, position and company are taken as extracted; phone and email are only
// written when they pass their validators, leaving invalid values unset so
// the form prompts for them later. It returns whether all five contact
// fields ended up present and valid.
func ApplyExtraction(d *Draft, ext ExtractedData) bool {
	d.Extracted = ext

	if v := ext.FullName(); v != "" {
		d.FullName = v
	}
	if v := ext.Position(); v != "" {
		d.Position = v
	}
	if v := ext.Phone(); ValidPhone(v) {
		d.PhoneNumber = v
	}
	if v := ext.Email(); ValidEmail(v) {
		d.Email = v
	}
	if v := ext.CompanyName(); v != "" {
		d.CompanyName = v
	}

	return d.FullName != "" &&
		d.Position != "" &&
		d.PhoneNumber != "" &&
		d.Email != "" &&
		d.CompanyName != ""
}

// NextAfterConfirm picks the step to land on after "confirm and continue":
// the sphere-of-activity step when every contact field is filled, otherwise
// the first contact field the extraction failed to provide.
func NextAfterConfirm(d *Draft) Step {
	switch {
	case d.FullName == "":
		return StepFullName
	case d.Position == "":
		return StepPosition
	case d.PhoneNumber == "":
		return StepPhone
	case d.Email == "":
		return StepEmail
	case d.CompanyName == "":
		return StepCompanyName
	default:
		return StepSphere
	}
}
