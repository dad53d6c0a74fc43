package lead

import (
	"fmt"
	"html"
	"strings"
)

// summaryRow couples a draft field with its summary label and, for
// choice-valued fields, the table that maps codes to labels.
type summaryRow struct {
	label   string
	value   func(*Draft) string
	choices []Choice
}

var summaryRows = []summaryRow{
	{label: "📝 <b>Full Name:</b>", value: func(d *Draft) string { return d.FullName }},
	{label: "🏢 <b>Position in the company:</b>", value: func(d *Draft) string { return d.Position }},
	{label: "📱 <b>Phone number:</b>", value: func(d *Draft) string { return d.PhoneNumber }},
	{label: "📧 <b>Email address:</b>", value: func(d *Draft) string { return d.Email }},
	{label: "🏭 <b>Company name:</b>", value: func(d *Draft) string { return d.CompanyName }},
	{label: "🔍 <b>Sphere of activity:</b>", value: func(d *Draft) string { return d.SphereOfActivity }},
	{label: "📊 <b>Company type:</b>", value: func(d *Draft) string { return d.CompanyType }, choices: CompanyTypeChoices},
	{label: "📦 <b>Cargo:</b>", value: func(d *Draft) string { return d.Cargo }},
	{label: "🚢 <b>Preferred mode of transport:</b>", value: func(d *Draft) string { return d.ModeOfTransport }, choices: TransportChoices},
	{label: "📏 <b>Monthly shipment volume:</b>", value: func(d *Draft) string { return d.ShipmentVolume }},
	{label: "💬 <b>Comments:</b>", value: func(d *Draft) string { return d.Comments }},
	{label: "🤝 <b>Meeting place:</b>", value: func(d *Draft) string { return d.MeetingPlace }, choices: MeetingPlaceChoices},
}

// Summary renders the running HTML snapshot of everything collected so far:
// one labeled line per filled field, then a percentage and a ten-segment
// progress bar over the fixed fourteen slots. It is a pure function of the
// draft and is re-rendered after every mutation.
func Summary(d *Draft) string {
	var b strings.Builder
	b.WriteString("📋 <b>Lead Information Summary</b>\n\n")

	filled := 0
	for _, row := range summaryRows {
		v := row.value(d)
		if v == "" {
			continue
		}
		display := v
		if row.choices != nil {
			display = ChoiceLabel(row.choices, v)
		}
		fmt.Fprintf(&b, "%s %s\n", row.label, html.EscapeString(display))
		filled++
	}

	if names := d.Directions.Names(d.Available); len(names) > 0 {
		fmt.Fprintf(&b, "🗺️ <b>Directions:</b> %s\n", html.EscapeString(strings.Join(names, ", ")))
		filled++
	}

	if d.BusinessCardPhoto != "" {
		b.WriteString("📸 <b>Business Card:</b> Uploaded\n")
		filled++
	}

	pct := filled * 100 / TotalSteps
	segments := pct / 10
	fmt.Fprintf(&b, "\n\n<b>Progress:</b> [%s%s] %d%%\n",
		strings.Repeat("█", segments),
		strings.Repeat("░", 10-segments),
		pct,
	)
	fmt.Fprintf(&b, "<b>Completed:</b> %d/%d fields", filled, TotalSteps)

	return b.String()
}

// FilledCount returns the number of filled summary slots, matching what
// Summary displays.
func FilledCount(d *Draft) int {
	filled := 0
	for _, row := range summaryRows {
		if row.value(d) != "" {
			filled++
		}
	}
	if len(d.Directions.Names(d.Available)) > 0 {
		filled++
	}
	if d.BusinessCardPhoto != "" {
		filled++
	}
	return filled
}
