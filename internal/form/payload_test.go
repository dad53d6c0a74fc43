package form

import (
	"reflect"
	"testing"

	"github.com/izzat1998/exhibition-bot/internal/lead"
)

func sampleDraft() *lead.Draft {
	d := lead.NewDraft()
	d.FullName = "Jamshid Karimov"
	d.Position = "Logistics Manager"
	d.PhoneNumber = "+998 90 123 45 67"
	d.Email = "jamshid@example.com"
	d.CompanyName = "Silk Road Logistics"
	d.SphereOfActivity = "Freight forwarding"
	d.CompanyType = "forwarder"
	d.Cargo = "Textiles"
	d.ModeOfTransport = "containers"
	d.ShipmentVolume = "40 TEU"
	d.Comments = "Met at the main hall"
	d.MeetingPlace = "our_booth"
	return d
}

func TestBuildPayloadFields(t *testing.T) {
	d := sampleDraft()
	d.Directions.Toggle("3")
	d.Directions.Toggle("7")

	p := BuildPayload(42, d)

	if p.TelegramID != "42" {
		t.Fatalf("TelegramID = %q, want \"42\"", p.TelegramID)
	}
	if p.FullName != d.FullName || p.CompanyType != "forwarder" || p.MeetingPlace != "our_booth" {
		t.Errorf("payload fields not copied: %+v", p)
	}
	if !reflect.DeepEqual(p.ShipmentDirections, []int{3, 7}) {
		t.Errorf("ShipmentDirections = %v, want [3 7]", p.ShipmentDirections)
	}
}

func TestBuildPayloadDropsNonNumericDirections(t *testing.T) {
	d := sampleDraft()
	d.Directions.Toggle("12")
	d.Directions.Toggle("west-route")
	d.Directions.Toggle("5")

	p := BuildPayload(1, d)

	if !reflect.DeepEqual(p.ShipmentDirections, []int{12, 5}) {
		t.Fatalf("ShipmentDirections = %v, want [12 5]", p.ShipmentDirections)
	}
}

func TestBuildPayloadExhibition(t *testing.T) {
	d := sampleDraft()

	if got := BuildPayload(1, d).ExhibitionID; got != 0 {
		t.Fatalf("ExhibitionID = %d, want 0 when unset", got)
	}

	d.ExhibitionID = "9"
	if got := BuildPayload(1, d).ExhibitionID; got != 9 {
		t.Fatalf("ExhibitionID = %d, want 9", got)
	}

	d.ExhibitionID = "not-a-number"
	if got := BuildPayload(1, d).ExhibitionID; got != 0 {
		t.Fatalf("ExhibitionID = %d, want 0 for unparsable id", got)
	}
}
