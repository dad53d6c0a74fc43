package lead

import "testing"

func TestOrderHasFourteenSteps(t *testing.T) {
	if len(Order) != 14 {
		t.Fatalf("expected 14 ordered steps, got %d", len(Order))
	}
	if len(Order) != TotalSteps {
		t.Fatalf("TotalSteps = %d, expected len(Order) = %d", TotalSteps, len(Order))
	}
	if Order[0] != StepBusinessCard {
		t.Fatalf("first step = %s, expected %s", Order[0], StepBusinessCard)
	}
	if Order[len(Order)-1] != StepMeetingPlace {
		t.Fatalf("last step = %s, expected %s", Order[len(Order)-1], StepMeetingPlace)
	}
}

func TestPrevIsInverseOfOrder(t *testing.T) {
	for i := 1; i < len(Order); i++ {
		prev, ok := Prev(Order[i])
		if !ok {
			t.Fatalf("Prev(%s) reported no predecessor", Order[i])
		}
		if prev != Order[i-1] {
			t.Fatalf("Prev(%s) = %s, expected %s", Order[i], prev, Order[i-1])
		}
	}
}

func TestPrevAtFirstStep(t *testing.T) {
	if _, ok := Prev(StepBusinessCard); ok {
		t.Fatal("business card step must not have a predecessor")
	}
}

func TestPrevSkipsTransientConfirmation(t *testing.T) {
	// Back from full_name routes to business_card, never to the transient
	// confirmation state.
	prev, ok := Prev(StepFullName)
	if !ok || prev != StepBusinessCard {
		t.Fatalf("Prev(full_name) = %s, expected %s", prev, StepBusinessCard)
	}
	prev, ok = Prev(StepOCRConfirm)
	if !ok || prev != StepBusinessCard {
		t.Fatalf("Prev(ocr_confirmation) = %s, expected %s", prev, StepBusinessCard)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		step Step
		want int
	}{
		{StepBusinessCard, 1},
		{StepFullName, 2},
		{StepOCRConfirm, 1},
		{StepDirections, 12},
		{StepMeetingPlace, 14},
		{StepExhibition, 0},
	}
	for _, tc := range cases {
		if got := Number(tc.step); got != tc.want {
			t.Fatalf("Number(%s) = %d, expected %d", tc.step, got, tc.want)
		}
	}
}

func TestNext(t *testing.T) {
	next, ok := Next(StepBusinessCard)
	if !ok || next != StepFullName {
		t.Fatalf("Next(business_card) = %s, expected %s", next, StepFullName)
	}
	if _, ok := Next(StepMeetingPlace); ok {
		t.Fatal("meeting place is the last ordered step")
	}
}
