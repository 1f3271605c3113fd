package booking

import "testing"

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range GetAllBookingStatuses() {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if BookingStatus("Delivered").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if BookingStatus("").IsValid() {
		t.Fatalf("expected empty status to be invalid")
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if !BookingStatusCompleted.IsTerminal() {
		t.Fatalf("expected Completed to be terminal")
	}
	if !BookingStatusCancelled.IsTerminal() {
		t.Fatalf("expected Cancelled to be terminal")
	}
	for _, s := range []BookingStatus{BookingStatusRequested, BookingStatusConfirmed, BookingStatusAssigned, BookingStatusOnTheWay, BookingStatusStarted} {
		if s.IsTerminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestRequiresTechnician(t *testing.T) {
	withTech := []BookingStatus{BookingStatusAssigned, BookingStatusOnTheWay, BookingStatusStarted, BookingStatusCompleted}
	for _, s := range withTech {
		if !s.RequiresTechnician() {
			t.Fatalf("expected %s to require a technician", s)
		}
	}
	withoutTech := []BookingStatus{BookingStatusRequested, BookingStatusConfirmed, BookingStatusCancelled}
	for _, s := range withoutTech {
		if s.RequiresTechnician() {
			t.Fatalf("expected %s to not require a technician", s)
		}
	}
}
