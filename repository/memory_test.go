package repository

import (
	"context"
	"testing"

	bookingModel "appliance-booking/models/booking"
	technicianModel "appliance-booking/models/technician"
)

func newBooking(name, phone, address, serviceType string) *bookingModel.Booking {
	return &bookingModel.Booking{
		Name:        name,
		Phone:       phone,
		Address:     address,
		ServiceType: serviceType,
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	b := newBooking("Asha Rao", "9876500000", "12 MG Road", "Gas Filling")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if b.ID == "" {
		t.Fatalf("expected a fresh id")
	}
	if b.Status != bookingModel.BookingStatusRequested {
		t.Fatalf("expected status Requested, got %s", b.Status)
	}
	if b.TechnicianID != nil {
		t.Fatalf("expected nil technician on a new booking")
	}
	if b.Amount != nil {
		t.Fatalf("expected nil amount on a new booking")
	}
	if len(b.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(b.History))
	}
	if b.History[0].Text != "Booking requested by customer" {
		t.Fatalf("unexpected first history text: %q", b.History[0].Text)
	}
	if b.PaymentMode != "Cash" {
		t.Fatalf("expected default payment mode Cash, got %q", b.PaymentMode)
	}
	if b.ScheduledTime != "10:00" {
		t.Fatalf("expected default scheduled time, got %q", b.ScheduledTime)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	cases := []*bookingModel.Booking{
		newBooking("", "9876500000", "12 MG Road", ""),
		newBooking("Asha Rao", "", "12 MG Road", ""),
		newBooking("Asha Rao", "9876500000", "", ""),
		newBooking("   ", "9876500000", "12 MG Road", ""),
		newBooking("Asha Rao", "9876500000", "12 MG Road", "Fridge Repair"),
	}

	for i, b := range cases {
		err := repo.Create(ctx, b)
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !IsValidation(err) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store after rejected creates, got %d records", len(all))
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	first := newBooking("First", "111", "A Street", "")
	second := newBooking("Second", "222", "B Street", "")
	third := newBooking("Third", "333", "C Street", "")
	for _, b := range []*bookingModel.Booking{first, second, third} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(all))
	}
	if all[0].ID != third.ID || all[2].ID != first.ID {
		t.Fatalf("expected newest-first ordering")
	}
}

func TestSearchFilter(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	gas := newBooking("Asha Rao", "9876500000", "12 MG Road", "Gas Filling")
	repair := newBooking("Vikram Mehta", "9876511111", "4 Park Lane", "AC Repair")
	byAddress := newBooking("Nisha Jain", "9876522222", "7 Gasworks Colony", "AC Installation")
	for _, b := range []*bookingModel.Booking{gas, repair, byAddress} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	hits, err := repo.List(ctx, "gas")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "gas", len(hits))
	}
	for _, h := range hits {
		if h.ID == repair.ID {
			t.Fatalf("did not expect %q to match", repair.Name)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected empty query to return everything, got %d", len(all))
	}

	byPhone, err := repo.List(ctx, "9876511111")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].ID != repair.ID {
		t.Fatalf("expected phone search to return exactly the matching booking")
	}
}

func TestListUnassignedExcludesCancelled(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	open := newBooking("Open", "111", "A Street", "")
	cancelled := newBooking("Cancelled", "222", "B Street", "")
	for _, b := range []*bookingModel.Booking{open, cancelled} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	cancelled.Status = bookingModel.BookingStatusCancelled
	if err := repo.UpdateWithHistory(ctx, cancelled, bookingModel.BookingStatusRequested, "Status → Cancelled"); err != nil {
		t.Fatalf("UpdateWithHistory: %v", err)
	}

	queue, err := repo.ListUnassigned(ctx)
	if err != nil {
		t.Fatalf("ListUnassigned: %v", err)
	}
	if len(queue) != 1 || queue[0].ID != open.ID {
		t.Fatalf("expected only the open booking in the unassigned queue")
	}
}

func TestUpdateWithHistoryConflictAndNotFound(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	b := newBooking("Asha Rao", "9876500000", "12 MG Road", "")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stale := *b
	stale.Status = bookingModel.BookingStatusConfirmed
	if err := repo.UpdateWithHistory(ctx, &stale, bookingModel.BookingStatusConfirmed, "Booking confirmed"); err != ErrConflict {
		t.Fatalf("expected ErrConflict on stale compare-and-swap, got %v", err)
	}

	missing := *b
	missing.ID = "does-not-exist"
	if err := repo.UpdateWithHistory(ctx, &missing, bookingModel.BookingStatusRequested, "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != bookingModel.BookingStatusRequested || len(got.History) != 1 {
		t.Fatalf("expected failed updates to leave the booking unchanged")
	}
}

func TestCreateTechnicianValidation(t *testing.T) {
	repo := NewMemoryTechnicianRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &technicianModel.Technician{Name: "", Phone: "123"}); !IsValidation(err) {
		t.Fatalf("expected ValidationError for empty name, got %v", err)
	}
	if err := repo.Create(ctx, &technicianModel.Technician{Name: "Rahul", Phone: "  "}); !IsValidation(err) {
		t.Fatalf("expected ValidationError for empty phone, got %v", err)
	}

	tch := technicianModel.Technician{Name: "Rahul Kumar", Phone: "9871000001", Skills: technicianModel.Skills{"Split AC"}, Active: true}
	if err := repo.Create(ctx, &tch); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tch.ID == "" {
		t.Fatalf("expected a fresh technician id")
	}

	got, err := repo.GetByID(ctx, tch.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Skills.Contains("Split AC") {
		t.Fatalf("expected skills to round-trip")
	}
}
