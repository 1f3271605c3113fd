package booking

// BookingStatus is the lifecycle state of a booking, persisted as a string.
type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "Requested"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusAssigned  BookingStatus = "Assigned"
	BookingStatusOnTheWay  BookingStatus = "On The Way"
	BookingStatusStarted   BookingStatus = "Started"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusRequested, BookingStatusConfirmed, BookingStatusAssigned,
		BookingStatusOnTheWay, BookingStatusStarted, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions leave this state.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCompleted || bs == BookingStatusCancelled
}

// RequiresTechnician returns true for states in which a booking must hold a
// technician binding. The inverse also holds: outside these states the
// binding must be empty.
func (bs BookingStatus) RequiresTechnician() bool {
	switch bs {
	case BookingStatusAssigned, BookingStatusOnTheWay, BookingStatusStarted, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusRequested,
		BookingStatusConfirmed,
		BookingStatusAssigned,
		BookingStatusOnTheWay,
		BookingStatusStarted,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
