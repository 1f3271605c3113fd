package booking

// BookingCreateRequest is the customer submission payload.
type BookingCreateRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ServiceType   string `json:"service_type"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	PaymentMode   string `json:"payment_mode"`
	Notes         string `json:"notes"`
}

// AssignRequest binds a technician to a booking.
type AssignRequest struct {
	TechnicianID string `json:"technician_id"`
}

// StatusUpdateRequest is the generic transition payload for technician and
// admin driven status changes.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// CompleteRequest closes a started job with its final bill.
type CompleteRequest struct {
	Amount *float64 `json:"amount"`
}
