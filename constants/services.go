package constants

// ServiceTypes is the fixed catalogue of bookable service categories.
// The first entry is the default when a request leaves the field empty.
var ServiceTypes = []string{
	"AC Repair",
	"AC Installation",
	"AC Uninstallation",
	"Gas Filling",
	"Water Leakage",
	"No Cooling / Low Cooling",
	"AMC (Annual Maintenance)",
}

// Payment modes accepted at booking time.
const (
	PaymentModeCash = "Cash"
	PaymentModeUPI  = "UPI"
	PaymentModeCard = "Card"
)

var PaymentModes = []string{
	PaymentModeCash,
	PaymentModeUPI,
	PaymentModeCard,
}

// IsValidServiceType reports whether s is part of the service catalogue.
func IsValidServiceType(s string) bool {
	for _, st := range ServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

// IsValidPaymentMode reports whether m is an accepted payment mode.
func IsValidPaymentMode(m string) bool {
	for _, pm := range PaymentModes {
		if pm == m {
			return true
		}
	}
	return false
}

// Default values applied by the booking store.
const (
	DefaultServiceType   = "AC Repair"
	DefaultPaymentMode   = PaymentModeCash
	DefaultScheduledTime = "10:00"
)
