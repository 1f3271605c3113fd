package seeders

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"appliance-booking/models/technician"
)

// SeedTechnicians inserts the default field team on first start. Existing
// technicians (matched by phone) are left untouched.
func SeedTechnicians(db *gorm.DB) {
	log.Printf("🔍 Checking technician seed data...")

	technicians := []technician.Technician{
		{Name: "Rahul Kumar", Phone: "9871000001", Skills: technician.Skills{"Split AC", "Installation"}, Active: true},
		{Name: "Akash Singh", Phone: "9871000002", Skills: technician.Skills{"Window AC", "Gas Charging"}, Active: true},
	}

	var existingPhones []string
	if err := db.Model(&technician.Technician{}).Pluck("phone", &existingPhones).Error; err != nil {
		log.Printf("❌ Failed to fetch existing technician phones: %v", err)
		return
	}

	existingPhonesMap := make(map[string]bool)
	for _, phone := range existingPhones {
		existingPhonesMap[phone] = true
	}

	var inserted int
	for _, t := range technicians {
		if existingPhonesMap[t.Phone] {
			continue
		}
		t.ID = uuid.NewString()
		if err := db.Create(&t).Error; err != nil {
			log.Printf("❌ Failed to seed technician %s: %v", t.Name, err)
			continue
		}
		inserted++
	}

	log.Printf("📊 Technician seed check complete: %d existing, %d inserted", len(existingPhones), inserted)
}
