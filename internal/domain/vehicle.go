package domain

import "fmt"

type VehicleID int

type Vehicle struct {
	ID           VehicleID
	Make         string
	Model        string
	Availability bool
}

type VehicleInput struct {
	Make         string
	Model        string
	Availability bool
}

func AvailabilityLabel(available bool) string {
	if available {
		return "Available"
	}

	return "Not Available"
}

func (v Vehicle) Summary() string {
	return fmt.Sprintf("ID: %d, Make: %s, Model: %s", v.ID, v.Make, v.Model)
}

// AvailabilitySummary is Summary followed by the availability label.
func (v Vehicle) AvailabilitySummary() string {
	return fmt.Sprintf("%s, Availability: %s", v.Summary(), AvailabilityLabel(v.Availability))
}
