package view

import (
	"testing"

	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProfile(t *testing.T) {
	output, err := Render(Profile(domain.User{
		ID:             42,
		Name:           "Ann Lee",
		Email:          "ann@example.com",
		MembershipTier: domain.MembershipPremium,
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "Profile")
	assert.Contains(t, output, "Ann Lee")
	assert.Contains(t, output, "ann@example.com")
	assert.Contains(t, output, "Premium")
}

func TestRenderUsersUsesSummaryLines(t *testing.T) {
	output, err := Render(Users([]domain.User{
		{ID: 1, Name: "Ann", Email: "a@b.com", MembershipTier: domain.MembershipBasic},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "users: 1")
	assert.Contains(t, output, "ID: 1, Name: Ann, Email: a@b.com, Membership Tier: Basic")
}

func TestRenderVehicleTable(t *testing.T) {
	output, err := Render(VehicleTable([]domain.Vehicle{
		{ID: 1, Make: "Toyota", Model: "Prius", Availability: true},
		{ID: 2, Make: "Honda", Model: "Fit", Availability: false},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "vehicles: 2")
	assert.Contains(t, output, "Availability")
	assert.Contains(t, output, "Toyota")
	assert.Contains(t, output, "Not Available")
}

func TestRenderEmptyVehicleTable(t *testing.T) {
	output, err := Render(VehicleTable(nil))

	require.NoError(t, err)
	assert.Contains(t, output, "No vehicles.")
}

func TestRenderAvailabilityShowsEmptyMessage(t *testing.T) {
	output, err := Render(Availability(application.AvailabilityView{
		Vehicles: []domain.Vehicle{},
		Message:  application.MsgNoVehiclesAvailable,
	}))

	require.NoError(t, err)
	assert.Contains(t, output, application.MsgNoVehiclesAvailable)
}

func TestRenderAvailabilityBullets(t *testing.T) {
	output, err := Render(Availability(application.AvailabilityView{
		Vehicles: []domain.Vehicle{{ID: 4, Make: "Tesla", Model: "3"}},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "ID: 4, Make: Tesla, Model: 3")
}

func TestRenderVehicleAvailabilityBullets(t *testing.T) {
	output, err := Render(VehicleAvailability(application.AvailabilityView{
		Vehicles: []domain.Vehicle{
			{ID: 4, Make: "Tesla", Model: "3", Availability: true},
			{ID: 5, Make: "Honda", Model: "Fit"},
		},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "ID: 4, Make: Tesla, Model: 3, Availability: Available")
	assert.Contains(t, output, "ID: 5, Make: Honda, Model: Fit, Availability: Not Available")
}

func TestRenderVehicleMutationWithoutReloadedFleet(t *testing.T) {
	output, err := Render(VehicleMutation(application.VehicleMutation{Message: application.MsgVehicleCreated}))

	require.NoError(t, err)
	assert.Contains(t, output, application.MsgVehicleCreated)
	assert.NotContains(t, output, "No vehicles.")
}

func TestRenderVehicleMutation(t *testing.T) {
	output, err := Render(VehicleMutation(application.VehicleMutation{
		Message:  application.MsgVehicleDeleted,
		Vehicles: []domain.Vehicle{{ID: 1, Make: "Toyota", Model: "Prius"}},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, application.MsgVehicleDeleted)
	assert.Contains(t, output, "Prius")
}

func TestRenderReserved(t *testing.T) {
	output, err := Render(Reserved(application.ReserveResult{
		ReservationID: 17,
		Message:       "Reservation successful! Reservation ID: 17",
		Available:     application.AvailabilityView{Message: application.MsgNoVehiclesAvailable},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "Reservation ID: 17")
	assert.Contains(t, output, application.MsgNoVehiclesAvailable)
}

func TestRenderReservedWithoutReloadedList(t *testing.T) {
	output, err := Render(Reserved(application.ReserveResult{
		ReservationID: 17,
		Message:       "Reservation successful! Reservation ID: 17",
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "Reservation ID: 17")
	assert.NotContains(t, output, "Available vehicles")
}

func TestRenderReservedListsAvailability(t *testing.T) {
	output, err := Render(Reserved(application.ReserveResult{
		ReservationID: 17,
		Message:       "Reservation successful! Reservation ID: 17",
		Available:     application.AvailabilityView{Vehicles: []domain.Vehicle{{ID: 2, Make: "Honda", Model: "Fit", Availability: true}}},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "ID: 2, Make: Honda, Model: Fit, Availability: Available")
}

func TestRenderReservations(t *testing.T) {
	output, err := Render(Reservations([]domain.UserReservation{{
		ID:      3,
		Vehicle: "Toyota Prius",
		Window:  domain.TimeWindow{Start: "2024-05-01 10:00", End: "2024-05-01 12:00"},
		Status:  "Active",
	}}))

	require.NoError(t, err)
	assert.Contains(t, output, "reservations: 1")
	assert.Contains(t, output, "#3 Toyota Prius, 2024-05-01 10:00 to 2024-05-01 12:00 (Active)")
}

func TestRenderBillingPages(t *testing.T) {
	output, err := Render(Billing(application.BillingView{ID: "7", Amount: "19.50", PaymentStatus: "PAID"}))
	require.NoError(t, err)
	assert.Contains(t, output, "$19.50")
	assert.Contains(t, output, "PAID")

	output, err = Render(Invoice(application.InvoiceView{
		VehicleType:     "SUV",
		MembershipLevel: "VIP",
		TotalCost:       "80.00",
		Message:         "Invoice generated. Total Cost: $80.00",
	}))
	require.NoError(t, err)
	assert.Contains(t, output, "Total Cost: $80.00")
	assert.Contains(t, output, "SUV")

	output, err = Render(Receipt(application.ReceiptView{Message: "Receipt generated. Amount: $12.30. Date: 03/09/2024"}))
	require.NoError(t, err)
	assert.Contains(t, output, "Date: 03/09/2024")
}

func TestRenderMessage(t *testing.T) {
	output, err := Render(Message(application.MsgLoggedOut))

	require.NoError(t, err)
	assert.Contains(t, output, application.MsgLoggedOut)
}
