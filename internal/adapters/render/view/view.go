// Package view renders command results for the terminal.
package view

import (
	"fmt"
	"strconv"

	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Page is something Render can draw.
type Page interface {
	render(s styles) string
}

type pageFunc func(s styles) string

func (f pageFunc) render(s styles) string {
	return f(s)
}

// Message is a bare outcome line.
func Message(text string) Page {
	return pageFunc(func(s styles) string {
		return s.success.Render(text)
	})
}

func Profile(user domain.User) Page {
	return pageFunc(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Profile"),
			field(s, "Name", user.Name),
			field(s, "Email", user.Email),
			field(s, "Membership tier", string(user.MembershipTier)),
		)
	})
}

func Users(users []domain.User) Page {
	return pageFunc(func(s styles) string {
		lines := []string{
			s.title.Render("Users"),
			s.header.Render(fmt.Sprintf("users: %d", len(users))),
		}
		if len(users) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No users."))...)
		}

		for _, user := range users {
			lines = append(lines, bulletLine(s, user.Summary()))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// VehicleTable is the management view of the whole fleet.
func VehicleTable(vehicles []domain.Vehicle) Page {
	return pageFunc(func(s styles) string {
		header := s.header.Render(fmt.Sprintf("vehicles: %d", len(vehicles)))
		if len(vehicles) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, s.title.Render("Vehicles"), header, s.empty.Render("No vehicles."))
		}

		rows := make([][]string, 0, len(vehicles))
		for _, vehicle := range vehicles {
			rows = append(rows, []string{
				strconv.Itoa(int(vehicle.ID)),
				vehicle.Make,
				vehicle.Model,
				domain.AvailabilityLabel(vehicle.Availability),
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(s.border).
			Headers("ID", "Make", "Model", "Availability").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return s.cell.Bold(true)
				case col == 3 && row >= 0 && row < len(vehicles) && vehicles[row].Availability:
					return s.available
				case col == 3:
					return s.taken
				default:
					return s.cell
				}
			})

		return lipgloss.JoinVertical(lipgloss.Left, s.title.Render("Vehicles"), header, t.String())
	})
}

// Availability lists bookable vehicles, or the empty-list message in their place.
func Availability(view application.AvailabilityView) Page {
	return availabilityList(view, domain.Vehicle.Summary)
}

// VehicleAvailability is the vehicle page variant of Availability, where every
// bullet also carries the availability label.
func VehicleAvailability(view application.AvailabilityView) Page {
	return availabilityList(view, domain.Vehicle.AvailabilitySummary)
}

func availabilityList(view application.AvailabilityView, summary func(domain.Vehicle) string) Page {
	return pageFunc(func(s styles) string {
		lines := []string{s.title.Render("Available vehicles")}
		if len(view.Vehicles) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render(view.Message))...)
		}

		for _, vehicle := range view.Vehicles {
			lines = append(lines, bulletLine(s, summary(vehicle)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func Vehicle(vehicle domain.Vehicle) Page {
	return pageFunc(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render(fmt.Sprintf("Vehicle %d", vehicle.ID)),
			field(s, "Make", vehicle.Make),
			field(s, "Model", vehicle.Model),
			field(s, "Availability", domain.AvailabilityLabel(vehicle.Availability)),
		)
	})
}

// VehicleMutation shows the mutation outcome followed by the reloaded fleet. When
// the reload failed only the outcome is shown.
func VehicleMutation(result application.VehicleMutation) Page {
	return pageFunc(func(s styles) string {
		if result.Vehicles == nil {
			return s.success.Render(result.Message)
		}

		fleet := VehicleTable(result.Vehicles).render(s)
		if result.Message == "" {
			return fleet
		}
		return lipgloss.JoinVertical(lipgloss.Left, s.success.Render(result.Message), s.section.Render(fleet))
	})
}

func Reserved(result application.ReserveResult) Page {
	return pageFunc(func(s styles) string {
		if result.Available.Vehicles == nil && result.Available.Message == "" {
			return s.success.Render(result.Message)
		}

		return lipgloss.JoinVertical(lipgloss.Left,
			s.success.Render(result.Message),
			s.section.Render(VehicleAvailability(result.Available).render(s)),
		)
	})
}

func Reservations(reservations []domain.UserReservation) Page {
	return pageFunc(func(s styles) string {
		lines := []string{
			s.title.Render("My reservations"),
			s.header.Render(fmt.Sprintf("reservations: %d", len(reservations))),
		}
		if len(reservations) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No reservations."))...)
		}

		for _, r := range reservations {
			lines = append(lines, bulletLine(s, fmt.Sprintf("#%d %s, %s to %s (%s)", r.ID, r.Vehicle, r.Window.Start, r.Window.End, r.Status)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func Billing(view application.BillingView) Page {
	return pageFunc(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Billing details"),
			field(s, "Billing ID", view.ID),
			field(s, "Amount", "$"+view.Amount),
			field(s, "Payment status", view.PaymentStatus),
		)
	})
}

func Invoice(view application.InvoiceView) Page {
	return pageFunc(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.success.Render(view.Message),
			field(s, "Vehicle type", view.VehicleType),
			field(s, "Membership level", view.MembershipLevel),
		)
	})
}

func Receipt(view application.ReceiptView) Page {
	return pageFunc(func(s styles) string {
		return s.success.Render(view.Message)
	})
}

func field(s styles, label, value string) string {
	if value == "" {
		value = "n/a"
	}
	return s.label.Render(label+":") + " " + s.value.Render(value)
}

func bulletLine(s styles, text string) string {
	return s.bullet.Render("•") + " " + text
}
