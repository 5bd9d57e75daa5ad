package domain

type ReservationID int

// TimeWindow carries start and end timestamps as the ISO-like strings the
// reservation service expects. They are forwarded verbatim.
type TimeWindow struct {
	Start string
	End   string
}

type ReservationRequest struct {
	VehicleID VehicleID
	UserID    UserID
	Window    TimeWindow
}

type Reservation struct {
	ID        ReservationID
	VehicleID VehicleID
	UserID    UserID
	Window    TimeWindow
}

// UserReservation is the per-user listing row, where Vehicle is "make model".
type UserReservation struct {
	ID      ReservationID
	Vehicle string
	Window  TimeWindow
	Status  string
}
