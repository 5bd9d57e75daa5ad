package application

// User-facing outcome messages. They are part of the CLI's observable contract.
const (
	MsgEnterBillingID       = "Please enter a billing ID."
	MsgBillingFetchFailed   = "Failed to fetch billing details."
	MsgInvoiceFailed        = "Failed to generate invoice."
	MsgReceiptFailed        = "Failed to generate receipt."
	MsgInvalidCredentials   = "Invalid email or password."
	MsgSessionSaveFailed    = "Failed to save session."
	MsgLoggedOut            = "Logged out."
	MsgNoUserRedirect       = "No user logged in. Redirecting to login page."
	MsgProfileLoadFailed    = "Failed to load user profile."
	MsgProfileUpdated       = "Profile updated successfully!"
	MsgProfileUpdateFailed  = "Failed to update profile."
	MsgUserRegistered       = "User registered successfully!"
	MsgRegistrationFailed   = "Registration failed."
	MsgUsersFetchFailed     = "Failed to fetch users."
	MsgUserFetchFailed      = "Failed to fetch user."
	MsgUserUpdated          = "User updated successfully!"
	MsgUserUpdateFailed     = "Update failed."
	MsgUserDeleted          = "User deleted successfully!"
	MsgUserDeleteRejected   = "Failed to delete user."
	MsgUserDeleteFailed     = "Delete operation failed."
	MsgNoVehiclesInWindow   = "No vehicles available for the selected time range."
	MsgNoVehiclesAvailable  = "No vehicles available at the moment."
	MsgAvailabilityFailed   = "Failed to fetch available vehicles."
	MsgReservationCreated   = "Reservation created successfully!"
	MsgReservationFailed    = "Failed to create reservation."
	MsgReservationModified  = "Reservation modified successfully!"
	MsgModifyFailed         = "Failed to modify reservation."
	MsgReservationCanceled  = "Reservation canceled successfully!"
	MsgCancelFailed         = "Failed to cancel reservation."
	MsgReservationsFailed   = "Failed to fetch reservations."
	MsgUserNotLoggedIn      = "User not logged in"
	MsgVehiclesFetchFailed  = "Failed to fetch vehicles."
	MsgVehicleFetchFailed   = "Failed to fetch vehicle for editing."
	MsgVehicleCreateFailed  = "Failed to create vehicle."
	MsgVehicleUpdateFailed  = "Failed to update vehicle."
	MsgVehicleDeleteFailed  = "Failed to delete vehicle."
	MsgVehicleCreated       = "Vehicle created successfully!"
	MsgVehicleUpdated       = "Vehicle updated successfully!"
	MsgVehicleDeleted       = "Vehicle deleted."
	msgReservationSucceeded = "Reservation successful! Reservation ID: %d"
	msgInvoiceGenerated     = "Invoice generated. Total Cost: $%s"
	msgReceiptGenerated     = "Receipt generated. Amount: $%s. Date: %s"
)
