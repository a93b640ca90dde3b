// Package dto provides data transfer objects for the gateway's feature routes.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/vehiclebff/internal/validation"
)

// BookAppointmentRequest contains the parameters for booking or rescheduling an appointment.
type BookAppointmentRequest struct {
	CustomerVehicleID   int     `json:"customerVehicleId"`
	BranchID            int     `json:"branchId"`
	Date                string  `json:"date"`
	TimeSlotID          int     `json:"timeSlotId"`
	CustomerPhoneNumber string  `json:"customerPhoneNumber"`
	CustomerFirstName   string  `json:"customerFirstName"`
	CustomerLastName    string  `json:"customerLastName"`
	Email               string  `json:"email"`
	Address1            *string `json:"address1,omitempty"`
	Address2            *string `json:"address2,omitempty"`
	City                *string `json:"city,omitempty"`
	VisitID             *int64  `json:"visitId,omitempty"`
	SmsOptIn            *bool   `json:"smsOptIn,omitempty"`
	OtpCode             *string `json:"otpCode,omitempty"`
}

// Validate checks if the booking request is valid.
func (r *BookAppointmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomerVehicleID, validation.Required, validation.Min(1)),
		validation.Field(&r.BranchID, validation.Required, validation.Min(1)),
		validation.Field(&r.Date, validation.Required, customValidation.Date),
		validation.Field(&r.TimeSlotID, validation.Required, validation.Min(1)),
		validation.Field(&r.CustomerPhoneNumber,
			validation.Required,
			customValidation.NotBlank,
			customValidation.PhoneNumber,
		),
		validation.Field(&r.CustomerFirstName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.CustomerLastName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, validation.Required, customValidation.Email),
	)
}

// ToUpstream returns the payload sent upstream: the date reduced to YYYY-MM-DD and unset
// optional fields omitted. It must be called after Validate.
func (r *BookAppointmentRequest) ToUpstream() BookAppointmentRequest {
	out := *r
	if date, err := customValidation.ParseDate(r.Date); err == nil {
		out.Date = date.Format(customValidation.DateLayout)
	}
	return out
}

// OTPRequest asks upstream to text a one-time code before a booking.
type OTPRequest struct {
	CustomerVehicleID int    `json:"customerVehicleId"`
	BranchID          int    `json:"branchId"`
	TargetPhoneNumber string `json:"targetPhoneNumber"`
}

// Validate checks if the OTP request is valid.
func (r *OTPRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomerVehicleID, validation.Required, validation.Min(1)),
		validation.Field(&r.BranchID, validation.Required, validation.Min(1)),
		validation.Field(&r.TargetPhoneNumber, validation.Required, customValidation.NotBlank),
	)
}
