package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/vehiclebff/internal/validation"
)

const maxMileage = 9999999

// StartJourneyYMMRequest starts a customer journey from year, make and model.
type StartJourneyYMMRequest struct {
	VisitID int64  `json:"visitId"`
	Year    string `json:"year"`
	Make    string `json:"make"`
	Model   string `json:"model"`
}

// Validate checks if the request is valid.
func (r *StartJourneyYMMRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.VisitID, validation.Required),
		validation.Field(&r.Year, validation.Required, customValidation.Year),
		validation.Field(&r.Make, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Model, validation.Required, customValidation.NotBlank),
	)
}

// StartJourneyVINRequest starts a customer journey from a VIN.
type StartJourneyVINRequest struct {
	VisitID int64  `json:"visitId"`
	Vin     string `json:"vin"`
}

// Validate checks if the request is valid.
func (r *StartJourneyVINRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.VisitID, validation.Required),
		validation.Field(&r.Vin, validation.Required, customValidation.NotBlank),
	)
}

// StartJourneyPlateRequest starts a customer journey from a license plate.
type StartJourneyPlateRequest struct {
	VisitID     int64  `json:"visitId"`
	PlateNumber string `json:"plateNumber"`
	PlateState  string `json:"plateState"`
}

// Validate checks if the request is valid.
func (r *StartJourneyPlateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.VisitID, validation.Required),
		validation.Field(&r.PlateNumber, validation.Required, customValidation.NotBlank),
		validation.Field(&r.PlateState, validation.Required, customValidation.PlateState),
	)
}

// VehicleDetailsRequest sets the vehicle series and body style.
type VehicleDetailsRequest struct {
	Series    string `json:"series"`
	BodyStyle string `json:"bodyStyle"`
}

// Validate checks if the request is valid.
func (r *VehicleDetailsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Series, validation.Required, customValidation.NotBlank),
		validation.Field(&r.BodyStyle, validation.Required, customValidation.NotBlank),
	)
}

// VehicleConditionRequest describes the vehicle's condition.
type VehicleConditionRequest struct {
	Mileage                         int     `json:"mileage"`
	ZipCode                         string  `json:"zipCode"`
	Email                           string  `json:"email"`
	IsFinancedOrLeased              bool    `json:"isFinancedOrLeased"`
	CarIsDriveable                  bool    `json:"carIsDriveable"`
	HasDamage                       bool    `json:"hasDamage"`
	HasBeenInAccident               bool    `json:"hasBeenInAccident"`
	OptionalPhoneNumber             *string `json:"optionalPhoneNumber,omitempty"`
	CustomerHasOptedIntoSmsMessages bool    `json:"customerHasOptedIntoSmsMessages"`
	Ce                              bool    `json:"ce"`
	CaptchaMode                     *string `json:"captchaMode,omitempty"`
}

// Validate checks if the request is valid.
func (r *VehicleConditionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Mileage, validation.Required, validation.Min(1), validation.Max(maxMileage)),
		validation.Field(&r.ZipCode, validation.Required, customValidation.ZipCode),
		validation.Field(&r.Email, validation.Required, customValidation.Email),
		validation.Field(&r.OptionalPhoneNumber, validation.NilOrNotEmpty, customValidation.PhoneNumber),
	)
}

// ComponentFault identifies one damaged component.
type ComponentFault struct {
	ZoneID      int `json:"zoneID"`
	ComponentID int `json:"componentID"`
	FaultID     int `json:"faultID"`
}

// BodyWorkRequest extends the vehicle condition with body work and history details.
type BodyWorkRequest struct {
	VehicleConditionRequest
	ComponentDamageFaults              []ComponentFault `json:"componentDamageFaults,omitempty"`
	UsedForOtherPurpose                bool             `json:"usedForOtherPurpose"`
	HasOdometerBeenChanged             bool             `json:"hasOdometerBeenChanged"`
	HasFloodTheftOrSalvageHistory      bool             `json:"hasFloodTheftOrSalvageHistory"`
	WasAccidentHistoryMarkedYesInStep3 bool             `json:"wasAccidentHistoryMarkedYesInStep3"`
	CaptchaWasDisplayed                bool             `json:"captchaWasDisplayed"`
}

// Validate checks if the request is valid.
func (r *BodyWorkRequest) Validate() error {
	return r.VehicleConditionRequest.Validate()
}
