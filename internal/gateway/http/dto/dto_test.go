package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validBooking() BookAppointmentRequest {
	return BookAppointmentRequest{
		CustomerVehicleID:   10,
		BranchID:            3,
		Date:                "2025-03-14T09:30:00Z",
		TimeSlotID:          5,
		CustomerPhoneNumber: "(214) 555-0134",
		CustomerFirstName:   "Jane",
		CustomerLastName:    "Doe",
		Email:               "jane@example.com",
	}
}

func TestBookAppointmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *BookAppointmentRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *BookAppointmentRequest) {}},
		{name: "plain date", mutate: func(r *BookAppointmentRequest) { r.Date = "2025-03-14" }},
		{name: "missing vehicle", mutate: func(r *BookAppointmentRequest) { r.CustomerVehicleID = 0 }, wantErr: true},
		{name: "invalid date", mutate: func(r *BookAppointmentRequest) { r.Date = "14/03/2025" }, wantErr: true},
		{name: "invalid phone", mutate: func(r *BookAppointmentRequest) { r.CustomerPhoneNumber = "123" }, wantErr: true},
		{name: "blank first name", mutate: func(r *BookAppointmentRequest) { r.CustomerFirstName = "  " }, wantErr: true},
		{name: "invalid email", mutate: func(r *BookAppointmentRequest) { r.Email = "jane" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookAppointmentRequest_ToUpstream(t *testing.T) {
	req := validBooking()
	req.City = strPtr("Dallas")

	payload, err := json.Marshal(req.ToUpstream())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))

	assert.Equal(t, "2025-03-14", fields["date"])
	assert.Equal(t, "Dallas", fields["city"])
	assert.EqualValues(t, 10, fields["customerVehicleId"])
	assert.NotContains(t, fields, "address1")
	assert.NotContains(t, fields, "otpCode")
	assert.NotContains(t, fields, "visitId")
	assert.Equal(t, "2025-03-14T09:30:00Z", req.Date, "receiver must not be modified")
}

func TestOTPRequest_Validate(t *testing.T) {
	assert.NoError(t, (&OTPRequest{CustomerVehicleID: 1, BranchID: 2, TargetPhoneNumber: "2145550134"}).Validate())
	assert.Error(t, (&OTPRequest{BranchID: 2, TargetPhoneNumber: "2145550134"}).Validate())
	assert.Error(t, (&OTPRequest{CustomerVehicleID: 1, BranchID: 2}).Validate())
}

func TestStartJourneyRequests_Validate(t *testing.T) {
	assert.NoError(t, (&StartJourneyYMMRequest{VisitID: 1, Year: "2021", Make: "Toyota", Model: "Corolla"}).Validate())
	assert.Error(t, (&StartJourneyYMMRequest{VisitID: 1, Year: "21", Make: "Toyota", Model: "Corolla"}).Validate())
	assert.Error(t, (&StartJourneyYMMRequest{Year: "2021", Make: "Toyota", Model: "Corolla"}).Validate())

	assert.NoError(t, (&StartJourneyVINRequest{VisitID: 1, Vin: "1HGCM82633A004352"}).Validate())
	assert.Error(t, (&StartJourneyVINRequest{VisitID: 1}).Validate())

	assert.NoError(t, (&StartJourneyPlateRequest{VisitID: 1, PlateNumber: "ABC123", PlateState: "TX"}).Validate())
	assert.Error(t, (&StartJourneyPlateRequest{VisitID: 1, PlateNumber: "ABC123", PlateState: "tx"}).Validate())
}

func TestVehicleConditionRequest_Validate(t *testing.T) {
	valid := func() VehicleConditionRequest {
		return VehicleConditionRequest{Mileage: 42000, ZipCode: "75001", Email: "jane@example.com"}
	}

	req := valid()
	assert.NoError(t, req.Validate())

	req = valid()
	req.Mileage = 0
	assert.Error(t, req.Validate())

	req = valid()
	req.ZipCode = "7500"
	assert.Error(t, req.Validate())

	req = valid()
	req.OptionalPhoneNumber = strPtr("not a phone")
	assert.Error(t, req.Validate())

	req = valid()
	req.OptionalPhoneNumber = strPtr("214-555-0134")
	assert.NoError(t, req.Validate())
}

func TestBodyWorkRequest(t *testing.T) {
	req := BodyWorkRequest{
		VehicleConditionRequest: VehicleConditionRequest{Mileage: 1, ZipCode: "75001", Email: "jane@example.com"},
		ComponentDamageFaults:   []ComponentFault{{ZoneID: 1, ComponentID: 2, FaultID: 3}},
		UsedForOtherPurpose:     true,
	}
	require.NoError(t, req.Validate())

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.EqualValues(t, 1, fields["mileage"])
	assert.Equal(t, true, fields["usedForOtherPurpose"])
	assert.Len(t, fields["componentDamageFaults"], 1)

	req.Email = ""
	assert.Error(t, req.Validate())
}
