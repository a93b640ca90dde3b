// Package domain defines the upstream operations exposed by the gateway.
package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Operation is one upstream endpoint relayed by the gateway.
type Operation struct {
	// Name identifies the operation in logs and metrics.
	Name string
	// Method is the upstream HTTP method.
	Method string
	// Path is the upstream path template. Segments written as {name} are
	// replaced by the escaped value of the matching parameter.
	Path string
	// SuccessStatus is the status returned to the caller on success, including fallback.
	SuccessStatus int
	// FallbackKey names the fixture served when the call fails. Empty means no fixture.
	FallbackKey string
}

// Input carries the per-request values of an operation.
type Input struct {
	Params map[string]string
	Query  url.Values
	Body   any
}

// Result is what the gateway returns to its caller.
type Result struct {
	StatusCode int
	// Body is nil when upstream answered without content.
	Body json.RawMessage
	// Fallback reports whether Body is fixture data.
	Fallback bool
}

// ExpandPath fills the path template with escaped parameter values.
func (o Operation) ExpandPath(params map[string]string) (string, error) {
	var b strings.Builder
	rest := o.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("operation %s: unterminated parameter in path %q", o.Name, o.Path)
		}
		end += open

		name := rest[open+1 : end]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("operation %s: missing path parameter %q", o.Name, name)
		}

		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[end+1:]
	}
}

func get(name, path, fallbackKey string) Operation {
	return Operation{Name: name, Method: http.MethodGet, Path: path, SuccessStatus: http.StatusOK, FallbackKey: fallbackKey}
}

func post(name, path string, status int, fallbackKey string) Operation {
	return Operation{Name: name, Method: http.MethodPost, Path: path, SuccessStatus: status, FallbackKey: fallbackKey}
}

// Appointments.
var (
	AppointmentAvailability = get("appointment.availability",
		"/Appointment/availability/{zipCode}/{customerVehicleId}", "appointment_availability")
	AppointmentBook = post("appointment.book",
		"/Appointment/book", http.StatusOK, "appointment_booked")
	AppointmentReschedule = post("appointment.reschedule",
		"/Appointment/{existingAppointmentId}/reschedule", http.StatusOK, "appointment_rescheduled")
	AppointmentCancel = post("appointment.cancel",
		"/Appointment/cancel/{customerVehicleId}/{phoneNumber}", http.StatusOK, "appointment_cancelled")
)

// Attribution. The visitor lookup and creation share an upstream endpoint.
var (
	AttributionVisitorLookup = post("attribution.visitor.lookup",
		"/Attribution/visitor", http.StatusOK, "attribution_visitor")
	AttributionVisitorCreate = post("attribution.visitor.create",
		"/Attribution/visitor", http.StatusCreated, "attribution_visitor")
	AttributionVisit = post("attribution.visit",
		"/Attribution/visitor/{visitorId}/visit", http.StatusCreated, "attribution_visit")
)

// Content.
var (
	ContentBranches         = get("content.branches", "/content/branches", "branches")
	ContentBranchDetail     = get("content.branch_detail", "/content/branches/{branchId}", "branch_detail")
	ContentFAQs             = get("content.faqs", "/content/faqs", "faqs")
	ContentFAQBySlug        = get("content.faq", "/content/faqs/{slug}", "faq_by_slug")
	ContentLandingPages     = get("content.landing_pages", "/content/landing-page", "landing_pages")
	ContentLandingPage      = get("content.landing_page", "/content/landing-page/{slug}", "landing_page_by_slug")
	ContentMakeModelByMake  = get("content.make", "/content/make-model/{make}", "make_content")
	ContentMakeModelByModel = get("content.make_model", "/content/make-model/{make}/{model}", "make_model_content")
)

// Customer journey.
var (
	CustomerJourneyByID = get("customer_journey.by_id",
		"/customer-journey/{id}", "customer_journey_by_id")
	CustomerJourneyByVisitID = get("customer_journey.by_visit_id",
		"/customer-journey/{visitId}", "customer_journey_by_visit_id")
	CustomerJourneyYMM = post("customer_journey.ymm",
		"/customer-journey", http.StatusOK, "customer_journey_ymm")
	CustomerJourneyVIN = post("customer_journey.vin",
		"/customer-journey/vin", http.StatusOK, "customer_journey_vin")
	CustomerJourneyPlate = post("customer_journey.plate",
		"/customer-journey/plate", http.StatusOK, "customer_journey_plate")
	CustomerJourneyVehicleDetails = post("customer_journey.vehicle_details",
		"/customer-journey/{id}/vehicle-details", http.StatusOK, "customer_journey_updated")
	CustomerJourneyVehicleCondition = post("customer_journey.vehicle_condition",
		"/customer-journey/{id}/vehicle-condition", http.StatusOK, "customer_journey_updated")
	CustomerJourneyBodyWork = post("customer_journey.body_work",
		"/customer-journey/{id}/body-work", http.StatusOK, "customer_journey_updated")
	CustomerJourneyDamageOptions = get("customer_journey.damage_options",
		"/customer-journey/{id}/damage/options", "customer_journey_damage_options")
)

// Messaging.
var (
	SchedulingOTPRequest = post("scheduling.otp_request",
		"/scheduling/otp/request", http.StatusAccepted, "scheduling_otp_request")
	SmsSend = post("sms.send", "/Sms/send", http.StatusOK, "")
)

// Valuation.
var (
	Valuation           = post("valuation", "/Valuation", http.StatusOK, "valuation")
	ValuationWithDamage = post("valuation.with_damage", "/Valuation/with-damage", http.StatusOK, "valuation_with_damage")
)

// Vehicles.
var (
	VehicleYears  = get("vehicles.years", "/Vehicles/years", "vehicle_years")
	VehicleMakes  = get("vehicles.makes", "/Vehicles/makes/{year}", "vehicle_makes")
	VehicleModels = get("vehicles.models", "/Vehicles/models/{year}/{make}", "vehicle_models")
	VehicleTrims  = get("vehicles.trims", "/Vehicles/trims/{year}/{make}/{model}", "")
)

// Catalogue lists every relayed operation.
func Catalogue() []Operation {
	return []Operation{
		AppointmentAvailability, AppointmentBook, AppointmentReschedule, AppointmentCancel,
		AttributionVisitorLookup, AttributionVisitorCreate, AttributionVisit,
		ContentBranches, ContentBranchDetail, ContentFAQs, ContentFAQBySlug,
		ContentLandingPages, ContentLandingPage, ContentMakeModelByMake, ContentMakeModelByModel,
		CustomerJourneyByID, CustomerJourneyByVisitID, CustomerJourneyYMM, CustomerJourneyVIN,
		CustomerJourneyPlate, CustomerJourneyVehicleDetails, CustomerJourneyVehicleCondition,
		CustomerJourneyBodyWork, CustomerJourneyDamageOptions,
		SchedulingOTPRequest, SmsSend,
		Valuation, ValuationWithDamage,
		VehicleYears, VehicleMakes, VehicleModels, VehicleTrims,
	}
}
