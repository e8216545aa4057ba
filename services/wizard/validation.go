package wizard

import (
	"regexp"
	"strings"
)

// Traveler form field names. These are the keys of TravelerSlot.FormValues
// and of the validation error maps.
const (
	FieldPassportNumber         = "passportNumber"
	FieldFullName               = "fullName"
	FieldGender                 = "gender"
	FieldDateOfBirth            = "dateOfBirth"
	FieldEmailAddress           = "emailAddress"
	FieldMobileNumber           = "mobileNumber"
	FieldAddressLine1           = "addressLine1"
	FieldAddressLine2           = "addressLine2"
	FieldPincode                = "pincode"
	FieldCity                   = "city"
	FieldDistrict               = "district"
	FieldState                  = "state"
	FieldCountry                = "country"
	FieldNomineeName            = "nomineeName"
	FieldRelationshipNominee    = "relationshipWithNominee"
	FieldEmergencyContactName   = "emergencyContactName"
	FieldEmergencyEmailAddress  = "emergencyEmailAddress"
	FieldEmergencyMobileNumber  = "emergencyMobileNumber"
	FieldRemark                 = "remark"
	FieldCRReference            = "crReference"
	FieldPastIllness            = "pastIllness"
	FieldGSTNumber              = "gstNumber"
	FieldGSTRegisteredName      = "gstRegisteredName"
)

// Genders accepted by the gender field.
var genderValues = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// FieldRule validates a single field value. Empty result means valid.
type FieldRule func(value string) string

func requiredRule(message string) FieldRule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

func emailRule(message string) FieldRule {
	return func(value string) string {
		v := strings.TrimSpace(value)
		if v == "" {
			return message
		}
		if !emailRegex.MatchString(v) {
			return "Invalid email address"
		}
		return ""
	}
}

func mobileRule(message string) FieldRule {
	return func(value string) string {
		v := strings.TrimSpace(value)
		if v == "" {
			return message
		}
		if len(v) < 10 {
			return "Mobile number must be at least 10 digits"
		}
		return ""
	}
}

func genderRule(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Gender is required"
	}
	if !genderValues[value] {
		return "Invalid gender selection"
	}
	return ""
}

// travelerRules is the full per-field rule set for the traveler form.
// Fields without a rule here (address line 2, remark, CR reference, past
// illness, GST fields) are optional and never produce errors.
var travelerRules = map[string]FieldRule{
	FieldPassportNumber:        requiredRule("Passport number is required"),
	FieldFullName:              requiredRule("Full name is required"),
	FieldGender:                genderRule,
	FieldDateOfBirth:           requiredRule("Date of birth is required"),
	FieldEmailAddress:          emailRule("Email address is required"),
	FieldMobileNumber:          mobileRule("Mobile number is required"),
	FieldAddressLine1:          requiredRule("Address is required"),
	FieldPincode:               requiredRule("Pincode is required"),
	FieldCity:                  requiredRule("City is required"),
	FieldDistrict:              requiredRule("District is required"),
	FieldState:                 requiredRule("State is required"),
	FieldCountry:               requiredRule("Country is required"),
	FieldNomineeName:           requiredRule("Nominee name is required"),
	FieldRelationshipNominee:   requiredRule("Relationship with nominee is required"),
	FieldEmergencyContactName:  requiredRule("Emergency contact name is required"),
	FieldEmergencyEmailAddress: emailRule("Emergency email address is required"),
	FieldEmergencyMobileNumber: mobileRule("Emergency mobile number is required"),
}

// ValidateTravelerForm runs every rule against values and returns the
// resulting error map. Every field is checked independently on every call,
// so the result does not depend on any previous validation state.
func ValidateTravelerForm(values map[string]string) map[string]string {
	errors := map[string]string{}
	for field, rule := range travelerRules {
		if msg := rule(values[field]); msg != "" {
			errors[field] = msg
		}
	}
	return errors
}
