package checkout

import (
	"regexp"
	"strings"
)

// emailPattern mirrors the storefront's loose email check: non-whitespace,
// an @, non-whitespace, a dot, non-whitespace.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateStep checks the fields belonging to one step and returns a map of
// field to human-readable error. An empty map means the step may advance.
// The review step has no field-level rules; terms acceptance is enforced by
// the storefront form itself.
func ValidateStep(step Step, form *FormState) map[Field]string {
	errs := map[Field]string{}
	if form == nil {
		return errs
	}

	switch step {
	case StepShipping:
		requireField(errs, FieldFirstName, form.FirstName, "First name is required")
		requireField(errs, FieldLastName, form.LastName, "Last name is required")
		requireField(errs, FieldAddress, form.Address, "Address is required")
		requireField(errs, FieldCity, form.City, "City is required")
		requireField(errs, FieldState, form.State, "State is required")
		requireField(errs, FieldZip, form.Zip, "ZIP code is required")

		email := strings.TrimSpace(form.Email)
		switch {
		case email == "":
			errs[FieldEmail] = "Email is required"
		case !emailPattern.MatchString(email):
			errs[FieldEmail] = "Email is invalid"
		}

		requireField(errs, FieldPhone, form.Phone, "Phone number is required")

		if form.BillingDifferent {
			requireField(errs, FieldBillingFirstName, form.BillingFirstName, "Billing first name is required")
			requireField(errs, FieldBillingLastName, form.BillingLastName, "Billing last name is required")
			requireField(errs, FieldBillingAddress, form.BillingAddress, "Billing address is required")
			requireField(errs, FieldBillingCity, form.BillingCity, "Billing city is required")
			requireField(errs, FieldBillingState, form.BillingState, "Billing state is required")
			requireField(errs, FieldBillingZip, form.BillingZip, "Billing ZIP code is required")
		}

	case StepPayment:
		card := strings.TrimSpace(form.CardNumber)
		switch {
		case card == "":
			errs[FieldCardNumber] = "Card number is required"
		case len(strings.ReplaceAll(card, " ", "")) < 16:
			errs[FieldCardNumber] = "Card number is invalid"
		}

		requireField(errs, FieldCardExpiry, form.CardExpiry, "Expiry date is required")

		cvv := strings.TrimSpace(form.CardCVV)
		switch {
		case cvv == "":
			errs[FieldCardCVV] = "CVV is required"
		case len(cvv) < 3:
			errs[FieldCardCVV] = "CVV is invalid"
		}

		requireField(errs, FieldCardName, form.CardName, "Cardholder name is required")
	}

	return errs
}

func requireField(errs map[Field]string, field Field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}
