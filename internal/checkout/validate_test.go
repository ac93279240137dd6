package checkout

import "testing"

func validShippingForm() FormState {
	form := NewFormState(nil)
	form.FirstName = "Jane"
	form.LastName = "Doe"
	form.Email = "jane@example.com"
	form.Phone = "555-0100"
	form.Address = "1 Main St"
	form.City = "Portland"
	form.State = "OR"
	form.Zip = "97201"
	return form
}

func validPaymentForm() FormState {
	form := validShippingForm()
	form.CardNumber = FormatCardNumber("4242424242424242")
	form.CardExpiry = FormatExpiry("1228")
	form.CardCVV = "123"
	form.CardName = "Jane Doe"
	return form
}

func TestValidateShippingEmptyForm(t *testing.T) {
	form := FormState{}
	errs := ValidateStep(StepShipping, &form)

	want := map[Field]string{
		FieldFirstName: "First name is required",
		FieldLastName:  "Last name is required",
		FieldAddress:   "Address is required",
		FieldCity:      "City is required",
		FieldState:     "State is required",
		FieldZip:       "ZIP code is required",
		FieldEmail:     "Email is required",
		FieldPhone:     "Phone number is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: got %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidateShippingWhitespaceCountsAsEmpty(t *testing.T) {
	form := validShippingForm()
	form.City = "   "
	errs := ValidateStep(StepShipping, &form)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[FieldCity] != "City is required" {
		t.Fatalf("unexpected error %q", errs[FieldCity])
	}
}

func TestValidateEmail(t *testing.T) {
	form := validShippingForm()

	form.Email = "a@b.c"
	if errs := ValidateStep(StepShipping, &form); len(errs) != 0 {
		t.Fatalf("expected a@b.c to validate, got %v", errs)
	}

	form.Email = "not-an-email"
	errs := ValidateStep(StepShipping, &form)
	if errs[FieldEmail] != "Email is invalid" {
		t.Fatalf("expected invalid email error, got %q", errs[FieldEmail])
	}

	form.Email = ""
	errs = ValidateStep(StepShipping, &form)
	if errs[FieldEmail] != "Email is required" {
		t.Fatalf("expected required email error, got %q", errs[FieldEmail])
	}
}

func TestValidateBillingGroupOnlyWhenDifferent(t *testing.T) {
	form := validShippingForm()
	form.BillingDifferent = false
	if errs := ValidateStep(StepShipping, &form); len(errs) != 0 {
		t.Fatalf("billing fields must not validate when flag is off, got %v", errs)
	}

	form.BillingDifferent = true
	errs := ValidateStep(StepShipping, &form)
	wantFields := []Field{
		FieldBillingFirstName,
		FieldBillingLastName,
		FieldBillingAddress,
		FieldBillingCity,
		FieldBillingState,
		FieldBillingZip,
	}
	if len(errs) != len(wantFields) {
		t.Fatalf("expected %d billing errors, got %d: %v", len(wantFields), len(errs), errs)
	}
	for _, field := range wantFields {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing billing error for %s", field)
		}
	}
	if errs[FieldBillingZip] != "Billing ZIP code is required" {
		t.Fatalf("unexpected billing zip message %q", errs[FieldBillingZip])
	}
}

func TestValidatePayment(t *testing.T) {
	form := validPaymentForm()
	if errs := ValidateStep(StepPayment, &form); len(errs) != 0 {
		t.Fatalf("expected valid payment form, got %v", errs)
	}

	// Twelve digits is short of a full card number.
	form.CardNumber = FormatCardNumber("411111111111")
	errs := ValidateStep(StepPayment, &form)
	if errs[FieldCardNumber] != "Card number is invalid" {
		t.Fatalf("expected short card error, got %q", errs[FieldCardNumber])
	}

	// Grouping spaces do not count toward the length check.
	form.CardNumber = "4111 1111 1111 1111"
	if errs := ValidateStep(StepPayment, &form); len(errs) != 0 {
		t.Fatalf("grouped 16-digit card must pass, got %v", errs)
	}

	form = validPaymentForm()
	form.CardCVV = "12"
	errs = ValidateStep(StepPayment, &form)
	if errs[FieldCardCVV] != "CVV is invalid" {
		t.Fatalf("expected short cvv error, got %q", errs[FieldCardCVV])
	}

	form = FormState{}
	errs = ValidateStep(StepPayment, &form)
	want := map[Field]string{
		FieldCardNumber: "Card number is required",
		FieldCardExpiry: "Expiry date is required",
		FieldCardCVV:    "CVV is required",
		FieldCardName:   "Cardholder name is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: got %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidateReviewHasNoRules(t *testing.T) {
	form := FormState{}
	if errs := ValidateStep(StepReview, &form); len(errs) != 0 {
		t.Fatalf("review step must not validate fields, got %v", errs)
	}
}

func TestStepClamping(t *testing.T) {
	if got := StepReview.Next(); got != StepReview {
		t.Fatalf("Next must clamp at review, got %v", got)
	}
	if got := StepShipping.Prev(); got != StepShipping {
		t.Fatalf("Prev must clamp at shipping, got %v", got)
	}
	if got := StepShipping.Next(); got != StepPayment {
		t.Fatalf("expected payment, got %v", got)
	}
}
