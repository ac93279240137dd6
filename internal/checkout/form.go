package checkout

import (
	"fmt"
	"strconv"

	"github.com/bloomcart/checkout-backend/pkg/enums"
	pkgerrors "github.com/bloomcart/checkout-backend/pkg/errors"

	"github.com/bloomcart/checkout-backend/internal/profile"
)

// FormState is the single source of truth for every value the user has
// entered across all three checkout steps. Mutation goes through Set only.
type FormState struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`

	BillingDifferent bool   `json:"billing_different"`
	BillingFirstName string `json:"billing_first_name"`
	BillingLastName  string `json:"billing_last_name"`
	BillingAddress   string `json:"billing_address"`
	BillingCity      string `json:"billing_city"`
	BillingState     string `json:"billing_state"`
	BillingZip       string `json:"billing_zip"`
	BillingCountry   string `json:"billing_country"`

	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	CardName   string `json:"card_name"`

	ShippingMethod       enums.ShippingMethod `json:"shipping_method"`
	DeliveryInstructions string               `json:"delivery_instructions"`
	IsGift               bool                 `json:"is_gift"`
	GiftMessage          string               `json:"gift_message"`
}

// NewFormState returns a blank form with defaults, optionally seeded from the
// user's saved profile.
func NewFormState(seed *profile.Profile) FormState {
	form := FormState{
		Country:        "United States",
		ShippingMethod: enums.ShippingMethodStandard,
	}
	if seed != nil {
		form.FirstName = seed.FirstName
		form.LastName = seed.LastName
		form.Email = seed.Email
		form.Phone = seed.Phone
		form.Address = seed.Address
		form.City = seed.City
		form.State = seed.State
		form.Zip = seed.Zip
		if seed.Country != "" {
			form.Country = seed.Country
		}
	}
	return form
}

// Set replaces one field's value. Card number and expiry pass through their
// formatters before storage, so the stored value is always the display form.
func (f *FormState) Set(field Field, value string) error {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldAddress:
		f.Address = value
	case FieldCity:
		f.City = value
	case FieldState:
		f.State = value
	case FieldZip:
		f.Zip = value
	case FieldCountry:
		f.Country = value
	case FieldBillingDifferent:
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s expects a boolean, got %q", field, value))
		}
		f.BillingDifferent = flag
	case FieldBillingFirstName:
		f.BillingFirstName = value
	case FieldBillingLastName:
		f.BillingLastName = value
	case FieldBillingAddress:
		f.BillingAddress = value
	case FieldBillingCity:
		f.BillingCity = value
	case FieldBillingState:
		f.BillingState = value
	case FieldBillingZip:
		f.BillingZip = value
	case FieldBillingCountry:
		f.BillingCountry = value
	case FieldCardNumber:
		f.CardNumber = FormatCardNumber(value)
	case FieldCardExpiry:
		f.CardExpiry = FormatExpiry(value)
	case FieldCardCVV:
		f.CardCVV = value
	case FieldCardName:
		f.CardName = value
	case FieldShippingMethod:
		method, err := enums.ParseShippingMethod(value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping method")
		}
		f.ShippingMethod = method
	case FieldDeliveryInstructions:
		f.DeliveryInstructions = value
	case FieldIsGift:
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s expects a boolean, got %q", field, value))
		}
		f.IsGift = flag
	case FieldGiftMessage:
		f.GiftMessage = value
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown field %q", field))
	}
	return nil
}
