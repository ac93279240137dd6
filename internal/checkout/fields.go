package checkout

import "fmt"

// Field identifies one checkout form field. Handlers parse client input into
// this type so an unknown field name is rejected at the boundary instead of
// landing in an open string-keyed map.
type Field string

const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldAddress   Field = "address"
	FieldCity      Field = "city"
	FieldState     Field = "state"
	FieldZip       Field = "zip"
	FieldCountry   Field = "country"

	FieldBillingDifferent Field = "billing_different"
	FieldBillingFirstName Field = "billing_first_name"
	FieldBillingLastName  Field = "billing_last_name"
	FieldBillingAddress   Field = "billing_address"
	FieldBillingCity      Field = "billing_city"
	FieldBillingState     Field = "billing_state"
	FieldBillingZip       Field = "billing_zip"
	FieldBillingCountry   Field = "billing_country"

	FieldCardNumber Field = "card_number"
	FieldCardExpiry Field = "card_expiry"
	FieldCardCVV    Field = "card_cvv"
	FieldCardName   Field = "card_name"

	FieldShippingMethod       Field = "shipping_method"
	FieldDeliveryInstructions Field = "delivery_instructions"
	FieldIsGift               Field = "is_gift"
	FieldGiftMessage          Field = "gift_message"
)

var validFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZip,
	FieldCountry,
	FieldBillingDifferent,
	FieldBillingFirstName,
	FieldBillingLastName,
	FieldBillingAddress,
	FieldBillingCity,
	FieldBillingState,
	FieldBillingZip,
	FieldBillingCountry,
	FieldCardNumber,
	FieldCardExpiry,
	FieldCardCVV,
	FieldCardName,
	FieldShippingMethod,
	FieldDeliveryInstructions,
	FieldIsGift,
	FieldGiftMessage,
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Field.
func (f Field) IsValid() bool {
	for _, candidate := range validFields {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseField converts raw input into a Field.
func ParseField(value string) (Field, error) {
	for _, candidate := range validFields {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout field %q", value)
}
