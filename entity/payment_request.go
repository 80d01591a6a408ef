package entity

// PaymentRequest describes a single payment to be initiated on the Paysera hosted page.
type PaymentRequest struct {
	// Amount in the smallest currency unit (e.g. 1000 = 10.00 EUR)
	Amount int64 `json:"amount"`
	// Currency is an ISO 4217 code, e.g. "EUR"
	Currency  string `json:"currency"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	// OrderId is generated when left empty
	OrderId  string `json:"order_id,omitempty"`
	TestMode bool   `json:"test_mode"`
}

// Validate checks required fields in a fixed order and reports the first missing one.
func (r *PaymentRequest) Validate() error {
	switch {
	case r.Amount <= 0:
		return &ValidationError{Field: "amount", Reason: "is a required field and must be specified in cents"}
	case r.Currency == "":
		return &ValidationError{Field: "currency"}
	case r.FirstName == "":
		return &ValidationError{Field: "firstName"}
	case r.LastName == "":
		return &ValidationError{Field: "lastName"}
	case r.Email == "":
		return &ValidationError{Field: "email"}
	}
	return nil
}
