package internal

import (
	"fmt"
	"github.com/oklog/ulid/v2"
	"net/url"
	"paysera/entity"
)

const (
	defaultPayUrl = "https://www.paysera.com/pay/"
	signField     = "sign"
)

// Paysera builds signed redirect URLs for the Paysera hosted payment page
// and authenticates payment-status callbacks. It holds no mutable state after
// construction and is safe for concurrent use.
type Paysera struct {
	merchant   *entity.MerchantConfig
	signer     *Signer
	payUrl     string
	newOrderId func() string
}

func NewPaysera(merchant *entity.MerchantConfig) *Paysera {
	return &Paysera{
		merchant:   merchant,
		signer:     NewSigner(merchant.SignPassword()),
		payUrl:     defaultPayUrl,
		newOrderId: generateOrderId,
	}
}

// SetPayUrl overrides the gateway endpoint; an empty value keeps the default.
func (p *Paysera) SetPayUrl(payUrl string) {
	if payUrl != "" {
		p.payUrl = payUrl
	}
}

// SetOrderIdGenerator replaces the generator used for requests without an order id.
// Must be called before the adapter is shared between goroutines.
func (p *Paysera) SetOrderIdGenerator(generator func() string) {
	if generator != nil {
		p.newOrderId = generator
	}
}

// BuildPaymentUrl validates the request, signs the payment parameters and
// returns the gateway URL the customer should be redirected to.
func (p *Paysera) BuildPaymentUrl(request *entity.PaymentRequest) (string, error) {
	if request == nil {
		return "", &entity.ValidationError{Field: "amount", Reason: "is a required field and must be specified in cents"}
	}
	if err := request.Validate(); err != nil {
		return "", err
	}

	orderId := request.OrderId
	if orderId == "" {
		orderId = p.newOrderId()
	}

	test := "0"
	if request.TestMode {
		test = "1"
	}

	fields := map[string]interface{}{
		"projectid":   p.merchant.ProjectId(),
		"orderid":     orderId,
		"accepturl":   p.merchant.AcceptUrl(),
		"cancelurl":   p.merchant.CancelUrl(),
		"callbackurl": p.merchant.CallbackUrl(),
		"amount":      request.Amount,
		"currency":    request.Currency,
		"p_firstname": request.FirstName,
		"p_lastname":  request.LastName,
		"p_email":     request.Email,
		"test":        test,
	}
	signature := p.signer.Sign(fields)

	query := url.Values{}
	for key, value := range fields {
		query.Set(key, fmt.Sprint(value))
	}
	query.Set(signField, signature)

	return p.payUrl + "?" + query.Encode(), nil
}

// ValidateCallback reports whether the callback signature matches the rest of
// the payload. A payload without a signature is malformed and returns an error;
// a wrong signature is not an error.
func (p *Paysera) ValidateCallback(payload map[string]string) (bool, error) {
	if len(payload) == 0 {
		return false, entity.ErrMalformedCallback
	}
	received, ok := payload[signField]
	if !ok || received == "" {
		return false, fmt.Errorf("%w: missing %s", entity.ErrMalformedCallback, signField)
	}

	fields := make(map[string]interface{}, len(payload)-1)
	for key, value := range payload {
		if key == signField {
			continue
		}
		fields[key] = value
	}

	return p.signer.Verify(fields, received), nil
}

func generateOrderId() string {
	return ulid.Make().String()
}
