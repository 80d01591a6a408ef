package services

import "paysera/entity"

// Payments builds signed payment URLs and authenticates gateway callbacks.
type Payments interface {
	BuildPaymentUrl(request *entity.PaymentRequest) (string, error)
	ValidateCallback(payload map[string]string) (bool, error)
}
