package entity

import "fmt"

// MerchantConfig holds the Paysera project credentials and redirect URLs.
// It is validated once at construction and is read-only afterwards.
type MerchantConfig struct {
	projectId    string
	signPassword string
	acceptUrl    string
	cancelUrl    string
	callbackUrl  string
}

// NewMerchantConfig fails when the project id or the sign password is empty.
// Redirect URLs are optional.
func NewMerchantConfig(projectId, signPassword, acceptUrl, cancelUrl, callbackUrl string) (*MerchantConfig, error) {
	if projectId == "" {
		return nil, fmt.Errorf("%w: project id is required", ErrConfiguration)
	}
	if signPassword == "" {
		return nil, fmt.Errorf("%w: sign password is required", ErrConfiguration)
	}
	return &MerchantConfig{
		projectId:    projectId,
		signPassword: signPassword,
		acceptUrl:    acceptUrl,
		cancelUrl:    cancelUrl,
		callbackUrl:  callbackUrl,
	}, nil
}

func (c *MerchantConfig) ProjectId() string    { return c.projectId }
func (c *MerchantConfig) SignPassword() string { return c.signPassword }
func (c *MerchantConfig) AcceptUrl() string    { return c.acceptUrl }
func (c *MerchantConfig) CancelUrl() string    { return c.cancelUrl }
func (c *MerchantConfig) CallbackUrl() string  { return c.callbackUrl }
