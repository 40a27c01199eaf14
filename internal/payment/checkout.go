// Package payment creates hosted checkout sessions for the simulated
// premium charge. The only local obligation is rejecting non-positive
// amounts before anything leaves the process.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// CheckoutRequest mirrors the payload the quoting UI submits.
type CheckoutRequest struct {
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency,omitempty"`
	PolicyID      string            `json:"policy_id"`
	PolicyName    string            `json:"policy_name"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type CheckoutResponse struct {
	ID string `json:"id"`
}

// SessionCreator creates a hosted checkout session. Tests substitute a
// fake; production uses the Stripe client.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeCreator struct{}

func (stripeCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

type Client struct {
	creator  SessionCreator
	baseURL  string
	currency string
}

// NewClient configures the Stripe-backed client. The base URL anchors
// the success and cancel redirects.
func NewClient(secretKey, baseURL, defaultCurrency string) *Client {
	stripe.Key = secretKey
	return newClient(stripeCreator{}, baseURL, defaultCurrency)
}

// NewClientWithCreator is the test seam.
func NewClientWithCreator(creator SessionCreator, baseURL, defaultCurrency string) *Client {
	return newClient(creator, baseURL, defaultCurrency)
}

func newClient(creator SessionCreator, baseURL, defaultCurrency string) *Client {
	return &Client{
		creator:  creator,
		baseURL:  strings.TrimRight(baseURL, "/"),
		currency: defaultCurrency,
	}
}

// CreateCheckout validates the amount, converts it to centavos and
// creates a single-payment checkout session for the chosen policy.
// No retry; failures surface once and the caller re-triggers.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(cents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String("Seguro " + req.PolicyName),
					Metadata: map[string]string{"policyId": req.PolicyID},
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(c.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(c.baseURL + "/cancel"),
	}
	params.Context = ctx
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata("policyId", req.PolicyID)
	params.AddMetadata("policyName", req.PolicyName)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := c.creator.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutResponse{ID: s.ID}, nil
}
