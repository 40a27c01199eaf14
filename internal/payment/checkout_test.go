package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"
)

type fakeCreator struct {
	calls  int
	params *stripe.CheckoutSessionParams
	err    error
}

func (f *fakeCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123"}, nil
}

func TestCreateCheckoutRejectsNonPositiveAmounts(t *testing.T) {
	fake := &fakeCreator{}
	c := NewClientWithCreator(fake, "http://localhost:8080", "mxn")

	for _, amount := range []float64{0, -1, -879.5} {
		_, err := c.CreateCheckout(context.Background(), CheckoutRequest{
			Amount:     amount,
			PolicyID:   "axa-plus",
			PolicyName: "AXA Auto Plus",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
	assert.Zero(t, fake.calls, "no session may be created for a rejected amount")
}

func TestCreateCheckoutBuildsSessionParams(t *testing.T) {
	fake := &fakeCreator{}
	c := NewClientWithCreator(fake, "http://localhost:8080/", "mxn")

	resp, err := c.CreateCheckout(context.Background(), CheckoutRequest{
		Amount:        879,
		PolicyID:      "axa-plus",
		PolicyName:    "AXA Auto Plus",
		CustomerEmail: "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.ID)
	require.Equal(t, 1, fake.calls)

	p := fake.params
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *p.Mode)
	require.Len(t, p.LineItems, 1)
	item := p.LineItems[0]
	assert.Equal(t, int64(87900), *item.PriceData.UnitAmount)
	assert.Equal(t, "mxn", *item.PriceData.Currency)
	assert.Equal(t, "Seguro AXA Auto Plus", *item.PriceData.ProductData.Name)
	assert.Equal(t, "axa-plus", item.PriceData.ProductData.Metadata["policyId"])
	assert.Equal(t, int64(1), *item.Quantity)
	assert.Equal(t, "http://localhost:8080/success?session_id={CHECKOUT_SESSION_ID}", *p.SuccessURL)
	assert.Equal(t, "http://localhost:8080/cancel", *p.CancelURL)
	assert.Equal(t, "maria@example.com", *p.CustomerEmail)
	assert.Equal(t, "axa-plus", p.Metadata["policyId"])
	assert.Equal(t, "AXA Auto Plus", p.Metadata["policyName"])
}

func TestCreateCheckoutRoundsFractionalCentavos(t *testing.T) {
	fake := &fakeCreator{}
	c := NewClientWithCreator(fake, "http://localhost:8080", "mxn")

	_, err := c.CreateCheckout(context.Background(), CheckoutRequest{
		Amount:     10.555,
		PolicyID:   "p",
		PolicyName: "n",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1056), *fake.params.LineItems[0].PriceData.UnitAmount)
}

func TestCreateCheckoutCurrencyOverride(t *testing.T) {
	fake := &fakeCreator{}
	c := NewClientWithCreator(fake, "http://localhost:8080", "mxn")

	_, err := c.CreateCheckout(context.Background(), CheckoutRequest{
		Amount:     5,
		Currency:   "usd",
		PolicyID:   "p",
		PolicyName: "n",
	})
	require.NoError(t, err)
	assert.Equal(t, "usd", *fake.params.LineItems[0].PriceData.Currency)
}

func TestCreateCheckoutWrapsProviderError(t *testing.T) {
	boom := errors.New("stripe is down")
	fake := &fakeCreator{err: boom}
	c := NewClientWithCreator(fake, "http://localhost:8080", "mxn")

	_, err := c.CreateCheckout(context.Background(), CheckoutRequest{
		Amount:     5,
		PolicyID:   "p",
		PolicyName: "n",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidAmount)
}
