package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/plutov/paypal/v4"
)

// PayPalClient implements PayPalGateway against the PayPal Orders API.
type PayPalClient struct {
	client *paypal.Client
}

func NewPayPalClient(clientID, secret string, live bool) (*PayPalClient, error) {
	base := paypal.APIBaseSandBox
	if live {
		base = paypal.APIBaseLive
	}
	c, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, err
	}
	return &PayPalClient{client: c}, nil
}

// CreateOrder creates a capture-intent order with the caller's user id as the
// purchase unit's custom id.
func (p *PayPalClient) CreateOrder(ctx context.Context, userID string, amountCents int64, currency string) (string, string, error) {
	units := []paypal.PurchaseUnitRequest{{
		CustomID: userID,
		Amount: &paypal.PurchaseUnitAmount{
			Currency: strings.ToUpper(currency),
			Value:    centsToDecimal(amountCents),
		},
	}}
	order, err := p.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, nil)
	if err != nil {
		return "", "", err
	}

	approveURL := ""
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
			break
		}
	}
	return order.ID, approveURL, nil
}

// CaptureOrder captures an approved order. The owner is read from the order's
// purchase unit before capture, since capture responses do not always echo it.
func (p *PayPalClient) CaptureOrder(ctx context.Context, orderID string) (ProviderResult, error) {
	order, err := p.client.GetOrder(ctx, orderID)
	if err != nil {
		return ProviderResult{}, err
	}
	owner := ""
	if len(order.PurchaseUnits) > 0 {
		owner = order.PurchaseUnits[0].CustomID
	}

	capture, err := p.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return ProviderResult{OwnerID: owner}, err
	}
	return ProviderResult{
		Succeeded: capture.Status == "COMPLETED",
		OwnerID:   owner,
	}, nil
}

func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

var _ PayPalGateway = (*PayPalClient)(nil)
