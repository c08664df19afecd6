package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderItemLiteral() string {
	return `{
		"skuId": "` + testID2 + `",
		"title": "Blue Study (A2 print)",
		"artistName": "Mira Kovacs",
		"quantity": 2,
		"unitPrice": {"currency": "USD", "amount": 18000},
		"subtotal": {"currency": "USD", "amount": 36000},
		"total": {"currency": "USD", "amount": 36000}
	}`
}

func validOrderLiteral(paymentStatus, items string) string {
	return `{
		"id": "` + testID + `",
		"email": "buyer@example.com",
		"currency": "USD",
		"items": ` + items + `,
		"subtotal": {"currency": "USD", "amount": 36000},
		"total": {"currency": "USD", "amount": 36000},
		"paymentStatus": "` + paymentStatus + `",
		"fulfillmentStatus": "unfulfilled",
		"createdAt": "` + testCreatedAt + `",
		"updatedAt": "` + testUpdatedAt + `"
	}`
}

func TestDecodeOrderItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		it, err := DecodeOrderItem(jsonValue(t, validOrderItemLiteral()))
		require.NoError(t, err)
		assert.Equal(t, 2, it.Quantity)
		assert.Equal(t, Money{Currency: "USD", Amount: 36000}, it.Total)
		assert.Nil(t, it.Tax)
	})

	t.Run("missing snapshot fields", func(t *testing.T) {
		_, err := DecodeOrderItem(jsonValue(t, `{"skuId": "`+testID2+`"}`))
		assert.Equal(t,
			[]string{"title", "quantity", "unitPrice", "subtotal", "total"},
			violationPaths(t, err))
	})
}

func TestDecodeOrder(t *testing.T) {
	t.Run("valid single item", func(t *testing.T) {
		o, err := DecodeOrder(jsonValue(t, validOrderLiteral("paid", "["+validOrderItemLiteral()+"]")))
		require.NoError(t, err)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		assert.Equal(t, FulfillmentUnfulfilled, o.FulfillmentStatus)
		require.Len(t, o.Items, 1)
		assert.Nil(t, o.CustomerID)
		assert.Nil(t, o.ShippingAddress)
	})

	t.Run("empty items fail", func(t *testing.T) {
		_, err := DecodeOrder(jsonValue(t, validOrderLiteral("paid", "[]")))
		assert.Equal(t, []string{"items"}, violationPaths(t, err))
	})

	t.Run("missing items fail", func(t *testing.T) {
		_, err := DecodeOrder(jsonValue(t, `{
			"id": "`+testID+`",
			"email": "buyer@example.com",
			"currency": "USD",
			"subtotal": {"currency": "USD", "amount": 0},
			"total": {"currency": "USD", "amount": 0},
			"paymentStatus": "paid",
			"fulfillmentStatus": "unfulfilled",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Contains(t, violationPaths(t, err), "items")
	})

	t.Run("payment status is case-sensitive and closed", func(t *testing.T) {
		for _, status := range []string{"PAID", "pending", "Paid", ""} {
			_, err := DecodeOrder(jsonValue(t, validOrderLiteral(status, "["+validOrderItemLiteral()+"]")))
			assert.Equal(t, []string{"paymentStatus"}, violationPaths(t, err), "status %q", status)
		}
	})

	t.Run("embedded addresses validated", func(t *testing.T) {
		literal := `{
			"id": "` + testID + `",
			"customerId": "` + testID3 + `",
			"email": "buyer@example.com",
			"currency": "USD",
			"items": [` + validOrderItemLiteral() + `],
			"shippingAddress": {
				"id": "` + testID2 + `",
				"fullName": "Jordan Baker",
				"line1": "221B Harbor Lane",
				"city": "Portsmouth",
				"postalCode": "PO1 2AB",
				"countryCode": "GBR"
			},
			"subtotal": {"currency": "USD", "amount": 36000},
			"tax": {"currency": "USD", "amount": 3600},
			"shipping": {"currency": "USD", "amount": 1500},
			"total": {"currency": "USD", "amount": 41100},
			"paymentStatus": "requires_payment",
			"fulfillmentStatus": "processing",
			"stripePaymentIntentId": "pi_3MtwBwLkdIwHu7ix28a3tqPa",
			"createdAt": "` + testCreatedAt + `",
			"updatedAt": "` + testUpdatedAt + `"
		}`
		_, err := DecodeOrder(jsonValue(t, literal))
		assert.Equal(t, []string{"shippingAddress.countryCode"}, violationPaths(t, err))
	})

	t.Run("all monetary violations reported together", func(t *testing.T) {
		literal := validOrderLiteral("paid", `[{
			"skuId": "`+testID2+`",
			"title": "Blue Study (A2 print)",
			"quantity": 0,
			"unitPrice": {"currency": "usd", "amount": 18000},
			"subtotal": {"currency": "USD", "amount": -1},
			"total": {"currency": "USD", "amount": 36000}
		}]`)
		_, err := DecodeOrder(jsonValue(t, literal))
		assert.Equal(t, []string{
			"items[0].quantity",
			"items[0].unitPrice.currency",
			"items[0].subtotal.amount",
		}, violationPaths(t, err))
	})
}

func TestOrderRevalidationIsIdempotent(t *testing.T) {
	first, err := DecodeOrder(jsonValue(t, validOrderLiteral("paid", "["+validOrderItemLiteral()+"]")))
	require.NoError(t, err)

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped any
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	second, err := DecodeOrder(roundTripped)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodePaymentStatus(t *testing.T) {
	got, err := DecodePaymentStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, PaymentRefunded, got)

	_, err = DecodePaymentStatus("REFUNDED")
	assert.Error(t, err)
}

func TestDecodeFulfillmentStatus(t *testing.T) {
	got, err := DecodeFulfillmentStatus("digital_delivered")
	require.NoError(t, err)
	assert.Equal(t, FulfillmentDigitalDelivered, got)

	_, err = DecodeFulfillmentStatus("digital-delivered")
	assert.Error(t, err)
}

func TestErrorMessageListsEveryViolation(t *testing.T) {
	_, err := DecodeMoney(jsonValue(t, `{"currency": "usd", "amount": -5}`))
	require.Error(t, err)
	assert.Equal(t,
		"validation failed: currency: must be a 3-letter uppercase currency code; amount: must not be negative",
		err.Error())
}
