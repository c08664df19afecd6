package schema

// PaymentStatus values come from the payment provider integration. No
// transition logic is defined here.
type PaymentStatus string

const (
	PaymentRequiresPayment PaymentStatus = "requires_payment"
	PaymentPaid            PaymentStatus = "paid"
	PaymentRefunded        PaymentStatus = "refunded"
	PaymentFailed          PaymentStatus = "failed"
	PaymentCanceled        PaymentStatus = "canceled"
)

var paymentStatuses = []string{
	"requires_payment", "paid", "refunded", "failed", "canceled",
}

type FulfillmentStatus string

const (
	FulfillmentUnfulfilled      FulfillmentStatus = "unfulfilled"
	FulfillmentProcessing       FulfillmentStatus = "processing"
	FulfillmentShipped          FulfillmentStatus = "shipped"
	FulfillmentDelivered        FulfillmentStatus = "delivered"
	FulfillmentDigitalDelivered FulfillmentStatus = "digital_delivered"
	FulfillmentReturned         FulfillmentStatus = "returned"
	FulfillmentCanceled         FulfillmentStatus = "canceled"
)

var fulfillmentStatuses = []string{
	"unfulfilled", "processing", "shipped", "delivered",
	"digital_delivered", "returned", "canceled",
}

// OrderItem is a point-in-time snapshot of what was bought. Title, artist
// name and prices are copied at purchase time so catalog edits never
// rewrite order history.
type OrderItem struct {
	SkuID      string  `json:"skuId"`
	Title      string  `json:"title"`
	ArtistName *string `json:"artistName,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  Money   `json:"unitPrice"`
	Subtotal   Money   `json:"subtotal"`
	Tax        *Money  `json:"tax,omitempty"`
	Total      Money   `json:"total"`
}

// Order is the immutable purchase record. Addresses are embedded by value,
// items must be non-empty.
type Order struct {
	ID                    string            `json:"id"`
	CustomerID            *string           `json:"customerId,omitempty"`
	Email                 string            `json:"email"`
	Currency              string            `json:"currency"`
	Items                 []OrderItem       `json:"items"`
	ShippingAddress       *Address          `json:"shippingAddress,omitempty"`
	BillingAddress        *Address          `json:"billingAddress,omitempty"`
	Subtotal              Money             `json:"subtotal"`
	Tax                   *Money            `json:"tax,omitempty"`
	Shipping              *Money            `json:"shipping,omitempty"`
	Discount              *Money            `json:"discount,omitempty"`
	Total                 Money             `json:"total"`
	PaymentStatus         PaymentStatus     `json:"paymentStatus"`
	FulfillmentStatus     FulfillmentStatus `json:"fulfillmentStatus"`
	StripePaymentIntentID *string           `json:"stripePaymentIntentId,omitempty"`
	CreatedAt             string            `json:"createdAt"`
	UpdatedAt             string            `json:"updatedAt"`
}

func DecodePaymentStatus(input any) (PaymentStatus, error) {
	s, err := decodeEnumValue(input, paymentStatuses)
	if err != nil {
		return "", err
	}
	return PaymentStatus(s), nil
}

func DecodeFulfillmentStatus(input any) (FulfillmentStatus, error) {
	s, err := decodeEnumValue(input, fulfillmentStatuses)
	if err != nil {
		return "", err
	}
	return FulfillmentStatus(s), nil
}

func DecodeOrderItem(input any) (OrderItem, error) {
	vs := &violations{}
	it := decodeOrderItem(input, "", vs)
	if err := vs.asError(); err != nil {
		return OrderItem{}, err
	}
	return it, nil
}

func decodeOrderItem(v any, path string, vs *violations) OrderItem {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return OrderItem{}
	}
	var it OrderItem
	it.SkuID = obj.id("skuId")
	it.Title = obj.nonEmptyString("title")
	it.ArtistName = obj.optionalNonEmptyString("artistName")
	it.Quantity = obj.positiveInt("quantity")
	it.UnitPrice = obj.money("unitPrice")
	it.Subtotal = obj.money("subtotal")
	it.Tax = obj.optionalMoney("tax")
	it.Total = obj.money("total")
	return it
}

func DecodeOrder(input any) (Order, error) {
	vs := &violations{}
	o := decodeOrder(input, "", vs)
	if err := vs.asError(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func decodeOrder(v any, path string, vs *violations) Order {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Order{}
	}
	var ord Order
	ord.ID = obj.id("id")
	ord.CustomerID = obj.optionalID("customerId")
	ord.Email = obj.email("email")
	ord.Currency = obj.currency("currency")
	ord.Items = decodeOrderItems(obj, "items")
	if raw, ok := obj.get("shippingAddress"); ok {
		a := decodeAddress(raw, obj.key("shippingAddress"), vs)
		ord.ShippingAddress = &a
	}
	if raw, ok := obj.get("billingAddress"); ok {
		a := decodeAddress(raw, obj.key("billingAddress"), vs)
		ord.BillingAddress = &a
	}
	ord.Subtotal = obj.money("subtotal")
	ord.Tax = obj.optionalMoney("tax")
	ord.Shipping = obj.optionalMoney("shipping")
	ord.Discount = obj.optionalMoney("discount")
	ord.Total = obj.money("total")
	ord.PaymentStatus = PaymentStatus(obj.enum("paymentStatus", paymentStatuses))
	ord.FulfillmentStatus = FulfillmentStatus(obj.enum("fulfillmentStatus", fulfillmentStatuses))
	ord.StripePaymentIntentID = obj.optionalNonEmptyString("stripePaymentIntentId")
	ord.CreatedAt = obj.dateTime("createdAt")
	ord.UpdatedAt = obj.dateTime("updatedAt")
	return ord
}

// decodeOrderItems differs from the cart variant: items has no default and
// must contain at least one element.
func decodeOrderItems(o object, name string) []OrderItem {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return []OrderItem{}
	}
	arr, ok := raw.([]any)
	if !ok {
		o.vs.add(o.key(name), ruleArray)
		return []OrderItem{}
	}
	if len(arr) == 0 {
		o.vs.add(o.key(name), "must contain at least one item")
		return []OrderItem{}
	}
	out := make([]OrderItem, 0, len(arr))
	for i, el := range arr {
		out = append(out, decodeOrderItem(el, indexPath(o.key(name), i), o.vs))
	}
	return out
}
