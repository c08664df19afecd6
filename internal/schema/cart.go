package schema

// CartItem references a SKU awaiting purchase.
type CartItem struct {
	SkuID    string `json:"skuId"`
	Quantity int    `json:"quantity"`
}

// Cart holds items for a customer or an anonymous session. Neither
// CustomerID nor SessionID is required and both may be present; the shape
// deliberately declares no exclusivity between them.
type Cart struct {
	ID         string     `json:"id"`
	CustomerID *string    `json:"customerId,omitempty"`
	SessionID  *string    `json:"sessionId,omitempty"`
	Currency   string     `json:"currency"`
	Items      []CartItem `json:"items"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

func DecodeCartItem(input any) (CartItem, error) {
	vs := &violations{}
	it := decodeCartItem(input, "", vs)
	if err := vs.asError(); err != nil {
		return CartItem{}, err
	}
	return it, nil
}

func decodeCartItem(v any, path string, vs *violations) CartItem {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return CartItem{}
	}
	var it CartItem
	it.SkuID = obj.id("skuId")
	it.Quantity = obj.positiveInt("quantity")
	return it
}

func DecodeCart(input any) (Cart, error) {
	vs := &violations{}
	c := decodeCart(input, "", vs)
	if err := vs.asError(); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func decodeCart(v any, path string, vs *violations) Cart {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Cart{}
	}
	var c Cart
	c.ID = obj.id("id")
	c.CustomerID = obj.optionalID("customerId")
	c.SessionID = obj.optionalNonEmptyString("sessionId")
	c.Currency = obj.currency("currency")
	c.Items = decodeCartItems(obj, "items")
	c.CreatedAt = obj.dateTime("createdAt")
	c.UpdatedAt = obj.dateTime("updatedAt")
	return c
}

func decodeCartItems(o object, name string) []CartItem {
	out := []CartItem{}
	for i, el := range o.elementsDefault(name) {
		out = append(out, decodeCartItem(el, indexPath(o.key(name), i), o.vs))
	}
	return out
}
