package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atelierhq/atelier/internal/schema"
)

// OrderStore persists customers, carts and orders. Order rows are
// snapshots: item titles, prices and addresses are stored as written and
// never re-derived from the live catalog.
type OrderStore struct {
	db *DB
}

func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) SaveCustomer(c schema.Customer) error {
	_, err := s.db.Exec(`
		INSERT INTO customers (id, email, full_name, default_address_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Email, c.FullName, c.DefaultAddressID, toDBTime(c.CreatedAt), toDBTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
	}
	return nil
}

func (s *OrderStore) SaveCart(c schema.Cart) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO carts (id, customer_id, session_id, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.CustomerID, c.SessionID, c.Currency, toDBTime(c.CreatedAt), toDBTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert cart %s: %w", c.ID, err)
	}

	for i, item := range c.Items {
		if _, err := tx.Exec(`
			INSERT INTO cart_items (cart_id, position, sku_id, quantity)
			VALUES (?, ?, ?, ?)
		`, c.ID, i, item.SkuID, item.Quantity); err != nil {
			return fmt.Errorf("failed to insert cart item %d of cart %s: %w", i, c.ID, err)
		}
	}

	return tx.Commit()
}

func (s *OrderStore) SaveOrder(o schema.Order) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	shippingAddr, err := optionalJSON(o.ShippingAddress, o.ShippingAddress != nil)
	if err != nil {
		return err
	}
	billingAddr, err := optionalJSON(o.BillingAddress, o.BillingAddress != nil)
	if err != nil {
		return err
	}
	subtotal, err := toJSON(o.Subtotal)
	if err != nil {
		return err
	}
	total, err := toJSON(o.Total)
	if err != nil {
		return err
	}
	tax, err := optionalJSON(o.Tax, o.Tax != nil)
	if err != nil {
		return err
	}
	shipping, err := optionalJSON(o.Shipping, o.Shipping != nil)
	if err != nil {
		return err
	}
	discount, err := optionalJSON(o.Discount, o.Discount != nil)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO orders (id, customer_id, email, currency, shipping_address, billing_address,
		                    subtotal, tax, shipping, discount, total,
		                    payment_status, fulfillment_status, stripe_payment_intent_id,
		                    created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.CustomerID, o.Email, o.Currency, shippingAddr, billingAddr,
		subtotal, tax, shipping, discount, total,
		string(o.PaymentStatus), string(o.FulfillmentStatus), o.StripePaymentIntentID,
		toDBTime(o.CreatedAt), toDBTime(o.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", o.ID, err)
	}

	for i, item := range o.Items {
		unitPrice, err := toJSON(item.UnitPrice)
		if err != nil {
			return err
		}
		itemSubtotal, err := toJSON(item.Subtotal)
		if err != nil {
			return err
		}
		itemTax, err := optionalJSON(item.Tax, item.Tax != nil)
		if err != nil {
			return err
		}
		itemTotal, err := toJSON(item.Total)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, position, sku_id, title, artist_name, quantity,
			                         unit_price, subtotal, tax, total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, o.ID, i, item.SkuID, item.Title, item.ArtistName, item.Quantity,
			unitPrice, itemSubtotal, itemTax, itemTotal); err != nil {
			return fmt.Errorf("failed to insert item %d of order %s: %w", i, o.ID, err)
		}
	}

	return tx.Commit()
}

func (s *OrderStore) GetOrder(id string) (schema.Order, error) {
	var (
		o                                 schema.Order
		customerID, stripeID              sql.NullString
		shippingAddr, billingAddr         []byte
		subtotal, tax, shipping, discount []byte
		total                             []byte
		paymentStatus, fulfillmentStatus  string
		createdAt, updatedAt              string
	)
	err := s.db.QueryRow(`
		SELECT id, customer_id, email, currency, shipping_address, billing_address,
		       subtotal, tax, shipping, discount, total,
		       payment_status, fulfillment_status, stripe_payment_intent_id,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM orders WHERE id = ?
	`, id).Scan(&o.ID, &customerID, &o.Email, &o.Currency, &shippingAddr, &billingAddr,
		&subtotal, &tax, &shipping, &discount, &total,
		&paymentStatus, &fulfillmentStatus, &stripeID, &createdAt, &updatedAt)
	if err != nil {
		return schema.Order{}, err
	}

	o.CustomerID = nullableString(customerID)
	o.StripePaymentIntentID = nullableString(stripeID)
	o.PaymentStatus = schema.PaymentStatus(paymentStatus)
	o.FulfillmentStatus = schema.FulfillmentStatus(fulfillmentStatus)

	if err := json.Unmarshal(subtotal, &o.Subtotal); err != nil {
		return schema.Order{}, fmt.Errorf("failed to decode subtotal for order %s: %w", id, err)
	}
	if err := json.Unmarshal(total, &o.Total); err != nil {
		return schema.Order{}, fmt.Errorf("failed to decode total for order %s: %w", id, err)
	}
	if o.Tax, err = decodeOptionalMoney(tax); err != nil {
		return schema.Order{}, err
	}
	if o.Shipping, err = decodeOptionalMoney(shipping); err != nil {
		return schema.Order{}, err
	}
	if o.Discount, err = decodeOptionalMoney(discount); err != nil {
		return schema.Order{}, err
	}
	if o.ShippingAddress, err = decodeOptionalAddress(shippingAddr); err != nil {
		return schema.Order{}, err
	}
	if o.BillingAddress, err = decodeOptionalAddress(billingAddr); err != nil {
		return schema.Order{}, err
	}
	if o.CreatedAt, err = fromDBTime(createdAt); err != nil {
		return schema.Order{}, err
	}
	if o.UpdatedAt, err = fromDBTime(updatedAt); err != nil {
		return schema.Order{}, err
	}

	if o.Items, err = s.orderItems(id); err != nil {
		return schema.Order{}, err
	}
	return o, nil
}

func (s *OrderStore) orderItems(orderID string) ([]schema.OrderItem, error) {
	rows, err := s.db.Query(`
		SELECT sku_id, title, artist_name, quantity, unit_price, subtotal, tax, total
		FROM order_items WHERE order_id = ? ORDER BY position
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []schema.OrderItem{}
	for rows.Next() {
		var (
			it                  schema.OrderItem
			artistName          sql.NullString
			unitPrice, subtotal []byte
			tax, total          []byte
		)
		if err := rows.Scan(&it.SkuID, &it.Title, &artistName, &it.Quantity,
			&unitPrice, &subtotal, &tax, &total); err != nil {
			return nil, err
		}
		it.ArtistName = nullableString(artistName)
		if err := json.Unmarshal(unitPrice, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to decode unit price for order %s: %w", orderID, err)
		}
		if err := json.Unmarshal(subtotal, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to decode subtotal for order %s: %w", orderID, err)
		}
		if err := json.Unmarshal(total, &it.Total); err != nil {
			return nil, fmt.Errorf("failed to decode total for order %s: %w", orderID, err)
		}
		if it.Tax, err = decodeOptionalMoney(tax); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func decodeOptionalMoney(raw []byte) (*schema.Money, error) {
	if raw == nil {
		return nil, nil
	}
	var m schema.Money
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode money column: %w", err)
	}
	return &m, nil
}

func decodeOptionalAddress(raw []byte) (*schema.Address, error) {
	if raw == nil {
		return nil, nil
	}
	var a schema.Address
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("failed to decode address column: %w", err)
	}
	return &a, nil
}
