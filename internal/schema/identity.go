package schema

// Address is a postal address. Orders embed it by value so the snapshot
// survives later edits to the customer's address book.
type Address struct {
	ID          string  `json:"id"`
	Label       *string `json:"label,omitempty"`
	FullName    string  `json:"fullName"`
	Line1       string  `json:"line1"`
	Line2       *string `json:"line2,omitempty"`
	City        string  `json:"city"`
	Region      *string `json:"region,omitempty"`
	PostalCode  string  `json:"postalCode"`
	CountryCode string  `json:"countryCode"`
}

// Customer is a profile extension over the external auth provider.
// DefaultAddressID is a reference into the address book, not an embedded
// Address.
type Customer struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FullName         *string `json:"fullName,omitempty"`
	DefaultAddressID *string `json:"defaultAddressId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

func DecodeAddress(input any) (Address, error) {
	vs := &violations{}
	a := decodeAddress(input, "", vs)
	if err := vs.asError(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func decodeAddress(v any, path string, vs *violations) Address {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Address{}
	}
	var a Address
	a.ID = obj.id("id")
	a.Label = obj.optionalNonEmptyString("label")
	a.FullName = obj.nonEmptyString("fullName")
	a.Line1 = obj.nonEmptyString("line1")
	a.Line2 = obj.optionalString("line2")
	a.City = obj.nonEmptyString("city")
	a.Region = obj.optionalNonEmptyString("region")
	a.PostalCode = obj.nonEmptyString("postalCode")
	a.CountryCode = obj.exactLengthString("countryCode", 2)
	return a
}

func DecodeCustomer(input any) (Customer, error) {
	vs := &violations{}
	c := decodeCustomer(input, "", vs)
	if err := vs.asError(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func decodeCustomer(v any, path string, vs *violations) Customer {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Customer{}
	}
	var c Customer
	c.ID = obj.id("id")
	c.Email = obj.email("email")
	c.FullName = obj.optionalNonEmptyString("fullName")
	c.DefaultAddressID = obj.optionalID("defaultAddressId")
	c.CreatedAt = obj.dateTime("createdAt")
	c.UpdatedAt = obj.dateTime("updatedAt")
	return c
}
