// Package schema defines the catalog, customer, cart and order shapes and
// validates untyped records against them. Decoding is eager and total: a
// failed decode reports every violated constraint with its field path, and
// a successful decode returns the record with defaults materialized.
//
// Validators are pure. They generate no ids or timestamps and perform no
// I/O; cross-entity concerns (slug uniqueness, foreign keys, updatedAt
// monotonicity) belong to the persistence layer.
package schema

import "time"

// Money is an amount of a single currency in minor units (cents for USD).
// Monetary values are never floating-point.
type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type DimensionUnit string

const (
	UnitCentimeters DimensionUnit = "cm"
	UnitInches      DimensionUnit = "in"
)

var dimensionUnits = []string{"cm", "in"}

// Dimensions are physical artwork measurements in the given unit.
type Dimensions struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Depth  *float64      `json:"depth,omitempty"`
	Unit   DimensionUnit `json:"unit"`
}

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

var mediaKinds = []string{"image", "video"}

// MediaAsset references an uploaded image or video. PublicID is the
// external provider key; display URLs are resolved by the CDN layer.
type MediaAsset struct {
	ID       string    `json:"id"`
	Kind     MediaKind `json:"kind"`
	PublicID string    `json:"publicId"`
	Alt      *string   `json:"alt,omitempty"`
	Width    *int      `json:"width,omitempty"`
	Height   *int      `json:"height,omitempty"`
}

// DecodeID validates a canonical hyphenated UUID string.
func DecodeID(input any) (string, error) {
	vs := &violations{}
	s, ok := input.(string)
	switch {
	case !ok:
		vs.add("", ruleString)
	case !isCanonicalUUID(s):
		vs.add("", ruleUUID)
	}
	if err := vs.asError(); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeDateTime validates an RFC 3339 date-time string.
func DecodeDateTime(input any) (string, error) {
	vs := &violations{}
	s, ok := input.(string)
	if !ok {
		vs.add("", ruleString)
	} else if _, err := time.Parse(time.RFC3339, s); err != nil {
		vs.add("", ruleDateTime)
	}
	if err := vs.asError(); err != nil {
		return "", err
	}
	return s, nil
}

// DecodeCurrencyCode validates a 3-letter uppercase currency code.
func DecodeCurrencyCode(input any) (string, error) {
	vs := &violations{}
	s, ok := input.(string)
	if !ok {
		vs.add("", ruleString)
	} else if !isCurrencyCode(s) {
		vs.add("", ruleCurrency)
	}
	if err := vs.asError(); err != nil {
		return "", err
	}
	return s, nil
}

func DecodeMoney(input any) (Money, error) {
	vs := &violations{}
	m := decodeMoney(input, "", vs)
	if err := vs.asError(); err != nil {
		return Money{}, err
	}
	return m, nil
}

func decodeMoney(v any, path string, vs *violations) Money {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Money{}
	}
	var m Money
	m.Currency = obj.currency("currency")
	m.Amount = obj.nonNegativeInt("amount")
	return m
}

func (o object) money(name string) Money {
	raw, ok := o.get(name)
	if !ok {
		o.vs.add(o.key(name), ruleRequired)
		return Money{}
	}
	return decodeMoney(raw, o.key(name), o.vs)
}

func (o object) optionalMoney(name string) *Money {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	m := decodeMoney(raw, o.key(name), o.vs)
	return &m
}

func DecodeDimensionUnit(input any) (DimensionUnit, error) {
	s, err := decodeEnumValue(input, dimensionUnits)
	if err != nil {
		return "", err
	}
	return DimensionUnit(s), nil
}

func DecodeDimensions(input any) (Dimensions, error) {
	vs := &violations{}
	d := decodeDimensions(input, "", vs)
	if err := vs.asError(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func decodeDimensions(v any, path string, vs *violations) Dimensions {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Dimensions{}
	}
	var d Dimensions
	d.Width = obj.nonNegativeNumber("width")
	d.Height = obj.nonNegativeNumber("height")
	d.Depth = obj.optionalNonNegativeNumber("depth")
	d.Unit = DimensionUnit(obj.enum("unit", dimensionUnits))
	return d
}

func DecodeMediaKind(input any) (MediaKind, error) {
	s, err := decodeEnumValue(input, mediaKinds)
	if err != nil {
		return "", err
	}
	return MediaKind(s), nil
}

func DecodeMediaAsset(input any) (MediaAsset, error) {
	vs := &violations{}
	m := decodeMediaAsset(input, "", vs)
	if err := vs.asError(); err != nil {
		return MediaAsset{}, err
	}
	return m, nil
}

func decodeMediaAsset(v any, path string, vs *violations) MediaAsset {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return MediaAsset{}
	}
	var m MediaAsset
	m.ID = obj.id("id")
	m.Kind = MediaKind(obj.enum("kind", mediaKinds))
	m.PublicID = obj.nonEmptyString("publicId")
	m.Alt = obj.optionalNonEmptyString("alt")
	m.Width = obj.optionalPositiveInt("width")
	m.Height = obj.optionalPositiveInt("height")
	return m
}

func decodeEnumValue(input any, allowed []string) (string, error) {
	vs := &violations{}
	s, ok := input.(string)
	if !ok {
		vs.add("", ruleString)
	} else if !isEnumMember(s, allowed) {
		vs.add("", enumRule(allowed))
	}
	if err := vs.asError(); err != nil {
		return "", err
	}
	return s, nil
}
