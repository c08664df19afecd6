package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAddress(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		a, err := DecodeAddress(jsonValue(t, `{
			"id": "`+testID+`",
			"label": "Studio",
			"fullName": "Mira Kovacs",
			"line1": "12 Rue des Ateliers",
			"line2": "",
			"city": "Lyon",
			"region": "Auvergne-Rhône-Alpes",
			"postalCode": "69001",
			"countryCode": "FR"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "FR", a.CountryCode)
		// line2 has no minimum length
		require.NotNil(t, a.Line2)
		assert.Equal(t, "", *a.Line2)
	})

	t.Run("country code length", func(t *testing.T) {
		for _, code := range []string{"FRA", "F", ""} {
			_, err := DecodeAddress(jsonValue(t, `{
				"id": "`+testID+`",
				"fullName": "Mira Kovacs",
				"line1": "12 Rue des Ateliers",
				"city": "Lyon",
				"postalCode": "69001",
				"countryCode": "`+code+`"
			}`))
			assert.Equal(t, []string{"countryCode"}, violationPaths(t, err), "code %q", code)
		}
	})

	t.Run("country code counts characters not bytes", func(t *testing.T) {
		a, err := DecodeAddress(jsonValue(t, `{
			"id": "`+testID+`",
			"fullName": "Åsa Lund",
			"line1": "Torggatan 3",
			"city": "Mariehamn",
			"postalCode": "22100",
			"countryCode": "ÅX"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "ÅX", a.CountryCode)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := DecodeAddress(jsonValue(t, `{"id": "`+testID+`", "countryCode": "FR"}`))
		assert.Equal(t,
			[]string{"fullName", "line1", "city", "postalCode"},
			violationPaths(t, err))
	})
}

func TestDecodeCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := DecodeCustomer(jsonValue(t, `{
			"id": "`+testID+`",
			"email": "mira@example.com",
			"fullName": "Mira Kovacs",
			"defaultAddressId": "`+testID2+`",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		require.NotNil(t, c.DefaultAddressID)
		assert.Equal(t, testID2, *c.DefaultAddressID)
	})

	t.Run("anonymous-profile fields optional", func(t *testing.T) {
		c, err := DecodeCustomer(jsonValue(t, `{
			"id": "`+testID+`",
			"email": "mira@example.com",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		require.NoError(t, err)
		assert.Nil(t, c.FullName)
		assert.Nil(t, c.DefaultAddressID)
	})

	t.Run("bad email", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "", "mira@"} {
			_, err := DecodeCustomer(jsonValue(t, `{
				"id": "`+testID+`",
				"email": "`+email+`",
				"createdAt": "`+testCreatedAt+`",
				"updatedAt": "`+testUpdatedAt+`"
			}`))
			assert.Equal(t, []string{"email"}, violationPaths(t, err), "email %q", email)
		}
	})

	t.Run("bad default address reference", func(t *testing.T) {
		_, err := DecodeCustomer(jsonValue(t, `{
			"id": "`+testID+`",
			"email": "mira@example.com",
			"defaultAddressId": "addr-1",
			"createdAt": "`+testCreatedAt+`",
			"updatedAt": "`+testUpdatedAt+`"
		}`))
		assert.Equal(t, []string{"defaultAddressId"}, violationPaths(t, err))
	})
}
