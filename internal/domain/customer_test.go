package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInfo_Validate(t *testing.T) {
	valid := CustomerInfo{
		Name:           "Bilal",
		Phone:          "0612345678",
		Address:        "12 Rue Atlas, Meknes",
		DeliveryMethod: DeliveryMethodDelivery,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name          string
		mutate        func(*CustomerInfo)
		expectedField string
	}{
		{"empty name", func(c *CustomerInfo) { c.Name = "" }, "name"},
		{"whitespace name", func(c *CustomerInfo) { c.Name = "   " }, "name"},
		{"short phone", func(c *CustomerInfo) { c.Phone = "123" }, "phone"},
		{"bad phone prefix", func(c *CustomerInfo) { c.Phone = "0412345678" }, "phone"},
		{"missing delivery address", func(c *CustomerInfo) { c.Address = "" }, "address"},
		{"bad method", func(c *CustomerInfo) { c.DeliveryMethod = "drone" }, "delivery_method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedField, vErr.Field)
		})
	}
}

func TestCustomerInfo_Validate_PickupWithoutAddress(t *testing.T) {
	c := CustomerInfo{
		Name:           "Bilal",
		Phone:          "+212612345678",
		DeliveryMethod: DeliveryMethodPickup,
	}
	assert.NoError(t, c.Validate())
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0612345678", true},
		{"0512345678", true},
		{"0712345678", true},
		{"+212612345678", true},
		{"06 12 34 56 78", true},
		{"123", false},
		{"0812345678", false},
		{"+33612345678", false},
		{"061234567", false},
		{"06123456789", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidPhone(tt.phone), tt.phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+212612345678", NormalizePhone("0612345678"))
	assert.Equal(t, "+212612345678", NormalizePhone("06 12 34 56 78"))
	assert.Equal(t, "+212612345678", NormalizePhone("+212612345678"))
	assert.Equal(t, "+212612345678", NormalizePhone("612345678"))
}
