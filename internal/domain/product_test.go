package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	p := Product{
		Name:  "Tacos Poulet",
		Price: 45,
		Options: []ProductOption{
			{Name: "Sauce", Type: OptionSauce, Choices: []string{"Ketchup"}, Required: true},
			{Name: "Extra", Type: OptionOther, Choices: nil, Required: false},
		},
	}
	assert.NoError(t, p.Validate())

	negative := p
	negative.Price = -1
	assert.Error(t, negative.Validate())

	emptyRequired := p
	emptyRequired.Options = []ProductOption{{Name: "Meat", Type: OptionMeat, Required: true}}
	assert.Error(t, emptyRequired.Validate())
}
