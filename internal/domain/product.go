package domain

import "time"

type OptionType string

const (
	OptionMeat  OptionType = "meat"
	OptionSauce OptionType = "sauce"
	OptionSide  OptionType = "side"
	OptionOther OptionType = "other"
)

// ProductOption is one customizable choice group on a product, e.g.
// "Sauce: Ketchup | Mayo | Harissa".
type ProductOption struct {
	Name     string     `json:"name"`
	Type     OptionType `json:"type"`
	Choices  []string   `json:"choices"`
	Required bool       `json:"required"`
}

type Product struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string          `json:"name" gorm:"not null;index"`
	Description     string          `json:"description"`
	Price           float64         `json:"price" gorm:"not null"`
	ImageURL        string          `json:"image_url"`
	CategoryID      int64           `json:"category_id" gorm:"index"`
	Ingredients     []string        `json:"ingredients" gorm:"serializer:json"`
	Options         []ProductOption `json:"options" gorm:"serializer:json"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Validate enforces the catalog invariants: a non-negative price and at
// least one choice on every required option.
func (p *Product) Validate() error {
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "price must not be negative"}
	}
	for _, opt := range p.Options {
		if opt.Required && len(opt.Choices) == 0 {
			return &ValidationError{Field: "options", Reason: "required option " + opt.Name + " has no choices"}
		}
	}
	return nil
}
