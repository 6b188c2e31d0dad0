package services

import (
	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
)

func CreateMockProduct(id int64, name string, price float64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Ingredients: []string{"poulet", "frites"},
		Options: []domain.ProductOption{
			{Name: "Sauce", Type: domain.OptionSauce, Choices: []string{"Ketchup", "Mayo"}, Required: true},
		},
		IsAvailable:     true,
		PreparationTime: 15,
	}
}

func CreateMockCustomer(method domain.DeliveryMethod) domain.CustomerInfo {
	info := domain.CustomerInfo{
		Name:           "Bilal",
		Phone:          "0612345678",
		DeliveryMethod: method,
	}
	if method == domain.DeliveryMethodDelivery {
		info.Address = "12 Rue Atlas, Meknes"
	}
	return info
}

const (
	TestProductID    = int64(1)
	TestProductName  = "Tacos Poulet"
	TestProductPrice = float64(45)
)
