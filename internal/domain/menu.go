package domain

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryStarter  Category = "Starters"
	CategoryMainDish Category = "Main Dishes"
	CategorySideDish Category = "Side Dishes"
	CategoryDessert  Category = "Desserts"
	CategoryBeverage Category = "Beverages"
)

// Categories lists every category in menu display order.
var Categories = []Category{
	CategoryStarter,
	CategoryMainDish,
	CategorySideDish,
	CategoryDessert,
	CategoryBeverage,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts either the label ("Main Dishes") or a short key ("main").
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "starter", "starters":
		return CategoryStarter, true
	case "main", "mainDish", "main_dish":
		return CategoryMainDish, true
	case "side", "sideDish", "side_dish":
		return CategorySideDish, true
	case "dessert", "desserts":
		return CategoryDessert, true
	case "beverage", "beverages", "drink":
		return CategoryBeverage, true
	}
	c := Category(s)
	return c, c.Valid()
}

type NutritionalInfo struct {
	Calories int `bson:"calories" json:"calories"`
	Protein  int `bson:"protein" json:"protein"`
	Carbs    int `bson:"carbs" json:"carbs"`
	Fat      int `bson:"fat" json:"fat"`
}

// MenuItem is never mutated after the catalog is loaded; carts and favorites
// hold copies that share its ID.
type MenuItem struct {
	ID                 string           `bson:"id" json:"id"`
	Name               string           `bson:"name" json:"name"`
	Description        string           `bson:"description" json:"description"`
	Price              decimal.Decimal  `bson:"-" json:"price"`
	ImageName          string           `bson:"image_name" json:"image_name"`
	Category           Category         `bson:"category" json:"category"`
	IsPopular          bool             `bson:"is_popular" json:"is_popular"`
	Ingredients        []string         `bson:"ingredients" json:"ingredients"`
	Nutrition          *NutritionalInfo `bson:"nutrition,omitempty" json:"nutrition,omitempty"`
	Allergens          []string         `bson:"allergens" json:"allergens"`
	PreparationMinutes int              `bson:"preparation_minutes" json:"preparation_minutes"`
}
