package catalog

import (
	"context"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SampleLoader serves the built-in menu. Delay simulates a slow backend so the
// loading state can be observed.
type SampleLoader struct {
	Delay time.Duration
}

func (l SampleLoader) LoadCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	if l.Delay > 0 {
		timer := time.NewTimer(l.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return SampleItems(), nil
}

// ItemID derives a stable identifier from the item name so sample IDs survive
// restarts.
func ItemID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("menu-order/items/"+name)).String()
}

func sample(name, description, price, image string, category domain.Category, popular bool, ingredients []string, n domain.NutritionalInfo, allergens []string, prep int) domain.MenuItem {
	return domain.MenuItem{
		ID:                 ItemID(name),
		Name:               name,
		Description:        description,
		Price:              decimal.RequireFromString(price),
		ImageName:          image,
		Category:           category,
		IsPopular:          popular,
		Ingredients:        ingredients,
		Nutrition:          &n,
		Allergens:          allergens,
		PreparationMinutes: prep,
	}
}

func SampleItems() []domain.MenuItem {
	return []domain.MenuItem{
		sample("Classic Burger", "Juicy beef patty with lettuce, tomato, and special sauce", "9.99", "burger",
			domain.CategoryMainDish, true,
			[]string{"Beef patty", "Lettuce", "Tomato", "Onion", "Special sauce", "Brioche bun"},
			domain.NutritionalInfo{Calories: 650, Protein: 35, Carbs: 45, Fat: 32},
			[]string{"Gluten", "Dairy"}, 12),
		sample("Caesar Salad", "Fresh romaine lettuce with parmesan, croutons and Caesar dressing", "7.99", "salad",
			domain.CategoryStarter, false,
			[]string{"Romaine lettuce", "Parmesan cheese", "Croutons", "Caesar dressing"},
			domain.NutritionalInfo{Calories: 320, Protein: 10, Carbs: 15, Fat: 24},
			[]string{"Gluten", "Dairy", "Eggs"}, 8),
		sample("Chocolate Cake", "Rich chocolate layer cake with ganache frosting", "6.99", "dessert",
			domain.CategoryDessert, true,
			[]string{"Chocolate", "Flour", "Sugar", "Eggs", "Butter", "Cream"},
			domain.NutritionalInfo{Calories: 450, Protein: 5, Carbs: 65, Fat: 22},
			[]string{"Gluten", "Dairy", "Eggs"}, 0),
		sample("Sparkling Water", "Refreshing carbonated water with a hint of lime", "2.99", "drink",
			domain.CategoryBeverage, false,
			[]string{"Carbonated water", "Natural lime flavor"},
			domain.NutritionalInfo{},
			[]string{}, 0),
		sample("Margherita Pizza", "Classic pizza with tomato sauce, mozzarella, and basil", "12.99", "burger",
			domain.CategoryMainDish, true,
			[]string{"Pizza dough", "Tomato sauce", "Mozzarella cheese", "Fresh basil", "Olive oil"},
			domain.NutritionalInfo{Calories: 780, Protein: 25, Carbs: 90, Fat: 35},
			[]string{"Gluten", "Dairy"}, 18),
		sample("Greek Salad", "Fresh salad with cucumber, tomato, olives, and feta cheese", "8.99", "salad",
			domain.CategoryStarter, false,
			[]string{"Cucumber", "Tomato", "Red onion", "Kalamata olives", "Feta cheese", "Olive oil", "Oregano"},
			domain.NutritionalInfo{Calories: 280, Protein: 8, Carbs: 12, Fat: 22},
			[]string{"Dairy"}, 10),
		sample("Chicken Wings", "Crispy wings tossed in your choice of sauce", "10.99", "burger",
			domain.CategoryStarter, true,
			[]string{"Chicken wings", "Flour", "Spices", "Buffalo sauce"},
			domain.NutritionalInfo{Calories: 450, Protein: 30, Carbs: 15, Fat: 28},
			[]string{"Gluten"}, 15),
		sample("French Fries", "Crispy golden fries served with ketchup", "4.99", "salad",
			domain.CategorySideDish, false,
			[]string{"Potatoes", "Vegetable oil", "Salt"},
			domain.NutritionalInfo{Calories: 320, Protein: 4, Carbs: 42, Fat: 16},
			[]string{}, 8),
		sample("Chocolate Milkshake", "Rich and creamy chocolate milkshake with whipped cream", "5.99", "drink",
			domain.CategoryBeverage, false,
			[]string{"Milk", "Chocolate ice cream", "Chocolate syrup", "Whipped cream"},
			domain.NutritionalInfo{Calories: 520, Protein: 9, Carbs: 68, Fat: 25},
			[]string{"Dairy"}, 5),
		sample("Apple Pie", "Warm apple pie with a flaky crust and cinnamon", "6.99", "dessert",
			domain.CategoryDessert, false,
			[]string{"Apples", "Flour", "Sugar", "Butter", "Cinnamon", "Nutmeg"},
			domain.NutritionalInfo{Calories: 380, Protein: 3, Carbs: 55, Fat: 18},
			[]string{"Gluten", "Dairy"}, 0),
		sample("Caprese Sandwich", "Fresh mozzarella, tomato, and basil on ciabatta bread", "9.99", "burger",
			domain.CategoryMainDish, false,
			[]string{"Ciabatta bread", "Fresh mozzarella", "Tomato", "Basil", "Balsamic glaze", "Olive oil"},
			domain.NutritionalInfo{Calories: 420, Protein: 18, Carbs: 40, Fat: 22},
			[]string{"Gluten", "Dairy"}, 10),
		sample("Iced Tea", "Refreshing iced tea with lemon", "3.49", "drink",
			domain.CategoryBeverage, false,
			[]string{"Black tea", "Water", "Lemon", "Sugar"},
			domain.NutritionalInfo{Calories: 80, Protein: 0, Carbs: 20, Fat: 0},
			[]string{}, 0),
	}
}
