package entity

type DishCategory string

const (
	CategoryAppetizer  DishCategory = "Appetizer"
	CategoryMainCourse DishCategory = "MainCourse"
	CategoryDessert    DishCategory = "Dessert"
	CategoryBeverage   DishCategory = "Beverage"
)

func (c DishCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}
