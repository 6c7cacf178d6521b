// Package entity defines the core business entities for the domain layer.
package entity

// Category is the closed set of spending categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHabits        Category = "Habits"
	CategoryIncome        Category = "Income"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories lists every category in canonical order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHabits,
		CategoryIncome,
		CategoryMiscellaneous,
	}
}

// ExpenseCategories lists the categories valid for expense transactions.
func ExpenseCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHabits,
		CategoryMiscellaneous,
	}
}

// Valid reports whether c belongs to the closed enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryShopping, CategoryTransport,
		CategoryEntertainment, CategoryHabits, CategoryIncome,
		CategoryMiscellaneous:
		return true
	}
	return false
}

// ValidForExpense reports whether c may be attached to an expense transaction.
func (c Category) ValidForExpense() bool {
	return c.Valid() && c != CategoryIncome
}

// Presentation mappings live apart from the enumeration itself so locale or
// styling changes never touch the data model.

var categoryLabels = map[Category]string{
	CategoryFood:          "Food",
	CategoryShopping:      "Shopping",
	CategoryTransport:     "Travel",
	CategoryEntertainment: "Fun",
	CategoryHabits:        "Habits",
	CategoryIncome:        "Allowance & Funds",
	CategoryMiscellaneous: "Misc",
}

var categoryColors = map[Category]string{
	CategoryFood:          "#FF9F43",
	CategoryShopping:      "#EE5253",
	CategoryTransport:     "#54A0FF",
	CategoryEntertainment: "#5F27CD",
	CategoryHabits:        "#00D2D3",
	CategoryIncome:        "#2ECC71",
	CategoryMiscellaneous: "#8395A7",
}

// DisplayLabel returns the human-readable label for the category.
func (c Category) DisplayLabel() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// DisplayColor returns the chart color associated with the category.
func (c Category) DisplayColor() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "#8395A7"
}
