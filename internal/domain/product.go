package domain

import "time"

type Category string

const (
	CategoryShirts      Category = "Shirts"
	CategoryPants       Category = "Pants"
	CategoryShoes       Category = "Shoes"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every category a product may belong to.
var Categories = []Category{
	CategoryShirts,
	CategoryPants,
	CategoryShoes,
	CategoryAccessories,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Size string

const (
	SizeXS Size = "XS"
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// Sizes lists every size a product may be offered in.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL}

func (s Size) Valid() bool {
	for _, known := range Sizes {
		if s == known {
			return true
		}
	}
	return false
}

// Product represents a catalog item managed through the dashboard.
type Product struct {
	ID          string
	Name        string
	Description string
	ImageRef    string
	Category    Category
	Size        Size
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput captures a submitted product payload before validation.
type ProductInput struct {
	Name        string
	Description string
	ImageRef    string
	Category    string
	Size        string
	Price       float64
}
