package domain

type Category struct {
	ID   uint
	Name string
}

type Product struct {
	ID           uint
	Name         string
	Description  string
	Price        float64
	Available    bool
	CategoryID   uint
	CategoryName string
}
