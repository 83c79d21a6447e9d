package model

import "time"

// Category groups products in the catalog.
type Category struct {
	ID   int64
	Name string
}

// Product is a catalog entry. Price is in integer minor currency units;
// orders snapshot it at checkout time.
type Product struct {
	ID         int64
	CategoryID int64
	Name       string
	Price      int64
	Image      string
	CreatedAt  time.Time

	// CategoryName is filled by listing queries that join the category.
	CategoryName string
}

// ProductFilter narrows catalog listing queries.
type ProductFilter struct {
	Search     string
	CategoryID int64
	Page       int
	PageSize   int
}
