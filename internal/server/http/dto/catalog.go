package dto

// ProductRequest describes a product create or update payload.
type ProductRequest struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image"`
}

// ProductResponse describes a catalog product.
type ProductResponse struct {
	ID           int64  `json:"id"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Image        string `json:"image,omitempty"`
}

// ProductListResponse is a page of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
}

// CategoryRequest describes a category create or rename payload.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse describes a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
