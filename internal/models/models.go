package models

// Product is a single catalog position. IDs are assigned by feed line
// position during ingestion and are not stable across refetches.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	InStock     bool    `json:"inStock"`
}

// Order is an incoming order request. It is validated once at the HTTP
// boundary and then only used to format the outbound notification; orders
// are never stored.
type Order struct {
	ProductName      string  `json:"productName" validate:"required"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	Size             string  `json:"size" validate:"required,oneof=XS S M L XL 2XL 3XL 4XL 5XL"`
	TelegramUsername string  `json:"telegramUsername" validate:"required,min=3,max=32,tg_username"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
