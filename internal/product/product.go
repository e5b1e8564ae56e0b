package product

// Product represents a catalog item and maps to the `products` table.
// JSON tags follow the snake_case wire convention used by the storefront.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
