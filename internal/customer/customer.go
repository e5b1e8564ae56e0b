package customer

// Customer maps to the `customers` table. Phone is the natural dedup key:
// two order placements sharing a phone collapse into one customer row.
type Customer struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}
