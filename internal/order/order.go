package order

// Order represents a purchase placed by a storefront visitor and maps to
// the `orders` table. ProductName and the customer fields are snapshots
// taken at placement time; later edits to the product or customer records
// do not touch historical orders.
type Order struct {
	ID              int    `json:"id"`
	ProductID       int    `json:"product_id"`
	ProductName     string `json:"product_name"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// AllowedStatuses lists every status value the system will ever write.
var AllowedStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// statusFlow is the transition table consulted when strict flow is on.
var statusFlow = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func ValidStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether the move from one status to another is
// legal under the transition table. Setting the same status is a no-op
// and always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}
