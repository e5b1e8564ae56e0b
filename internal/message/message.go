package message

// Message is a contact-form submission and maps to the `messages` table.
// It has no relation to any other entity.
type Message struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Body      string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
