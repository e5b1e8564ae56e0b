package admin

// Admin is a back-office account stored in the `admins` table. Password
// holds the bcrypt hash and is never serialized.
type Admin struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	CreatedAt string `json:"created_at,omitempty"`
}
