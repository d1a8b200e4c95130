package model

// Role is assigned once at registration and never changes afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Account is a registered user profile keyed by the external auth identity.
// Department/semester/batch are profile metadata captured at registration and
// are not revalidated afterwards.
type Account struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RollNo        string `json:"roll_no"`
	Department    string `json:"department"`
	Semester      int    `json:"semester"`
	Batch         int    `json:"batch"`
	Role          Role   `json:"role"`
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
