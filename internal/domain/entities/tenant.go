package entities

import "time"

// Tenant is an isolated moving company. Every other entity in the system is
// partitioned by tenant id; nothing is visible across tenants.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
type Tenant struct {
	ID        string            `json:"id"`
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	Domain    string            `json:"domain,omitempty"`
	LogoURL   string            `json:"logo_url,omitempty"`
	Settings  map[string]string `json:"settings,omitempty"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UserRole determines which endpoints a session may reach.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleStaff    UserRole = "staff"
	UserRoleCustomer UserRole = "customer"
)

// User belongs to one tenant. Customers are created implicitly by public quote
// submissions; admin/staff accounts are provisioned out of band.
//
// Uniqueness: (tenant_id, email).
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
