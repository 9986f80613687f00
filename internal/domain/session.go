package domain

// Role is the role the backend assigned to the authenticated principal.
type Role string

const (
	RoleCustomer      Role = "Customer"
	RoleAdministrator Role = "Administrator"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdministrator
}

// Session is the client's record of the currently authenticated principal.
// Role and Username are set if and only if IsAuthenticated is true.
type Session struct {
	IsAuthenticated bool
	Role            Role
	Username        string
	Token           string
	// CustomerID is present only for the Customer role.
	CustomerID string
}

// LoginResult is what the auth endpoint hands back on success. Username and
// CustomerID are optional in the backend response.
type LoginResult struct {
	Token      string `json:"token"`
	Role       Role   `json:"role"`
	Username   string `json:"username"`
	CustomerID string `json:"customerId"`
}
