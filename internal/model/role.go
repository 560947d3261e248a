package model

// Role represents operator roles in the system
type Role struct {
	Code        string      `json:"code"` // ADMIN, CLERK
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Privileges  []Privilege `json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RoleAdmin = "ADMIN"
	RoleClerk = "CLERK"
)

// clerkPrivileges are the codes a stock clerk may use: posting movements and exporting reports.
var clerkPrivileges = map[string]bool{
	PrivTransactionCreate: true,
	PrivReportExport:      true,
}

// DefaultRole builds one of the built-in roles with its privileges attached.
// Unknown codes yield a role without privileges.
func DefaultRole(code string) Role {
	switch code {
	case RoleAdmin:
		return Role{
			Code:        RoleAdmin,
			Name:        "Administrator",
			Description: "Full access to products, suppliers, transactions and reports",
			Privileges:  append([]Privilege(nil), DefaultPrivileges...),
		}
	case RoleClerk:
		role := Role{
			Code:        RoleClerk,
			Name:        "Stock Clerk",
			Description: "Posts stock movements and exports reports",
		}
		for _, p := range DefaultPrivileges {
			if clerkPrivileges[p.Code] {
				role.Privileges = append(role.Privileges, p)
			}
		}
		return role
	}
	return Role{Code: code, Name: code}
}
