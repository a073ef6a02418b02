// Package rbac holds the static role-to-permission table and the matching
// rule consulted by every authorization check in the API. Handlers must not
// compare roles directly; they ask HasPermission.
package rbac

import "strings"

// Roles recognized by the system.
const (
	RoleAdmin              = "admin"
	RoleManager            = "manager"
	RoleCashier            = "cashier"
	RoleSalesRep           = "sales_rep"
	RoleTechnician         = "technician"
	RoleInventoryManager   = "inventory_manager"
	RoleProcurementOfficer = "procurement_officer"
)

// Roles lists every valid role value.
var Roles = []string{
	RoleAdmin,
	RoleManager,
	RoleCashier,
	RoleSalesRep,
	RoleTechnician,
	RoleInventoryManager,
	RoleProcurementOfficer,
}

// rolePermissions maps each role to its capability list. An entry is either
// a literal permission ("customer.view"), a domain wildcard ("customer.*")
// or the global wildcard ("*").
var rolePermissions = map[string][]string{
	RoleAdmin: {"*"},
	RoleManager: {
		"branch.*", "sales.*", "service.*", "inventory.*",
		"customer.*", "product.*", "report.*", "dashboard.*",
	},
	RoleCashier: {
		"pos.*", "customer.view", "customer.create", "product.view",
		"payment.*", "inventory.view",
	},
	RoleSalesRep: {
		"sales.*", "customer.*", "product.view", "inventory.view",
		"quote.*", "order.*",
	},
	RoleTechnician: {
		"service.*", "customer.view", "product.view", "inventory.view",
	},
	RoleInventoryManager: {
		"inventory.*", "product.*", "procurement.*", "supplier.*",
		"warehouse.*", "report.inventory",
	},
	RoleProcurementOfficer: {
		"procurement.*", "supplier.*", "product.view", "inventory.view",
		"report.procurement",
	},
}

// Permissions returns the capability list for a role. Unknown roles get an
// empty list, which denies everything.
func Permissions(role string) []string {
	return rolePermissions[role]
}

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// HasPermission answers whether a role grants the requested permission.
// A literal "*" grants everything; an exact entry grants itself; an entry
// ending in ".*" grants every permission sharing its dot-prefix
// ("inventory.*" grants "inventory.view" but not "inventoryx.view").
// Deterministic and side-effect-free.
func HasPermission(role, permission string) bool {
	for _, perm := range rolePermissions[role] {
		if perm == "*" || perm == permission {
			return true
		}
		if strings.HasSuffix(perm, ".*") {
			prefix := perm[:len(perm)-2]
			if strings.HasPrefix(permission, prefix+".") {
				return true
			}
		}
	}
	return false
}
