package utils

import "strings"

// Roles known to the API and the permission patterns each one holds.
//
// Patterns use the "resource:action" form:
//   - "*" grants everything
//   - "arbol:*" grants every action on census trees
//   - "*:read" grants read on every resource
var RolePermissions = map[string][]string{
	"admin":     {"*"},
	"inspector": {"arbol:*", "plantacion:*", "mantenimiento:*", "*:read"},
	"gobierno":  {"orden:*", "*:read"},
	"empresa":   {"orden:update", "*:read"},
}

// MatchesPermission reports whether userPerm grants requiredPerm.
func MatchesPermission(userPerm, requiredPerm string) bool {
	if userPerm == requiredPerm {
		return true
	}
	if userPerm == "*" || userPerm == "*:*" {
		return true
	}

	userParts := strings.Split(userPerm, ":")
	reqParts := strings.Split(requiredPerm, ":")
	// Single-part permissions only match exactly.
	if len(userParts) < 2 || len(reqParts) < 2 {
		return false
	}

	resourceMatch := userParts[0] == "*" || userParts[0] == reqParts[0]
	actionMatch := userParts[1] == "*" || userParts[1] == reqParts[1]
	return resourceMatch && actionMatch
}

// RoleAllows reports whether any pattern of role grants permission.
// Unknown roles are granted nothing.
func RoleAllows(role, permission string) bool {
	for _, p := range RolePermissions[strings.ToLower(role)] {
		if MatchesPermission(p, permission) {
			return true
		}
	}
	return false
}
