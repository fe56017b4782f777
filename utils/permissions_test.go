package utils

import "testing"

func TestMatchesPermission(t *testing.T) {
	tests := []struct {
		name         string
		userPerm     string
		requiredPerm string
		expected     bool
	}{
		// Exact matches
		{"exact match same permission", "arbol:create", "arbol:create", true},
		{"exact match different action", "arbol:create", "arbol:read", false},
		{"exact match different resource", "arbol:create", "orden:create", false},

		// Full wildcard
		{"full wildcard *", "*", "orden:delete", true},
		{"full wildcard *:*", "*:*", "mantenimiento:update", true},
		{"full wildcard single part", "*", "anything", true},

		// Resource wildcard
		{"resource wildcard matches create", "arbol:*", "arbol:create", true},
		{"resource wildcard matches delete", "arbol:*", "arbol:delete", true},
		{"resource wildcard other resource", "arbol:*", "orden:create", false},

		// Action wildcard
		{"action wildcard matches orden", "*:read", "orden:read", true},
		{"action wildcard matches lookup", "*:read", "lookup:read", true},
		{"action wildcard other action", "*:read", "orden:update", false},

		// Edge cases
		{"empty required permission", "arbol:create", "", false},
		{"empty user permission", "", "arbol:create", false},
		{"both empty", "", "", true},
		{"single part exact", "admin", "admin", true},
		{"single part vs multi-part", "admin", "admin:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MatchesPermission(tt.userPerm, tt.requiredPerm)
			if result != tt.expected {
				t.Errorf("MatchesPermission(%q, %q) = %v, expected %v",
					tt.userPerm, tt.requiredPerm, result, tt.expected)
			}
		})
	}
}

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission string
		expected   bool
	}{
		{"admin can delete orders", "admin", "orden:delete", true},
		{"inspector creates trees", "inspector", "arbol:create", true},
		{"inspector logs maintenance", "inspector", "mantenimiento:update", true},
		{"inspector reads orders", "inspector", "orden:read", true},
		{"inspector cannot create orders", "inspector", "orden:create", false},
		{"gobierno manages orders", "gobierno", "orden:delete", true},
		{"gobierno cannot edit trees", "gobierno", "arbol:update", false},
		{"empresa updates orders", "empresa", "orden:update", true},
		{"empresa cannot create orders", "empresa", "orden:create", false},
		{"role names are case insensitive", "Inspector", "arbol:delete", true},
		{"unknown role gets nothing", "visitor", "arbol:read", false},
		{"empty role gets nothing", "", "lookup:read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleAllows(tt.role, tt.permission); got != tt.expected {
				t.Errorf("RoleAllows(%q, %q) = %v, expected %v", tt.role, tt.permission, got, tt.expected)
			}
		})
	}
}

func BenchmarkMatchesPermission_ExactMatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MatchesPermission("arbol:create", "arbol:create")
	}
}

func BenchmarkMatchesPermission_ActionWildcard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MatchesPermission("*:read", "orden:read")
	}
}

func BenchmarkRoleAllows(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RoleAllows("inspector", "orden:update")
	}
}
