package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleUser, RoleUser, true},
		{RoleUser, RoleModerator, false},
		{RoleUser, RoleAdmin, false},
		{RoleModerator, RoleUser, true},
		{RoleModerator, RoleModerator, true},
		{RoleModerator, RoleAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleModerator, true},
		{RoleAdmin, RoleAdmin, true},

		// Unknown roles never pass, in either position.
		{Role("SUPERUSER"), RoleUser, false},
		{RoleAdmin, Role("SUPERUSER"), false},
		{Role(""), RoleUser, false},
	}

	for _, tt := range tests {
		if got := tt.role.AtLeast(tt.min); got != tt.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.role, tt.min, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, ok := ParseRole("MODERATOR"); !ok {
		t.Error("MODERATOR should parse")
	}
	if _, ok := ParseRole("moderator"); ok {
		t.Error("role codes are case sensitive")
	}
	if _, ok := ParseRole(""); ok {
		t.Error("empty role should not parse")
	}
}
