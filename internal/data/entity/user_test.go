package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	tests := []struct {
		name     string
		role     UserRole
		required UserRole
		want     bool
	}{
		{"admin has admin", RoleAdmin, RoleAdmin, true},
		{"admin satisfies registered", RoleAdmin, RoleRegistered, true},
		{"registered has registered", RoleRegistered, RoleRegistered, true},
		{"registered is not admin", RoleRegistered, RoleAdmin, false},
		{"guest is not registered", RoleGuest, RoleRegistered, false},
		{"guest is not admin", RoleGuest, RoleAdmin, false},
		{"empty role is nothing", UserRole(""), RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{Role: tt.role}
			assert.Equal(t, tt.want, user.HasRole(tt.required))
		})
	}
}
