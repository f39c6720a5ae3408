package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
		guide bool
	}{
		{role: RoleUser, valid: true},
		{role: RoleGuide, valid: true, guide: true},
		{role: RoleLeadGuide, valid: true, guide: true},
		{role: RoleAdmin, valid: true},
		{role: "superuser"},
		{role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.IsValid())
			assert.Equal(t, tt.guide, tt.role.IsGuide())
		})
	}
}

func TestRouteGroups(t *testing.T) {
	assert.True(t, TourManagers.Contains(RoleLeadGuide))
	assert.False(t, TourManagers.Contains(RoleGuide))
	assert.True(t, Staff.Contains(RoleGuide))
	assert.False(t, Staff.Contains(RoleUser))
	assert.True(t, ReviewAuthors.Contains(RoleUser))
	assert.False(t, ReviewAuthors.Contains(RoleLeadGuide))
}
