package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	t.Parallel()

	assert.True(t, Allow(RoleManager, RoleManager, RoleSuperAdmin))
	assert.True(t, Allow(RoleSuperAdmin, RoleSuperAdmin))
	assert.False(t, Allow(RoleAttendee, RoleManager, RoleSuperAdmin))
	assert.False(t, Allow("", RoleManager))
	assert.False(t, Allow(RoleManager))
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, Known(RoleAttendee))
	assert.True(t, Known(RoleManager))
	assert.True(t, Known(RoleSuperAdmin))
	assert.False(t, Known("admin"))
	assert.False(t, Known(""))
}
