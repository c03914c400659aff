package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yamdb-backend/internal/domains/user"
)

func TestCanWriteCatalog(t *testing.T) {
	assert.True(t, CanWriteCatalog(user.RoleAdmin))
	assert.False(t, CanWriteCatalog(user.RoleModerator))
	assert.False(t, CanWriteCatalog(user.RoleUser))
	assert.False(t, CanWriteCatalog(user.Role("")))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(user.RoleAdmin))
	assert.False(t, CanManageUsers(user.RoleModerator))
	assert.False(t, CanManageUsers(user.RoleUser))
}

func TestCanModerateContent(t *testing.T) {
	// Authors can always touch their own content.
	assert.True(t, CanModerateContent(user.RoleUser, true))

	// Moderators and admins can touch anyone's.
	assert.True(t, CanModerateContent(user.RoleModerator, false))
	assert.True(t, CanModerateContent(user.RoleAdmin, false))

	// Plain users cannot touch other people's content.
	assert.False(t, CanModerateContent(user.RoleUser, false))
	assert.False(t, CanModerateContent(user.Role(""), false))
}
