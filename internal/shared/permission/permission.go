// Package permission holds the pure authorization predicates applied at the
// request boundary and inside the review/comment services. Predicates have
// no side effects; a false result is surfaced as 403 by the caller.
package permission

import (
	"yamdb-backend/internal/domains/user"
)

// IsAdmin reports whether the role grants full system access
func IsAdmin(role user.Role) bool {
	return role == user.RoleAdmin
}

// IsModerator reports whether the role grants content moderation rights
func IsModerator(role user.Role) bool {
	return role == user.RoleModerator
}

// CanWriteCatalog gates create/update/delete on categories, genres and
// titles. Reads are unrestricted.
func CanWriteCatalog(role user.Role) bool {
	return IsAdmin(role)
}

// CanManageUsers gates the user directory endpoints
func CanManageUsers(role user.Role) bool {
	return IsAdmin(role)
}

// CanModerateContent gates edit/delete on a review or comment: the author
// may always modify their own content, moderators and admins may modify
// anyone's.
func CanModerateContent(role user.Role, isAuthor bool) bool {
	return isAuthor || IsAdmin(role) || IsModerator(role)
}
