package domain

// Backend user and cart identifiers.
const (
	UserAnonymous = "anonymous"
	UserCurrent   = "current"
	UserGuest     = "guest"

	CartCurrent = "current"
)

// IsConcreteUser reports whether id names an authenticated identity rather
// than the anonymous one or an uninitialized value.
func IsConcreteUser(id string) bool {
	return id != "" && id != UserAnonymous
}
