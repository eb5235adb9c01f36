package domain

// Route describes a navigable client view and its access requirement. At most
// one of RequiresAuth / RequiresGuest is meaningful; both false means the
// route is unconditionally accessible.
type Route struct {
	Path          string
	Name          string
	RequiresAuth  bool
	RequiresGuest bool
}
