package nav

import "github.com/ariffzainal/inhouse-erp/internal/core/domain"

// routes is the client view table. Each route declares at most one of
// RequiresAuth / RequiresGuest; both unset means unconditionally accessible.
var routes = []domain.Route{
	{Path: RootPath, Name: "home"},
	{Path: LoginPath, Name: "login", RequiresGuest: true},
	{Path: "/register", Name: "register", RequiresGuest: true},
	{Path: DashboardPath, Name: "dashboard", RequiresAuth: true},
	{Path: "/companies", Name: "companies", RequiresAuth: true},
	{Path: "/inventory", Name: "inventory", RequiresAuth: true},
	{Path: "/settings", Name: "settings", RequiresAuth: true},
}

// Lookup resolves a path to its route declaration.
func Lookup(path string) (domain.Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return domain.Route{}, false
}

// Routes returns the full route table in declaration order.
func Routes() []domain.Route {
	out := make([]domain.Route, len(routes))
	copy(out, routes)
	return out
}
