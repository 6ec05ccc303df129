package domain

import "net/url"

const (
	LoginPath = "/login"
	HomePath  = "/dashboard"

	// DefaultTitle is the application name shown when a route declares no
	// title of its own.
	DefaultTitle = "AgentGuard"
)

// Route is a console screen the user can navigate to.
type Route struct {
	Path         string
	Name         string
	Title        string
	RequiresAuth bool
	// RedirectTo sends the transition elsewhere instead of rendering, e.g.
	// "/" lands on the dashboard.
	RedirectTo string
}

// Target is a navigation request: a route path plus optional query values.
type Target struct {
	Path  string
	Query url.Values
}

// FullPath renders the target as path plus encoded query, mirroring what is
// preserved in a login redirect parameter.
func (t Target) FullPath() string {
	if len(t.Query) == 0 {
		return t.Path
	}
	return t.Path + "?" + t.Query.Encode()
}

var routes = []Route{
	{Path: LoginPath, Name: "Login", Title: "Sign In"},
	{Path: "/", RequiresAuth: true, RedirectTo: HomePath},
	{Path: HomePath, Name: "Dashboard", Title: "Dashboard", RequiresAuth: true},
	{Path: "/agents", Name: "AgentList", Title: "Agents", RequiresAuth: true},
	{Path: "/logs", Name: "LogList", Title: "Call Logs", RequiresAuth: true},
	{Path: "/policies", Name: "PolicyList", Title: "Policies", RequiresAuth: true},
	{Path: "/approvals", Name: "ApprovalList", Title: "Approvals", RequiresAuth: true},
	{Path: "/stats", Name: "Stats", Title: "Cost Analysis", RequiresAuth: true},
	{Path: "/alerts", Name: "AlertList", Title: "Alerts", RequiresAuth: true},
	{Path: "/settings", Name: "Settings", Title: "Settings", RequiresAuth: true},
}

// Routes returns the full route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// LookupRoute resolves a path against the route table.
func LookupRoute(path string) (Route, bool) {
	for _, route := range routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

// DocumentTitle formats the console title bar for a route title, falling back
// to the bare application name.
func DocumentTitle(routeTitle string) string {
	if routeTitle == "" {
		return DefaultTitle
	}
	return routeTitle + " - " + DefaultTitle
}
