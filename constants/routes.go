package constants

import "net/url"

// Routes
const (
	RouteHome           = "/"
	RouteDashboard      = "/dashboard"
	RouteLogin          = "/auth/login"
	RouteRegister       = "/auth/register"
	RouteForgotPassword = "/auth/forgot-password"
	RouteResetPassword  = "/auth/reset-password"
	RouteVerifyEmail    = "/auth/verify-email"
	RouteProfile        = "/profile"
	RouteSettings       = "/settings"
	RoutePosts          = "/posts"
	RoutePostCreate     = "/posts/create"
	RouteUsers          = "/users"
	RouteSearch         = "/search"
	RouteHelp           = "/help"
	RouteAbout          = "/about"
	RouteContact        = "/contact"
	RoutePrivacy        = "/privacy"
	RouteTerms          = "/terms"
	RouteNotFound       = "/404"
	RouteServerError    = "/500"

	RouteProperties = "/properties"
	RouteFavorites  = "/favorites"
)

func RoutePostDetail(id string) string  { return "/posts/" + id }
func RoutePostEdit(id string) string    { return "/posts/" + id + "/edit" }
func RouteUserProfile(id string) string { return "/users/" + id }

// RoutePropertyDetail is the target of a listing card's details link. id is
// escaped as a single path segment.
func RoutePropertyDetail(id string) string { return RouteProperties + "/" + url.PathEscape(id) }

// RouteFavoriteToggle is the path a card's favorite button posts to.
func RouteFavoriteToggle(id string) string {
	return "/api" + RouteFavorites + "/" + url.PathEscape(id) + "/toggle"
}
