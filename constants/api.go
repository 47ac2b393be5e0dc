// Package constants holds the static configuration tables shared by the
// listing service: API paths, routes, UI copy and storage key names.
package constants

import "time"

// API client defaults. BaseURL and Version can be overridden from the
// environment through the config package.
const (
	DefaultAPIBaseURL = "https://api.example.com"
	DefaultAPIVersion = "v1"
	APITimeout        = 30 * time.Second
	APIRetryAttempts  = 3
	APIRetryDelay     = time.Second
)

// Auth endpoints
const (
	EndpointAuthLogin              = "/auth/login"
	EndpointAuthLogout             = "/auth/logout"
	EndpointAuthRegister           = "/auth/register"
	EndpointAuthRefresh            = "/auth/refresh"
	EndpointAuthForgotPassword     = "/auth/forgot-password"
	EndpointAuthResetPassword      = "/auth/reset-password"
	EndpointAuthVerifyEmail        = "/auth/verify-email"
	EndpointAuthResendVerification = "/auth/resend-verification"
)

// User endpoints
const (
	EndpointUserProfile        = "/user/profile"
	EndpointUserUpdateProfile  = "/user/profile"
	EndpointUserDeleteAccount  = "/user/account"
	EndpointUserChangePassword = "/user/change-password"
	EndpointUserPreferences    = "/user/preferences"
	EndpointUserNotifications  = "/user/notifications"
)

// Post endpoints
const (
	EndpointPostsList   = "/posts"
	EndpointPostsCreate = "/posts"
)

func EndpointPostByID(id string) string    { return "/posts/" + id }
func EndpointPostUpdate(id string) string   { return "/posts/" + id }
func EndpointPostDelete(id string) string   { return "/posts/" + id }
func EndpointPostLike(id string) string     { return "/posts/" + id + "/like" }
func EndpointPostUnlike(id string) string   { return "/posts/" + id + "/unlike" }
func EndpointPostComments(id string) string { return "/posts/" + id + "/comments" }

// Upload endpoints
const (
	EndpointUploadImage  = "/upload/image"
	EndpointUploadFile   = "/upload/file"
	EndpointUploadAvatar = "/upload/avatar"
	EndpointUploadBulk   = "/upload/bulk"
)

// Search endpoints
const (
	EndpointSearchGlobal      = "/search"
	EndpointSearchUsers       = "/search/users"
	EndpointSearchPosts       = "/search/posts"
	EndpointSearchSuggestions = "/search/suggestions"
)
