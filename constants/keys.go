package constants

// Local storage keys
const (
	StorageUserPreferences      = "user_preferences"
	StorageTheme                = "theme"
	StorageLanguage             = "language"
	StorageCart                 = "cart"
	StorageSearchHistory        = "search_history"
	StorageFormDraft            = "form_draft"
	StorageLastVisit            = "last_visit"
	StorageSidebarCollapsed     = "sidebar_collapsed"
	StorageNotificationSettings = "notification_settings"
	StorageOnboardingCompleted  = "onboarding_completed"
)

// Cookie names. CookieSession carries the auth token for browser requests.
const (
	CookieSession    = "session"
	CookieCSRFToken  = "csrf_token"
	CookieConsent    = "cookie_consent"
	CookieRememberMe = "remember_me"
	CookieLanguage   = "language"
	CookieTheme      = "theme"
)

// Query keys
const (
	QueryKeyUser          = "user"
	QueryKeyPosts         = "posts"
	QueryKeyNotifications = "notifications"
	QueryKeyUsers         = "users"
)

func QueryKeyPost(id string) string         { return "post-" + id }
func QueryKeyComments(postID string) string { return "comments-" + postID }
func QueryKeySearch(query string) string    { return "search-" + query }
func QueryKeyProfile(id string) string      { return "profile-" + id }

// Social links
const (
	SocialTwitter   = "https://twitter.com/yourusername"
	SocialFacebook  = "https://facebook.com/yourpage"
	SocialInstagram = "https://instagram.com/yourusername"
	SocialLinkedIn  = "https://linkedin.com/company/yourcompany"
	SocialGitHub    = "https://github.com/yourusername"
	SocialYouTube   = "https://youtube.com/yourchannel"
)

// Contact information
const (
	ContactEmail         = "contact@example.com"
	ContactPhone         = "+1 (555) 123-4567"
	ContactAddress       = "123 Main St, City, State 12345"
	ContactSupportEmail  = "support@example.com"
	ContactBusinessHours = "Mon-Fri 9AM-5PM EST"
)
