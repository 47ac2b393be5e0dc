package constants

// Common actions
const (
	TextSave     = "Save"
	TextCancel   = "Cancel"
	TextDelete   = "Delete"
	TextEdit     = "Edit"
	TextCreate   = "Create"
	TextUpdate   = "Update"
	TextSubmit   = "Submit"
	TextReset    = "Reset"
	TextConfirm  = "Confirm"
	TextBack     = "Back"
	TextNext     = "Next"
	TextPrevious = "Previous"
	TextClose    = "Close"
	TextOpen     = "Open"
	TextShow     = "Show"
	TextHide     = "Hide"
	TextLoading  = "Loading..."
	TextRetry    = "Retry"
)

// Navigation
const (
	NavHome      = "Home"
	NavDashboard = "Dashboard"
	NavProfile   = "Profile"
	NavSettings  = "Settings"
	NavHelp      = "Help"
	NavAbout     = "About"
	NavContact   = "Contact"
	NavPrivacy   = "Privacy Policy"
	NavTerms     = "Terms of Service"
	NavLogout    = "Logout"
	NavLogin     = "Login"
	NavRegister  = "Register"
)

// Error messages
const (
	ErrTextGeneric         = "Something went wrong. Please try again."
	ErrTextNetwork         = "Network error. Please check your connection."
	ErrTextUnauthorized    = "You are not authorized to perform this action."
	ErrTextForbidden       = "Access forbidden."
	ErrTextNotFound        = "The requested resource was not found."
	ErrTextConflict        = "This item already exists."
	ErrTextInvalidLogin    = "Invalid user ID or password."
	ErrTextServerError     = "Server error. Please try again later."
	ErrTextValidation      = "Please check your input and try again."
	ErrTextTimeout         = "Request timed out. Please try again."
	ErrTextUploadError     = "File upload failed. Please try again."
	ErrTextUploadSizeError = "File size exceeds the limit."
	ErrTextUploadTypeError = "File type not supported."
)

// Success messages
const (
	SuccessSaved           = "Changes saved successfully."
	SuccessCreated         = "Created successfully."
	SuccessUpdated         = "Updated successfully."
	SuccessDeleted         = "Deleted successfully."
	SuccessUploaded        = "File uploaded successfully."
	SuccessEmailSent       = "Email sent successfully."
	SuccessPasswordChanged = "Password changed successfully."
	SuccessProfileUpdated  = "Profile updated successfully."
)

// Form validation
const (
	ValidationRequired          = "This field is required."
	ValidationEmailInvalid      = "Please enter a valid email address."
	ValidationPasswordMinLength = "Password must be at least 8 characters."
	ValidationPasswordWeak      = "Password must contain uppercase, lowercase, and numbers."
	ValidationConfirmPassword   = "Passwords do not match."
	ValidationPhoneInvalid      = "Please enter a valid phone number."
	ValidationURLInvalid        = "Please enter a valid URL."
	ValidationFileRequired      = "Please select a file."
	ValidationImageRequired     = "Please select an image."
)

// Status labels
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusArchived  = "Archived"
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusOnline    = "Online"
	StatusOffline   = "Offline"
)

// Placeholders
const (
	PlaceholderSearch      = "Search..."
	PlaceholderEmail       = "Enter your email"
	PlaceholderPassword    = "Enter your password"
	PlaceholderName        = "Enter your name"
	PlaceholderPhone       = "Enter your phone number"
	PlaceholderMessage     = "Enter your message"
	PlaceholderComment     = "Write a comment..."
	PlaceholderTitle       = "Enter title"
	PlaceholderDescription = "Enter description"
	PlaceholderTags        = "Enter tags separated by commas"
	PlaceholderURL         = "Enter URL"
)

// Empty states
const (
	EmptyNoData          = "No data available."
	EmptyNoResults       = "No results found."
	EmptyNoPosts         = "No posts yet."
	EmptyNoComments      = "No comments yet."
	EmptyNoNotifications = "No notifications."
	EmptyNoMessages      = "No messages."
	EmptyFolder          = "This folder is empty."
	EmptyCart            = "Your cart is empty."
)

// Confirmations
const (
	ConfirmDelete         = "Are you sure you want to delete this item?"
	ConfirmDeleteAccount  = "Are you sure you want to delete your account? This action cannot be undone."
	ConfirmLogout         = "Are you sure you want to logout?"
	ConfirmDiscardChanges = "You have unsaved changes. Are you sure you want to discard them?"
	ConfirmLeavePage      = "Are you sure you want to leave this page?"
	ConfirmResetForm      = "Are you sure you want to reset the form?"
)
