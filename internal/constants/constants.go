package constants

// Centralized constants for headers, env keys and shared strings.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvBandConfig          = "BAND_CONFIG"
	EnvBandDB              = "BAND_DB"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Session / Cookie names
	CookieSessionName = "bm_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteContent            = "/content"
	RouteLeaderboard        = "/leaderboard"
	RouteVersion            = "/version"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteAuthLogout         = "/auth/logout"
	RouteProfile            = "/profile"
	RouteCareers            = "/careers"
	RouteCareerByCode       = "/careers/:careerCode"
	RouteCareerAction       = "/careers/:careerCode/actions"
	RouteCareerEvent        = "/careers/:careerCode/event"
	RouteCareerCharts       = "/careers/:careerCode/charts"
	RouteCareerSave         = "/careers/:careerCode/saves"
	RouteSaves              = "/saves"
	RouteSaveByKey          = "/saves/:slotKey"
	RouteSaveLoad           = "/saves/:slotKey/load"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrMissingGoogleEnv    = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrInvalidCareerCode   = "Invalid career code"
	ErrCareerNotFound      = "Career not found"
	ErrNotCareerOwner      = "Career belongs to another account"
	ErrFailedFetchCareers  = "Failed to fetch careers"
	ErrFailedCreateCareer  = "Failed to create career"
	ErrFailedUpdateCareer  = "Failed to update career"
	ErrFailedEncodeCareer  = "Failed to encode career"
	ErrFailedFetchBoard    = "Failed to fetch leaderboard"
	ErrFailedFetchProfile  = "Failed to fetch profile"
	ErrBandNameRequired    = "Band name is required"
	ErrBandNameExceeds     = "Band name exceeds 32 characters"
	ErrUnknownAction       = "Unknown action type"
	ErrFailedPerformAction = "Failed to perform action"
	ErrNoPendingEvent      = "No event is awaiting a choice"
	ErrUnknownChoice       = "Unknown choice for the pending event"
	ErrFailedFetchCharts   = "Failed to compute charts"
	ErrSaveNameRequired    = "Save name is required"
	ErrSaveNotFound        = "Save not found"
	ErrFailedSaveCareer    = "Failed to save career"
	ErrFailedLoadCareer    = "Failed to load career"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Logging field names
const (
	LogFieldCareerCode = "career_code"
	LogFieldBandName   = "band_name"
	LogFieldWeek       = "week"
	LogFieldAction     = "action"
	LogFieldEventID    = "event_id"
	LogFieldSlotKey    = "slot_key"
	LogFieldAddr       = "addr"
)
