package common

// Names of the auth cookies kept by the client. They mirror what the portal
// frontend stores in the browser, so a session survives switching between the
// two.
const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
	UserInfoCookieName     = "user_info"
)

// Lifetimes, in seconds, of the auth cookies.
const (
	AccessTokenMaxAge  = 30 * 60
	RefreshTokenMaxAge = 7 * 24 * 60 * 60
	UserInfoMaxAge     = 30 * 60
)
