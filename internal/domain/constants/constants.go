// Package constants holds identifiers shared across layers.
package constants

const (
	// PubSubProviderLocal publishes events as HTTP push requests.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EventBookingCreated is published after a paid checkout becomes a booking.
	EventBookingCreated = "booking.created"

	// CookieJWT carries the signed session token.
	CookieJWT = "jwt"
	// CookieLoggedOut is the placeholder value written on logout.
	CookieLoggedOut = "loggedout"

	// DefaultUserPhoto is assigned to users without an uploaded photo.
	DefaultUserPhoto = "default.jpg"
)
