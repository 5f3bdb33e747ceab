package utils

// Browser geolocation error codes as delivered by getCurrentPosition.
const (
	GeoPermissionDenied    = 1
	GeoPositionUnavailable = 2
	GeoTimeout             = 3
)

// GeolocationErrorMessage maps a browser geolocation error code to the
// message shown to the user. Unknown codes get a generic message.
func GeolocationErrorMessage(code int) string {
	switch code {
	case GeoPermissionDenied:
		return "Location permission denied. Please enable it in your browser settings or browse default listings."
	case GeoPositionUnavailable:
		return "Location information is unavailable right now."
	case GeoTimeout:
		return "Location request timed out."
	default:
		return "An error occurred while getting your location."
	}
}
