package weather

// UnknownText is the category for weather codes outside the lookup table.
const UnknownText = "Unknown"

// TextForCode maps an Open-Meteo weather code to a readable category.
// Codes not covered by the table map to UnknownText, never to an error.
// See the Open-Meteo docs for the full code list.
func TextForCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Partly Cloudy"
	case code >= 45 && code <= 48:
		return "Fog"
	case code >= 51 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow/Ice"
	case code >= 80 && code <= 82:
		return "Rain Showers"
	case code >= 95:
		return "Thunderstorm"
	}
	return UnknownText
}
