package patterns

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseDMSCoord converts a packed degrees/minutes value into decimal degrees.
// Supported forms:
//   - DDMM / DDDMM (e.g. 2714 = 27°14', 15302 = 153°02')
//   - DDMMSS / DDDMMSS (e.g. 335130 = 33°51'30")
//   - DDMM.M / DDDMM.M (decimal minutes)
//
// degDigits is 2 for latitude and 3 for longitude. S and W give negative values.
// Unrecognised input returns 0.
func ParseDMSCoord(s string, degDigits int, dir string) float64 {
	if s == "" || len(s) < degDigits {
		return 0
	}

	deg, err := strconv.Atoi(s[:degDigits])
	if err != nil {
		return 0
	}
	rest := s[degDigits:]

	var min float64
	switch {
	case strings.Contains(rest, "."):
		min, err = strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0
		}
	case len(rest) == 2:
		m, err := strconv.Atoi(rest)
		if err != nil {
			return 0
		}
		min = float64(m)
	case len(rest) == 4:
		m, err := strconv.Atoi(rest[:2])
		if err != nil {
			return 0
		}
		sec, err := strconv.Atoi(rest[2:])
		if err != nil {
			return 0
		}
		min = float64(m) + float64(sec)/60.0
	case rest == "":
	default:
		return 0
	}

	if min >= 60 {
		return 0
	}
	result := float64(deg) + min/60.0
	if dir == "S" || dir == "W" {
		result = -result
	}
	return result
}

// ParseLatitude parses a latitude value (two degree digits) with direction.
func ParseLatitude(value, dir string) float64 {
	return ParseDMSCoord(value, 2, dir)
}

// ParseLongitude parses a longitude value (three degree digits) with direction.
func ParseLongitude(value, dir string) float64 {
	return ParseDMSCoord(value, 3, dir)
}

var qPositionPattern = regexp.MustCompile(`^(\d{4})([NS])(\d{5})([EW])(\d{3})$`)

// ParseQPosition decodes the final Q-line item, e.g. "2714S15302E005", into
// latitude, longitude and radius in nautical miles.
func ParseQPosition(s string) (lat, lon float64, radiusNM int, ok bool) {
	m := qPositionPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, 0, 0, false
	}
	lat = ParseLatitude(m[1], m[2])
	lon = ParseLongitude(m[3], m[4])
	radiusNM, _ = strconv.Atoi(m[5])
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, 0, false
	}
	return lat, lon, radiusNM, true
}
