// Package sniffers imports all sniffer packages to trigger their init() registration.
// Import this package for side effects only.
package sniffers

import (
	// Import all sniffer packages to register them with the registry.
	_ "notam_parser/internal/sniffers/flightplan"
	_ "notam_parser/internal/sniffers/fueltable"
	_ "notam_parser/internal/sniffers/procedure"
	_ "notam_parser/internal/sniffers/waypoint"
)
