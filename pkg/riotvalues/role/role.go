package rolevalues

// Map from the Riot teamPosition values to the display names.
var roleNames = map[string]string{
	"TOP":     "Top",
	"JUNGLE":  "Jungle",
	"MIDDLE":  "Mid",
	"BOTTOM":  "ADC",
	"UTILITY": "Support",
}

// Display returns the readable role name.
// Empty or unknown positions count as Fill.
func Display(teamPosition string) string {
	if name, exists := roleNames[teamPosition]; exists {
		return name
	}
	return "Fill"
}
