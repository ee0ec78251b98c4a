package regions

// Simple package containing the region routing.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// MainForSub returns the routing region that serves a given platform.
// Defaults to AMERICAS for unrecognized platforms instead of failing the request.
func MainForSub(sub SubRegion) MainRegion {
	for main, subs := range RegionList {
		for _, candidate := range subs {
			if candidate == sub {
				return main
			}
		}
	}
	return "AMERICAS"
}

// Valid reports whether the platform is one we route.
func Valid(sub SubRegion) bool {
	for _, subs := range RegionList {
		for _, candidate := range subs {
			if candidate == sub {
				return true
			}
		}
	}
	return false
}
