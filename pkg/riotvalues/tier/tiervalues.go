package tiervalues

import "strings"

// Base values for each tier, 400 points apart.
var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      400,
	"SILVER":      800,
	"GOLD":        1200,
	"PLATINUM":    1600,
	"EMERALD":     2000,
	"DIAMOND":     2400,
	"MASTER":      2800,
	"GRANDMASTER": 3200,
	"CHALLENGER":  3600,
}

// Division offsets, 100 points apart.
var divisionValues = map[string]int{
	"IV":  0,
	"III": 100,
	"II":  200,
	"I":   300,
}

// Hand-tuned percentile of the playerbase at or below each tier.
// Not statistically derived, only used for display.
var tierPercentiles = map[string]float64{
	"IRON":        5,
	"BRONZE":      20,
	"SILVER":      45,
	"GOLD":        65,
	"PLATINUM":    80,
	"EMERALD":     90,
	"DIAMOND":     96,
	"MASTER":      98.5,
	"GRANDMASTER": 99.5,
	"CHALLENGER":  99.9,
}

var tierColors = map[string]string{
	"IRON":        "#4A4A4A",
	"BRONZE":      "#CD7F32",
	"SILVER":      "#C0C0C0",
	"GOLD":        "#FFD700",
	"PLATINUM":    "#00CED1",
	"EMERALD":     "#50C878",
	"DIAMOND":     "#B9F2FF",
	"MASTER":      "#9D4EDD",
	"GRANDMASTER": "#FF6B6B",
	"CHALLENGER":  "#FFE66D",
}

var tierIcons = map[string]string{
	"IRON":        "⚙️",
	"BRONZE":      "🥉",
	"SILVER":      "🥈",
	"GOLD":        "🥇",
	"PLATINUM":    "💎",
	"EMERALD":     "💚",
	"DIAMOND":     "💠",
	"MASTER":      "👑",
	"GRANDMASTER": "⚡",
	"CHALLENGER":  "🏆",
}

// CalculateProxy builds the ordinal rank comparison value from the tier, division and league points.
// It has no meaning outside relative ordering.
func CalculateProxy(tier string, division string, lp int) int {
	base, exists := tierValues[normalize(tier)]
	if !exists {
		return 0 // Unknown tier.
	}

	offset, exists := divisionValues[normalize(division)]
	if !exists {
		return base + lp
	}

	return base + offset + lp
}

// Percentile returns the display percentile for a tier, defaulting to the middle of the ladder.
func Percentile(tier string) float64 {
	if percentile, exists := tierPercentiles[normalize(tier)]; exists {
		return percentile
	}
	return 50
}

// Color returns the display color for a tier.
func Color(tier string) string {
	if color, exists := tierColors[normalize(tier)]; exists {
		return color
	}
	return "#FFFFFF"
}

// Icon returns the display icon for a tier.
func Icon(tier string) string {
	if icon, exists := tierIcons[normalize(tier)]; exists {
		return icon
	}
	return "🎮"
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
