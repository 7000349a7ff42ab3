package scene

// Visual constants. The grays and tints follow the reference board:
// Review/Done override category colors, weekends get two distinct tints.
const (
	colorReview      = "rgba(160,160,160,0.85)"
	colorDone        = "rgba(90,90,90,0.90)"
	colorOverlay     = "rgba(0,0,0,0.35)"
	colorSaturday    = "rgba(173,216,230,0.25)"
	colorSunday      = "rgba(255,182,193,0.30)"
	colorNow         = "red"
	overlayOpacity   = 0.30
	connectorOpacity = 0.85

	lockText = "🔒"
	nowText  = "NOW"

	lockHover = "BLOCKED (Parent task incomplete)"
)

// categoryPalette cycles per category in first-seen table order.
var categoryPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// categoryColors assigns a stable color per category, keyed by the
// order categories first appear in the (already sorted) table.
func categoryColors(categories []string) map[string]string {
	colors := make(map[string]string, len(categories))
	for i, cat := range categories {
		colors[cat] = categoryPalette[i%len(categoryPalette)]
	}
	return colors
}
