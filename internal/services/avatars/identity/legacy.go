package identity

import (
	"strings"

	"github.com/louisbranch/avatars/internal/platform/assets/imagecdn"
	"golang.org/x/text/cases"
)

// LegacyRule maps identifiers containing Pattern to a remote style.
type LegacyRule struct {
	Pattern string
	Style   imagecdn.Style
}

// legacyRules classifies identifiers that predate the procedural catalog.
//
// Evaluated in order, first match wins, case-insensitive. The grouping is
// lossy on purpose: esports, abstract, minimal and classic names all share the
// pattern style and must keep doing so for existing accounts to render as
// they always have.
var legacyRules = []LegacyRule{
	{Pattern: "robot", Style: imagecdn.StyleRobot},
	{Pattern: "bot", Style: imagecdn.StyleRobot},
	{Pattern: "mech", Style: imagecdn.StyleRobot},
	{Pattern: "cyber", Style: imagecdn.StyleRobot},
	{Pattern: "pixel", Style: imagecdn.StylePixel},
	{Pattern: "retro", Style: imagecdn.StylePixel},
	{Pattern: "8bit", Style: imagecdn.StylePixel},
	{Pattern: "esports", Style: imagecdn.StylePattern},
	{Pattern: "abstract", Style: imagecdn.StylePattern},
	{Pattern: "minimal", Style: imagecdn.StylePattern},
	{Pattern: "classic", Style: imagecdn.StylePattern},
	{Pattern: "geo", Style: imagecdn.StylePattern},
}

// defaultLegacyStyle applies when no rule matches.
const defaultLegacyStyle = imagecdn.StyleHuman

// LegacyRules returns a copy of the ordered classification table.
func LegacyRules() []LegacyRule {
	return append([]LegacyRule(nil), legacyRules...)
}

// Classify returns the remote style for a legacy identifier.
func Classify(avatarID string) imagecdn.Style {
	return classifyWith(legacyRules, avatarID)
}

func classifyWith(rules []LegacyRule, avatarID string) imagecdn.Style {
	normalized := cases.Fold().String(strings.TrimSpace(avatarID))
	for _, rule := range rules {
		if rule.Pattern != "" && strings.Contains(normalized, rule.Pattern) {
			return rule.Style
		}
	}
	return defaultLegacyStyle
}
