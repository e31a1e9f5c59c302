package icons

import "strings"

const (
	lucideSymbolPrefix = "lucide-"
	lucideFallbackName = "sparkle"
)

// lucidePaths holds simplified 24x24 stroke outlines for each glyph name.
var lucidePaths = map[string]string{
	"sparkle":    "M12 3l1.9 5.8a2 2 0 0 0 1.3 1.3L21 12l-5.8 1.9a2 2 0 0 0-1.3 1.3L12 21l-1.9-5.8a2 2 0 0 0-1.3-1.3L3 12l5.8-1.9a2 2 0 0 0 1.3-1.3z",
	"gamepad-2":  "M6 11h4M8 9v4M15 12h.01M18 10h.01M17.3 5H6.7a4 4 0 0 0-4 3.6l-.9 8.3A3 3 0 0 0 4.8 20c1 0 1.9-.5 2.4-1.3L8.5 17h7l1.3 1.7c.5.8 1.4 1.3 2.4 1.3a3 3 0 0 0 3-3.1l-.9-8.3a4 4 0 0 0-4-3.6z",
	"swords":     "M14.5 17.5L3 6V3h3l11.5 11.5M13 19l6-6M16 16l4 4M19 21l2-2M14.5 6.5L18 3h3v3l-3.5 3.5M5 14l4 4M7 17l-3 3M3 19l2 2",
	"bot":        "M12 8V4H8M4 8h16v12H4zM2 14h2M20 14h2M15 13v2M9 13v2",
	"ghost":      "M9 10h.01M15 10h.01M12 2a8 8 0 0 0-8 8v12l3-3 2.5 2.5L12 19l2.5 2.5L17 19l3 3V10a8 8 0 0 0-8-8z",
	"skull":      "M9 12h.01M15 12h.01M8 20v2h8v-2M12.5 17l-.5-1-.5 1zM16 20a2 2 0 0 0 1.6-3.2A8 8 0 1 0 6.4 16.8 2 2 0 0 0 8 20",
	"crown":      "M2 18h20M3.5 18L2 7l5.5 4L12 4l4.5 7L22 7l-1.5 11",
	"rocket":     "M4.5 16.5c-1.5 1.3-2 5-2 5s3.7-.5 5-2c.7-.8.7-2.1-.1-2.9a2.2 2.2 0 0 0-2.9-.1zM12 15l-3-3a22 22 0 0 1 2-4A12.9 12.9 0 0 1 22 2c0 2.7-.8 7.5-6 11a22.4 22.4 0 0 1-4 2zM9 12H4s.6-3 2-4c1.6-1.1 5 0 5 0M12 15v5s3-.6 4-2c1.1-1.6 0-5 0-5",
	"sword":      "M14.5 17.5L3 6V3h3l11.5 11.5M13 19l6-6M16 16l4 4M19 21l2-2",
	"shield":     "M20 13c0 5-3.5 7.5-7.7 9a1 1 0 0 1-.7 0C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.2-2.7a1.2 1.2 0 0 1 1.5 0C14.5 3.8 17 5 19 5a1 1 0 0 1 1 1z",
	"flame":      "M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.4-.5-2-1-3-1.1-2.1-.2-4 2-6 .5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.2.4-2.3 1-3.4.3 1.4 1.3 2.9 2.5 2.9z",
	"zap":        "M4 14a1 1 0 0 1-.8-1.6l9.9-10.2a.5.5 0 0 1 .9.5l-1.9 6A1 1 0 0 0 13 10h7a1 1 0 0 1 .8 1.6l-9.9 10.2a.5.5 0 0 1-.9-.5l1.9-6A1 1 0 0 0 11 14z",
	"star":       "M12 2l3.1 6.3 6.9 1-5 4.9 1.2 6.8L12 17.8 5.8 21l1.2-6.8-5-4.9 6.9-1z",
	"heart":      "M19 14c1.5-1.5 3-3.2 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.8 0-3 .5-4.5 2-1.5-1.5-2.7-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4 3 5.5l7 7z",
	"gem":        "M6 3h12l4 6-10 13L2 9zM11 3L8 9l4 13 4-13-3-6M2 9h20",
	"moon":       "M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9z",
	"sun":        "M12 8a4 4 0 1 0 0 8 4 4 0 1 0 0-8zM12 2v2M12 20v2M4.9 4.9l1.4 1.4M17.7 17.7l1.4 1.4M2 12h2M20 12h2M6.3 17.7l-1.4 1.4M19.1 4.9l-1.4 1.4",
	"cloud":      "M17.5 19H9a7 7 0 1 1 6.7-9h1.8a4.5 4.5 0 1 1 0 9z",
	"leaf":       "M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.5 19 2c1 2 2 4.2 2 8 0 5.5-4.8 10-10 10zM2 21c0-3 1.9-5.4 5.2-6C9.5 14.5 11.5 13 13 12",
	"paw-print":  "M11 2a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM18 6a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM20 14a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM9 10a5 5 0 0 1 5 5v3.5a3.5 3.5 0 0 1-6.8 1.2c-.3-.9-1-1.6-1.9-1.9A3.5 3.5 0 0 1 6.5 11z",
	"cat":        "M12 5c.7 0 1.3.1 2 .2C15.8 3.3 18 2 19 2c.7 1.3.7 3.4.2 5 1.1 1.1 1.8 2.5 1.8 4 0 4.4-4 8-9 8s-9-3.6-9-8c0-1.5.7-2.9 1.8-4-.5-1.6-.5-3.7.2-5 1 0 3.2 1.3 5 3.2.7-.1 1.3-.2 2-.2zM8 14v.5M16 14v.5M11.3 17.3h1.4",
	"dog":        "M11.2 4.2C11.7 3.5 12.5 3 13.5 3 15.4 3 17 4.6 17 6.5V8h2l2 3-2 3h-2v3a4 4 0 0 1-4 4h-2a4 4 0 0 1-4-4v-3H5l-2-3 2-3h2V6.5C7 4.6 8.6 3 10.5 3c.3 0 .5.1.7.2zM10 12h.01M14 12h.01M11 16h2",
	"bird":       "M16 7h.01M3.4 18H12a8 8 0 0 0 8-8V7a4 4 0 0 0-7.3-2.3L2 20M20 7l2 .5-2 .5M10 18v3M14 17.8V21M7.6 18c1.6-2.2 2.4-4.7 2.4-7.5",
	"fish":       "M6.5 12c.9-1.7 3.5-5 8-5 3.5 0 6.5 2.5 7.5 5-1 2.5-4 5-7.5 5-4.5 0-7.1-3.3-8-5zM18 12v.5M6.5 12L2 8v8z",
	"bug":        "M8 2l1.9 1.9M14.1 3.9L16 2M9 7.1v-1a3 3 0 1 1 6 0v1M12 20c-3.3 0-6-2.7-6-6v-3a4 4 0 0 1 4-4h4a4 4 0 0 1 4 4v3c0 3.3-2.7 6-6 6zM12 20v-9M6.5 9C4.6 8.8 3 7.1 3 5M6 13H2M3 21c0-2.1 1.7-3.9 3.8-4M20.97 5c0 2.1-1.6 3.8-3.5 4M22 13h-4M17.2 17c2.1.1 3.8 1.9 3.8 4",
	"orbit":      "M12 10a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM19 2a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM5 18a2 2 0 1 0 0 4 2 2 0 1 0 0-4zM20.2 10a9 9 0 0 1-11.3 10.6M3.8 14A9 9 0 0 1 15.1 3.4",
	"anchor":     "M12 2a3 3 0 1 0 0 6 3 3 0 1 0 0-6zM12 22V8M5 12H2a10 10 0 0 0 20 0h-3",
	"atom":       "M12 11a1 1 0 1 0 0 2 1 1 0 1 0 0-2zM20.2 20.2c2-2-.9-8.3-6.4-13.8C8.3.9 2 -1.8 0 .2M3.8 3.8c-2 2 .9 8.3 6.4 13.8 5.5 5.5 11.8 8.4 13.8 6.4",
	"axe":        "M14 12l-8.5 8.5a2.1 2.1 0 1 1-3-3L11 9M15 13L9 7l4-4 6 6h3a8 8 0 0 1-7 7z",
	"bomb":       "M11 9a7 7 0 1 0 0 14 7 7 0 1 0 0-14zM14.4 9.6l1.1-1.1a2.1 2.1 0 0 1 3 0l1 1M22 2l-1.5 1.5",
	"brain":      "M12 5a3 3 0 1 0-6 .1 4 4 0 0 0-2.5 5.8 4 4 0 0 0 .6 6.6A4 4 0 1 0 12 18zM12 5a3 3 0 1 1 6 .1 4 4 0 0 1 2.5 5.8 4 4 0 0 1-.6 6.6A4 4 0 1 1 12 18zM12 5v13",
	"castle":     "M22 20v-9H2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2zM18 11V4H6v7M15 22v-4a3 3 0 0 0-6 0v4M22 11V9M2 11V9M6 4V2M18 4V2M10 4V2M14 4V2",
	"compass":    "M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20zM16.2 7.8l-2 6.4-6.4 2 2-6.4z",
	"dices":      "M2 12h10v10H2zM17.9 16a2 2 0 0 0 1.5-.6l2.1-2.1a2 2 0 0 0 0-2.9L13.6 2.6a2 2 0 0 0-2.9 0L8.6 4.7A2 2 0 0 0 8 6.1M6 18h.01M10 14h.01M15 6h.01M18 9h.01",
	"feather":    "M12.7 19H5V11.3a2 2 0 0 1 .6-1.4l4.9-5a6 6 0 0 1 8.5 8.5l-4.9 5a2 2 0 0 1-1.4.6zM16 8L2 22M17.5 15H9",
	"flag":       "M4 22V4a1 1 0 0 1 .4-.8A6 6 0 0 1 8 2c3 0 5 2 7.3 2.8 1.5.5 3 .4 4.7-.5v11c-1.7.9-3.2 1-4.7.5C13 15 11 13 8 13a6 6 0 0 0-4 1.5",
	"globe":      "M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20zM12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20M2 12h20",
	"headphones": "M3 14h3a2 2 0 0 1 2 2v3a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a9 9 0 0 1 18 0v7a2 2 0 0 1-2 2h-1a2 2 0 0 1-2-2v-3a2 2 0 0 1 2-2h3",
	"key":        "M15.5 7.5l2.3 2.3a1 1 0 0 0 1.4 0l2.1-2.1a1 1 0 0 0 0-1.4L19 4M21 2l-9.6 9.6M7.5 10.5a5.5 5.5 0 1 0 0 11 5.5 5.5 0 1 0 0-11z",
	"mountain":   "M8 3l4 8 5-5 5 15H2z",
	"music":      "M9 18V5l12-2v13M6 15a3 3 0 1 0 0 6 3 3 0 1 0 0-6zM18 13a3 3 0 1 0 0 6 3 3 0 1 0 0-6z",
	"puzzle":     "M15.4 12.8a.8.8 0 0 1 .8-.8 2.3 2.3 0 1 0 0-4.6.8.8 0 0 1-.8-.8V4a2 2 0 0 0-2-2h-2.6a.8.8 0 0 0-.8.8 2.3 2.3 0 1 1-4.6 0 .8.8 0 0 0-.8-.8H2v6.2c0 .4.4.8.8.8a2.3 2.3 0 1 1 0 4.6.8.8 0 0 0-.8.8V22h6.6a.8.8 0 0 0 .8-.8 2.3 2.3 0 1 1 4.6 0c0 .4.4.8.8.8H20a2 2 0 0 0 2-2v-2.6a.8.8 0 0 0-.8-.8 2.3 2.3 0 1 1 0-4.6.8.8 0 0 0 .8-.8",
	"snowflake":  "M2 12h20M12 2v20M20 16l-4-4 4-4M4 8l4 4-4 4M16 4l-4 4-4-4M8 20l4-4 4 4",
	"target":     "M12 2a10 10 0 1 0 0 20 10 10 0 1 0 0-20zM12 6a6 6 0 1 0 0 12 6 6 0 1 0 0-12zM12 10a2 2 0 1 0 0 4 2 2 0 1 0 0-4z",
	"tent":       "M3.5 21L14 3M20.5 21L10 3M15.5 21L12 15l-3.5 6M2 21h20",
	"trophy":     "M6 9H4.5a2.5 2.5 0 0 1 0-5H6M18 9h1.5a2.5 2.5 0 0 0 0-5H18M4 22h16M10 14.7V17c0 .6-.5 1-1 1.2C7.9 18.8 7 20.2 7 22M14 14.7V17c0 .6.5 1 1 1.2 1.1.5 2 1.9 2 3.8M18 2H6v7a6 6 0 0 0 12 0z",
	"wand":       "M15 4V2M15 16v-2M8 9h2M20 9h2M17.8 11.8L19 13M15 9h.01M17.8 6.2L19 5M3 21l9-9M12.2 6.2L11 5",
	"waves":      "M2 6c.6.5 1.2 1 2.5 1C7 7 7 5 9.5 5c2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1M2 12c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1M2 18c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1",
	"eye":        "M2.1 12.3a1 1 0 0 1 0-.7 10.8 10.8 0 0 1 19.8 0 1 1 0 0 1 0 .7 10.8 10.8 0 0 1-19.8 0zM12 9a3 3 0 1 0 0 6 3 3 0 1 0 0-6z",
}

// LucidePath returns the stroke geometry for a Lucide icon name.
func LucidePath(name string) (string, bool) {
	path, ok := lucidePaths[name]
	return path, ok
}

// LucidePathOrDefault provides stable geometry even when the name is unknown.
func LucidePathOrDefault(name string) string {
	if path, ok := lucidePaths[name]; ok {
		return path
	}
	return lucidePaths[lucideFallbackName]
}

// LucideNameFromSymbolID strips the sprite prefix from a symbol reference.
func LucideNameFromSymbolID(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, lucideSymbolPrefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}
