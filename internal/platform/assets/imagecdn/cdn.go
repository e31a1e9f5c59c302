// Package imagecdn builds URLs for the remote avatar templating service.
//
// The service renders a style-specific image for any seed token. This package
// only constructs URLs; fetching is left to whatever surface displays them.
package imagecdn

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

const (
	// DefaultBaseURL is the public templating host.
	DefaultBaseURL = "https://api.dicebear.com"
	// DefaultVersion is the templating API version segment.
	DefaultVersion = "7.x"
)

var (
	// ErrSeedRequired reports a URL request without a seed token.
	ErrSeedRequired = errors.New("seed is required")
	// ErrStyleInvalid reports a style outside the supported set.
	ErrStyleInvalid = errors.New("style is invalid")
	// ErrBaseURLInvalid reports a base URL that is empty or not absolute.
	ErrBaseURLInvalid = errors.New("base url is invalid")
)

// Style names one remote rendering style.
type Style string

const (
	// StyleHuman draws illustrated human characters.
	StyleHuman Style = "avataaars"
	// StyleRobot draws robots.
	StyleRobot Style = "bottts"
	// StylePattern draws symmetric identicon patterns.
	StylePattern Style = "identicon"
	// StylePixel draws pixel-art characters.
	StylePixel Style = "pixel-art"
)

// Styles returns every supported style.
func Styles() []Style {
	return []Style{StyleHuman, StyleRobot, StylePattern, StylePixel}
}

// Valid reports whether s is a supported style.
func (s Style) Valid() bool {
	switch s {
	case StyleHuman, StyleRobot, StylePattern, StylePixel:
		return true
	default:
		return false
	}
}

// Templater builds templated image URLs against one host and version.
type Templater struct {
	baseURL string
	version string
}

// New returns a Templater; empty arguments fall back to the public defaults.
func New(baseURL, version string) Templater {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version = strings.Trim(strings.TrimSpace(version), "/")
	if version == "" {
		version = DefaultVersion
	}
	return Templater{baseURL: baseURL, version: version}
}

// Validate reports ErrBaseURLInvalid when the host is not an absolute URL.
func (t Templater) Validate() error {
	_, err := t.base()
	return err
}

func (t Templater) base() (*url.URL, error) {
	baseURL := t.baseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrBaseURLInvalid
	}
	return parsed, nil
}

// URL returns https://<host>/<version>/<style>/svg?seed=<seed>.
func (t Templater) URL(style Style, seed string) (string, error) {
	if !style.Valid() {
		return "", ErrStyleInvalid
	}
	if strings.TrimSpace(seed) == "" {
		return "", ErrSeedRequired
	}
	if t.version == "" {
		t.version = DefaultVersion
	}
	parsed, err := t.base()
	if err != nil {
		return "", err
	}
	parsed.Path = path.Join("/", parsed.Path, t.version, string(style), "svg")
	parsed.RawQuery = url.Values{"seed": []string{seed}}.Encode()
	return parsed.String(), nil
}
