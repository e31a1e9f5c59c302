// Package identity resolves a user's avatar fields into one renderable image
// reference.
//
// Resolution is a pure mapping evaluated on every render: the result is never
// written back to the record, since the stored identifier can change without
// the resolver being told.
package identity

import (
	"errors"
	"regexp"
	"strings"

	"github.com/louisbranch/avatars/internal/platform/assets/avatarsvg"
	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/platform/assets/imagecdn"
)

// DefaultFallbackSeed seeds the fallback image when a record has no username.
const DefaultFallbackSeed = "guest"

// ErrUnresolvable reports that no field, not even the fallback seed, could
// produce an image reference.
var ErrUnresolvable = errors.New("avatar identity is unresolvable")

// Identity is the avatar-relevant subset of a user or profile record.
// Empty strings stand for absent values.
type Identity struct {
	AvatarID        string `json:"avatar_id,omitempty"`
	LegacyAvatarURL string `json:"legacy_avatar_url,omitempty"`
	Username        string `json:"username,omitempty"`
}

// WithAvatar records an explicit avatar selection. The legacy URL is left
// untouched.
func (i Identity) WithAvatar(avatarID string) Identity {
	i.AvatarID = strings.TrimSpace(avatarID)
	return i
}

// Source names which rule of the priority chain produced a reference.
type Source string

const (
	SourceLiteral   Source = "literal"
	SourceCatalog   Source = "catalog"
	SourceLegacyID  Source = "legacy_id"
	SourceLegacyURL Source = "legacy_url"
	SourceFallback  Source = "fallback"
)

// Resolution is a resolved reference plus the rule that produced it.
type Resolution struct {
	URL    string `json:"url"`
	Source Source `json:"source"`
}

var (
	literalScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)
	catalogToken  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)+$`)
)

// IsLiteral reports whether value is a fully qualified image reference.
func IsLiteral(value string) bool {
	lower := strings.ToLower(value)
	return literalScheme.MatchString(value) ||
		strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "blob:")
}

// IsCatalogToken reports whether value has the lowercase-dash shape of a
// catalog identifier.
func IsCatalogToken(value string) bool {
	return catalogToken.MatchString(value)
}

// Resolver maps identities to image references.
type Resolver struct {
	catalog      *catalog.Catalog
	templater    imagecdn.Templater
	fallbackSeed string
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithCatalog overrides the catalog consulted for catalog identifiers.
func WithCatalog(c *catalog.Catalog) Option {
	return func(r *Resolver) { r.catalog = c }
}

// WithTemplater overrides the remote templating host.
func WithTemplater(t imagecdn.Templater) Option {
	return func(r *Resolver) { r.templater = t }
}

// WithFallbackSeed overrides the seed used when a record has no username.
func WithFallbackSeed(seed string) Option {
	return func(r *Resolver) { r.fallbackSeed = strings.TrimSpace(seed) }
}

// NewResolver returns a Resolver backed by the built-in catalog and the public
// templating host unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		catalog:      catalog.Avatars(),
		templater:    imagecdn.New("", ""),
		fallbackSeed: DefaultFallbackSeed,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the image reference to render for id. It always returns a
// non-empty reference while a fallback seed is configured.
func (r *Resolver) Resolve(id Identity) string {
	res, err := r.Explain(id)
	if err != nil {
		return ""
	}
	return res.URL
}

// ResolveStrict is Resolve but reports ErrUnresolvable instead of returning
// an empty reference.
func (r *Resolver) ResolveStrict(id Identity) (string, error) {
	res, err := r.Explain(id)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// Explain walks the priority chain and reports which rule matched:
//  1. a literal AvatarID is returned unchanged;
//  2. a catalog AvatarID is synthesized locally;
//  3. any other AvatarID is classified into a remote style;
//  4. a LegacyAvatarURL is returned unchanged;
//  5. otherwise a remote image seeded by the username or the fallback seed.
func (r *Resolver) Explain(id Identity) (Resolution, error) {
	avatarID := strings.TrimSpace(id.AvatarID)
	if avatarID != "" {
		if IsLiteral(avatarID) {
			return Resolution{URL: avatarID, Source: SourceLiteral}, nil
		}
		if IsCatalogToken(avatarID) {
			if uri, err := avatarsvg.SynthesizeID(r.catalog, avatarID); err == nil {
				return Resolution{URL: uri, Source: SourceCatalog}, nil
			}
		}
		if url, err := r.templater.URL(Classify(avatarID), avatarID); err == nil {
			return Resolution{URL: url, Source: SourceLegacyID}, nil
		}
	}

	if legacy := strings.TrimSpace(id.LegacyAvatarURL); legacy != "" {
		return Resolution{URL: legacy, Source: SourceLegacyURL}, nil
	}

	seed := strings.TrimSpace(id.Username)
	if seed == "" {
		seed = r.fallbackSeed
	}
	if seed == "" {
		return Resolution{}, ErrUnresolvable
	}
	url, err := r.templater.URL(defaultLegacyStyle, seed)
	if err != nil {
		return Resolution{}, errors.Join(ErrUnresolvable, err)
	}
	return Resolution{URL: url, Source: SourceFallback}, nil
}
