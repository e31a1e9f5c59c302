// Package storage defines persistence contracts for bulk-seeded avatar and
// banner descriptors.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested seed record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates two seed records share one id.
	ErrAlreadyExists = errors.New("record already exists")
)

// SeedAvatar is one remotely templated avatar produced by the bulk seeder.
type SeedAvatar struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Seed     string `json:"seed"`
	URL      string `json:"url"`
}

// SeedBanner is one gradient banner produced by the bulk seeder.
type SeedBanner struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Thumbnail string `json:"thumbnail"`
}

// SeedStore persists one seed generation at a time.
type SeedStore interface {
	// ReplaceSeed swaps the stored generation for the given records atomically.
	ReplaceSeed(ctx context.Context, avatars []SeedAvatar, banners []SeedBanner) error
	// ListSeedAvatars returns avatars in id order; an empty category lists all.
	ListSeedAvatars(ctx context.Context, category string) ([]SeedAvatar, error)
	// ListSeedBanners returns banners in id order; an empty category lists all.
	ListSeedBanners(ctx context.Context, category string) ([]SeedBanner, error)
	GetSeedAvatar(ctx context.Context, id string) (SeedAvatar, error)
}
