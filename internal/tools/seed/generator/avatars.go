package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/avatars/internal/platform/assets/imagecdn"
	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

// Category is one named avatar pool and the remote style it renders with.
type Category struct {
	Name  string
	Style imagecdn.Style
}

var avatarCategories = []Category{
	{Name: "Gaming", Style: imagecdn.StylePixel},
	{Name: "Anime", Style: imagecdn.StyleHuman},
	{Name: "Cyber", Style: imagecdn.StyleRobot},
	{Name: "Fantasy", Style: imagecdn.StyleHuman},
	{Name: "Abstract", Style: imagecdn.StylePattern},
	{Name: "Retro", Style: imagecdn.StylePixel},
}

// Categories returns the avatar categories in generation order.
func Categories() []Category {
	return append([]Category(nil), avatarCategories...)
}

// SeedAvatarID returns the structural id for the index-th avatar of category.
func SeedAvatarID(category string, index int) string {
	return fmt.Sprintf("%s-%03d", strings.ToLower(category), index)
}

func (g *Generator) generateAvatars(ctx context.Context) ([]storage.SeedAvatar, error) {
	avatars := make([]storage.SeedAvatar, 0, len(avatarCategories)*g.config.PerCategory)
	for _, category := range avatarCategories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 1; i <= g.config.PerCategory; i++ {
			avatar, err := g.seedAvatar(category, i)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", category.Name, i, err)
			}
			avatars = append(avatars, avatar)
		}
		if g.config.Verbose {
			g.logger.Debug("category generated", "category", category.Name, "count", g.config.PerCategory)
		}
	}
	return avatars, nil
}

func (g *Generator) seedAvatar(category Category, index int) (storage.SeedAvatar, error) {
	salt, err := g.salt()
	if err != nil {
		return storage.SeedAvatar{}, err
	}
	token := fmt.Sprintf("%s-%d-%s", strings.ToLower(category.Name), index, salt)
	url, err := g.templater.URL(category.Style, token)
	if err != nil {
		return storage.SeedAvatar{}, err
	}
	return storage.SeedAvatar{
		ID:       SeedAvatarID(category.Name, index),
		Category: category.Name,
		Seed:     token,
		URL:      url,
	}, nil
}

// salt draws a short random token from the generator's source.
func (g *Generator) salt() (string, error) {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", "")[:8], nil
}
