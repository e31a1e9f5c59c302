package generator

import (
	"context"
	"fmt"

	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

const (
	// BannerType is the only banner kind generated.
	BannerType = "gradient"

	bannerHueStep  = 37
	bannerHueShift = 40
)

// bannerBand assigns the category for indexes up to and including MaxIndex.
type bannerBand struct {
	MaxIndex   int
	Category   string
	Saturation int
	Light      int
	Dark       int
}

var bannerBands = []bannerBand{
	{MaxIndex: 50, Category: "Cyber", Saturation: 85, Light: 55, Dark: 30},
	{MaxIndex: 100, Category: "Neon", Saturation: 100, Light: 60, Dark: 45},
	{MaxIndex: 150, Category: "Dark", Saturation: 45, Light: 25, Dark: 10},
}

var minimalBand = bannerBand{Category: "Minimal", Saturation: 20, Light: 92, Dark: 80}

func bandFor(index int) bannerBand {
	for _, band := range bannerBands {
		if index <= band.MaxIndex {
			return band
		}
	}
	return minimalBand
}

// BannerCategory returns the category for the banner at index.
func BannerCategory(index int) string {
	return bandFor(index).Category
}

// BannerGradient returns the CSS gradient for the banner at index. Hues step
// by a fixed angle so neighbors differ and the sequence repeats every 360.
func BannerGradient(index int) string {
	band := bandFor(index)
	hue := (index * bannerHueStep) % 360
	end := (hue + bannerHueShift) % 360
	return fmt.Sprintf(
		"linear-gradient(135deg, hsl(%d, %d%%, %d%%) 0%%, hsl(%d, %d%%, %d%%) 100%%)",
		hue, band.Saturation, band.Light,
		end, band.Saturation, band.Dark,
	)
}

func (g *Generator) generateBanners(ctx context.Context) ([]storage.SeedBanner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	banners := make([]storage.SeedBanner, 0, g.config.Banners)
	for i := 0; i < g.config.Banners; i++ {
		value := BannerGradient(i)
		banners = append(banners, storage.SeedBanner{
			ID:        fmt.Sprintf("banner-%03d", i),
			Category:  BannerCategory(i),
			Type:      BannerType,
			Value:     value,
			Thumbnail: value,
		})
	}
	return banners, nil
}
