package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/avatars/internal/platform/assets/catalog"
	"github.com/louisbranch/avatars/internal/platform/icons"
	"github.com/louisbranch/avatars/internal/services/avatars/identity"
	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

type fakeSeedStore struct {
	avatars []storage.SeedAvatar
	banners []storage.SeedBanner
	err     error
}

func (f *fakeSeedStore) ReplaceSeed(_ context.Context, avatars []storage.SeedAvatar, banners []storage.SeedBanner) error {
	f.avatars, f.banners = avatars, banners
	return f.err
}

func (f *fakeSeedStore) ListSeedAvatars(_ context.Context, category string) ([]storage.SeedAvatar, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []storage.SeedAvatar{}
	for _, a := range f.avatars {
		if category == "" || strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSeedStore) ListSeedBanners(_ context.Context, category string) ([]storage.SeedBanner, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []storage.SeedBanner{}
	for _, b := range f.banners {
		if category == "" || strings.EqualFold(b.Category, category) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeSeedStore) GetSeedAvatar(_ context.Context, id string) (storage.SeedAvatar, error) {
	if f.err != nil {
		return storage.SeedAvatar{}, f.err
	}
	for _, a := range f.avatars {
		if a.ID == id {
			return a, nil
		}
	}
	return storage.SeedAvatar{}, storage.ErrNotFound
}

func newTestHandler(t *testing.T, seeds storage.SeedStore) *Handler {
	t.Helper()
	return New(Config{
		Seeds:  seeds,
		Logger: log.New(io.Discard),
		Rand:   rand.New(rand.NewSource(1)),
	})
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decode[map[string]any](t, rec)
	if body["avatars"] != float64(catalog.Avatars().Len()) {
		t.Fatalf("avatars = %v, want %d", body["avatars"], catalog.Avatars().Len())
	}
}

func TestListAvatarsPaginates(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rec := serve(t, h, http.MethodGet, "/v1/avatars?q=gamer&page_size=4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	first := decode[listAvatarsResponse](t, rec)
	if first.TotalSize != len(catalog.Themes()) {
		t.Fatalf("total_size = %d, want %d", first.TotalSize, len(catalog.Themes()))
	}
	if len(first.Avatars) != 4 || first.NextPageToken == "" {
		t.Fatalf("first page = %d avatars, token %q", len(first.Avatars), first.NextPageToken)
	}

	rec = serve(t, h, http.MethodGet, "/v1/avatars?q=gamer&page_size=4&page_token="+first.NextPageToken, "")
	second := decode[listAvatarsResponse](t, rec)
	if len(second.Avatars) != 4 || second.Avatars[0].ID == first.Avatars[0].ID {
		t.Fatalf("second page = %+v", second.Avatars)
	}
}

func TestListAvatarsRejectsBadInput(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	tests := []string{
		"/v1/avatars?page_size=abc",
		"/v1/avatars?page_size=-1",
		"/v1/avatars?page_token=bogus",
	}
	for _, target := range tests {
		rec := serve(t, h, http.MethodGet, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
		if body := decode[errorResponse](t, rec); body.Error == "" {
			t.Fatalf("%s expected error message", target)
		}
	}
}

func TestListAvatarsRejectsTokenFromOtherQuery(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	first := decode[listAvatarsResponse](t, serve(t, h, http.MethodGet, "/v1/avatars?q=gamer&page_size=2", ""))
	rec := serve(t, h, http.MethodGet, "/v1/avatars?q=ninja&page_size=2&page_token="+first.NextPageToken, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetAvatar(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/avatars/gamer-teal", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decode[avatarResponse](t, rec)
	if body.Avatar.ID != "gamer-teal" {
		t.Fatalf("avatar id = %q, want %q", body.Avatar.ID, "gamer-teal")
	}
	if !strings.HasPrefix(body.Image, "data:image/svg+xml;base64,") {
		t.Fatalf("image = %q, want svg data uri", body.Image)
	}
}

func TestGetAvatarNotFound(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/avatars/gamer-plaid", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRandomAvatarUsesInjectedSource(t *testing.T) {
	t.Parallel()

	a := decode[avatarResponse](t, serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/avatars/random", ""))
	b := decode[avatarResponse](t, serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/avatars/random", ""))
	if a.Avatar.ID == "" || a.Avatar.ID != b.Avatar.ID {
		t.Fatalf("random picks = %q, %q, want equal non-empty", a.Avatar.ID, b.Avatar.ID)
	}
}

func TestRandomAvatarEmptyCatalog(t *testing.T) {
	t.Parallel()

	h := New(Config{Catalog: catalog.New(nil), Logger: log.New(io.Discard)})
	rec := serve(t, h, http.MethodGet, "/v1/avatars/random", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAvatarImage(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/avatars/gamer-teal/image.svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Fatalf("content type = %q, want image/svg+xml", got)
	}
	teal, _ := catalog.ThemeByID("teal")
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<svg") || !strings.Contains(body, teal.GradientStart) {
		t.Fatalf("body = %q, want teal svg", body)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	tests := []struct {
		body   string
		source identity.Source
		prefix string
	}{
		{body: `{"avatar_id":"https://cdn.test/a.png"}`, source: identity.SourceLiteral, prefix: "https://cdn.test/a.png"},
		{body: `{"avatar_id":"gamer-teal"}`, source: identity.SourceCatalog, prefix: "data:image/svg+xml;base64,"},
		{body: `{"avatar_id":"Esports-Classic-07"}`, source: identity.SourceLegacyID, prefix: "https://api.dicebear.com/7.x/identicon/svg?seed=Esports-Classic-07"},
		{body: `{"legacy_avatar_url":"https://old.test/a.png"}`, source: identity.SourceLegacyURL, prefix: "https://old.test/a.png"},
		{body: `{"username":"alice"}`, source: identity.SourceFallback, prefix: "https://api.dicebear.com/7.x/avataaars/svg?seed=alice"},
		{body: `{}`, source: identity.SourceFallback, prefix: "https://api.dicebear.com/7.x/avataaars/svg?seed=guest"},
	}
	for _, tc := range tests {
		rec := serve(t, h, http.MethodPost, "/v1/resolve", tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, body %s", tc.body, rec.Code, rec.Body.String())
		}
		res := decode[identity.Resolution](t, rec)
		if res.Source != tc.source || !strings.HasPrefix(res.URL, tc.prefix) {
			t.Fatalf("%s resolved to %+v, want %s with prefix %q", tc.body, res, tc.source, tc.prefix)
		}
	}
}

func TestResolveRejectsBadBody(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	for _, body := range []string{"not json", `{"avatar":"x"}`} {
		rec := serve(t, h, http.MethodPost, "/v1/resolve", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%q status = %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestResolveUnresolvable(t *testing.T) {
	t.Parallel()

	h := New(Config{
		Resolver: identity.NewResolver(identity.WithFallbackSeed("")),
		Logger:   log.New(io.Discard),
	})
	rec := serve(t, h, http.MethodPost, "/v1/resolve", `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestResolveMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := serve(t, newTestHandler(t, nil), http.MethodGet, "/v1/resolve", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestSeedEndpoints(t *testing.T) {
	t.Parallel()

	store := &fakeSeedStore{
		avatars: []storage.SeedAvatar{
			{ID: "cyber-001", Category: "Cyber", Seed: "cyber-1-a", URL: "u1"},
			{ID: "retro-001", Category: "Retro", Seed: "retro-1-b", URL: "u2"},
		},
		banners: []storage.SeedBanner{
			{ID: "banner-000", Category: "Cyber", Type: "gradient", Value: "v", Thumbnail: "v"},
			{ID: "banner-200", Category: "Minimal", Type: "gradient", Value: "w", Thumbnail: "w"},
		},
	}
	h := newTestHandler(t, store)

	avatars := decode[seedAvatarsResponse](t, serve(t, h, http.MethodGet, "/v1/seed/avatars?category=retro", ""))
	if len(avatars.Avatars) != 1 || avatars.Avatars[0].ID != "retro-001" {
		t.Fatalf("seed avatars = %+v", avatars.Avatars)
	}
	banners := decode[seedBannersResponse](t, serve(t, h, http.MethodGet, "/v1/seed/banners", ""))
	if len(banners.Banners) != 2 {
		t.Fatalf("seed banners = %d, want 2", len(banners.Banners))
	}
	one := decode[storage.SeedAvatar](t, serve(t, h, http.MethodGet, "/v1/seed/avatars/cyber-001", ""))
	if one.Seed != "cyber-1-a" {
		t.Fatalf("seed avatar = %+v", one)
	}
	if rec := serve(t, h, http.MethodGet, "/v1/seed/avatars/missing-001", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing seed status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSeedEndpointsWithoutStore(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	for _, target := range []string{"/v1/seed/avatars", "/v1/seed/banners", "/v1/seed/avatars/x-001"} {
		if rec := serve(t, h, http.MethodGet, target, ""); rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s status = %d, want %d", target, rec.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestSeedStoreFailure(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeSeedStore{err: errors.New("disk on fire")})
	rec := serve(t, h, http.MethodGet, "/v1/seed/banners", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "disk on fire") {
		t.Fatal("internal error leaked to client")
	}
}

func TestGlyphs(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rec := serve(t, h, http.MethodGet, "/v1/glyphs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decode[listGlyphsResponse](t, rec)
	if len(body.Glyphs) != len(icons.Glyphs()) {
		t.Fatalf("glyphs = %d, want %d", len(body.Glyphs), len(icons.Glyphs()))
	}
	if body.Glyphs[0].Ref != "lucide-gamepad-2" || body.Glyphs[0].Path == "" {
		t.Fatalf("first glyph = %+v", body.Glyphs[0])
	}

	rec = serve(t, h, http.MethodGet, "/v1/glyphs?format=markdown", "")
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
		t.Fatalf("content type = %q, want markdown", got)
	}
	if !strings.Contains(rec.Body.String(), "| Gamer | gamepad-2 | lucide-gamepad-2 |") {
		t.Fatalf("markdown missing gamer row:\n%s", rec.Body.String())
	}
}
