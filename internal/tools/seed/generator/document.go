package generator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/louisbranch/avatars/internal/services/avatars/storage"
)

// Document is the persisted seed artifact.
type Document struct {
	Avatars []storage.SeedAvatar `json:"avatars"`
	Banners []storage.SeedBanner `json:"banners"`
}

// WriteDocument writes doc as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	if doc.Avatars == nil {
		doc.Avatars = []storage.SeedAvatar{}
	}
	if doc.Banners == nil {
		doc.Banners = []storage.SeedBanner{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode seed document: %w", err)
	}
	return nil
}

// LoadDocument reads a seed artifact written by WriteDocument.
func LoadDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode seed document: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Avatars)+len(doc.Banners))
	for _, avatar := range doc.Avatars {
		if avatar.ID == "" {
			return Document{}, fmt.Errorf("seed avatar without id")
		}
		if _, ok := seen[avatar.ID]; ok {
			return Document{}, fmt.Errorf("duplicate seed id %q", avatar.ID)
		}
		seen[avatar.ID] = struct{}{}
	}
	for _, banner := range doc.Banners {
		if banner.ID == "" {
			return Document{}, fmt.Errorf("seed banner without id")
		}
		if _, ok := seen[banner.ID]; ok {
			return Document{}, fmt.Errorf("duplicate seed id %q", banner.ID)
		}
		seen[banner.ID] = struct{}{}
	}
	return doc, nil
}
