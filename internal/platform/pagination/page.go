// Package pagination normalizes page sizes and encodes offset page tokens.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// ErrPageTokenInvalid reports a page token that cannot be decoded or was issued
// for a different query.
var ErrPageTokenInvalid = errors.New("page token is invalid")

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// PageToken is the decoded form of an opaque offset token.
type PageToken struct {
	Offset   int
	Checksum uint32
}

// QueryChecksum fingerprints the query a token was issued for.
func QueryChecksum(query string) uint32 {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(query))
	return hasher.Sum32()
}

// Encode renders the token as an opaque URL-safe string.
func (t PageToken) Encode() string {
	raw := strconv.Itoa(t.Offset) + ":" + strconv.FormatUint(uint64(t.Checksum), 16)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ParsePageToken decodes a token and checks it belongs to query.
//
// An empty token decodes to offset zero.
func ParsePageToken(token, query string) (PageToken, error) {
	token = strings.TrimSpace(token)
	checksum := QueryChecksum(query)
	if token == "" {
		return PageToken{Checksum: checksum}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return PageToken{}, fmt.Errorf("%w: %v", ErrPageTokenInvalid, err)
	}
	offsetPart, checksumPart, ok := strings.Cut(string(raw), ":")
	if !ok {
		return PageToken{}, ErrPageTokenInvalid
	}
	offset, err := strconv.Atoi(offsetPart)
	if err != nil || offset < 0 {
		return PageToken{}, ErrPageTokenInvalid
	}
	parsedChecksum, err := strconv.ParseUint(checksumPart, 16, 32)
	if err != nil {
		return PageToken{}, ErrPageTokenInvalid
	}
	if uint32(parsedChecksum) != checksum {
		return PageToken{}, fmt.Errorf("%w: query changed", ErrPageTokenInvalid)
	}
	return PageToken{Offset: offset, Checksum: checksum}, nil
}

// Next returns the token for the page after one of size pageSize, or the
// empty string when total items are exhausted.
func (t PageToken) Next(pageSize, total int) string {
	if pageSize <= 0 || t.Offset >= total || pageSize >= total-t.Offset {
		return ""
	}
	return PageToken{Offset: t.Offset + pageSize, Checksum: t.Checksum}.Encode()
}
