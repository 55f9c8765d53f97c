// Package caching computes content fingerprints and ETags and decides the
// tiered Cache-Control policy per content class.
package caching

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/quoteviral/quoteviral/internal/dto"
)

// Tier is where a cached copy lives.
type Tier string

const (
	TierBrowser Tier = "browser"
	TierCDN     Tier = "cdn"
	TierOrigin  Tier = "origin"
)

type strategy struct {
	maxAge int // seconds
}

// Max-age tiers per content class. Unknown classes get no-cache.
var strategies = map[string]map[Tier]strategy{
	"templates": {
		TierBrowser: {maxAge: 3600},
		TierCDN:     {maxAge: 86400},
		TierOrigin:  {maxAge: 2592000},
	},
	"generated": {
		TierBrowser: {maxAge: 300},
		TierCDN:     {maxAge: 3600},
		TierOrigin:  {maxAge: 86400},
	},
	"uploads": {
		TierBrowser: {maxAge: 3600},
		TierCDN:     {maxAge: 86400},
		TierOrigin:  {maxAge: 31536000},
	},
	"fonts": {
		TierBrowser: {maxAge: 31536000},
		TierCDN:     {maxAge: 31536000},
		TierOrigin:  {maxAge: 31536000},
	},
}

const _defaultVary = "Accept, User-Agent"

// Fingerprint hashes the canonicalized generation parameters. Identical
// parameters always produce identical keys; changing any one parameter
// changes the key.
func Fingerprint(p dto.GenerateParams) string {
	formats := append([]string(nil), p.OutputFormats...)
	sort.Strings(formats)

	canonical := strings.Join([]string{
		p.QuoteText,
		p.FontID,
		fmt.Sprintf("%g", p.FontSize),
		p.Category,
		p.OverlayStyle,
		p.Language,
		strings.Join(formats, ","),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))

	return hex.EncodeToString(sum[:])
}

// CacheKey is the response-cache key for a generation request.
func CacheKey(p dto.GenerateParams) string {
	return "image:" + Fingerprint(p)
}

// ETag hashes raw content for conditional-GET validation.
func ETag(content []byte) string {
	sum := sha256.Sum256(content)

	return `"` + hex.EncodeToString(sum[:])[:16] + `"`
}

// NotModified reports whether the client's If-None-Match matches the
// current ETag.
func NotModified(ifNoneMatch, etag string) bool {
	return ifNoneMatch != "" && ifNoneMatch == etag
}

// Headers returns the Cache-Control and Vary headers for a content class
// and tier. Unknown classes fall back to no-cache.
func Headers(contentClass string, tier Tier) map[string]string {
	s, ok := strategies[contentClass][tier]
	if !ok {
		return map[string]string{
			"Cache-Control": "no-cache",
			"Vary":          _defaultVary,
		}
	}

	return map[string]string{
		"Cache-Control": fmt.Sprintf("public, max-age=%d", s.maxAge),
		"Vary":          _defaultVary,
	}
}
