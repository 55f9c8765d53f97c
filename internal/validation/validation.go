// Package validation checks uploads and quote text against size, type and
// length policies and sanitizes text. All functions are pure.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

const (
	MaxFileSize int64 = 10 * 1024 * 1024

	MaxTextLength = 500

	MaxFilenameLength = 100
)

var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	scriptSchemePattern = regexp.MustCompile(`(?i)(?:java|vb)script:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)on\w+\s*=\s*(?:"[^"]*"|'[^']*')`)

	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// Image validates an uploaded file's presence, size and type.
func Image(size int64, contentType, filename string, maxSize int64) error {
	if size == 0 {
		return &errs.ValidationError{Reason: "no file provided"}
	}

	if size > maxSize {
		return &errs.ValidationError{
			Reason: fmt.Sprintf("file too large. Maximum size is %dMB", maxSize/1024/1024),
		}
	}

	if !AllowedContentTypes[strings.ToLower(contentType)] {
		return &errs.ValidationError{Reason: "unsupported file type. Allowed types: JPEG, PNG, WebP, GIF"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && !AllowedExtensions[ext] {
		return &errs.ValidationError{Reason: "unsupported file extension. Allowed: .jpg, .jpeg, .png, .webp, .gif"}
	}

	return nil
}

// Text validates quote text and returns it with script blocks,
// javascript:/vbscript: schemes and inline event handlers removed
// (case-insensitive), then trimmed.
func Text(text string, maxLength int) (string, error) {
	if text == "" {
		return "", errs.ErrEmptyText
	}

	if len(text) > maxLength {
		return "", &errs.TextTooLongError{MaxLength: maxLength}
	}

	sanitized := scriptTagPattern.ReplaceAllString(text, "")
	sanitized = scriptSchemePattern.ReplaceAllString(sanitized, "")
	sanitized = eventHandlerPattern.ReplaceAllString(sanitized, "")

	return strings.TrimSpace(sanitized), nil
}

// Filename replaces unsafe characters, squeezes repeats and caps length.
func Filename(name string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(name, "_")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")

	if len(sanitized) > MaxFilenameLength {
		sanitized = sanitized[:MaxFilenameLength]
	}

	return sanitized
}
