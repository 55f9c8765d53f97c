// Package catalog holds the immutable lookup tables loaded at process
// start: quotes, fonts, categories, languages, output format presets and
// rate-limit rules. Nothing here mutates at runtime.
package catalog

import (
	"fmt"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// Quotes returns the seeded quotes for a category and language. Unknown
// pairs fall back to motivational/en.
func Quotes(category, language string) []entity.Quote {
	texts, ok := quotes[category][language]
	if !ok {
		category, language = "motivational", "en"
		texts = quotes[category][language]
	}

	result := make([]entity.Quote, len(texts))
	for i, text := range texts {
		result[i] = entity.Quote{
			ID:       fmt.Sprintf("%s_%s_%d", category, language, i),
			Text:     text,
			Category: category,
			Language: language,
		}
	}

	return result
}

// Font returns the preset for an ID, falling back to the default preset.
func Font(id string) entity.FontPreset {
	if f, ok := fonts[id]; ok {
		return f
	}

	return fonts["default"]
}

// Fonts returns all font presets.
func Fonts() []entity.FontPreset {
	result := make([]entity.FontPreset, 0, len(fonts))
	for _, id := range fontOrder {
		result = append(result, fonts[id])
	}

	return result
}

// Categories returns the category catalog.
func Categories() []entity.Category {
	return categories
}

// Languages returns the language catalog.
func Languages() []entity.Language {
	return languages
}

// Format returns the output preset for a key. The second value is false for
// unknown keys; callers skip those silently.
func Format(key string) (entity.OutputFormat, bool) {
	f, ok := formats[key]
	return f, ok
}

// Formats returns all output presets.
func Formats() map[string]entity.OutputFormat {
	result := make(map[string]entity.OutputFormat, len(formats))
	for k, v := range formats {
		result[k] = v
	}

	return result
}

// LimitRule returns the window configuration for an action, falling back to
// the default rule.
func LimitRule(action string) entity.LimitRule {
	if r, ok := limitRules[action]; ok {
		return r
	}

	return limitRules["default"]
}
