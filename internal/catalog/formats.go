package catalog

import (
	"time"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// Platform output presets. Dimensions, qualities and profiles follow the
// published platform recommendations.
var formats = map[string]entity.OutputFormat{
	"instagram-post": {
		Key: "instagram-post", Name: "Instagram Post",
		Width: 1080, Height: 1080, Format: entity.FormatJPEG, Quality: 90,
		Profile: "social-media", FileSuffix: "instagram-post",
	},
	"instagram-story": {
		Key: "instagram-story", Name: "Instagram Story",
		Width: 1080, Height: 1920, Format: entity.FormatJPEG, Quality: 85,
		Profile: "story", FileSuffix: "instagram-story",
	},
	"facebook-post": {
		Key: "facebook-post", Name: "Facebook Post",
		Width: 1200, Height: 630, Format: entity.FormatJPEG, Quality: 90,
		Profile: "social-media", FileSuffix: "facebook-post",
	},
	"twitter-post": {
		Key: "twitter-post", Name: "Twitter Post",
		Width: 1200, Height: 675, Format: entity.FormatJPEG, Quality: 90,
		Profile: "social-media", FileSuffix: "twitter-post",
	},
	"linkedin-post": {
		Key: "linkedin-post", Name: "LinkedIn Post",
		Width: 1200, Height: 627, Format: entity.FormatJPEG, Quality: 85,
		Profile: "professional", FileSuffix: "linkedin-post",
	},
	"print-quality": {
		Key: "print-quality", Name: "Print Quality",
		Width: 2048, Height: 2048, Format: entity.FormatPNG, Quality: 100,
		Profile: "print", FileSuffix: "print",
	},
}

// Fixed-window rate-limit rules per action.
var limitRules = map[string]entity.LimitRule{
	"default":  {Requests: 100, Window: time.Hour},
	"upload":   {Requests: 10, Window: time.Hour},
	"generate": {Requests: 50, Window: time.Hour},
	"batch":    {Requests: 5, Window: time.Hour},
}
