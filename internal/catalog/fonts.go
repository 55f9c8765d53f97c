package catalog

import "github.com/quoteviral/quoteviral/internal/entity"

// fontOrder keeps /api/fonts output stable.
var fontOrder = []string{
	"default", "aesthetic", "bold", "elegant", "modern",
	"gradient", "meme", "script", "serif", "condensed",
}

// Font families name the embedded Go faces; the render engine picks the
// face by weight and style.
var fonts = map[string]entity.FontPreset{
	"default": {
		ID: "default", Name: "Clean & Simple",
		Family: "Go", Size: 48, Color: "#FFFFFF", LineHeight: 60,
		Weight: "normal", ShadowColor: "rgba(0,0,0,0.8)", ShadowBlur: 4,
	},
	"aesthetic": {
		ID: "aesthetic", Name: "Aesthetic Gold",
		Family: "Go", Size: 52, Color: "#f5a623", LineHeight: 70,
		Weight: "normal", ShadowColor: "rgba(0,0,0,0.9)", ShadowBlur: 6,
	},
	"bold": {
		ID: "bold", Name: "Bold Impact",
		Family: "Go", Size: 56, Color: "#FFFFFF", LineHeight: 75,
		Weight: "bold", ShadowColor: "rgba(0,0,0,1)", ShadowBlur: 8,
	},
	"elegant": {
		ID: "elegant", Name: "Elegant Classic",
		Family: "Go", Size: 44, Color: "#f8f8f2", LineHeight: 65,
		Weight: "normal", ShadowColor: "rgba(0,0,0,0.7)", ShadowBlur: 3,
	},
	"modern": {
		ID: "modern", Name: "Modern Clean",
		Family: "Go", Size: 50, Color: "#ffffff", LineHeight: 68,
		Weight: "500", ShadowColor: "rgba(0,0,0,0.8)", ShadowBlur: 5,
	},
	"gradient": {
		ID: "gradient", Name: "Gradient Pink",
		Family: "Go", Size: 54, Color: "#ff6b6b", LineHeight: 72,
		Weight: "600", ShadowColor: "rgba(0,0,0,0.9)", ShadowBlur: 6,
	},
	"meme": {
		ID: "meme", Name: "Meme Impact",
		Family: "Go", Size: 60, Color: "#FFFFFF", LineHeight: 72,
		Weight: "bold", ShadowColor: "rgba(0,0,0,1)", ShadowBlur: 10,
	},
	"script": {
		ID: "script", Name: "Script Style",
		Family: "Go", Size: 58, Color: "#ff69b4", LineHeight: 78,
		Weight: "italic", ShadowColor: "rgba(0,0,0,0.8)", ShadowBlur: 5,
	},
	"serif": {
		ID: "serif", Name: "Classic Serif",
		Family: "Go", Size: 48, Color: "#2c3e50", LineHeight: 60,
		Weight: "bold", ShadowColor: "rgba(0,0,0,0.8)", ShadowBlur: 4,
	},
	"condensed": {
		ID: "condensed", Name: "Condensed Bold",
		Family: "Go", Size: 52, Color: "#e74c3c", LineHeight: 65,
		Weight: "bold", ShadowColor: "rgba(0,0,0,0.9)", ShadowBlur: 5,
	},
}

var categories = []entity.Category{
	{Key: "motivational", Name: "Motivational", Emoji: "💪", Color: "#3b82f6"},
	{Key: "aesthetic", Name: "Aesthetic", Emoji: "✨", Color: "#8b5cf6"},
	{Key: "memes", Name: "Memes", Emoji: "😂", Color: "#f59e0b"},
	{Key: "business", Name: "Business", Emoji: "💼", Color: "#10b981"},
	{Key: "inspirational", Name: "Inspirational", Emoji: "🌟", Color: "#f472b6"},
}

var languages = []entity.Language{
	{Key: "en", Name: "English", Flag: "🇺🇸"},
	{Key: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Key: "fr", Name: "French", Flag: "🇫🇷"},
	{Key: "hi", Name: "Hindi", Flag: "🇮🇳"},
	{Key: "de", Name: "German", Flag: "🇩🇪"},
	{Key: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Key: "it", Name: "Italian", Flag: "🇮🇹"},
	{Key: "ja", Name: "Japanese", Flag: "🇯🇵"},
}
