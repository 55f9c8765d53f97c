package entity

// Alignment of wrapped lines around the text anchor.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Position is a vertical placement preset for the text block.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
	PositionCustom Position = "custom"
)

type Shadow struct {
	Color   string  `json:"color"`
	Blur    float64 `json:"blur"`
	OffsetX int     `json:"offset_x"`
	OffsetY int     `json:"offset_y"`
}

type Outline struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

// TextStyle is everything the layout engine needs to draw one quote.
// LineHeight and FontSize must be positive.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight string
	FontStyle  string
	Color      string
	Alignment  Alignment
	Position   Position
	X          *int
	Y          *int
	LineHeight float64
	Shadow     *Shadow
	Outline    *Outline
	Language   string
}

// FontPreset is a catalog entry selectable by font ID.
type FontPreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Family      string  `json:"family"`
	Size        float64 `json:"size"`
	Color       string  `json:"color"`
	LineHeight  float64 `json:"line_height"`
	Weight      string  `json:"weight"`
	ShadowColor string  `json:"shadow_color"`
	ShadowBlur  float64 `json:"shadow_blur"`
}
