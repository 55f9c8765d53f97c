package render

import (
	"image/color"
	"strconv"
	"strings"
)

// parseColor handles the two notations the font catalog and API use:
// #rgb / #rrggbb hex and rgba(r,g,b,a). Unparseable input falls back to
// opaque white, the catalog's default text color.
func parseColor(s string) color.NRGBA {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[5 : len(s)-1])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBA(s[4 : len(s)-1])
	default:
		return color.NRGBA{255, 255, 255, 255}
	}
}

func parseHex(hex string) color.NRGBA {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{255, 255, 255, 255}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{255, 255, 255, 255}
	}

	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func parseRGBA(body string) color.NRGBA {
	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return color.NRGBA{255, 255, 255, 255}
	}

	channel := func(s string) uint8 {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}

	c := color.NRGBA{channel(parts[0]), channel(parts[1]), channel(parts[2]), 255}

	if len(parts) > 3 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err == nil && a >= 0 && a <= 1 {
			c.A = uint8(a * 255)
		}
	}

	return c
}
