package v1

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/dto"
)

var mobileUA = regexp.MustCompile(`Mobile|Android|iPhone`)

// caller identifies the client for rate limiting: the edge-provided
// connecting IP when present, the socket address otherwise.
func caller(ctx *fiber.Ctx) dto.Caller {
	clientID := ctx.Get("CF-Connecting-IP")
	if clientID == "" {
		clientID = ctx.IP()
	}
	if clientID == "" {
		clientID = "unknown"
	}

	return dto.Caller{
		ClientID:  clientID,
		UserAgent: ctx.Get(fiber.HeaderUserAgent),
	}
}

// capabilities parses the negotiation headers: Accept for format support,
// DPR and User-Agent for display class, Save-Data for reduced quality.
func capabilities(ctx *fiber.Ctx) dto.ClientCapabilities {
	accept := ctx.Get(fiber.HeaderAccept)

	dpr := 1.0
	if v, err := strconv.ParseFloat(ctx.Get("DPR"), 64); err == nil && v > 0 {
		dpr = v
	}

	return dto.ClientCapabilities{
		SupportsWebP:     strings.Contains(accept, "image/webp"),
		SupportsAVIF:     strings.Contains(accept, "image/avif"),
		IsMobile:         mobileUA.MatchString(ctx.Get(fiber.HeaderUserAgent)),
		DevicePixelRatio: dpr,
		SaveData:         ctx.Get("Save-Data") == "on",
	}
}
