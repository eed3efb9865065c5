package models

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseColor parses a CSS rgb()/rgba() colour. A missing alpha component
// means fully opaque, matching how browsers treat "rgba(r, g, b)".
func ParseColor(css string) (color.RGBA, error) {
	s := strings.TrimSpace(strings.ToLower(css))
	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return color.RGBA{}, fmt.Errorf("unsupported colour %q", css)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("unsupported colour %q", css)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("invalid channel %q in %q", parts[i], css)
		}
		rgb[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.RGBA{}, fmt.Errorf("invalid alpha %q in %q", parts[3], css)
		}
		alpha = a
	}

	// color.RGBA is alpha-premultiplied.
	a := uint8(math.Round(alpha * 255))
	premul := func(c uint8) uint8 { return uint8(math.Round(float64(c) * alpha)) }
	return color.RGBA{R: premul(rgb[0]), G: premul(rgb[1]), B: premul(rgb[2]), A: a}, nil
}

// HexColor returns the colour as an uppercase RRGGBB string, ignoring alpha.
func HexColor(css string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(css))
	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(s, "rgba("), "rgb("), ")")
	opaque := css
	if parts := strings.Split(body, ","); len(parts) == 4 {
		opaque = "rgb(" + strings.Join(parts[:3], ",") + ")"
	}
	c, err := ParseColor(opaque)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B), nil
}
