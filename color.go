package engine

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// parseHexColor decodes a #rrggbb string. The leading # is optional.
func parseHexColor(s string) (color.RGBA, bool) {
	if !hexColorPattern.MatchString(s) {
		return color.RGBA{}, false
	}
	s = strings.TrimPrefix(s, "#")
	r, _ := strconv.ParseUint(s[0:2], 16, 8)
	g, _ := strconv.ParseUint(s[2:4], 16, 8)
	b, _ := strconv.ParseUint(s[4:6], 16, 8)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, true
}

// shadeHexColor scales each channel of a #rrggbb colour by intensity,
// floors the result and re-encodes it as a lowercase zero-padded hex
// string. Intensity is expected in [0,1].
func shadeHexColor(s string, intensity float64) string {
	clr, ok := parseHexColor(s)
	if !ok {
		clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Floor(float64(clr.R)*intensity)),
		uint8(math.Floor(float64(clr.G)*intensity)),
		uint8(math.Floor(float64(clr.B)*intensity)))
}
