package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// qrQuiet is the light border, in modules, drawn around the code.
const qrQuiet = 2

// RenderQR encodes text as a QR code (error correction level M) and renders
// it for a terminal using half-block characters, two module rows per line.
//
// With color enabled each cell carries explicit black/white colors, so the
// code scans on any terminal theme. Without color, light modules are drawn
// as blocks and dark modules as spaces, which suits dark-background
// terminals.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	// Black reports false outside the grid, which yields the quiet zone.
	light := func(x, y int) bool { return !code.Black(x, y) }

	lo, hi := -qrQuiet, code.Size+qrQuiet
	var b strings.Builder
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			top := light(x, y)
			bottom := y+1 < hi && light(x, y+1)
			b.WriteString(qrCell(top, bottom))
		}
		if colorEnabled {
			b.WriteString(Reset)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func qrCell(topLight, bottomLight bool) string {
	if colorEnabled {
		fg, bg := QRDarkFg, QRDarkBg
		if topLight {
			fg = QRLightFg
		}
		if bottomLight {
			bg = QRLightBg
		}
		return fg + bg + "▀"
	}
	switch {
	case topLight && bottomLight:
		return "█"
	case topLight:
		return "▀"
	case bottomLight:
		return "▄"
	default:
		return " "
	}
}
