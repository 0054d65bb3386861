package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Estilos por defecto de la superficie en pantalla (tema oscuro de la app)
// y override print-safe que aplica el exportador.
const (
	DefaultStyle   = "background:#0f172a;color:#e2e8f0"
	PrintSafeStyle = "background:#ffffff;color:#000000"
)

// parseStyle interpreta un style string "background:#rrggbb;color:#rrggbb".
// Claves desconocidas se ignoran; claves ausentes caen al default indicado.
func parseStyle(style string) Theme {
	th := Theme{
		Background: color.White,
		Foreground: color.Black,
	}
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		c, err := parseHexColor(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(k) {
		case "background", "background-color":
			th.Background = c
		case "color":
			th.Foreground = c
		}
	}
	return th
}

// parseHexColor interpreta "#rgb" o "#rrggbb".
func parseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return nil, strconv.ErrSyntax
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, nil
}
