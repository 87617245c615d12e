// pkg/render/color.go
package render

import "image/color"

// TrackColors holds all the color definitions needed to render the static track background.
type TrackColors struct {
	BackgroundColor color.RGBA
	TrackColor      color.RGBA
	EdgeColor       color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	TrackWidth      float32
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// IsLight reports whether dark text reads better on c.
func IsLight(c color.RGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 > 128
}
