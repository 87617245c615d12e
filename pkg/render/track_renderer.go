// pkg/render/track_renderer.go
package render

import (
	"image/color"
	"strconv"

	"go-bloon-defense/internal/config"
	"go-bloon-defense/pkg/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WorldToScreen converts world coordinates (origin at the screen centre, Y up)
// to screen pixels.
func WorldToScreen(p track.Vec2) (float32, float32) {
	return float32(config.WorldOriginX + p.X), float32(config.WorldOriginY - p.Y)
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(x, y int) track.Vec2 {
	return track.Vec2{X: float64(x) - config.WorldOriginX, Y: config.WorldOriginY - float64(y)}
}

type TrackRenderer struct {
	track    *track.Track
	colors   *TrackColors
	fontFace font.Face
	fillImg  *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
	mapImage *ebiten.Image // pre-rendered track
}

func NewTrackRenderer(tr *track.Track, face font.Face, colors *TrackColors, screenWidth, screenHeight int) *TrackRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &TrackRenderer{
		track:    tr,
		colors:   colors,
		fontFace: face,
		fillImg:  fillImg,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage draws the background and the track once.
func (r *TrackRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	nodes := r.track.Nodes()
	r.strokePath(r.mapImage, nodes, r.colors.TrackWidth+2*r.colors.StrokeWidth, r.colors.EdgeColor)
	r.strokePath(r.mapImage, nodes, r.colors.TrackWidth, r.colors.TrackColor)

	start := nodes[0]
	end := nodes[len(nodes)-1]
	sx, sy := WorldToScreen(start)
	ex, ey := WorldToScreen(end)
	vector.DrawFilledCircle(r.mapImage, sx, sy, r.colors.TrackWidth/2, r.colors.EntryColor, true)
	vector.DrawFilledCircle(r.mapImage, ex, ey, r.colors.TrackWidth/2, r.colors.ExitColor, true)

	// Node numbers
	for i, n := range nodes {
		label := strconv.Itoa(i)
		x, y := WorldToScreen(n)
		textColor := r.colors.TextLightColor
		if IsLight(r.colors.TrackColor) {
			textColor = r.colors.TextDarkColor
		}
		bounds := text.BoundString(r.fontFace, label)
		text.Draw(r.mapImage, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, textColor)
	}
}

func (r *TrackRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *TrackRenderer) strokePath(target *ebiten.Image, nodes []track.Vec2, width float32, clr color.RGBA) {
	path := vector.Path{}
	for i, n := range nodes {
		x, y := WorldToScreen(n)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	colorVertices(r.vs, clr)
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func colorVertices(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}

var polygonImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// FillPolygon fills the closed polygon given by screen points.
func FillPolygon(target *ebiten.Image, points [][2]float32, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, clr)
	target.DrawTriangles(vs, is, polygonImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
