package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize replays a display list onto a new RGBA image filled with
// background.
func Rasterize(list *DisplayList, background Color) *image.RGBA {
	size := list.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(size.Width)), int(math.Ceil(size.Height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	list.Paint(&rasterCanvas{img: img, size: size})
	return img
}

// rasterCanvas paints onto an image. Display lists hold absolute
// coordinates, so translation is tracked only for direct callers.
type rasterCanvas struct {
	img    *image.RGBA
	size   Size
	origin Offset
	stack  []Offset
}

func (c *rasterCanvas) Save() { c.stack = append(c.stack, c.origin) }

func (c *rasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *rasterCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(Offset{X: dx, Y: dy})
}

func (c *rasterCanvas) DrawRect(rect Rect, paint Paint) {
	rect = rect.Translate(c.origin)
	src := image.NewUniform(paint.Color.NRGBA())
	r := image.Rect(int(rect.Left), int(rect.Top), int(math.Ceil(rect.Right)), int(math.Ceil(rect.Bottom)))
	if !paint.Stroke {
		draw.Draw(c.img, r, src, image.Point{}, draw.Over)
		return
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.img, e, src, image.Point{}, draw.Over)
	}
}

func (c *rasterCanvas) DrawText(text string, position Offset, style TextStyle) {
	position = position.Add(c.origin)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: Face,
		Dot:  fixed.P(int(position.X), int(position.Y)+ascent()),
	}
	drawer.DrawString(text)
	if style.Bold {
		drawer.Dot = fixed.P(int(position.X)+1, int(position.Y)+ascent())
		drawer.DrawString(text)
	}
}

func (c *rasterCanvas) Size() Size { return c.size }
