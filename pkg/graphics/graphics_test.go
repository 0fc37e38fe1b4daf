package graphics

import (
	"strings"
	"testing"
)

func TestMeasureTextUsesFixedFace(t *testing.T) {
	size := MeasureText("Task # 0")
	if size.Width != 8*7 {
		t.Errorf("width = %v, want %v", size.Width, 8*7)
	}
	if size.Height != LineHeight() || size.Height <= 0 {
		t.Errorf("height = %v, line height = %v", size.Height, LineHeight())
	}
}

func TestRecorderTracksTranslation(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawText("hi", Offset{X: 1, Y: 2}, TextStyle{})
	canvas.Restore()
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), Paint{Color: ColorBlack})
	list := rec.EndRecording()

	ops := list.Ops()
	if len(ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(ops))
	}
	if ops[0].Rect.Left != 11 || ops[0].Rect.Top != 22 {
		t.Errorf("text at %v, want (11,22)", ops[0].Rect)
	}
	if ops[1].Rect.Left != 0 {
		t.Errorf("rect not restored: %v", ops[1].Rect)
	}
	if got := list.String(); got != "(11,22) \"hi\"\n" {
		t.Errorf("String() = %q", got)
	}
	if texts := list.Texts(); len(texts) != 1 || texts[0] != "hi" {
		t.Errorf("Texts() = %v", texts)
	}
}

func TestRecorderSkipsEmptyText(t *testing.T) {
	var rec PictureRecorder
	rec.BeginRecording(Size{}).DrawText("", Offset{}, TextStyle{})
	if n := len(rec.EndRecording().Ops()); n != 0 {
		t.Errorf("len(ops) = %d, want 0", n)
	}
}

func TestRasterizeDrawsPixels(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 40, Height: 20})
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), Paint{Color: ColorPurple})
	canvas.DrawText("A", Offset{X: 10, Y: 2}, TextStyle{Color: ColorBlack})
	img := Rasterize(rec.EndRecording(), ColorWhite)

	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(1, 1); got.R != 0x66 || got.B != 0xA4 {
		t.Errorf("rect pixel = %+v", got)
	}
	if got := img.RGBAAt(39, 19); got.R != 0xFF || got.G != 0xFF {
		t.Errorf("background pixel = %+v", got)
	}
	dark := 0
	for y := 2; y < 15; y++ {
		for x := 10; x < 17; x++ {
			if img.RGBAAt(x, y).R < 0x80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected glyph pixels for \"A\"")
	}
}

func TestEmptyRecorder(t *testing.T) {
	var rec PictureRecorder
	if got := rec.EndRecording().String(); strings.TrimSpace(got) != "" {
		t.Errorf("String() = %q", got)
	}
}
