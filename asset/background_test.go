package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Encode a small image whose pixel at (x, y) has R=x, G=y, B=0 so samples
// can be traced back to raster coordinates.
func mockPanorama(t *testing.T, width, height int) *Background {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	bg, err := NewBackground(NewResourceFromStream("panorama.png", &buf))
	if err != nil {
		t.Fatal(err)
	}
	return bg
}

func TestBackgroundDecode(t *testing.T) {
	bg := mockPanorama(t, 16, 8)

	if bg.Width != 16 || bg.Height != 8 {
		t.Fatalf("expected background dims to be 16x8; got %dx%d", bg.Width, bg.Height)
	}

	expLen := 16 * 8 * 3
	if len(bg.Pix) != expLen {
		t.Fatalf("expected pix len to be %d; got %d", expLen, len(bg.Pix))
	}

	// Row-major, 3 bytes per pixel.
	offset := (2*16 + 5) * 3
	if bg.Pix[offset] != 5 || bg.Pix[offset+1] != 2 || bg.Pix[offset+2] != 0 {
		t.Fatalf("expected pixel (5, 2) to decode to (5, 2, 0); got (%d, %d, %d)",
			bg.Pix[offset], bg.Pix[offset+1], bg.Pix[offset+2])
	}
}

func TestBackgroundDecodeError(t *testing.T) {
	res := NewResourceFromStream("bogus.png", bytes.NewReader([]byte("not an image")))
	if _, err := NewBackground(res); err == nil {
		t.Fatalf("expected decode of bogus data to fail")
	}
}

func TestProjectionSample(t *testing.T) {
	bg := mockPanorama(t, 64, 32)

	frameW, frameH := uint32(8), uint32(6)
	fov := float32(math.Pi / 3)
	proj := bg.Project(frameW, frameH, fov)

	// The sampled pixel must match a direct evaluation of the remap.
	for _, screen := range [][2]uint32{{0, 0}, {3, 2}, {7, 5}} {
		row := wrap(proj.y0+proj.ky*float32(screen[1]), bg.Height)
		col := wrap(proj.x0+proj.kx*float32(screen[0]), bg.Width)
		exp := types.XYZ(float32(col)/255, float32(row)/255, 0)

		if got := proj.Sample(screen[0], screen[1]); got != exp {
			t.Fatalf("expected sample at (%d, %d) to be %v; got %v", screen[0], screen[1], exp, got)
		}
	}
}

func TestProjectionWraps(t *testing.T) {
	type spec struct {
		v    float32
		size uint32
		exp  uint32
	}
	specs := []spec{
		{0, 8, 0},
		{7.9, 8, 7},
		{8, 8, 0},
		{13, 8, 5},
		{-1, 8, 7},
		{-9, 8, 7},
	}

	for index, s := range specs {
		if got := wrap(s.v, s.size); got != s.exp {
			t.Fatalf("[spec %d] expected wrap(%f, %d) to be %d; got %d", index, s.v, s.size, s.exp, got)
		}
	}
}
