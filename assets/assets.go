package assets

import (
	"image/color"
	"math/rand"
	"sync"

	cfg "github.com/automoto/pufspace/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	imageCache = map[cfg.TextureID]*ebiten.Image{}
	imageMu    sync.Mutex
)

// GetImage returns the sprite for a texture, drawing it on first use. A
// texture missing from cfg.Textures reports false.
func GetImage(id cfg.TextureID) (*ebiten.Image, bool) {
	imageMu.Lock()
	defer imageMu.Unlock()

	if img, ok := imageCache[id]; ok {
		return img, true
	}
	info, ok := cfg.Textures[id]
	if !ok {
		return nil, false
	}

	img := drawTexture(id, info)
	imageCache[id] = img
	return img, true
}

func drawTexture(id cfg.TextureID, info cfg.TextureInfo) *ebiten.Image {
	w, h := info.Width, info.Height
	img := ebiten.NewImage(w, h)

	switch id {
	case cfg.TextureBackground1, cfg.TextureBackground2:
		drawStarfield(img, info, int64(id))
		return img
	case cfg.TextureShip:
		drawShip(img, info.Color)
		return img
	}

	if info.Round {
		r := float32(min(w, h)) / 2
		vector.DrawFilledCircle(img, float32(w)/2, float32(h)/2, r, info.Color, true)
		return img
	}
	img.Fill(info.Color)
	return img
}

// drawShip draws an upward-pointing hull with a cockpit.
func drawShip(img *ebiten.Image, c color.RGBA) {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	var path vector.Path
	path.MoveTo(w/2, 0)
	path.LineTo(w, h)
	path.LineTo(w/2, h*0.75)
	path.LineTo(0, h)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	img.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.DrawFilledCircle(img, w/2, h*0.45, w*0.08, cfg.White, true)
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white
}

// drawStarfield fills a background with its base color and a fixed
// scatter of stars so scrolling is visible.
func drawStarfield(img *ebiten.Image, info cfg.TextureInfo, seed int64) {
	img.Fill(info.Color)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < 120; i++ {
		x := float32(r.Intn(info.Width))
		y := float32(r.Intn(info.Height))
		size := float32(1 + r.Intn(2))
		vector.FillRect(img, x, y, size, size, color.RGBA{R: 200, G: 200, B: 230, A: 200}, false)
	}
}
