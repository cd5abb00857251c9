package assets

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

var ErrShortFrames = errors.New("assets: fewer frames than requested")

// Loader turns a path-like id and a frame count into an ordered frame
// sequence. An error means the caller has no valid animation for that id.
type Loader interface {
	LoadFrames(path string, count int) ([]*ebiten.Image, error)
}

// SheetLoader reads horizontal strips of square frames: the frame size is the
// sheet height and frames run left to right. Sheets are read from the embedded
// tree first, then from disk, and cached by path.
type SheetLoader struct {
	fsys  fs.FS
	cache map[string]image.Image
}

// NewSheetLoader creates a loader over fsys. A nil fsys uses the embedded assets.
func NewSheetLoader(fsys fs.FS) *SheetLoader {
	if fsys == nil {
		fsys = assetsFS
	}
	return &SheetLoader{fsys: fsys, cache: make(map[string]image.Image)}
}

func (l *SheetLoader) LoadFrames(path string, count int) ([]*ebiten.Image, error) {
	if count <= 0 {
		return nil, fmt.Errorf("assets: load %s: frame count %d", path, count)
	}
	sheet, err := l.sheet(path)
	if err != nil {
		return nil, err
	}
	rects, err := frameRects(sheet.Bounds(), count)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	sub, ok := sheet.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("assets: load %s: %T cannot be sliced", path, sheet)
	}
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = ebiten.NewImageFromImage(sub.SubImage(r))
	}
	return frames, nil
}

func (l *SheetLoader) sheet(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := l.cache[clean]; ok {
		return img, nil
	}
	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		disk, derr := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean)))
		if derr != nil {
			return nil, fmt.Errorf("assets: load %s: %w", path, err)
		}
		b = disk
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	l.cache[clean] = img
	return img, nil
}

// frameRects returns the first count square frames of a horizontal strip.
func frameRects(bounds image.Rectangle, count int) ([]image.Rectangle, error) {
	size := bounds.Dy()
	if size <= 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrShortFrames)
	}
	available := bounds.Dx() / size
	if available < count {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrShortFrames, available, count)
	}
	rects := make([]image.Rectangle, count)
	for i := range rects {
		x := bounds.Min.X + i*size
		rects[i] = image.Rect(x, bounds.Min.Y, x+size, bounds.Min.Y+size)
	}
	return rects, nil
}

// PlaceholderLoader makes flat-colored frames so objects can run without art.
// The color is picked from the path so each sequence is distinguishable.
type PlaceholderLoader struct {
	Size int
}

var placeholderColors = []color.RGBA{
	colornames.Cornflowerblue,
	colornames.Crimson,
	colornames.Goldenrod,
	colornames.Mediumseagreen,
	colornames.Orchid,
	colornames.Coral,
	colornames.Slateblue,
	colornames.Turquoise,
}

func (p PlaceholderLoader) LoadFrames(path string, count int) ([]*ebiten.Image, error) {
	if count <= 0 {
		return nil, fmt.Errorf("assets: placeholder %s: frame count %d", path, count)
	}
	size := p.Size
	if size <= 0 {
		size = 24
	}
	base := placeholderColor(path)
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		img := ebiten.NewImage(size, size)
		// fade across the sequence so frame changes are visible
		img.Fill(color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 - (i*128)/count)})
		frames[i] = img
	}
	return frames, nil
}

func placeholderColor(path string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(path))
	return placeholderColors[h.Sum32()%uint32(len(placeholderColors))]
}
