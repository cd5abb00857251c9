// Command spsa previews the animations of a prefab.
//
//	go run ./cmd/spsa -prefab enemy.yaml -anim walk_down
//
// Left/Right cycle sequences, Space restarts, L toggles looping.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/component"
	"github.com/milk9111/topdown/logger"
	"github.com/milk9111/topdown/obj"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/render"
)

const (
	viewSize = 256
	scale    = 6.0
)

type previewGame struct {
	input *obj.Poller
	clock *clock.Clock
	anim  *component.Animation
	ids   []component.AnimationID
	index int
	loop  bool
	done  int
}

func (g *previewGame) Update() error {
	g.input.Update()
	g.clock.Tick()

	switch {
	case g.input.WasKeyPressed(ebiten.KeyArrowRight):
		g.show((g.index + 1) % len(g.ids))
	case g.input.WasKeyPressed(ebiten.KeyArrowLeft):
		g.show((g.index + len(g.ids) - 1) % len(g.ids))
	case g.input.WasKeyPressed(ebiten.KeySpace):
		g.anim.Reset()
	case g.input.WasKeyPressed(ebiten.KeyL):
		g.loop = !g.loop
		g.anim.Reset()
	}

	if g.anim.Update(g.clock.Step(), g.loop) {
		g.done++
	}
	return nil
}

func (g *previewGame) show(i int) {
	g.index = i
	g.anim.SetAnimation(g.ids[i])
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	img := g.anim.Image()
	if img != nil {
		w := float64(img.Bounds().Dx()) * scale
		h := float64(img.Bounds().Dy()) * scale
		dst := common.Rect{X: (viewSize - w) / 2, Y: (viewSize - h) / 2, Width: w, Height: h}
		render.Screen{Target: screen}.DrawFrame(img, dst, nil, 0)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %d/%d  %.0ffps\nloop %v  completions %d",
		g.anim.Current(), g.anim.Frame()+1, g.anim.FrameCount(), g.anim.Speed(), g.loop, g.done))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab file to preview")
	start := flag.String("anim", "", "animation to start on (first by name if empty)")
	fps := flag.Float64("fps", 0, "playback speed override")
	placeholder := flag.Bool("placeholder", false, "use flat placeholder frames")
	flag.Parse()

	spec, err := prefabs.LoadSpec[struct {
		Animation prefabs.AnimationSpec `yaml:"animation"`
	}](*prefab)
	if err != nil {
		logger.Log.WithError(err).Fatal("load prefab")
	}
	if len(spec.Animation.Defs) == 0 {
		logger.Log.WithField("prefab", *prefab).Fatal("no animations")
	}

	var loader assets.Loader = assets.NewSheetLoader(nil)
	if *placeholder {
		loader = assets.PlaceholderLoader{Size: 24}
	}

	anim := component.NewAnimation(spec.Animation.DefaultFPS)
	var ids []component.AnimationID
	for name, def := range spec.Animation.Defs {
		frames, err := loader.LoadFrames(def.Sheet, def.Frames)
		if err != nil {
			logger.Log.WithError(err).WithField("anim", name).Fatal("load frames")
		}
		if err := anim.Register(component.AnimationID(name), frames); err != nil {
			logger.Log.WithError(err).Fatal("register")
		}
		ids = append(ids, component.AnimationID(name))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	g := &previewGame{
		input: obj.NewPoller(nil),
		clock: clock.New(nil, 0.1),
		anim:  anim,
		ids:   ids,
		loop:  true,
	}
	for i, id := range ids {
		if string(id) == *start {
			g.index = i
		}
	}
	g.show(g.index)
	anim.SetSpeed(*fps)

	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("spsa: " + *prefab)
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("run")
	}
}
