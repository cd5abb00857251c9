package obj

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/prefabs"
)

type fakeDevice map[ebiten.Key]bool

func (d fakeDevice) IsKeyDown(key ebiten.Key) bool { return d[key] }

// fakeLoader hands out nil frames; short lists sheets that come back with
// fewer frames than asked for.
type fakeLoader struct {
	short map[string]int
	fail  map[string]error
}

func (l fakeLoader) LoadFrames(path string, count int) ([]*ebiten.Image, error) {
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	return make([]*ebiten.Image, count-l.short[path]), nil
}

type drawCall struct {
	frame *ebiten.Image
	dst   common.Rect
	tint  color.Color
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawFrame(frame *ebiten.Image, dst common.Rect, tint color.Color, rotation float64) {
	r.calls = append(r.calls, drawCall{frame: frame, dst: dst, tint: tint})
}

// stepSource lets a test change the step between ticks.
type stepSource struct{ step float64 }

func (s *stepSource) Step() float64 { return s.step }

func newTestClock(step float64) (*clock.Clock, *stepSource) {
	src := &stepSource{step: step}
	return clock.New(src, 0), src
}

func animDefs(frames map[string]int) map[string]prefabs.AnimationDefSpec {
	defs := make(map[string]prefabs.AnimationDefSpec, len(frames))
	for name, n := range frames {
		defs[name] = prefabs.AnimationDefSpec{Sheet: fmt.Sprintf("sprites/%s.png", name), Frames: n}
	}
	return defs
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:      "player",
		MoveSpeed: 100,
		Health:    100,
		Animation: prefabs.AnimationSpec{
			DefaultFPS: 10,
			SpawnFPS:   8,
			Defs: animDefs(map[string]int{
				"spawn": 5, "idle": 4, "die": 6,
				"walk_left": 6, "walk_up_left": 6, "walk_up": 6, "walk_up_right": 6,
				"walk_right": 6, "walk_down_right": 6, "walk_down": 6, "walk_down_left": 6,
			}),
		},
		Profile: prefabs.ProfileSpec{
			Display:   prefabs.RectSpec{X: -12, Y: -12, Width: 24, Height: 24},
			Collision: prefabs.RectSpec{X: -8, Y: -8, Width: 16, Height: 16},
		},
	}
}

func testEnemySpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Name:          "slime",
		MoveSpeed:     50,
		ContactDamage: 10,
		Animation: prefabs.AnimationSpec{
			DefaultFPS: 6,
			Defs:       animDefs(map[string]int{"walk_left": 4, "walk_up": 4, "walk_right": 4, "walk_down": 4}),
		},
		Profile: prefabs.ProfileSpec{
			Display:   prefabs.RectSpec{X: -10, Y: -10, Width: 20, Height: 20},
			Collision: prefabs.RectSpec{X: -6, Y: -6, Width: 12, Height: 12},
		},
	}
}
