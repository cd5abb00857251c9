package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/component"
	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/logger"
	"github.com/milk9111/topdown/obj"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/ebitenui/ebitenui"
)

// seconds of game time a player is safe after an enemy touches them
const hitCooldown = 0.75

type enemyEntry struct {
	enemy  *obj.Enemy
	prefab string
	script string
}

type Game struct {
	debug bool

	input  *obj.Poller
	clock  *clock.Clock
	loader assets.Loader
	world  *obj.World

	players    []*obj.Player
	playerIDs  []obj.ObjectID
	playerSpec []string
	safeUntil  []float64
	enemies    []enemyEntry
	scripts    map[string]*ai.Script

	watcher *prefabs.Watcher
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg *config.Config, loader assets.Loader) (*Game, error) {
	var source clock.Source
	switch {
	case cfg.FixedStep > 0:
		source = clock.FixedSource(cfg.FixedStep)
	case cfg.WallClock:
		source = clock.NewWallSource()
	}

	g := &Game{
		debug:   cfg.Debug,
		input:   obj.NewPoller(nil),
		clock:   clock.New(source, cfg.MaxStep),
		loader:  loader,
		world:   obj.NewWorld(),
		scripts: make(map[string]*ai.Script),
	}

	for i, pc := range cfg.Players {
		if err := g.addPlayer(i, pc); err != nil {
			return nil, err
		}
	}

	for i, ec := range cfg.Enemies {
		spec, err := prefabs.LoadEnemySpec(ec.Prefab)
		if err != nil {
			return nil, err
		}
		scriptName := spec.Script
		if ec.Script != "" {
			scriptName = ec.Script
		}
		script, err := g.script(scriptName)
		if err != nil {
			return nil, err
		}
		e := obj.NewEnemy(obj.EnemyOptions{
			ID:       i + 1,
			Spec:     spec,
			Position: ec.Spawn.Vector(),
			Brain:    script.NewBrain(),
			Clock:    g.clock,
		})
		e.SetTarget(g.targetFor(e))
		if err := e.Setup(loader, spec.Animation); err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i+1, err)
		}
		g.enemies = append(g.enemies, enemyEntry{enemy: e, prefab: ec.Prefab, script: scriptName})
		g.world.Add(e)
	}

	if cfg.WatchPrefabs {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.Log.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) addPlayer(i int, pc config.Player) error {
	spec, err := prefabs.LoadPlayerSpec(pc.Prefab)
	if err != nil {
		return err
	}
	p := obj.NewPlayer(obj.PlayerOptions{
		Index:    i,
		Spec:     spec,
		Position: pc.Spawn.Vector(),
		Bindings: *pc.Bindings,
		KillKey:  *pc.KillKey,
		Input:    g.input,
		Clock:    g.clock,
		Tint:     pc.Tint.ColorOr(nil),
	})
	if err := p.Setup(g.loader, spec.Animation); err != nil {
		return fmt.Errorf("player %d: %w", i+1, err)
	}
	g.players = append(g.players, p)
	g.playerIDs = append(g.playerIDs, g.world.Add(p))
	g.playerSpec = append(g.playerSpec, pc.Prefab)
	g.safeUntil = append(g.safeUntil, 0)
	return nil
}

func (g *Game) script(name string) (*ai.Script, error) {
	if s, ok := g.scripts[name]; ok {
		return s, nil
	}
	s, err := ai.LoadScript(name)
	if err != nil {
		return nil, err
	}
	g.scripts[name] = s
	return s, nil
}

// targetFor chases the nearest living player.
func (g *Game) targetFor(e *obj.Enemy) func() cp.Vector {
	return func() cp.Vector {
		pos := e.Position()
		best, bestDist := pos, -1.0
		for _, p := range g.players {
			if !p.Alive() {
				continue
			}
			d := p.Position().Sub(pos).Length()
			if bestDist < 0 || d < bestDist {
				best, bestDist = p.Position(), d
			}
		}
		return best
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.quit || g.input.WasKeyPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if g.input.WasKeyPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	g.clock.SetPaused(g.paused)
	g.clock.Tick()
	g.reloadChanged()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()
	g.removeOut()
	g.contactDamage()
	if g.debug {
		g.debugKeys()
	}
	return nil
}

// removeOut takes players with no lives left out of the world once their
// death animation has played.
func (g *Game) removeOut() {
	for i, p := range g.players {
		if !p.Out() {
			continue
		}
		if g.world.Remove(g.playerIDs[i]) {
			logger.Log.WithField("player", p.Index+1).WithField("score", p.Data.Score).Info("player out")
		}
	}
}

func (g *Game) contactDamage() {
	now := g.clock.Total()
	for i, p := range g.players {
		if !p.Alive() || now < g.safeUntil[i] {
			continue
		}
		for _, entry := range g.enemies {
			if entry.enemy.Hitbox().Intersects(p.Hitbox()) {
				p.Damage(entry.enemy.ContactDamage)
				g.safeUntil[i] = now + hitCooldown
				break
			}
		}
	}
}

func (g *Game) debugKeys() {
	if len(g.players) == 0 {
		return
	}
	p := g.players[0]
	switch {
	case g.input.WasKeyPressed(ebiten.KeyF1):
		p.Data.Collect(component.ItemPotion)
	case g.input.WasKeyPressed(ebiten.KeyF2):
		p.Data.AddScore(100)
	case g.input.WasKeyPressed(ebiten.KeyF3):
		p.Data.Collect(component.ItemShield)
	case g.input.WasKeyPressed(ebiten.KeyF4):
		p.Damage(25)
	case g.input.WasKeyPressed(ebiten.KeyF5):
		if !p.Data.DrinkPotion() {
			logger.Log.WithField("player", p.Index+1).Debug("potion not used")
		}
	case g.input.WasKeyPressed(ebiten.KeyF6):
		p.Data.Collect(component.ItemKey)
	}
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil {
		logger.Log.WithError(err).Warn("prefab watcher")
	}
	for _, c := range g.watcher.Drain() {
		log := logger.Log.WithField("file", c.Name)
		switch c.Kind {
		case prefabs.ChangeScript:
			g.reloadScript(c.Name, log)
		case prefabs.ChangeSpec:
			g.reloadPrefab(c.Name, log)
		}
	}
}

func (g *Game) reloadScript(name string, log *logrus.Entry) {
	s, err := ai.LoadScript(name)
	if err != nil {
		log.WithError(err).Warn("script reload failed")
		return
	}
	g.scripts[name] = s
	for _, entry := range g.enemies {
		if entry.script == name {
			entry.enemy.SetBrain(s.NewBrain())
		}
	}
	log.Info("script reloaded")
}

func (g *Game) reloadPrefab(name string, log *logrus.Entry) {
	for i, p := range g.players {
		if g.playerSpec[i] != name {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec(name)
		if err != nil {
			log.WithError(err).Warn("prefab reload failed")
			return
		}
		p.ApplySpec(spec)
	}
	for _, entry := range g.enemies {
		if entry.prefab != name {
			continue
		}
		spec, err := prefabs.LoadEnemySpec(name)
		if err != nil {
			log.WithError(err).Warn("prefab reload failed")
			return
		}
		entry.enemy.ApplySpec(spec)
	}
	log.Info("prefab reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.world.Draw(render.Screen{Target: screen})

	var hud strings.Builder
	for _, p := range g.players {
		d := p.Data
		fmt.Fprintf(&hud, "P%d  lives %d  score %d  hp %d/%d  %s\n", p.Index+1, d.Lives, d.Score, d.Health, d.MaxHealth, p.State())
	}
	if g.debug {
		fmt.Fprintf(&hud, "TPS: %.1f  step: %.4f  objects: %d\n", ebiten.ActualTPS(), g.clock.Step(), g.world.Len())
	}
	ebitenutil.DebugPrint(screen, hud.String())

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
