package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/component"
)

type playerSpawnState struct{ p *Player }

func (s *playerSpawnState) ID() StateID { return StateSpawn }
func (s *playerSpawnState) Enter() {
	p := s.p
	p.Data.FullReset()
	p.dying, p.out = false, false
	p.stop()
	p.anim.SetAnimation(animSpawn)
	p.anim.SetSpeed(p.spawnFPS)
}
func (s *playerSpawnState) Update() {
	if s.p.anim.Update(s.p.step(), false) {
		s.p.SetState(StateWalkRight)
	}
}
func (s *playerSpawnState) Exit() {}

// playerMoveState covers Idle and the eight walk directions; Idle is the one
// with a zero direction.
type playerMoveState struct {
	p    *Player
	id   StateID
	anim component.AnimationID
	dir  cp.Vector
}

func (s *playerMoveState) ID() StateID { return s.id }
func (s *playerMoveState) Enter() {
	s.p.anim.SetAnimation(s.anim)
	s.p.anim.ResetSpeed()
}
func (s *playerMoveState) Update() {
	p := s.p
	if p.dying {
		p.SetState(StateDie)
		return
	}
	if p.ProcessStandardInputs() {
		return
	}
	p.anim.Update(p.step(), true)
	p.move(s.dir.Mult(p.moveSpeed))
}
func (s *playerMoveState) Exit() {}

// playerDieState spends a life. With lives left the player respawns at its
// spawn point once the animation ends; on the last life Die is terminal.
type playerDieState struct{ p *Player }

func (s *playerDieState) ID() StateID { return StateDie }
func (s *playerDieState) Enter() {
	p := s.p
	p.dying = false
	p.stop()
	p.anim.SetAnimation(animDie)
	p.anim.ResetSpeed()
	p.out = p.Data.LoseLife()
}
func (s *playerDieState) Update() {
	p := s.p
	p.stop()
	if !p.anim.Update(p.step(), false) || p.out {
		return
	}
	p.Data.Reset()
	p.position = p.spawnPoint
	p.SetState(StateIdle)
}
func (s *playerDieState) Exit() {}
