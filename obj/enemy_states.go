package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/component"
)

type enemyWalkState struct {
	e    *Enemy
	id   StateID
	anim component.AnimationID
	dir  cp.Vector
}

func (s *enemyWalkState) ID() StateID { return s.id }
func (s *enemyWalkState) Enter() {
	s.e.stateTime = 0
	s.e.anim.SetAnimation(s.anim)
	s.e.anim.ResetSpeed()
}
func (s *enemyWalkState) Update() {
	e := s.e
	e.stateTime += e.step()
	if r := e.ProcessAI(); r.Handled {
		return
	}
	e.anim.Update(e.step(), true)
	e.move(s.dir.Mult(e.moveSpeed))
}
func (s *enemyWalkState) Exit() {}
