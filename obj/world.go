package obj

import (
	"github.com/kamstrup/intmap"
	"github.com/milk9111/topdown/render"
)

// Object is anything the World ticks and draws.
type Object interface {
	Update()
	Draw(r render.Renderer)
}

// ObjectID identifies an Object inside one World.
type ObjectID uint32

// World holds the live objects. Update and Draw visit them in insertion
// order.
type World struct {
	objects *intmap.Map[ObjectID, Object]
	order   []ObjectID
	nextID  ObjectID
}

func NewWorld() *World {
	return &World{objects: intmap.New[ObjectID, Object](32)}
}

// Add inserts o and returns its ID. IDs are never reused.
func (w *World) Add(o Object) ObjectID {
	w.nextID++
	id := w.nextID
	w.objects.Put(id, o)
	w.order = append(w.order, id)
	return id
}

// Remove drops the object with id. Reports whether it was present.
func (w *World) Remove(id ObjectID) bool {
	if !w.objects.Del(id) {
		return false
	}
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

func (w *World) Get(id ObjectID) (Object, bool) {
	return w.objects.Get(id)
}

func (w *World) Len() int { return w.objects.Len() }

// Update ticks every object once. Objects removed during the pass are skipped.
func (w *World) Update() {
	ids := append([]ObjectID(nil), w.order...)
	for _, id := range ids {
		if o, ok := w.objects.Get(id); ok {
			o.Update()
		}
	}
}

func (w *World) Draw(r render.Renderer) {
	for _, id := range w.order {
		if o, ok := w.objects.Get(id); ok {
			o.Draw(r)
		}
	}
}
