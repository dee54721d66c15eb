package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopData animates the short scale/fade effect shown where an apple was
// caught. The tween runs from the object scale up to the pop's max scale
// over the configured duration; the entity is removed when it finishes.
type PopData struct {
	Scale *gween.Tween
	Life  float64 // seconds since the pop started
}

var Pop = donburi.NewComponentType[PopData]()
