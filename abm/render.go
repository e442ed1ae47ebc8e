package abm

import (
	"image/color"
)

// Anything that can draw a filled disk. The simulation never looks at what
// the renderer does with it.
type Renderer interface {
	DrawDisk(x, y, radius float64, c color.RGBA)
}

type Disk struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// Renderer that queues disks so they can be drawn later, e.g. when the
// simulation is stepped outside the window's draw callback.
type Recorder struct {
	disks []Disk
}

func (r *Recorder) DrawDisk(x, y, radius float64, c color.RGBA) {
	r.disks = append(r.disks, Disk{X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) Disks() []Disk { return r.disks }

// Empties the queue, keeping its storage.
func (r *Recorder) Reset() {
	r.disks = r.disks[:0]
}
