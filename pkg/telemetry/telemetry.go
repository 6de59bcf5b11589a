// Package telemetry renders a strip chart of cycles-per-frame and timer
// drift: a debug aid for the invariant that every subsystem advances in
// lockstep with the CPU's reported cycle count. It is diagnostic-only and
// never read by the core itself.
package telemetry

import (
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Recorder accumulates a bounded history of per-frame cycle counts.
type Recorder struct {
	samples []float64
	limit   int
}

// NewRecorder returns a Recorder keeping at most limit samples, discarding
// the oldest once full.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Record appends one frame's observed cycle count (CyclesPerFrame plus
// whatever overshoot RunFrame's last Step added past the budget — the
// "drift" the strip chart exists to surface).
func (r *Recorder) Record(cycles uint32) {
	r.samples = append(r.samples, float64(cycles))
	if len(r.samples) > r.limit {
		r.samples = r.samples[len(r.samples)-r.limit:]
	}
}

// RenderPNG draws the recorded history as a line chart onto a width x
// height RGBA image.
func (r *Recorder) RenderPNG(width, height int) (*image.RGBA, error) {
	p := plot.New()
	p.Title.Text = "cycles per frame"
	p.Y.Label.Text = "T-states"
	p.X.Label.Text = "frame"

	pts := make(plotter.XYs, len(r.samples))
	for i, v := range r.samples {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	canvas := vgimg.NewWith(vgimg.UseImage(img), vgimg.UseDPI(96))
	p.Draw(draw.New(canvas))
	return img, nil
}
