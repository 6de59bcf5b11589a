package telemetry

import "testing"

func TestRecordDropsOldestPastLimit(t *testing.T) {
	r := NewRecorder(3)
	for i := uint32(1); i <= 5; i++ {
		r.Record(i * 1000)
	}
	if len(r.samples) != 3 {
		t.Fatalf("len(samples) = %d, want 3", len(r.samples))
	}
	if r.samples[0] != 3000 {
		t.Errorf("oldest retained sample = %v, want 3000 (samples 1,2 should have been dropped)", r.samples[0])
	}
}

func TestRenderPNGProducesRequestedSize(t *testing.T) {
	r := NewRecorder(10)
	r.Record(70224)
	r.Record(70300)

	img, err := r.RenderPNG(320, 240)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}
