package calibrate

import (
	"math"
	"testing"

	"github.com/tsawler/replot/vector"
)

func TestConvert_LinearEndpoints(t *testing.T) {
	// Endpoints must map exactly, not just approximately.
	got, err := Convert(72, 72, 432, -5, 5, false)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != -5 {
		t.Errorf("Convert(pageMin) = %g, want -5 exactly", got)
	}

	got, err = Convert(432, 72, 432, -5, 5, false)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != 5 {
		t.Errorf("Convert(pageMax) = %g, want 5 exactly", got)
	}
}

func TestConvert_LinearMidpoint(t *testing.T) {
	got, err := Convert(50, 0, 100, 0, 10, false)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("Convert(midpoint) = %g, want 5", got)
	}
}

func TestConvert_NotClamped(t *testing.T) {
	// Values outside the observed page bounds stay on the same line.
	got, err := Convert(200, 0, 100, 0, 10, false)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(got-20) > 1e-12 {
		t.Errorf("Convert(beyond pageMax) = %g, want 20", got)
	}
}

func TestConvert_LogEndpointsAndMidpoint(t *testing.T) {
	got, err := Convert(0, 0, 100, 0.01, 100, true)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(got-0.01) > 1e-12 {
		t.Errorf("Convert(pageMin) = %g, want 0.01", got)
	}

	got, err = Convert(100, 0, 100, 0.01, 100, true)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(got-100) > 1e-10 {
		t.Errorf("Convert(pageMax) = %g, want 100", got)
	}

	// Halfway across the page is the geometric mean of the bounds.
	got, err = Convert(50, 0, 100, 0.01, 100, true)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("Convert(midpoint) = %g, want 1", got)
	}
}

func TestConvert_DegenerateAxis(t *testing.T) {
	for _, value := range []float64{-100, 0, 42, 1e9} {
		got, err := Convert(value, 33, 33, -1, 1, false)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if got != -1 {
			t.Errorf("Convert(%g, degenerate) = %g, want userMin (-1)", value, got)
		}
	}

	// The degenerate rule wins even in log mode with bad bounds: no
	// division, no log, just userMin.
	got, err := Convert(5, 33, 33, -1, 1, true)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != -1 {
		t.Errorf("Convert(degenerate, log) = %g, want -1", got)
	}
}

func TestConvert_LogRejectsNonPositiveBounds(t *testing.T) {
	tests := []struct {
		name             string
		userMin, userMax float64
	}{
		{"zero min", 0, 100},
		{"negative min", -1, 100},
		{"zero max", 0.01, 0},
		{"negative max", 0.01, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(50, 0, 100, tt.userMin, tt.userMax, true)
			if err == nil {
				t.Fatalf("Convert() = %g, want error", got)
			}
			if math.IsNaN(got) {
				t.Error("Convert() returned NaN alongside error")
			}
		})
	}
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"linear negative bounds ok", Spec{XMin: -5, XMax: 5, YMin: -1, YMax: 1}, false},
		{"log with positive bounds", Spec{XMin: 0.01, XMax: 100, YMin: 1, YMax: 10, LogX: true, LogY: true}, false},
		{"logx with zero xmin", Spec{XMin: 0, XMax: 100, YMin: 0, YMax: 1, LogX: true}, true},
		{"logy with negative ymin", Spec{XMin: 0, XMax: 1, YMin: -1, YMax: 1, LogY: true}, true},
		{"log only on linear axis", Spec{XMin: -5, XMax: 5, YMin: 1, YMax: 10, LogY: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpec_Apply(t *testing.T) {
	spec := Spec{XMin: 0, XMax: 100, YMin: -1, YMax: 1}
	bounds := vector.Bounds{XMin: 0, XMax: 200, YMin: 0, YMax: 140, Valid: true}

	got, err := spec.Apply(vector.Point{X: 100, Y: 140}, bounds)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if math.Abs(got.X-50) > 1e-12 {
		t.Errorf("Apply().X = %g, want 50", got.X)
	}
	if got.Y != 1 {
		t.Errorf("Apply().Y = %g, want 1", got.Y)
	}
}
