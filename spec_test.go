package canvasrenderer

import "testing"

// TestPad tests Edges construction in CSS value order.
func TestPad(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Edges
	}{
		{"none", nil, Edges{}},
		{"one value all edges", []float64{5}, Edges{Top: 5, Right: 5, Bottom: 5, Left: 5}},
		{"two values v h", []float64{3, 7}, Edges{Top: 3, Right: 7, Bottom: 3, Left: 7}},
		{"four values clockwise", []float64{1, 2, 3, 4}, Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{"three values rejected", []float64{1, 2, 3}, Edges{}},
		{"five values rejected", []float64{1, 2, 3, 4, 5}, Edges{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.values...); got != tt.want {
				t.Errorf("Pad(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

// TestDim tests the fixed/auto split and the auto zero value.
func TestDim(t *testing.T) {
	var zero Dim
	if !zero.IsAuto() || zero.Value() != 0 {
		t.Errorf("zero Dim: IsAuto=%v Value=%v, want auto with value 0", zero.IsAuto(), zero.Value())
	}
	if !Auto().IsAuto() {
		t.Error("Auto().IsAuto() = false, want true")
	}

	fixed := Px(42)
	if fixed.IsAuto() {
		t.Error("Px(42).IsAuto() = true, want false")
	}
	if fixed.Value() != 42 {
		t.Errorf("Px(42).Value() = %v, want 42", fixed.Value())
	}

	// Px(0) is a fixed zero, distinct from auto.
	if Px(0).IsAuto() {
		t.Error("Px(0).IsAuto() = true, want false")
	}
}

// TestRadiiConstructors tests scalar expansion and explicit corners.
func TestRadiiConstructors(t *testing.T) {
	if got := Radius(9); got != (Radii{9, 9, 9, 9}) {
		t.Errorf("Radius(9) = %+v", got)
	}
	got := Corners(1, 2, 3, 4)
	want := Radii{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4}
	if got != want {
		t.Errorf("Corners = %+v, want %+v", got, want)
	}
}

// TestBackgroundEmpty tests the skip condition for the background pass.
func TestBackgroundEmpty(t *testing.T) {
	tests := []struct {
		name string
		bg   *Background
		want bool
	}{
		{"nil", nil, true},
		{"zero value", &Background{}, true},
		{"color", &Background{Color: "#fff"}, false},
		{"gradient", &Background{Gradient: map[float64]string{0: "#fff"}}, false},
		{"image", &Background{Image: &BackgroundImage{Source: "x.png"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bg.empty(); got != tt.want {
				t.Errorf("empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBackgroundImageOffset tests Position normalization.
func TestBackgroundImageOffset(t *testing.T) {
	tests := []struct {
		name     string
		position []float64
		wantX    float64
		wantY    float64
	}{
		{"nil", nil, 0, 0},
		{"scalar expands", []float64{12}, 12, 12},
		{"pair", []float64{3, 8}, 3, 8},
		{"extra values ignored", []float64{1, 2, 3}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi := &BackgroundImage{Position: tt.position}
			x, y := bi.offset()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("offset() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestBorderDrawn tests the skip condition for the border pass.
func TestBorderDrawn(t *testing.T) {
	tests := []struct {
		name   string
		border *Border
		want   bool
	}{
		{"nil", nil, false},
		{"zero width", &Border{Color: "#000"}, false},
		{"no color", &Border{Width: 2}, false},
		{"negative width", &Border{Color: "#000", Width: -1}, false},
		{"drawn", &Border{Color: "#000", Width: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.border.drawn(); got != tt.want {
				t.Errorf("drawn() = %v, want %v", got, tt.want)
			}
		})
	}
}
