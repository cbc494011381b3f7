package core

import "testing"

func TestV2(t *testing.T) {
	v := V2(3, 7)
	if v.X != 3 || v.Y != 7 {
		t.Errorf("Expected (3, 7), got %v", v)
	}
}

func TestAdd(t *testing.T) {
	got := V2(2, 3).Add(V2(-5, 4))
	want := V2(-3, 7)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestIn(t *testing.T) {
	size := V2(10, 5)
	tests := []struct {
		name string
		v    Vec2
		want bool
	}{
		{"origin", V2(0, 0), true},
		{"interior", V2(5, 2), true},
		{"last cell", V2(9, 4), true},
		{"past width", V2(10, 0), false},
		{"past height", V2(0, 5), false},
		{"negative x", V2(-1, 0), false},
		{"negative y", V2(0, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.In(size); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := V2(4, 9).String(); got != "(4, 9)" {
		t.Errorf("Expected (4, 9), got %s", got)
	}
}
