package card

import "testing"

func TestMaxMinusOne(t *testing.T) {
	tests := []struct {
		name string
		in   Max
		want Max
	}{
		{"zero stays zero", IntMax(0), IntMax(0)},
		{"one becomes zero", IntMax(1), IntMax(0)},
		{"five becomes four", IntMax(5), IntMax(4)},
		{"unbounded stays unbounded", Unbounded, Unbounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.MinusOne(); !got.Equal(tt.want) {
				t.Errorf("MinusOne() = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestMaxMinusN(t *testing.T) {
	if got := IntMax(5).MinusN(3); !got.Equal(IntMax(2)) {
		t.Errorf("MinusN(3) = %s; want 2", got)
	}
	if got := IntMax(2).MinusN(5); !got.Equal(IntMax(0)) {
		t.Errorf("MinusN(5) on 2 = %s; want 0 (floored)", got)
	}
	if got := Unbounded.MinusN(100); !got.Equal(Unbounded) {
		t.Errorf("MinusN on Unbounded = %s; want unbounded", got)
	}
}

func TestBigger(t *testing.T) {
	if Bigger(1, Unbounded) {
		t.Error("1 should never be bigger than Unbounded")
	}
	if !Bigger(5, IntMax(3)) {
		t.Error("5 should be bigger than IntMax(3)")
	}
	if Bigger(3, IntMax(3)) {
		t.Error("3 should not be bigger than IntMax(3)")
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		n    int
		min  int
		max  Max
		want bool
	}{
		{0, 0, IntMax(0), true},
		{1, 0, IntMax(0), false},
		{3, 1, IntMax(5), true},
		{100, 1, Unbounded, true},
		{0, 1, Unbounded, false},
	}
	for _, tt := range tests {
		if got := Contains(tt.n, tt.min, tt.max); got != tt.want {
			t.Errorf("Contains(%d, %d, %s) = %v; want %v", tt.n, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMaxIsZero(t *testing.T) {
	if !IntMax(0).IsZero() {
		t.Error("IntMax(0).IsZero() should be true")
	}
	if IntMax(1).IsZero() {
		t.Error("IntMax(1).IsZero() should be false")
	}
	if Unbounded.IsZero() {
		t.Error("Unbounded.IsZero() should be false")
	}
}

func TestIntMaxClampsNegative(t *testing.T) {
	if got := IntMax(-5); !got.Equal(IntMax(0)) {
		t.Errorf("IntMax(-5) = %s; want 0", got)
	}
}

func TestMaxString(t *testing.T) {
	if Unbounded.String() != "*" {
		t.Errorf("Unbounded.String() = %q; want \"*\"", Unbounded.String())
	}
	if IntMax(3).String() != "3" {
		t.Errorf("IntMax(3).String() = %q; want \"3\"", IntMax(3).String())
	}
}
