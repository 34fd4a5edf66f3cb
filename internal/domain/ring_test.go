package domain

import (
	"errors"
	"testing"
)

func TestCyclicDistance(t *testing.T) {
	cases := []struct {
		a, b, modulus int
		want          int
	}{
		{0, 1, 10, 1},
		{0, 9, 10, 1},
		{0, 1, 2, 1},
		{0, 0, 2, 0},
		{0, 9, 11, 2},
		{0, 9, 100, 9},
		{0, 0, 1, 0},
		{3, 3, 7, 0},
		{1, 6, 10, 5},
	}
	for _, c := range cases {
		if got := CyclicDistance(c.a, c.b, c.modulus); got != c.want {
			t.Errorf("CyclicDistance(%d, %d, %d) = %d, want %d", c.a, c.b, c.modulus, got, c.want)
		}
	}
}

func TestCyclicDistanceProperties(t *testing.T) {
	for modulus := 1; modulus <= 12; modulus++ {
		for a := 0; a < modulus; a++ {
			for b := 0; b < modulus; b++ {
				d := CyclicDistance(a, b, modulus)
				if d != CyclicDistance(b, a, modulus) {
					t.Fatalf("distance not symmetric for a=%d b=%d m=%d", a, b, modulus)
				}
				if a == b && d != 0 {
					t.Fatalf("distance(%d, %d, %d) = %d, want 0", a, b, modulus, d)
				}
				if d < 0 || d > modulus/2 {
					t.Fatalf("distance(%d, %d, %d) = %d outside [0, %d]", a, b, modulus, d, modulus/2)
				}
			}
		}
	}
}

func TestNewRingInvalidBounds(t *testing.T) {
	_, err := NewRing(10, 5)
	if err == nil {
		t.Fatalf("expected error for min > max")
	}
	if !errors.Is(err, ErrInvalidRing) {
		t.Fatalf("expected ErrInvalidRing, got %v", err)
	}
	if !IsKind(err, KindInvalidRing) {
		t.Fatalf("expected kind %s, got %v", KindInvalidRing, err)
	}
}

func TestRingModulus(t *testing.T) {
	cases := []struct {
		min, max int
		want     int
	}{
		{0, 99, 100},
		{0, 0, 1},
		{1, 36, 36},
		{-5, 5, 11},
	}
	for _, c := range cases {
		ring, err := NewRing(c.min, c.max)
		if err != nil {
			t.Fatalf("NewRing(%d, %d): %v", c.min, c.max, err)
		}
		if got := ring.Modulus(); got != c.want {
			t.Errorf("Modulus() of [%d, %d] = %d, want %d", c.min, c.max, got, c.want)
		}
	}
}

func TestRingStepWraps(t *testing.T) {
	ring := Ring{Min: 0, Max: 99}
	cases := []struct {
		v, delta int
		want     int
	}{
		{0, -1, 99},
		{99, 1, 0},
		{0, 0, 0},
		{50, 3, 53},
		{0, -150, 50},
		{0, 250, 50},
	}
	for _, c := range cases {
		if got := ring.Step(c.v, c.delta); got != c.want {
			t.Errorf("Step(%d, %d) = %d, want %d", c.v, c.delta, got, c.want)
		}
	}
}

func TestRingStepShiftedBounds(t *testing.T) {
	ring := Ring{Min: 1, Max: 36}
	if got := ring.Step(1, -1); got != 36 {
		t.Fatalf("Step(1, -1) = %d, want 36", got)
	}
	if got := ring.Step(36, 1); got != 1 {
		t.Fatalf("Step(36, 1) = %d, want 1", got)
	}
	if got := ring.Distance(1, 36); got != 1 {
		t.Fatalf("Distance(1, 36) = %d, want 1", got)
	}
}

func TestRingSingleDigit(t *testing.T) {
	ring := Ring{Min: 4, Max: 4}
	if got := ring.Step(4, 7); got != 4 {
		t.Fatalf("Step(4, 7) on modulus-1 ring = %d, want 4", got)
	}
	if got := ring.Distance(4, 4); got != 0 {
		t.Fatalf("Distance(4, 4) = %d, want 0", got)
	}
}
