package main

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

// assertBetween checks that x is in [a, b].
func assertBetween(t *testing.T, msg string, x, a, b float64) {
	t.Helper()
	if a <= x && x <= b {
		return
	}
	t.Errorf("got %s = %v, want in range [%v, %v]", msg, x, a, b)
}

func assertNear(t *testing.T, msg string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) <= eps {
		return
	}
	t.Errorf("got %s = %v, want %v", msg, got, want)
}

func assertColorNear(t *testing.T, msg string, got, want Color) {
	t.Helper()
	if math.Abs(got.R-want.R) <= eps && math.Abs(got.G-want.G) <= eps && math.Abs(got.B-want.B) <= eps {
		return
	}
	t.Errorf("got %s = %+v, want %+v", msg, got, want)
}

func assertVecNear(t *testing.T, msg string, got, want r3.Vec) {
	t.Helper()
	if r3.Norm(r3.Sub(got, want)) <= eps {
		return
	}
	t.Errorf("got %s = %v, want %v", msg, got, want)
}
