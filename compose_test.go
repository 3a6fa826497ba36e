package metric

import (
	"math"
	"strings"
	"testing"
)

// identityAbs wires the composition for plain float64 objects: identity
// extraction, ordinary subtraction and the absolute-value norm.
func identityAbs(inherent func(a, b float64) float64) Composed[float64, float64, float64] {
	return Composed[float64, float64, float64]{
		Extract:  func(v float64) float64 { return v },
		Subtract: func(a, b float64) float64 { return a - b },
		Norm:     math.Abs,
		Inherent: inherent,
		Add:      func(a, b float64) float64 { return a + b },
	}
}

func TestComposedDistance(t *testing.T) {
	m := identityAbs(NoInherent[float64](0.0))

	if d := m.Distance(3, 5); d != 2 {
		t.Fatalf("Distance(3, 5) = %v, want 2", d)
	}
	if d := m.Distance(5, 3); d != 2 {
		t.Fatalf("Distance(5, 3) = %v, want 2", d)
	}
}

func TestComposedSelfDistanceIsZero(t *testing.T) {
	m := identityAbs(NoInherent[float64](0.0))

	for _, v := range []float64{0, 1, -7.5, 1e9} {
		if d := m.Distance(v, v); d != 0 {
			t.Fatalf("Distance(%v, %v) = %v, want 0", v, v, d)
		}
	}
}

func TestComposedInherentTerm(t *testing.T) {
	// Inherent contribution is added on top of the norm of the difference.
	m := identityAbs(func(a, b float64) float64 { return 10 })

	if d := m.Distance(3, 5); d != 12 {
		t.Fatalf("Distance(3, 5) with inherent 10 = %v, want 12", d)
	}
	if d := m.Distance(4, 4); d != 10 {
		t.Fatalf("Distance(4, 4) with inherent 10 = %v, want 10", d)
	}
}

func TestComposeValidatesHooks(t *testing.T) {
	extract := func(v float64) float64 { return v }
	subtract := func(a, b float64) float64 { return a - b }
	inherent := NoInherent[float64](0.0)
	add := func(a, b float64) float64 { return a + b }

	if _, err := Compose(extract, subtract, math.Abs, inherent, add); err != nil {
		t.Fatalf("Compose with all hooks failed: %v", err)
	}

	cases := []struct {
		name string
		err  error
	}{
		{"extract", func() error {
			_, err := Compose[float64, float64, float64](nil, subtract, math.Abs, inherent, add)
			return err
		}()},
		{"subtract", func() error {
			_, err := Compose(extract, nil, math.Abs, inherent, add)
			return err
		}()},
		{"norm", func() error {
			_, err := Compose(extract, subtract, nil, inherent, add)
			return err
		}()},
		{"inherent", func() error {
			_, err := Compose(extract, subtract, math.Abs, nil, add)
			return err
		}()},
		{"add", func() error {
			_, err := Compose(extract, subtract, math.Abs, inherent, nil)
			return err
		}()},
	}
	for _, tc := range cases {
		if tc.err == nil {
			t.Fatalf("Compose with nil %s hook succeeded, want error", tc.name)
		}
		if !strings.Contains(tc.err.Error(), tc.name) {
			t.Fatalf("Compose nil %s error = %q, want mention of %q", tc.name, tc.err, tc.name)
		}
	}
}

func TestThenDecoratesDistance(t *testing.T) {
	m := identityAbs(NoInherent[float64](0.0))
	capped := Then[float64, float64](m, func(d float64) float64 {
		if d > 1 {
			return 1
		}
		return d
	})

	if d := capped.Distance(0, 0.25); d != 0.25 {
		t.Fatalf("capped Distance(0, 0.25) = %v, want 0.25", d)
	}
	if d := capped.Distance(0, 40); d != 1 {
		t.Fatalf("capped Distance(0, 40) = %v, want 1", d)
	}
}

func TestFuncSatisfiesMetric(t *testing.T) {
	var m Metric[int, int] = Func[int, int](func(a, b int) int { return a + b })
	if d := m.Distance(2, 3); d != 5 {
		t.Fatalf("Func Distance(2, 3) = %v, want 5", d)
	}
}
