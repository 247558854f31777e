package lodestone

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/magwerk/lodestone/field"
	"github.com/magwerk/lodestone/source"
)

func gridPoints(n int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		points = append(points, mgl64.Vec3{
			2 * math.Cos(7*t),
			2 * math.Sin(11*t),
			-1 + 2*t,
		})
	}
	return points
}

func TestFieldAtDelegates(t *testing.T) {
	loop, err := source.NewCircle(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := FieldAt(loop, mgl64.Vec3{0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := mgl64.Vec3{0, 0, field.Mu0 / 2}
	if !got.ApproxEqualThreshold(want, 1e-9*want.Len()) {
		t.Errorf("FieldAt = %v, want %v", got, want)
	}
}

// TestParallelMatchesSerial: worker count never changes results, bit for
// bit.
func TestParallelMatchesSerial(t *testing.T) {
	magnet, err := source.NewCylinder(0.5, 1, mgl64.Vec3{0.2, 0.1, 1})
	if err != nil {
		t.Fatal(err)
	}
	points := gridPoints(257)

	serial := Evaluator{Workers: 1}.FieldAtMany(magnet, points)
	if len(serial) != len(points) {
		t.Fatalf("result count = %d, want %d", len(serial), len(points))
	}

	for _, workers := range []int{0, 2, 3, 8, 100} {
		parallel := Evaluator{Workers: workers}.FieldAtMany(magnet, points)
		for i := range serial {
			if parallel[i].B != serial[i].B || parallel[i].Err != serial[i].Err {
				t.Fatalf("workers=%d point %d: %v, want %v", workers, i, parallel[i], serial[i])
			}
		}
	}
}

func TestBatchOrderAndErrorIsolation(t *testing.T) {
	loop, err := source.NewCircle(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0}, // on the wire
		{0, 0, 1},
	}
	results := FieldAtMany(loop, points, true)

	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("valid points errored: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, field.ErrDegenerate) {
		t.Errorf("wire point error = %v, want ErrDegenerate", results[1].Err)
	}

	want0, err := loop.FieldAt(points[0])
	if err != nil {
		t.Fatal(err)
	}
	if results[0].B != want0 {
		t.Errorf("slot 0 = %v, want %v", results[0].B, want0)
	}
}

func TestPotentialAtMany(t *testing.T) {
	ball, err := source.NewSphere(0.5, mgl64.Vec3{0, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	points := gridPoints(64)

	results := Evaluator{Workers: 4}.PotentialAtMany(ball, points)
	for i, p := range points {
		want, err := ball.PotentialAt(p)
		if err != nil {
			t.Fatal(err)
		}
		if results[i].Err != nil || results[i].V != want {
			t.Errorf("point %d: %v (err %v), want %v", i, results[i].V, results[i].Err, want)
		}
	}
}

func TestEmptyBatch(t *testing.T) {
	loop, err := source.NewCircle(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if results := FieldAtMany(loop, nil, true); len(results) != 0 {
		t.Errorf("empty batch returned %d results", len(results))
	}
}
