package smooth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"
)

func TestSmoothAll_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := []*Path{
		demoWaypoints(),
		NewPath(Pt(0, 0), Pt(1, 1), Pt(2, 0)),
		NewPath(Pt(-5, 2), Pt(4, 4)),
		demoWaypoints().Reversed(),
	}

	s, err := New(WithWorkers(3))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got, err := s.SmoothAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("SmoothAll() error = %v", err)
	}
	if len(got) != len(paths) {
		t.Fatalf("len(results) = %d, want %d", len(got), len(paths))
	}

	for i, p := range paths {
		want, err := s.Smooth(p)
		if err != nil {
			t.Fatalf("Smooth(%d) error = %v", i, err)
		}
		if diff := cmp.Diff(want.Points(), got[i].Points(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("path %d mismatch (-sequential +batch):\n%s", i, diff)
		}
	}
}

func TestSmoothAll_FirstErrorByIndex(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := []*Path{
		demoWaypoints(),
		NewPath(Pt(1, 1)),
		NewPath(Pt(0, 0), Pt(0, 0)),
	}

	s, _ := New()
	got, err := s.SmoothAll(context.Background(), paths)
	if got != nil {
		t.Errorf("results = %v, want nil on error", got)
	}
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("error = %v, want ErrInsufficientPoints from path 1", err)
	}
}

func TestSmoothAll_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := New()
	_, err := s.SmoothAll(ctx, []*Path{demoWaypoints(), demoWaypoints()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestSmoothAll_Empty(t *testing.T) {
	s, _ := New()
	got, err := s.SmoothAll(context.Background(), nil)
	if got != nil || err != nil {
		t.Errorf("SmoothAll(nil) = %v, %v, want nil, nil", got, err)
	}
}

func TestSmoothAll_WorkerCounts(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := make([]*Path, 12)
	for i := range paths {
		paths[i] = NewPath(Pt(0, 0), Pt(1, float64(i)), Pt(2, 0))
	}

	for _, workers := range []int{-1, 0, 1, 4, 100} {
		s, err := New(WithWorkers(workers))
		if err != nil {
			t.Fatalf("New(WithWorkers(%d)) error = %v", workers, err)
		}
		got, err := s.SmoothAll(context.Background(), paths)
		if err != nil {
			t.Fatalf("workers %d: SmoothAll() error = %v", workers, err)
		}
		for i, p := range got {
			if !pointsEqual(p.At(10), paths[i].At(1), 1e-9) {
				t.Errorf("workers %d: path %d midpoint = %v, want %v", workers, i, p.At(10), paths[i].At(1))
			}
		}
	}
}
