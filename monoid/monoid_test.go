package monoid

import (
	"errors"
	"math"
	"testing"
)

func TestBoundsOfIntegerTypes(t *testing.T) {
	if MinValue[int64]() != math.MinInt64 || MaxValue[int64]() != math.MaxInt64 {
		t.Errorf("unexpected bounds for int64: %d, %d", MinValue[int64](), MaxValue[int64]())
	}
	if MinValue[int8]() != math.MinInt8 || MaxValue[int8]() != math.MaxInt8 {
		t.Errorf("unexpected bounds for int8: %d, %d", MinValue[int8](), MaxValue[int8]())
	}
	if MinValue[uint64]() != 0 || MaxValue[uint64]() != math.MaxUint64 {
		t.Errorf("unexpected bounds for uint64: %d, %d", MinValue[uint64](), MaxValue[uint64]())
	}
	if MinValue[uint16]() != 0 || MaxValue[uint16]() != math.MaxUint16 {
		t.Errorf("unexpected bounds for uint16: %d, %d", MinValue[uint16](), MaxValue[uint16]())
	}
	type score int32
	if MinValue[score]() != math.MinInt32 {
		t.Errorf("unexpected lower bound for named int32 type: %d", MinValue[score]())
	}
}

func TestMaxAndMinIdentities(t *testing.T) {
	if (Max[int64]{}).Zero() != math.MinInt64 {
		t.Errorf("Max[int64] identity should be MinInt64")
	}
	if (Min[uint64]{}).Zero() != math.MaxUint64 {
		t.Errorf("Min[uint64] identity should be MaxUint64")
	}
	if (Max[uint32]{}).Add(3, 7) != 7 || (Min[int]{}).Add(3, -7) != -7 {
		t.Errorf("unexpected results for max/min")
	}
}

func TestNumericMonoidsObeyLaws(t *testing.T) {
	signed := []int64{math.MinInt64, -100, -1, 0, 1, 7, 42, math.MaxInt64}
	unsigned := []uint64{0, 1, 2, 6, 9, 12, 35, math.MaxUint64}
	if err := CheckLaws[int64](Max[int64]{}, signed, Equal[int64]); err != nil {
		t.Error(err)
	}
	if err := CheckLaws[int64](Min[int64]{}, signed, Equal[int64]); err != nil {
		t.Error(err)
	}
	if err := CheckLaws[int64](Sum[int64]{}, signed, Equal[int64]); err != nil {
		t.Error(err)
	}
	if err := CheckLaws[uint64](Product[uint64]{}, unsigned, Equal[uint64]); err != nil {
		t.Error(err)
	}
	if err := CheckLaws[uint64](GCD[uint64]{}, unsigned, Equal[uint64]); err != nil {
		t.Error(err)
	}
}

func TestCheckLawsDetectsBrokenIdentity(t *testing.T) {
	broken := Of(1, func(a, b int) int { return a + b })
	err := CheckLaws[int](broken, []int{1, 2, 3}, Equal[int])
	if !errors.Is(err, ErrLawViolated) {
		t.Fatalf("expected ErrLawViolated, got %v", err)
	}
}

func TestCheckLawsDetectsMissingAssociativity(t *testing.T) {
	minus := Of(0, func(a, b int) int { return a - b })
	err := CheckLaws[int](minus, []int{0, 1, 2}, Equal[int])
	if !errors.Is(err, ErrLawViolated) {
		t.Fatalf("expected ErrLawViolated for subtraction, got %v", err)
	}
}

func TestFoldKeepsOrder(t *testing.T) {
	concat := Of("", func(a, b string) string { return a + b })
	if err := CheckLaws[string](concat, []string{"", "a", "bc"}, Equal[string]); err != nil {
		t.Fatal(err)
	}
	if s := Fold[string](concat, "x", "y", "z"); s != "xyz" {
		t.Errorf("expected fold to be 'xyz', is %q", s)
	}
	if s := Fold[string](concat); s != "" {
		t.Errorf("expected fold of nothing to be identity, is %q", s)
	}
	if m := Fold[int64](Max[int64]{}, 3, -1, 4, 1, 5, 9, 2, 6); m != 9 {
		t.Errorf("expected max 9, is %d", m)
	}
}
