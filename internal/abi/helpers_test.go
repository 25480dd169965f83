package abi

import (
	"math"
	"testing"
)

func TestSafeMulU32(t *testing.T) {
	tests := []struct {
		a, b   uint32
		result uint32
		ok     bool
	}{
		{0, 0, 0, true},
		{1, 0, 0, true},
		{100, 100, 10000, true},
		{1 << 16, 1 << 16, 0, false},
		{math.MaxUint32, 2, 0, false},
		{math.MaxUint32, 1, math.MaxUint32, true},
	}

	for _, tc := range tests {
		result, ok := SafeMulU32(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("SafeMulU32(%d, %d): got ok=%v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("SafeMulU32(%d, %d): got %d, want %d", tc.a, tc.b, result, tc.result)
		}
	}
}

func TestSafeAddU32(t *testing.T) {
	tests := []struct {
		a, b   uint32
		result uint32
		ok     bool
	}{
		{0, 0, 0, true},
		{12, 8, 20, true},
		{math.MaxUint32, 0, math.MaxUint32, true},
		{math.MaxUint32, 1, 0, false},
		{math.MaxUint32 - 3, 4, 0, false},
	}

	for _, tc := range tests {
		result, ok := SafeAddU32(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("SafeAddU32(%d, %d): got ok=%v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("SafeAddU32(%d, %d): got %d, want %d", tc.a, tc.b, result, tc.result)
		}
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{7, 0, 7},
		{9, 8, 16},
	}
	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestFitsWidth(t *testing.T) {
	tests := []struct {
		n     uint64
		width uint32
		want  bool
	}{
		{255, 1, true},
		{256, 1, false},
		{65535, 2, true},
		{65536, 2, false},
		{math.MaxUint32, 4, true},
		{math.MaxUint32 + 1, 4, false},
		{math.MaxUint64, 8, true},
		{1, 3, false},
	}
	for _, tc := range tests {
		if got := FitsWidth(tc.n, tc.width); got != tc.want {
			t.Errorf("FitsWidth(%d, %d) = %v, want %v", tc.n, tc.width, got, tc.want)
		}
	}
}
