package ta

import (
	"math"
	"testing"

	"stock-advisor/internal/types"
)

func barsFromCloses(closes ...float64) []types.Bar {
	bars := make([]types.Bar, len(closes))
	for i, c := range closes {
		bars[i] = types.Bar{Ts: int64(i), Close: c}
	}
	return bars
}

func TestSMA(t *testing.T) {
	bars := barsFromCloses(1, 2, 3, 4, 5)

	m := SMA(bars, 3)
	if !m.Valid {
		t.Fatal("Expected SMA to be present")
	}
	if m.Value != 4 {
		t.Errorf("Expected SMA 4, got %v", m.Value)
	}

	if SMA(bars, 10).Valid {
		t.Error("Expected SMA to be absent for short history")
	}
	if SMA(bars, 0).Valid {
		t.Error("Expected SMA to be absent for zero window")
	}
}

func TestRSI(t *testing.T) {
	// Strictly rising closes pin RSI at 100.
	up := RSI(barsFromCloses(1, 2, 3, 4, 5, 6), 5)
	if !up.Valid || up.Value != 100 {
		t.Errorf("Expected RSI 100 for rising series, got %+v", up)
	}

	// Alternating equal gains and losses sit at 50.
	mixed := RSI(barsFromCloses(10, 11, 10, 11, 10), 4)
	if !mixed.Valid || math.Abs(mixed.Value-50) > 1e-9 {
		t.Errorf("Expected RSI 50 for balanced series, got %+v", mixed)
	}

	if RSI(barsFromCloses(1, 2), 5).Valid {
		t.Error("Expected RSI to be absent for short history")
	}
}

func TestChange(t *testing.T) {
	m := Change(barsFromCloses(100, 110, 125))
	if !m.Valid || math.Abs(m.Value-0.25) > 1e-9 {
		t.Errorf("Expected 0.25 change, got %+v", m)
	}

	if Change(barsFromCloses(100)).Valid {
		t.Error("Expected change to be absent for a single bar")
	}
	if Change(barsFromCloses(0, 10)).Valid {
		t.Error("Expected change to be absent for zero base")
	}
}
