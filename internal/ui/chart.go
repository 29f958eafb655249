package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"stock-advisor/internal/types"
)

const (
	chartWidth   = 60
	chartHeight  = 12
	volumeHeight = 6
)

// renderPriceChart draws the closing price series as a column chart scaled
// to width x height, with a price axis on the left and a date axis below.
func renderPriceChart(bars []types.Bar, width, height int) string {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	cols := downsample(closes, width)
	lo, hi := bounds(cols)

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		threshold := lo + (hi-lo)*float64(row)/float64(height-1)
		b.WriteString(axisLabel(row, height, hi, lo))
		for _, v := range cols {
			if v >= threshold {
				b.WriteString("█")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(dateAxis(bars, len(cols)))
	return b.String()
}

// renderVolumeChart draws traded volume as a column chart.
func renderVolumeChart(bars []types.Bar, width, height int) string {
	vols := make([]float64, len(bars))
	for i, b := range bars {
		vols[i] = b.Vol
	}
	cols := downsample(vols, width)
	_, hi := bounds(cols)

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		threshold := hi * float64(row) / float64(height-1)
		if row == height-1 {
			b.WriteString(fmt.Sprintf("%12s │", humanize.Comma(int64(hi))))
		} else {
			b.WriteString(strings.Repeat(" ", 12) + " │")
		}
		for _, v := range cols {
			if v > 0 && v >= threshold {
				b.WriteString("▌")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(dateAxis(bars, len(cols)))
	return b.String()
}

// downsample reduces a series to at most width columns by averaging each
// bucket. Series shorter than width pass through unchanged.
func downsample(vals []float64, width int) []float64 {
	if len(vals) <= width {
		return vals
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(vals) / width
		end := (i + 1) * len(vals) / width
		if end <= start {
			end = start + 1
		}
		sum := 0.0
		for _, v := range vals[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func bounds(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1 // avoid a zero-height scale
	}
	return lo, hi
}

// axisLabel prints the price scale on the top, middle, and bottom rows.
func axisLabel(row, height int, hi, lo float64) string {
	switch row {
	case height - 1:
		return fmt.Sprintf("%12.2f │", hi)
	case 0:
		return fmt.Sprintf("%12.2f │", lo)
	case height / 2:
		return fmt.Sprintf("%12.2f │", lo+(hi-lo)/2)
	default:
		return strings.Repeat(" ", 12) + " │"
	}
}

func dateAxis(bars []types.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	first := time.Unix(bars[0].Ts, 0).UTC().Format("2006-01-02")
	last := time.Unix(bars[len(bars)-1].Ts, 0).UTC().Format("2006-01-02")
	gap := width - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	return fmt.Sprintf("%s └%s\n%13s%s%s%s\n",
		strings.Repeat(" ", 13), strings.Repeat("─", width),
		"", first, strings.Repeat(" ", gap), last)
}
