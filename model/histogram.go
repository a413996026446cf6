package model

import "fmt"

type HistogramBin struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

func (b HistogramBin) Width() float64 {
	return b.Max - b.Min
}

type Histogram struct {
	Samples []ProbabilitySample
	Bins    []HistogramBin
	// BinCount is the requested number of bins, kept even when Bins is empty.
	BinCount int
}

func (h *Histogram) IsEmpty() bool {
	if h == nil {
		return true
	}
	return len(h.Samples) == 0
}

func (h *Histogram) DebugString() string {
	return fmt.Sprintf("samples: %v, bins: %v", len(h.Samples), len(h.Bins))
}

// Density is one point of an estimated density curve.
type Density struct {
	X     float64
	Value float64
}

// Clip bounds a domain. A nil *Clip means unbounded.
type Clip struct {
	Lower float64
	Upper float64
}
