package qcReport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleBounds(t *testing.T) {
	var tests = []struct {
		name   string
		header Header
		values []float64
		lo, hi float64
		ok     bool
	}{
		{"data range", Header{}, []float64{3, 1, 2}, 1, 3, true},
		{"max", Header{Max: Float(100)}, []float64{95, 97}, 95, 100, true},
		{"ceiling", Header{Ceiling: Float(10)}, []float64{1, 25}, 1, 10, true},
		{"floor", Header{Floor: Float(1)}, []float64{0.1, 0.4}, 0.1, 1, true},
		{"min range", Header{Min: Float(0), MinRange: Float(10), Ceiling: Float(10)}, []float64{1, 2}, 0, 10, true},
		{"min range after ceiling", Header{MinRange: Float(20), Ceiling: Float(20)}, []float64{8, 30}, 8, 28, true},
		{"no values", Header{}, nil, 0, 0, false},
		{"no values with bounds", Header{Min: Float(0), Max: Float(1)}, nil, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lo, hi, ok = tt.header.ScaleBounds(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.lo, lo, 1e-9)
			assert.InDelta(t, tt.hi, hi, 1e-9)
		})
	}
}

func TestHeaders(t *testing.T) {
	var hs = NewHeaders()
	hs.Add("variant count", &Header{Title: "variant count"})
	hs.Add("somatic variant count", &Header{Title: "somatic variant count"})
	hs.Add("sample correlation", &Header{Title: "sample correlation"})

	assert.False(t, hs.Update("tumor content estimate", func(h *Header) { h.Max = Float(100) }))
	assert.True(t, hs.Update("sample correlation", func(h *Header) { h.Max = Float(1) }))

	var sub = hs.Subset("sample correlation", "tumor content estimate", "variant count")
	assert.Equal(t, []string{"sample correlation", "variant count"}, sub.Keys())
	var h, _ = sub.Get("sample correlation")
	assert.Equal(t, 1.0, *h.Max)

	assert.True(t, hs.Rename("variant count", "variant count somaticqc"))
	assert.Equal(t, []string{"somatic variant count", "sample correlation", "variant count somaticqc"}, hs.Keys())
	h, _ = hs.Get("variant count somaticqc")
	assert.Equal(t, "variant count", h.Title)
	assert.False(t, hs.Rename("variant count", "x"))
}

func TestModify(t *testing.T) {
	assert.Equal(t, 5.0, (&Header{}).Modify(5))
	assert.InDelta(t, 20.0, (&Header{Multiplier: 0.000001}).Modify(2e7), 1e-9)
}

func TestNumFmt(t *testing.T) {
	assert.Equal(t, "#,##0", NumFmt(&Header{}))
	assert.Equal(t, `#,##0.00" %"`, NumFmt(&Header{Decimals: 2, Suffix: "%"}))
	assert.Equal(t, `#,##0.0" Gb"`, NumFmt(&Header{Decimals: 1, Suffix: "Gb"}))
}
