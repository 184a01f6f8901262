package qcReport

import (
	"math"

	"QcmlReport/pkg/qcml"
)

// Header is the display configuration of one column or bar category.
type Header struct {
	Namespace   string
	Title       string
	Description string
	Suffix      string
	Decimals    int
	Scale       string
	// Multiplier scales values for display, 0 leaves them unchanged.
	Multiplier float64
	Hidden     bool

	Min      *float64
	Max      *float64
	Floor    *float64
	Ceiling  *float64
	MinRange *float64
}

func Float(f float64) *float64 {
	return &f
}

// Modify applies the display multiplier.
func (h *Header) Modify(v float64) float64 {
	if h.Multiplier == 0 {
		return v
	}
	return v * h.Multiplier
}

// ScaleBounds returns the colour scale range of a column: the data range,
// overridden by Min and Max, capped by Ceiling, raised to Floor and widened to MinRange.
func (h *Header) ScaleBounds(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if h.Min != nil {
		lo = *h.Min
	}
	if h.Max != nil {
		hi = *h.Max
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, false
	}
	if h.Ceiling != nil && hi > *h.Ceiling {
		hi = *h.Ceiling
	}
	if h.Floor != nil && hi < *h.Floor {
		hi = *h.Floor
	}
	if h.MinRange != nil && hi-lo < *h.MinRange {
		hi = lo + *h.MinRange
	}
	return lo, hi, true
}

// Headers is an ordered set of headers keyed by parameter name.
type Headers struct {
	keys  []string
	items map[string]*Header
}

func NewHeaders() *Headers {
	return &Headers{items: make(map[string]*Header)}
}

// HeadersFromParams creates one header per parameter, titled by its name and
// described by its qcML description.
func HeadersFromParams(namespace string, params *qcml.ParamTable) *Headers {
	var headers = NewHeaders()
	for _, k := range params.Keys() {
		var p, _ = params.Get(k)
		headers.Add(k, &Header{
			Namespace:   namespace,
			Title:       k,
			Description: p.Description,
			Decimals:    1,
		})
	}
	return headers
}

func (hs *Headers) Add(key string, h *Header) {
	if _, ok := hs.items[key]; !ok {
		hs.keys = append(hs.keys, key)
	}
	hs.items[key] = h
}

func (hs *Headers) Get(key string) (*Header, bool) {
	var h, ok = hs.items[key]
	return h, ok
}

// Update applies fn to the header of key; absent keys are skipped.
func (hs *Headers) Update(key string, fn func(h *Header)) bool {
	var h, ok = hs.items[key]
	if !ok {
		return false
	}
	fn(h)
	return true
}

// Rename moves a header to a new key at the end of the order.
func (hs *Headers) Rename(from, to string) bool {
	var h, ok = hs.items[from]
	if !ok {
		return false
	}
	delete(hs.items, from)
	for i, k := range hs.keys {
		if k == from {
			hs.keys = append(hs.keys[:i:i], hs.keys[i+1:]...)
			break
		}
	}
	hs.Add(to, h)
	return true
}

// Subset returns the headers of keys in the given order, ignoring absent keys.
// The headers are shared with hs.
func (hs *Headers) Subset(keys ...string) *Headers {
	var sub = NewHeaders()
	for _, k := range keys {
		if h, ok := hs.items[k]; ok {
			sub.Add(k, h)
		}
	}
	return sub
}

func (hs *Headers) Keys() []string {
	return append([]string(nil), hs.keys...)
}

func (hs *Headers) Len() int {
	return len(hs.keys)
}
