package qcReport

import (
	"bytes"
	"encoding/json"
	"sort"

	"QcmlReport/pkg/qcml"

	"gopkg.in/yaml.v3"
)

// Dataset maps sample names to their metrics in load order.
type Dataset struct {
	samples []string
	metrics map[string]*qcml.Metrics
}

func NewDataset() *Dataset {
	return &Dataset{metrics: make(map[string]*qcml.Metrics)}
}

// Set stores the metrics of a sample, replacing an earlier sample of the same name.
func (d *Dataset) Set(sample string, m *qcml.Metrics) (replaced bool) {
	if _, replaced = d.metrics[sample]; !replaced {
		d.samples = append(d.samples, sample)
	}
	d.metrics[sample] = m
	return
}

func (d *Dataset) Get(sample string) (*qcml.Metrics, bool) {
	var m, ok = d.metrics[sample]
	return m, ok
}

func (d *Dataset) Samples() []string {
	return append([]string(nil), d.samples...)
}

func (d *Dataset) SortedSamples() []string {
	var samples = d.Samples()
	sort.Strings(samples)
	return samples
}

func (d *Dataset) Len() int {
	return len(d.samples)
}

// Filter returns the samples for which keep is true.
func (d *Dataset) Filter(keep func(sample string) bool) *Dataset {
	var out = NewDataset()
	for _, s := range d.samples {
		if keep(s) {
			out.Set(s, d.metrics[s])
		}
	}
	return out
}

// Each calls fn with every sample in order.
func (d *Dataset) Each(fn func(sample string, m *qcml.Metrics)) {
	for _, s := range d.samples {
		fn(s, d.metrics[s])
	}
}

// Floats returns the numeric values of key over all samples that have one.
func (d *Dataset) Floats(key string) []float64 {
	var values []float64
	for _, s := range d.samples {
		if f, ok := d.metrics[s].Float(key); ok {
			values = append(values, f)
		}
	}
	return values
}

// Columns returns every metric key in order of first appearance over the
// sorted sample names.
func (d *Dataset) Columns() []string {
	var (
		seen    = make(map[string]bool)
		columns []string
	)
	for _, s := range d.SortedSamples() {
		for _, k := range d.metrics[s].Keys() {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	return columns
}

func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d.SortedSamples() {
		if i > 0 {
			buf.WriteByte(',')
		}
		var key, err = json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(d.metrics[s])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Dataset) MarshalYAML() (interface{}, error) {
	var node = &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range d.SortedSamples() {
		var key, value yaml.Node
		if err := key.Encode(s); err != nil {
			return nil, err
		}
		if err := value.Encode(d.metrics[s]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}
