package qcReport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameCleaner(t *testing.T) {
	var cleaner = NewNameCleaner([]string{".gz", ".qcML", ".qcml", "_stats"})
	var tests = map[string]string{
		"/data/NA12878_01_stats_map.qcML":   "NA12878_01",
		"run/NA12878_01.qcML.gz":            "NA12878_01",
		"NA12878_01.qcml":                   "NA12878_01",
		"Tumor1-Normal1_stats_som.qcML":     "Tumor1-Normal1",
		"plain":                             "plain",
		".qcML":                             ".qcML",
		"dir.qcML/sample_without_ext_stats": "sample_without_ext",
	}
	for path, want := range tests {
		assert.Equal(t, want, cleaner.Clean(path), path)
	}

	// the automaton reports hits by end position; the cut is the earliest start
	var overlapping = NewNameCleaner([]string{"s_map", ".qcML", "_stats_map.qcML"})
	assert.Equal(t, "S1", overlapping.Clean("S1_stats_map.qcML"))
	assert.Equal(t, "S1_stat", overlapping.Clean("S1_stats_map"))

	assert.Equal(t, "S1.qcML", NewNameCleaner(nil).Clean("/x/S1.qcML"))
	assert.Equal(t, "S1.qcML", NewNameCleaner([]string{""}).Clean("S1.qcML"))
}

func TestOptions(t *testing.T) {
	var opts = DefaultOptions()
	assert.NoError(t, opts.Validate())
	assert.False(t, opts.Ignored("S1"))

	opts.SampleNamesIgnore = []string{"NTC*", "Undetermined"}
	assert.True(t, opts.Ignored("NTC_01"))
	assert.True(t, opts.Ignored("Undetermined"))
	assert.False(t, opts.Ignored("S1"))

	opts.SampleNamesIgnore = []string{"["}
	assert.Error(t, opts.Validate())

	opts = DefaultOptions()
	opts.DataFormat = "csv"
	assert.Error(t, opts.Validate())
}
