package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	t.Run("embedded default", func(t *testing.T) {
		var opts = LoadOptions("")
		assert.Equal(t, "Gb", opts.BaseCountPrefix)
		assert.Equal(t, 0.000001, opts.ReadCountMultiplier)
		assert.Equal(t, []string{".gz", ".qcML", ".qcml"}, opts.FnCleanExts)
		assert.Equal(t, "tsv", opts.DataFormat)
		assert.False(t, opts.ExportPlots)
	})

	t.Run("-c path", func(t *testing.T) {
		var path = filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data_format: json\nsample_names_ignore: [\"NTC*\"]\n"), 0644))
		var opts = LoadOptions(path)
		assert.Equal(t, "json", opts.DataFormat)
		assert.True(t, opts.Ignored("NTC_01"))
		assert.Equal(t, "Gb", opts.BaseCountPrefix)
	})

	t.Run("etc beside executable", func(t *testing.T) {
		var dir = t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "etc"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfig), []byte("export_plots: true\n"), 0644))

		var saved = exPath
		exPath = dir
		defer func() { exPath = saved }()

		var opts = LoadOptions("")
		assert.True(t, opts.ExportPlots)
		assert.Equal(t, "tsv", opts.DataFormat)
	})
}
