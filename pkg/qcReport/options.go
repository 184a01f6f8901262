package qcReport

import (
	"fmt"
	"io"
	"path"

	"gopkg.in/yaml.v3"
)

// Options are the report-wide settings shared by all modules.
type Options struct {
	BaseCountPrefix     string   `yaml:"base_count_prefix"`
	BaseCountMultiplier float64  `yaml:"base_count_multiplier"`
	ReadCountPrefix     string   `yaml:"read_count_prefix"`
	ReadCountMultiplier float64  `yaml:"read_count_multiplier"`
	SampleNamesIgnore   []string `yaml:"sample_names_ignore"`
	FnCleanExts         []string `yaml:"fn_clean_exts"`
	DataFormat          string   `yaml:"data_format"`
	DataDir             string   `yaml:"data_dir"`
	ExportPlots         bool     `yaml:"export_plots"`
}

func DefaultOptions() *Options {
	return &Options{
		BaseCountPrefix:     "Gb",
		BaseCountMultiplier: 0.000000001,
		ReadCountPrefix:     "M",
		ReadCountMultiplier: 0.000001,
		FnCleanExts:         []string{".gz", ".qcML", ".qcml"},
		DataFormat:          "tsv",
		DataDir:             "multiqc_data",
	}
}

// LoadOptions decodes YAML settings on top of the defaults.
func LoadOptions(r io.Reader) (*Options, error) {
	var opts = DefaultOptions()
	var decoder = yaml.NewDecoder(r)
	if err := decoder.Decode(opts); err != nil && err != io.EOF {
		return nil, fmt.Errorf("load options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (opts *Options) Validate() error {
	switch opts.DataFormat {
	case "tsv", "yaml", "json":
	default:
		return fmt.Errorf("load options: unknown data_format %q", opts.DataFormat)
	}
	for _, pattern := range opts.SampleNamesIgnore {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("load options: sample_names_ignore %q: %w", pattern, err)
		}
	}
	return nil
}

// Ignored reports whether a sample name matches one of the ignore patterns.
func (opts *Options) Ignored(name string) bool {
	for _, pattern := range opts.SampleNamesIgnore {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
