package qcReport

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"QcmlReport/pkg/qcml"
)

// ErrNoData is returned when no sample is left after parsing and filtering.
var ErrNoData = errors.New("no data found")

// Kind names a report module and the log category of its input files.
type Kind string

const (
	ReadQC    Kind = "readqc"
	MappingQC Kind = "mappingqc"
	SomaticQC Kind = "somaticqc"
	VariantQC Kind = "variantqc"
)

// Kinds lists the modules in report order.
var Kinds = []Kind{ReadQC, MappingQC, SomaticQC, VariantQC}

// Input is one qcML file; Sample overrides the name derived from Path.
type Input struct {
	Path   string
	Sample string
}

// PlotConfig holds the fixed display settings of a bar graph.
type PlotConfig struct {
	ID         string
	Title      string
	YLab       string
	YMin       *float64
	YMax       *float64
	Decimals   int
	Suffix     string
	DataLabels []string
	UseLegend  bool
}

// BarSeries is one category of a bar graph over all samples.
type BarSeries struct {
	Data   *Dataset
	Key    string
	Header *Header
}

type BarGraph struct {
	Series []BarSeries
	Config PlotConfig
}

type Table struct {
	Data    *Dataset
	Headers *Headers
}

// Section is one titled block of a module's report, either a table or a bar graph.
type Section struct {
	Name        string
	Anchor      string
	Description string
	Table       *Table
	Bar         *BarGraph
}

type Module struct {
	Kind   Kind
	Name   string
	Anchor string
	Href   string
	Info   string

	Data         *Dataset
	Params       *qcml.ParamTable
	Headers      *Headers
	GeneralStats *Headers
	Sections     []*Section
	DataFile     string
}

type definition struct {
	name string
	info string
	// sampleName rewrites the cleaned file name into the sample name.
	sampleName func(string) string
	build      func(m *Module, opts *Options)
}

const ngsBits = "https://github.com/imgag/ngs-bits"

var definitions = map[Kind]definition{
	ReadQC: {
		name:  "ReadQC",
		info:  "calculates QC metrics on unprocessed NGS reads.",
		build: buildReadQC,
	},
	MappingQC: {
		name:  "MappingQC",
		info:  "calculates QC metrics based on mapped NGS reads.",
		build: buildMappingQC,
	},
	SomaticQC: {
		name:       "SomaticQC",
		info:       "calculates QC metrics based on tumor-normal pairs.",
		sampleName: tumorSampleName,
		build:      buildSomaticQC,
	},
	VariantQC: {
		name:  "VariantQC",
		info:  "calculates QC metrics based on variant lists.",
		build: buildVariantQC,
	},
}

// ParseKind accepts a module name case-sensitively as written in the input list.
func ParseKind(s string) (Kind, error) {
	var kind = Kind(s)
	if _, ok := definitions[kind]; !ok {
		return "", fmt.Errorf("unknown module %q", s)
	}
	return kind, nil
}

// New parses the inputs of one module and prepares its headers and sections.
// A file that fails to parse aborts the module.
func New(kind Kind, inputs []Input, opts *Options) (*Module, error) {
	var def, ok = definitions[kind]
	if !ok {
		return nil, fmt.Errorf("unknown module %q", kind)
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	var (
		m = &Module{
			Kind:     kind,
			Name:     def.name,
			Anchor:   string(kind),
			Href:     ngsBits,
			Info:     def.info,
			Data:     NewDataset(),
			Params:   qcml.NewParamTable(),
			DataFile: "multiqc_" + string(kind),
		}
		cleaner = NewNameCleaner(opts.FnCleanExts)
	)

	for _, in := range inputs {
		var metrics, err = qcml.ParseFile(in.Path, m.Params)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.name, err)
		}
		var sample = in.Sample
		if sample == "" {
			sample = cleaner.Clean(in.Path)
		}
		if def.sampleName != nil {
			sample = def.sampleName(sample)
		}
		if m.Data.Set(sample, metrics) {
			slog.Warn("duplicate sample name, overwriting", slog.Group("module", "name", def.name, "sample", sample, "path", in.Path))
		}
		slog.Debug("parsed qcML", slog.Group("module", "name", def.name, "sample", sample, "params", metrics.Len()))
	}

	m.Data = m.Data.Filter(func(sample string) bool {
		if opts.Ignored(sample) {
			slog.Info("ignoring sample", slog.Group("module", "name", def.name, "sample", sample))
			return false
		}
		return true
	})
	if m.Data.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", def.name, ErrNoData)
	}
	slog.Info("found reports", slog.Group("module", "name", def.name, "samples", m.Data.Len()))

	def.build(m, opts)
	return m, nil
}

// Describe builds a section description from the qcML descriptions of keys.
func (m *Module) Describe(keys ...string) string {
	return qcml.Describe(m.Params, keys...)
}

var listMarkup = strings.NewReplacer("<ul>", "", "</ul>", "", "<li>", "\n", "</li>", "")

// DescriptionText is the section description as plain lines, for outputs
// that cannot show markup.
func (s *Section) DescriptionText() string {
	return strings.TrimPrefix(listMarkup.Replace(s.Description), "\n")
}

// renameParam replaces a parameter with a derived one carrying a new description.
func (m *Module) renameParam(from, to, description string) {
	m.Params.Delete(from)
	m.Params.Set(to, qcml.Param{Description: description})
}

// megabasesToBases converts from (MB) into to (bases) in every sample that has it.
func (m *Module) megabasesToBases(from, to string) {
	m.Data.Each(func(sample string, kv *qcml.Metrics) {
		var mb, ok = kv.Float(from)
		if !ok {
			return
		}
		kv.Set(to, qcml.Number(mb*1e6))
		kv.Delete(from)
	})
}

func (m *Module) tableSection(name, anchor, description string, headers *Headers) *Section {
	return &Section{
		Name:        name,
		Anchor:      anchor,
		Description: description,
		Table:       &Table{Data: m.Data, Headers: headers},
	}
}

// barSection plots one category per key; missing keys are dropped.
func (m *Module) barSection(name, anchor, description string, config PlotConfig, keys ...string) *Section {
	var bar = &BarGraph{Config: config}
	for _, k := range keys {
		if h, ok := m.Headers.Get(k); ok {
			bar.Series = append(bar.Series, BarSeries{Data: m.Data, Key: k, Header: h})
		}
	}
	return &Section{
		Name:        name,
		Anchor:      anchor,
		Description: description,
		Bar:         bar,
	}
}

// percent sets the display of a percentage column.
func percent(h *Header) {
	h.Suffix = "%"
	h.Decimals = 2
}
