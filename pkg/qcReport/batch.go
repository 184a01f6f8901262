package qcReport

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// Batch runs every module that has inputs and writes the report files.
type Batch struct {
	OutputPrefix string
	Workbook     string
	Options      *Options

	Inputs  map[Kind][]Input
	Modules []*Module
}

func NewBatch(outputPrefix string, opts *Options) *Batch {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Batch{
		OutputPrefix: outputPrefix,
		Workbook:     "qcml_report.xlsx",
		Options:      opts,
		Inputs:       make(map[Kind][]Input),
	}
}

// Add queues one qcML file for a module.
func (batch *Batch) Add(kind Kind, in Input) {
	batch.Inputs[kind] = append(batch.Inputs[kind], in)
}

// LoadInput reads a tab-separated input list with columns module, path and
// an optional sample.
func (batch *Batch) LoadInput(input, workDir string) error {
	var rows, _ = textUtil.File2MapArray(input, "\t", nil)
	for i, row := range rows {
		var kind, err = ParseKind(row["module"])
		if err != nil {
			return fmt.Errorf("%s line %d: %w", input, i+2, err)
		}
		var path = row["path"]
		if path == "" {
			return fmt.Errorf("%s line %d: empty path", input, i+2)
		}
		if workDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		batch.Add(kind, Input{Path: path, Sample: row["sample"]})
	}
	return nil
}

func (batch *Batch) Prepare() {
	// prepare output directory structure
	simpleUtil.CheckErr(os.MkdirAll(batch.OutputPrefix, 0755))
}

// BuildModules builds the modules in report order; modules without data are skipped.
func (batch *Batch) BuildModules() error {
	for _, kind := range Kinds {
		var inputs, ok = batch.Inputs[kind]
		if !ok {
			continue
		}
		var m, err = New(kind, inputs, batch.Options)
		if errors.Is(err, ErrNoData) {
			slog.Warn("no reports found", "module", kind)
			continue
		}
		if err != nil {
			return err
		}
		batch.Modules = append(batch.Modules, m)
	}
	return nil
}

func (batch *Batch) WriteDataFiles() error {
	var dir = filepath.Join(batch.OutputPrefix, batch.Options.DataDir)
	for _, m := range batch.Modules {
		var path, err = WriteDataFile(dir, m.DataFile, m.Data, batch.Options.DataFormat)
		if err != nil {
			return err
		}
		slog.Info("write data file", "module", m.Name, "path", path)
	}
	return nil
}

// Summary writes the general statistics and every table section to one workbook.
func (batch *Batch) Summary() error {
	var wb = NewWorkbook()
	defer simpleUtil.DeferClose(wb)

	wb.AddGeneralStats(batch.Modules)
	for _, m := range batch.Modules {
		for _, s := range m.Sections {
			if s.Table != nil {
				wb.AddTable(m, s)
			}
		}
	}
	return wb.Save(filepath.Join(batch.OutputPrefix, batch.Workbook))
}

// Visual renders the bar sections of each module to HTML and, if enabled, PNG.
func (batch *Batch) Visual() error {
	for _, m := range batch.Modules {
		var html = filepath.Join(batch.OutputPrefix, m.Anchor+".html")
		var output = osUtil.Create(html)
		var count, err = m.PlotBars(output)
		simpleUtil.CheckErr(output.Close())
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		if count == 0 {
			simpleUtil.CheckErr(os.Remove(html))
			continue
		}
		slog.Info("plot bars", "module", m.Name, "path", html, "charts", count)

		if !batch.Options.ExportPlots {
			continue
		}
		var dir = filepath.Join(batch.OutputPrefix, "plots")
		simpleUtil.CheckErr(os.MkdirAll(dir, 0755))
		for _, s := range m.Sections {
			if s.Bar == nil || len(s.Bar.Series) == 0 {
				continue
			}
			if err := s.SavePNG(filepath.Join(dir, s.Bar.Config.ID+".png")); err != nil {
				return err
			}
		}
	}
	return nil
}

// Markdown summarises the modules built, for chat notifications.
func (batch *Batch) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### qcML report\n> output: %s\n", batch.OutputPrefix)
	for _, m := range batch.Modules {
		fmt.Fprintf(&sb, "> **%s**: %d samples\n", m.Name, m.Data.Len())
	}
	if len(batch.Modules) == 0 {
		sb.WriteString("> <font color=\"warning\">no qcML data</font>\n")
	}
	return sb.String()
}

func (batch *Batch) BatchRun(input, workDir string) error {
	now := time.Now()

	if err := batch.LoadInput(input, workDir); err != nil {
		return err
	}
	batch.Prepare()
	if err := batch.BuildModules(); err != nil {
		return err
	}
	if len(batch.Modules) == 0 {
		return ErrNoData
	}
	if err := batch.WriteDataFiles(); err != nil {
		return err
	}
	if err := batch.Summary(); err != nil {
		return err
	}
	if err := batch.Visual(); err != nil {
		return err
	}

	slog.Info("Done", "modules", len(batch.Modules), "time", time.Since(now))
	return nil
}
