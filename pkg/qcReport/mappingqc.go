package qcReport

import "fmt"

// target region coverage thresholds reported by MappingQC
var coverageValues = []int{10, 20, 30, 50, 100, 200, 500}

func coverageKey(x int) string {
	return fmt.Sprintf("target region %dx %%", x)
}

func buildMappingQC(m *Module, opts *Options) {
	// bases usable (MB) is shown as bases
	m.renameParam("bases usable (MB)", "bases usable", "Bases sequenced in total.")
	m.megabasesToBases("bases usable (MB)", "bases usable")

	var headers = HeadersFromParams(m.Name, m.Params)
	headers.Update("trimmed base %", func(h *Header) {
		percent(h)
		h.Floor = Float(1)
		h.Scale = "PuBu"
	})
	headers.Update("clipped base %", func(h *Header) {
		percent(h)
		h.Floor = Float(1)
		h.Scale = "PuRd"
	})
	headers.Update("mapped read %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "Reds"
	})
	headers.Update("bases usable", func(h *Header) {
		h.Suffix = opts.BaseCountPrefix
		h.Decimals = 2
		h.Multiplier = opts.BaseCountMultiplier
		h.Scale = "Greens"
	})
	headers.Update("on-target read %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "Purples"
	})

	// only with marked duplicates
	headers.Update("duplicate read %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "YlOrRd"
	})
	// only paired-end
	headers.Update("properly-paired read %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "GnBu"
	})
	headers.Update("insert size", func(h *Header) {
		h.Suffix = "bp"
		h.Decimals = 2
		h.Scale = "RdYlGn"
	})
	// only human
	headers.Update("SNV allele frequency deviation", func(h *Header) {
		h.Suffix = ""
		h.Decimals = 2
		h.Floor = Float(0)
		h.Ceiling = Float(10)
		h.MinRange = Float(10)
		h.Scale = "Greys"
	})
	// only with target region
	headers.Update("target region read depth", func(h *Header) {
		h.Suffix = "x"
		h.Decimals = 2
	})
	var coverageKeys []string
	for _, x := range coverageValues {
		coverageKeys = append(coverageKeys, coverageKey(x))
		headers.Update(coverageKey(x), func(h *Header) {
			percent(h)
			h.Max = Float(100)
			h.Scale = "YlGn"
		})
	}
	m.Headers = headers

	m.GeneralStats = headers.Subset("bases usable", "mapped read %", "on-target read %", "target region read depth")

	m.Sections = []*Section{
		m.tableSection("Overview", "mappingqc-general", "", headers.Subset(
			"bases usable",
			"on-target read %",
			"mapped read %",
			"properly-paired read %",
			"trimmed base %",
			"clipped base %",
			"duplicate read %",
			"insert size",
			"SNV allele frequency deviation",
		)),
	}

	if _, ok := headers.Get(coverageKey(10)); !ok {
		return
	}

	m.Sections = append(m.Sections,
		m.tableSection("Coverage", "mappingqc-coverage", "",
			headers.Subset(append([]string{"target region read depth"}, coverageKeys...)...)),
		m.barSection("Sequencing Depth", "mappingqc-read-depth", m.Describe("target region read depth"),
			PlotConfig{
				ID:        "mappingqc-read-depth-plot",
				Title:     "MappingQC: Target Region Sequencing Depth",
				YLab:      "coverage",
				Decimals:  2,
				Suffix:    "x",
				UseLegend: true,
			},
			"target region read depth"),
	)

	var labels []string
	for _, x := range coverageValues {
		labels = append(labels, fmt.Sprintf("%dx coverage %%", x))
	}
	m.Sections = append(m.Sections,
		m.barSection("Target Coverage", "mappingqc-target-coverage", "",
			PlotConfig{
				ID:         "mappingqc-target-coverage-plot",
				Title:      "MappingQC: Target Coverage Percentage",
				YLab:       "target coverage percentage",
				YMin:       Float(0),
				YMax:       Float(100),
				Decimals:   2,
				Suffix:     "%",
				DataLabels: labels,
			},
			coverageKeys...),
	)
}
