package qcReport

func buildVariantQC(m *Module, opts *Options) {
	var headers = HeadersFromParams(m.Name, m.Params)
	headers.Update("variant count", func(h *Header) {
		h.Decimals = 0
		h.Scale = "Blues"
	})
	headers.Update("known variants %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "YlGnBu"
	})
	headers.Update("high-impact variants %", func(h *Header) {
		percent(h)
		h.Min = Float(0)
		h.MinRange = Float(10)
		h.Ceiling = Float(10)
		h.Scale = "Reds"
	})
	headers.Update("homozygous variants %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
		h.Scale = "Purples"
	})
	headers.Update("indel variants %", func(h *Header) {
		percent(h)
		h.MinRange = Float(20)
		h.Ceiling = Float(20)
		h.Scale = "PuRd"
	})
	headers.Update("transition/transversion ratio", func(h *Header) {
		h.Decimals = 2
		h.MinRange = Float(5)
		h.Ceiling = Float(5)
		h.Scale = "RdBu"
	})
	m.Headers = headers

	m.GeneralStats = headers.Subset("variant count", "known variants %")

	m.Sections = []*Section{
		m.tableSection("Overview", "variantqc-general", "", headers.Subset(
			"variant count",
			"high-impact variants %",
			"homozygous variants %",
			"indel variants %",
			"transition/transversion ratio",
		)),
		m.barSection("Variant Count", "variantqc-variant-count", m.Describe("variant count"),
			PlotConfig{
				ID:        "variantqc-variant-count-plot",
				Title:     "VariantQC: Variant Count",
				YLab:      "count",
				Decimals:  0,
				UseLegend: true,
			},
			"variant count"),
	}
}
