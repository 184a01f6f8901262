package qcReport

func buildReadQC(m *Module, opts *Options) {
	// bases sequenced (MB) is shown as bases
	m.renameParam("bases sequenced (MB)", "bases sequenced", "Bases sequenced in total.")
	m.megabasesToBases("bases sequenced (MB)", "bases sequenced")

	var headers = HeadersFromParams(m.Name, m.Params)
	for _, k := range []string{"Q20 read %", "Q30 base %", "gc content %"} {
		headers.Update(k, func(h *Header) {
			percent(h)
			h.Max = Float(100)
		})
	}
	headers.Update("no base call %", func(h *Header) {
		percent(h)
		h.Floor = Float(1)
	})
	headers.Update("bases sequenced", func(h *Header) {
		h.Suffix = opts.BaseCountPrefix
		h.Decimals = 2
		h.Multiplier = opts.BaseCountMultiplier
	})
	headers.Update("read count", func(h *Header) {
		h.Suffix = opts.ReadCountPrefix
		h.Decimals = 2
		h.Multiplier = opts.ReadCountMultiplier
	})
	headers.Update("read length", func(h *Header) {
		h.Suffix = "bp"
		h.Decimals = 0
	})
	m.Headers = headers

	m.GeneralStats = headers.Subset("read count", "bases sequenced", "gc content %")

	m.Sections = []*Section{
		m.tableSection("Overview", "readqc-all", "", headers),
	}
}
