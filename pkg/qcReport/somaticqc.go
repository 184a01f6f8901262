package qcReport

import (
	"log/slog"
	"regexp"
	"strconv"

	"QcmlReport/pkg/qcml"
)

// regexp
var (
	// tumor-normal pair names: Tumor-Normal
	pairName = regexp.MustCompile(`^([^-]+)-[^-]+`)
	// somatic variant rate as written by SomaticQC: "high (12.34 var/Mb)"
	variantRate = regexp.MustCompile(`(low|moderate|high) \(([0-9.]+) var/Mb\)`)
)

// tumorSampleName keeps the tumor part of a tumor-normal pair name.
func tumorSampleName(name string) string {
	if m := pairName.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// parseVariantRate extracts the rate in variants per megabase.
func parseVariantRate(v qcml.Value) (float64, bool) {
	if v.Numeric {
		return v.Number, true
	}
	var m = variantRate.FindStringSubmatch(v.Text)
	if m == nil {
		return 0, false
	}
	var f, err = strconv.ParseFloat(m[2], 64)
	return f, err == nil
}

func buildSomaticQC(m *Module, opts *Options) {
	m.Data.Each(func(sample string, kv *qcml.Metrics) {
		var v, ok = kv.Get("somatic variant rate")
		if !ok {
			return
		}
		if rate, ok := parseVariantRate(v); ok {
			kv.Set("somatic variant rate", qcml.Number(rate))
		} else {
			slog.Debug("unparsable somatic variant rate", slog.Group("module", "name", m.Name, "sample", sample, "value", v.String()))
			kv.Delete("somatic variant rate")
		}
	})

	var headers = HeadersFromParams(m.Name, m.Params)
	headers.Update("sample correlation", func(h *Header) {
		h.Decimals = 2
		h.Max = Float(1)
	})
	headers.Update("variant count", func(h *Header) {
		h.Decimals = 0
		h.Title = "variant count"
	})
	headers.Update("somatic variant count", func(h *Header) {
		h.Decimals = 0
	})
	headers.Update("known somatic variants %", func(h *Header) {
		percent(h)
		h.Max = Float(100)
	})
	headers.Update("somatic indel %", func(h *Header) {
		percent(h)
		h.MinRange = Float(20)
		h.Ceiling = Float(20)
	})
	headers.Update("somatic variant rate", func(h *Header) {
		h.Suffix = "Variants/Mb"
		h.Decimals = 2
		h.Min = Float(0)
		h.MinRange = Float(10)
		h.Ceiling = Float(10)
	})
	headers.Update("somatic transition/transversion ratio", func(h *Header) {
		h.Decimals = 2
		h.MinRange = Float(5)
		h.Ceiling = Float(5)
	})
	headers.Update("tumor content estimate", func(h *Header) {
		percent(h)
		h.Max = Float(100)
	})

	// VariantQC reports a variant count of its own
	headers.Rename("variant count", "variant count somaticqc")
	m.Data.Each(func(_ string, kv *qcml.Metrics) {
		kv.Rename("variant count", "variant count somaticqc")
	})
	m.Headers = headers

	m.GeneralStats = headers.Subset("sample correlation", "somatic variant count", "known somatic variants %")

	m.Sections = []*Section{
		m.tableSection("Overview", "somaticqc-general", "", headers.Subset(
			"sample correlation",
			"variant count somaticqc",
			"somatic variant count",
			"known somatic variants %",
			"somatic indel %",
			"somatic transition/transversion ratio",
			"somatic variant rate",
			"tumor content estimate",
		)),
		m.barSection("Somatic Variant Count", "somaticqc-somatic-variant-count", m.Describe("somatic variant count"),
			PlotConfig{
				ID:        "somaticqc-somatic-variant-count-plot",
				Title:     "SomaticQC: Somatic Variant Count",
				YLab:      "count",
				Decimals:  0,
				UseLegend: true,
			},
			"somatic variant count"),
	}
}
