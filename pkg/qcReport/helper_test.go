package qcReport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// param is one qualityParameter: name, value, accession
type param [3]string

// writeQcML writes a qcML file with params as quality parameters and returns its path.
func writeQcML(t *testing.T, dir, name string, params ...param) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n")
	sb.WriteString(`<qcML version="0.0.8" xmlns="http://www.prime-xs.eu/ms/qcml">` + "\n")
	sb.WriteString(`  <runQuality ID="rq0001">` + "\n")
	for i, p := range params {
		fmt.Fprintf(&sb,
			`    <qualityParameter ID="qp%04d" name="%s" description="%s description." value="%s" cvRef="QC" accession="%s"/>`+"\n",
			i+1, p[0], p[0], p[1], p[2],
		)
	}
	sb.WriteString("  </runQuality>\n</qcML>\n")

	var path = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func readQCParams(readCount, basesMB string) []param {
	return []param{
		{"read count", readCount, "QC:2000005"},
		{"read length", "151", "QC:2000006"},
		{"Q20 read percentage", "96.12", "QC:2000007"},
		{"Q30 base percentage", "91.50", "QC:2000008"},
		{"no base call percentage", "0.01", "QC:2000009"},
		{"gc content percentage", "41.23", "QC:2000010"},
		{"bases sequenced (MB)", basesMB, "QC:2000049"},
	}
}

func mappingQCParams(target bool) []param {
	var params = []param{
		{"trimmed base percentage", "0.43", "QC:2000019"},
		{"clipped base percentage", "1.22", "QC:2000052"},
		{"mapped read percentage", "97.30", "QC:2000020"},
		{"bases usable (MB)", "5210.50", "QC:2000050"},
		{"on-target read percentage", "81.02", "QC:2000021"},
		{"properly-paired read percentage", "95.11", "QC:2000022"},
		{"insert size", "210.33", "QC:2000023"},
		{"duplicate read percentage", "n/a (duplicates not marked or removed)", "QC:2000024"},
	}
	if !target {
		return append(params, param{"target region read depth", "n/a (no target region bed file)", "QC:2000025"})
	}
	params = append(params, param{"target region read depth", "112.52", "QC:2000025"})
	for i, x := range coverageValues {
		params = append(params, param{fmt.Sprintf("target region %dx percentage", x), fmt.Sprintf("%.2f", 99.5-float64(i)*8), fmt.Sprintf("QC:20000%d", 26+i)})
	}
	return params
}

func somaticQCParams(rate string) []param {
	return []param{
		{"sample correlation", "0.95", "QC:2000040"},
		{"variant count", "1520", "QC:2000013"},
		{"somatic variant count", "86", "QC:2000041"},
		{"known somatic variants percentage", "12.79", "QC:2000045"},
		{"somatic indel percentage", "9.30", "QC:2000042"},
		{"somatic transition/transversion ratio", "2.11", "QC:2000043"},
		{"somatic variant rate", rate, "QC:2000053"},
	}
}

func variantQCParams() []param {
	return []param{
		{"variant count", "42031", "QC:2000013"},
		{"known variants percentage", "98.64", "QC:2000014"},
		{"high-impact variants percentage", "1.02", "QC:2000015"},
		{"homozygous variants percentage", "38.73", "QC:2000016"},
		{"indel variants percentage", "9.47", "QC:2000017"},
		{"transition/transversion ratio", "2.07", "QC:2000018"},
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
