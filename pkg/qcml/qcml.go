// Package qcml extracts quality parameters from qcML documents as written by
// the ngs-bits ReadQC, MappingQC, SomaticQC and VariantQC tools.
package qcml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	gzip "github.com/klauspost/pgzip"
	"golang.org/x/net/html/charset"
)

// Namespace of qcML elements.
const Namespace = "http://www.prime-xs.eu/ms/qcml"

const naPrefix = "n/a"

// regexp
var (
	percentageSuffix = regexp.MustCompile(` percentage$`)
	gz               = regexp.MustCompile(`\.gz$`)
)

// QualityParameter is one qualityParameter element.
type QualityParameter struct {
	Name        string
	Description string
	Accession   string
	Value       Value
}

// NormalizeName replaces a trailing " percentage" with " %".
func NormalizeName(name string) string {
	return percentageSuffix.ReplaceAllLiteralString(name, " %")
}

// IsNA reports whether a value attribute marks a parameter as not available.
func IsNA(value string) bool {
	return strings.HasPrefix(value, naPrefix)
}

// Extract returns the qualityParameter elements below the document root in
// document order, with names normalized and n/a values dropped.
func Extract(r io.Reader) ([]QualityParameter, error) {
	var (
		decoder = xml.NewDecoder(r)
		depth   = 0
		root    = false
		qps     []QualityParameter
	)
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse qcML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if depth == 0 && root {
				return nil, fmt.Errorf("parse qcML: junk after document element <%s>", t.Name.Local)
			}
			depth++
			if depth == 1 {
				root = true
				continue
			}
			if t.Name.Space != Namespace || t.Name.Local != "qualityParameter" {
				continue
			}
			var qp, skip, err = newQualityParameter(t)
			if err != nil {
				return nil, err
			}
			if !skip {
				qps = append(qps, qp)
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("parse qcML: text outside document element: %q", bytes.TrimSpace(t))
			}
		}
	}
	if depth != 0 || !root {
		return nil, fmt.Errorf("parse qcML: %w", io.ErrUnexpectedEOF)
	}
	return qps, nil
}

func newQualityParameter(start xml.StartElement) (qp QualityParameter, skip bool, err error) {
	var attrs = make(map[string]string, len(start.Attr))
	for _, attr := range start.Attr {
		if attr.Name.Space == "" {
			attrs[attr.Name.Local] = attr.Value
		}
	}
	for _, name := range []string{"value", "name", "description", "accession"} {
		if _, ok := attrs[name]; !ok {
			return qp, false, fmt.Errorf("parse qcML: qualityParameter %q: missing attribute %q", attrs["name"], name)
		}
		if name == "value" && IsNA(attrs["value"]) {
			return qp, true, nil
		}
	}

	qp = QualityParameter{
		Name:        NormalizeName(attrs["name"]),
		Description: attrs["description"],
		Accession:   attrs["accession"],
		Value:       ParseValue(attrs["value"]),
	}
	return qp, false, nil
}

// Parse reads one qcML document into the metrics of one sample and records
// description and accession of every parameter in table.
func Parse(r io.Reader, table *ParamTable) (*Metrics, error) {
	var qps, err = Extract(r)
	if err != nil {
		return nil, err
	}
	var metrics = NewMetrics()
	for _, qp := range qps {
		metrics.Set(qp.Name, qp.Value)
		if table != nil {
			table.Set(qp.Name, Param{Description: qp.Description, Accession: qp.Accession})
		}
	}
	return metrics, nil
}

func ParseBytes(contents []byte, table *ParamTable) (*Metrics, error) {
	return Parse(bytes.NewReader(contents), table)
}

// ParseFile parses a qcML file, gunzipping paths ending in .gz.
func ParseFile(path string, table *ParamTable) (*Metrics, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if gz.MatchString(path) {
		var gr, err = gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gr.Close()
		r = gr
	}

	metrics, err := Parse(r, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return metrics, nil
}

// Describe builds a section description from parameter descriptions: the
// plain text for one key, an HTML list for several. Unknown keys are skipped.
func Describe(table *ParamTable, keys ...string) string {
	var descriptions []string
	for _, k := range keys {
		if p, ok := table.Get(k); ok {
			descriptions = append(descriptions, p.Description)
		}
	}
	if len(keys) == 1 {
		return strings.Join(descriptions, "")
	}
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, d := range descriptions {
		sb.WriteString("<li>" + d + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
