package qcReport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gopkg.in/yaml.v3"
)

var dataFileExt = map[string]string{
	"tsv":  ".txt",
	"yaml": ".yaml",
	"json": ".json",
}

// WriteDataFile dumps the full dataset of a module into dir as name plus the
// extension of format and returns the path written.
func WriteDataFile(dir, name string, data *Dataset, format string) (string, error) {
	var ext, ok = dataFileExt[format]
	if !ok {
		return "", fmt.Errorf("write data file: unknown format %q", format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	var path = filepath.Join(dir, name+ext)

	var file, err = os.Create(path)
	if err != nil {
		return "", err
	}
	defer simpleUtil.DeferClose(file)

	switch format {
	case "tsv":
		var columns = data.Columns()
		fmtUtil.FprintStringArray(file, append([]string{"Sample"}, columns...), "\t")
		for _, s := range data.SortedSamples() {
			var m, _ = data.Get(s)
			var row = []string{s}
			for _, k := range columns {
				var v, _ = m.Get(k)
				row = append(row, v.String())
			}
			fmtUtil.Fprintln(file, strings.Join(row, "\t"))
		}
	case "yaml":
		var encoder = yaml.NewEncoder(file)
		if err = encoder.Encode(data); err != nil {
			return "", err
		}
		err = encoder.Close()
	case "json":
		var encoder = json.NewEncoder(file)
		encoder.SetIndent("", "    ")
		err = encoder.Encode(data)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
