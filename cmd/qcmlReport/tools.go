package main

import (
	"io/fs"
	"os"

	"QcmlReport/pkg/qcReport"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

const defaultConfig = "etc/config.yaml"

// LoadOptions reads the config given by -c, or etc/config.yaml beside the
// executable, or the embedded default.
func LoadOptions(path string) *qcReport.Options {
	var file fs.File
	if path != "" {
		file = simpleUtil.HandleError(os.Open(path))
	} else {
		file = osUtil.OpenFS(defaultConfig, exPath, etcEMFS)
	}
	defer simpleUtil.DeferClose(file)

	return simpleUtil.HandleError(qcReport.LoadOptions(file))
}
