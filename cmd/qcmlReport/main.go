package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"QcmlReport/pkg/qcReport"
	"QcmlReport/pkg/wechatwork"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	workDir = flag.String(
		"w",
		"",
		"directory relative qcML paths are resolved against",
	)
	input = flag.String(
		"i",
		"",
		"input list: module\\tpath[\\tsample]",
	)
	outputDir = flag.String(
		"o",
		"",
		"output directory, default is sub directory of CWD: [BaseName]+.qcml",
	)
	config = flag.String(
		"c",
		"",
		"config yaml, default is etc/config.yaml",
	)
	png = flag.Bool(
		"png",
		false,
		"also export bar graphs as png",
	)
	webhook = flag.String(
		"webhook",
		"",
		"wechatwork robot webhook key, notify when done",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug",
	)
)

// embed etc
//
//go:embed etc/*.yaml
var etcEMFS embed.FS

func main() {
	flag.Parse()
	if *input == "" {
		flag.Usage()
		log.Fatal("-i required!")
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if *outputDir == "" {
		*outputDir = filepath.Base(simpleUtil.HandleError(os.Getwd())) + ".qcml"
	}

	var opts = LoadOptions(*config)
	if *png {
		opts.ExportPlots = true
	}

	var (
		batch  = qcReport.NewBatch(*outputDir, opts)
		sender = wechatwork.NewSender(*webhook)
		err    = batch.BatchRun(*input, *workDir)
	)
	if err != nil {
		if e := sender.SendText(fmt.Sprintf("qcML report %s failed: %v", *outputDir, err)); e != nil {
			slog.Error("notify", "err", e)
		}
		log.Fatal(err)
	}
	if err = sender.SendMarkdown(batch.Markdown()); err != nil {
		slog.Error("notify", "err", err)
	}
}
