package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"inndiff/internal/config"
	"inndiff/internal/logging"
	"inndiff/internal/pdftable"
	"inndiff/internal/pipeline"
)

var log *logrus.Logger

func main() {
	cfg, err := config.Load()
	must(err)
	log = logging.New(cfg.LogLevel, cfg.LogJSON)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "compare":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		oldPath := fs.String("old", "", "old PDF path")
		newPath := fs.String("new", "", "new PDF path")
		format := fs.String("format", "text", "text|json")
		out := fs.String("out", "", "xlsx report path (relative paths go under OUTPUT_DIR)")
		copyList := fs.String("copy", "", "added|removed: print only that list, newline separated")
		checkSums := fs.Bool("check-sums", false, "flag identifiers with bad INN control digits")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("--old", *oldPath))
		must(cfg.Require("--new", *newPath))

		report, err := pipeline.NewComparer(cfg, log).Compare(*oldPath, *newPath)
		must(err)

		if strings.TrimSpace(*out) != "" {
			target := outputPath(cfg, *out)
			must(pipeline.ExportReportToXLSX(report, target))
			log.WithField("path", target).Info("report written")
		}

		switch *copyList {
		case "":
		case "added":
			fmt.Println(pipeline.Clipboard(report.Result.Added))
			return
		case "removed":
			fmt.Println(pipeline.Clipboard(report.Result.Removed))
			return
		default:
			must(fmt.Errorf("unsupported --copy value: %s", *copyList))
		}

		switch *format {
		case "text":
			must(pipeline.WriteText(os.Stdout, report, *checkSums))
		case "json":
			must(pipeline.WriteJSON(os.Stdout, report, *checkSums))
		default:
			must(fmt.Errorf("unsupported --format value: %s", *format))
		}
	case "collect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "PDF path")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("--input", *input))

		ids, err := pipeline.NewCollector(cfg).Collect(*input)
		must(err)
		for _, id := range ids {
			fmt.Println(id)
		}
		log.WithFields(logrus.Fields{"path": *input, "ids": len(ids)}).Info("collect done")
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "PDF path")
		out := fs.String("out", "", "xlsx path for the raw rows")
		_ = fs.Parse(os.Args[2:])
		must(cfg.Require("--input", *input))

		rows, err := pdftable.Extract(*input, pipeline.TableOptions(cfg))
		must(err)
		if strings.TrimSpace(*out) != "" {
			target := outputPath(cfg, *out)
			must(pipeline.ExportRowsToXLSX(rows, target))
			log.WithFields(logrus.Fields{"path": target, "rows": len(rows)}).Info("rows written")
			return
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				if c == nil {
					cells = append(cells, "-")
					continue
				}
				cells = append(cells, fmt.Sprintf("%q", *c))
			}
			fmt.Println(strings.Join(cells, " | "))
		}
	default:
		usage()
		os.Exit(1)
	}
}

func outputPath(cfg config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.OutputDir, path)
}

func usage() {
	fmt.Println("usage: inndiff <command>")
	fmt.Println("commands:")
	fmt.Println("  compare --old=old.pdf --new=new.pdf [--format=text|json] [--out=report.xlsx] [--copy=added|removed] [--check-sums]")
	fmt.Println("  collect --input=file.pdf")
	fmt.Println("  extract --input=file.pdf [--out=rows.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	if log != nil {
		log.WithError(err).Error("command failed")
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
