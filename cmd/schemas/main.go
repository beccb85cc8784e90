package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ParapluOU/schemas-go/internal/configuration"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: schemas <command> [arguments]

Commands:
  list                      list all embedded schema bundles
  info <bundle>             show one bundle's summary
  paths <bundle>            print every file path in a bundle
  cat <bundle> <path>       write one schema file to stdout
  extract <bundle> [flags]  write a bundle's tree to disk

Extract flags:
  -out DIR   target directory (default from SCHEMAS_OUTPUT_DIR)
  -verify    re-hash written files against the embedded content
  -ui        show a progress interface during extraction
`)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Usage = usage
	flag.Parse()
	setupLogging()

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	settings := configHandler.LoadSettings(".env")

	args := flag.Args()
	if len(args) < 1 {
		usage()
		ExitCode = 1

		return
	}

	var err error

	switch args[0] {
	case "list":
		err = runList()
	case "info":
		err = runInfo(args[1:])
	case "paths":
		err = runPaths(args[1:])
	case "cat":
		err = runCat(args[1:])
	case "extract":
		err = runExtract(args[1:], settings)
	default:
		slog.Error("Unknown command.", "command", args[0])
		usage()
		ExitCode = 1

		return
	}

	if err != nil {
		slog.Error("Command failed.", "err", err)
		ExitCode = 1
	}
}
