package main

import (
	"flag"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	schemas "github.com/ParapluOU/schemas-go"
	"github.com/ParapluOU/schemas-go/internal/configuration"
	"github.com/ParapluOU/schemas-go/internal/ui"
)

func runExtract(args []string, settings *configuration.Settings) error {
	flags := flag.NewFlagSet("extract", flag.ContinueOnError)
	outDir := flags.String("out", settings.OutputDir, "target directory for extraction")
	verify := flags.Bool("verify", settings.Verify, "re-hash written files against the embedded content")
	uiEnabled := flags.Bool("ui", settings.UI, "show a progress interface during extraction")

	b, id, err := lookupBundle(args)
	if err != nil {
		return err
	}

	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse extract flags: %w", err)
	}

	written, err := extract(b, id, *outDir, *uiEnabled)
	if err != nil {
		return err
	}

	slog.Info("Extraction complete.",
		"bundle", id,
		"files", written,
		"dir", *outDir,
	)

	if *verify {
		if err := b.VerifyDirectory(*outDir); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		slog.Info("Verification complete.", "bundle", id, "dir", *outDir)
	}

	return nil
}

func extract(b *schemas.Bundle, id string, outDir string, uiEnabled bool) (int, error) {
	if !uiEnabled {
		written, err := b.WriteToDirectory(outDir)
		if err != nil {
			return written, fmt.Errorf("extraction incomplete: %w", err)
		}

		return written, nil
	}

	program := tea.NewProgram(ui.NewModel(id, outDir, b.FileCount()))

	go func() {
		written, err := b.WriteToDirectoryProgress(outDir, func(p schemas.WriteProgress) {
			program.Send(ui.ProgressMsg(p))
		})

		program.Send(ui.DoneMsg{Written: written, Err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("progress interface failure: %w", err)
	}

	model, ok := final.(ui.Model)
	if !ok {
		return 0, fmt.Errorf("unexpected final model type")
	}

	if err := model.Err(); err != nil {
		return model.Written(), fmt.Errorf("extraction incomplete: %w", err)
	}

	return model.Written(), nil
}
