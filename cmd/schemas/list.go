package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	schemas "github.com/ParapluOU/schemas-go"
	"github.com/ParapluOU/schemas-go/bundles"
)

//nolint:gochecknoglobals
var (
	idStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))
)

func lookupBundle(args []string) (*schemas.Bundle, string, error) {
	if len(args) < 1 {
		return nil, "", fmt.Errorf("missing bundle identifier (one of: %s)", strings.Join(bundles.IDs(), ", "))
	}

	b, ok := bundles.Get(args[0])
	if !ok {
		return nil, "", fmt.Errorf("unknown bundle %q (one of: %s)", args[0], strings.Join(bundles.IDs(), ", "))
	}

	return b, args[0], nil
}

func runList() error {
	for _, entry := range bundles.All() {
		fmt.Printf("%s %s\n",
			idStyle.Render(fmt.Sprintf("%-12s", entry.ID)),
			summaryStyle.Render(entry.Bundle.Summary().String()),
		)
	}

	return nil
}

func runInfo(args []string) error {
	b, id, err := lookupBundle(args)
	if err != nil {
		return err
	}

	s := b.Summary()

	fmt.Printf("%s\n", idStyle.Render(id))
	fmt.Printf("  Name:    %s\n", s.Name)
	fmt.Printf("  Version: %s\n", s.Version)
	fmt.Printf("  License: %s\n", s.License)
	fmt.Printf("  Files:   %d\n", s.FileCount)
	fmt.Printf("  Size:    %d bytes\n", s.TotalSize)

	return nil
}

func runPaths(args []string) error {
	b, _, err := lookupBundle(args)
	if err != nil {
		return err
	}

	for p := range b.Paths() {
		fmt.Println(p)
	}

	return nil
}

func runCat(args []string) error {
	b, _, err := lookupBundle(args)
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("missing file path argument")
	}

	content, err := b.ReadFile(args[1])
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(content); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	return nil
}
