package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/gantry/pkg/config"
	"github.com/vanderheijden86/gantry/pkg/slide"
	"github.com/vanderheijden86/gantry/pkg/spreadsheet"
	"github.com/vanderheijden86/gantry/pkg/ui"
	"github.com/vanderheijden86/gantry/pkg/version"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	importPath := flag.String("import", "", "Import an .xlsx workbook on startup")
	templatePath := flag.String("template", "", "Write a starter workbook to the given path and exit")
	exportDir := flag.String("export", "", "Render slides into the given directory and exit (headless)")
	exportFormat := flag.String("format", "svg", "Export format for --export: svg, png or both")
	exportTitle := flag.String("title", "", "Slide title for --export")
	weekTicks := flag.Bool("week-ticks", false, "Draw the week sub-grid in --export output")
	flag.Parse()

	if *help {
		fmt.Println("Usage: gantry [options]")
		fmt.Println("\nAn interactive project timeline editor with slide export.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("gantry %s\n", version.Version)
		os.Exit(0)
	}

	if *templatePath != "" {
		if err := spreadsheet.WriteTemplate(*templatePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Template written to %s\n", *templatePath)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	m := ui.New(cfg)
	if *importPath != "" {
		m, err = m.WithImport(*importPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", *importPath, err)
			os.Exit(1)
		}
	}

	if *exportDir != "" {
		if err := headlessExport(m, *exportDir, *exportFormat, *exportTitle, *weekTicks); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func headlessExport(m ui.Model, dir, format, title string, weekTicks bool) error {
	var formats []string
	switch strings.ToLower(format) {
	case "svg", "png":
		formats = []string{strings.ToLower(format)}
	case "both":
		formats = []string{"svg", "png"}
	default:
		return fmt.Errorf("unknown format %q (want svg, png or both)", format)
	}

	sched := m.Schedule()
	opts := slide.Options{
		Title:      title,
		Items:      sched.Items(),
		Milestones: sched.Milestones(),
		Theme:      m.Theme(),
		Viewport:   sched.Viewport(),
		WeekTicks:  weekTicks,
	}
	if err := slide.SaveAll(dir, formats, opts); err != nil {
		return err
	}
	for _, f := range formats {
		fmt.Printf("Wrote %s/%s\n", dir, slide.DefaultFileName(f))
	}
	return nil
}
