package formatter

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/mastowrap/mastowrap/internal/presentation/report"
	"github.com/mastowrap/mastowrap/internal/util"
)

//go:embed report.html.tmpl
var reportTemplate string

// HTMLFormatter writes a standalone HTML report next to the working
// directory, one file per year.
type HTMLFormatter struct {
	outputDir string
}

func NewHTMLFormatter(outputDir string) *HTMLFormatter {
	return &HTMLFormatter{outputDir: outputDir}
}

func (f *HTMLFormatter) Format(r *report.Report) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"count":  util.FormatCount,
		"abbrev": util.FormatNumber,
		"join":   func(items []string) string { return strings.Join(items, ", ") },
	}).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	path := fmt.Sprintf("%s/mastowrap_%d.html", f.outputDir, r.Year)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, r); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	util.LogInfof("Wrote HTML report to %s", path)
	return nil
}
