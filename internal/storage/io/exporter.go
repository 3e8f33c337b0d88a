package io

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// ExportFormat is the output format of an export.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ExportFormats are all the supported export formats.
var ExportFormats = []ExportFormat{ExportFormatJSON, ExportFormatYAML, ExportFormatPDF}

// Exporter writes task collections in different formats.
type Exporter struct{}

// NewExporter returns a new exporter.
func NewExporter() Exporter { return Exporter{} }

// Export writes the tasks to w in the requested format.
func (e Exporter) Export(w io.Writer, format ExportFormat, tasks []model.Task) error {
	switch format {
	case ExportFormatJSON:
		return e.exportJSON(w, tasks)
	case ExportFormatYAML:
		return e.exportYAML(w, tasks)
	case ExportFormatPDF:
		return e.exportPDF(w, tasks)
	}

	return fmt.Errorf("unknown export format %q: %w", format, model.ErrNotValid)
}

func (Exporter) exportJSON(w io.Writer, tasks []model.Task) error {
	data, err := taskstore.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, data); err != nil {
		return fmt.Errorf("could not write JSON: %w", err)
	}
	return nil
}

func (Exporter) exportYAML(w io.Writer, tasks []model.Task) error {
	tf := TaskFile{Tasks: make([]TaskEntry, 0, len(tasks))}
	for _, t := range tasks {
		tf.Tasks = append(tf.Tasks, taskEntryFromModel(t))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tf); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}

	return nil
}

func (Exporter) exportPDF(w io.Writer, tasks []model.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(14)

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(40, 8, "You have no tasks")
	}

	for i, t := range tasks {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("%d. %s", i, t.Title)), "0", "L", false)

		summary := t.Summary
		if summary == "" {
			summary = "No summary provided"
		}
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr(summary), "0", "L", false)

		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr("State: "+string(t.State)), "0", "L", false)
		if t.Deadline != nil {
			pdf.MultiCell(0, 6, tr("Deadline: "+*t.Deadline), "0", "L", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not render PDF: %w", err)
	}

	return nil
}
