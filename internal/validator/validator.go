package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/arcanaland/tarot-assets/internal/log"
)

var (
	// ErrCatalogNotFound is returned when the card JSON file doesn't exist
	ErrCatalogNotFound = errors.New("card JSON file not found")
	// ErrMalformedCatalog is returned when the card JSON file can't be decoded
	// as an array of card records
	ErrMalformedCatalog = errors.New("malformed card JSON")
)

// Record is the part of a card record the image check looks at. Other keys
// of the record are ignored.
type Record struct {
	ID    any     `json:"id"`
	Image *string `json:"image"`
}

// DisplayID returns the record ID as printed in reports
func (r Record) DisplayID() string {
	if r.ID == nil {
		return "N/A"
	}
	return fmt.Sprint(r.ID)
}

type ValidationResults struct {
	Total    int
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate checks that every record of the catalog points to an image on
// disk. Missing paths and missing files are reported in Results.Errors; the
// returned error is only set when the catalog itself can't be read.
func (v *Validator) Validate() (ValidationResults, error) {
	records, err := v.loadRecords()
	if err != nil {
		return v.Results, err
	}

	v.Results.Total = len(records)

	for _, record := range records {
		v.validateImage(record)
	}

	return v.Results, nil
}

func (v *Validator) loadRecords() ([]Record, error) {
	data, err := os.ReadFile(v.CatalogPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, v.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", v.CatalogPath, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	// Keep numeric IDs as written
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedCatalog, v.CatalogPath, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: %s: expected an array of cards", ErrMalformedCatalog, v.CatalogPath)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: %s: trailing data after the card array", ErrMalformedCatalog, v.CatalogPath)
	}

	return records, nil
}

// validateImage checks the image of a single record. Paths are relative to
// the working directory.
func (v *Validator) validateImage(record Record) {
	id := record.DisplayID()

	if record.Image == nil || *record.Image == "" {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("ID: %s, Error: no image path in JSON data.", id))
		return
	}

	imagePath := *record.Image
	info, err := os.Stat(imagePath)
	if err != nil {
		log.Debugw("Image not found", "id", id, "path", imagePath, "error", err)
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("ID: %s, Path: %s", id, imagePath))
		return
	}

	if info.IsDir() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("ID: %s, Path: %s is a directory", id, imagePath))
	}
}

// CheckTarotCardImages validates the catalog at path and prints a report to
// w. Unreadable or malformed catalogs are reported as text; this function
// never fails.
func CheckTarotCardImages(w io.Writer, path string) {
	v := NewValidator(path)

	results, err := v.Validate()
	switch {
	case errors.Is(err, ErrCatalogNotFound):
		fmt.Fprintf(w, "Error: JSON file not found at '%s'\n", path)
		return
	case errors.Is(err, ErrMalformedCatalog):
		log.Debugw("Couldn't decode catalog", "path", path, "error", err)
		fmt.Fprintf(w, "Error: couldn't read JSON file '%s'. Make sure it is valid JSON.\n", path)
		return
	case err != nil:
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Checking image files for %d cards...\n", results.Total)

	if len(results.Errors) > 0 {
		color.New(color.FgRed).Fprintln(w, "\n--- Missing or invalid image files ---")
		for _, item := range results.Errors {
			fmt.Fprintln(w, item)
		}
	} else {
		color.New(color.FgGreen).Fprintln(w, "\nDone! All image files were found.")
	}

	if len(results.Warnings) > 0 {
		color.New(color.FgYellow).Fprintln(w, "\nWarnings:")
		for _, warn := range results.Warnings {
			fmt.Fprintln(w, warn)
		}
	}
}
