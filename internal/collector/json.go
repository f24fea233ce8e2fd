package collector

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mvp-joe/docharvest/internal/extract"
)

// SaveDocstringsJSON writes docstrings to outputPath as a JSON array with
// 2-space indentation, creating parent directories as needed.
func SaveDocstringsJSON(docs []extract.Docstring, outputPath string) error {
	if docs == nil {
		docs = []extract.Docstring{}
	}
	if err := writeJSON(docs, outputPath); err != nil {
		return err
	}
	log.Printf("Saved %d docstrings to %s", len(docs), outputPath)
	return nil
}

// SaveSymbolsJSON writes symbols to outputPath as a JSON array with 2-space
// indentation, creating parent directories as needed.
func SaveSymbolsJSON(symbols []extract.Symbol, outputPath string) error {
	if symbols == nil {
		symbols = []extract.Symbol{}
	}
	if err := writeJSON(symbols, outputPath); err != nil {
		return err
	}
	log.Printf("Saved %d symbols to %s", len(symbols), outputPath)
	return nil
}

func writeJSON(records any, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
