package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
)

// FileNames zwraca nazwy plików dla feedu: csv, json, html.
func FileNames(feed string) (csvName, infoName, htmlName string) {
	return feed + "_feed.csv", feed + "_feed_info.json", feed + "_index.html"
}

// WriteAll zapisuje wszystkie trzy pliki do dir (zawsze, także dla pustego wyniku).
// Zwraca pełne ścieżki.
func WriteAll(dir string, feed marketplaces.Feed, r Report, rows []pipeline.OutputRow) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	csvName, infoName, htmlName := FileNames(feed.Name())
	names := []string{csvName, infoName, htmlName}

	var csvBuf, infoBuf, htmlBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, feed, rows); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if err := WriteInfo(&infoBuf, r, names); err != nil {
		return nil, fmt.Errorf("feed info: %w", err)
	}
	if err := WriteHTML(&htmlBuf, r, rows); err != nil {
		return nil, fmt.Errorf("html: %w", err)
	}

	var paths []string
	for i, buf := range []*bytes.Buffer{&csvBuf, &infoBuf, &htmlBuf} {
		p := filepath.Join(dir, names[i])
		if err := writeFileAtomic(p, buf.Bytes()); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// zapis przez plik tymczasowy + rename, żeby nie zostawić połowy feedu
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
