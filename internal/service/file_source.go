package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

// FileSource reads a local snapshot of raw postings: CSV with a header row,
// newline-delimited JSON, or a JSON array.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string {
	return "file"
}

func (f *FileSource) Fetch(ctx context.Context) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()

	var docs []models.Document
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".csv":
		docs, err = decodeCSV(file)
	case ".jsonl", ".ndjson":
		docs, err = decodeNDJSON(file)
	case ".json":
		docs, err = decodeJSON(file)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", filepath.Ext(f.Path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", f.Path, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("snapshot %s: %w", f.Path, models.ErrNoData)
	}
	return docs, nil
}

// decodeCSV keys every row by the header. Empty cells are left out so the
// field reads as absent.
func decodeCSV(r io.Reader) ([]models.Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var docs []models.Document
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		doc := make(models.Document, len(header))
		for i, cell := range row {
			if i >= len(header) || strings.TrimSpace(cell) == "" {
				continue
			}
			doc[header[i]] = cell
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// decodeNDJSON decodes one object per line. Lines that are not JSON objects
// are skipped and logged rather than failing the whole set.
func decodeNDJSON(r io.Reader) ([]models.Document, error) {
	reader := bufio.NewReader(r)
	var (
		docs    []models.Document
		skipped int
	)
	for {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var doc models.Document
			if jerr := json.Unmarshal(line, &doc); jerr != nil || doc == nil {
				skipped++
			} else {
				docs = append(docs, doc)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Int("decoded", len(docs)).Msg("skipped malformed ndjson lines")
	}
	return docs, nil
}

// decodeJSON accepts a top-level array, falling back to NDJSON.
func decodeJSON(r io.Reader) ([]models.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var docs []models.Document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}
	return decodeNDJSON(bytes.NewReader(data))
}

// encodeNDJSON writes docs one object per line.
func encodeNDJSON(w io.Writer, docs []models.Document) error {
	enc := json.NewEncoder(w)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}
	return nil
}
