package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

const typesenseKeyHeader = "X-TYPESENSE-API-KEY"

// TypesenseSource streams every document of the first non-empty collection
// through the documents export endpoint.
type TypesenseSource struct {
	BaseURL     string
	APIKey      string
	Collections []string
	Client      *http.Client
}

func NewTypesenseSource(cfg config.TypesenseConfig) *TypesenseSource {
	base := url.URL{
		Scheme: cfg.Protocol,
		Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
	}
	return &TypesenseSource{
		BaseURL:     base.String(),
		APIKey:      cfg.APIKey,
		Collections: cfg.Collections,
		Client:      &http.Client{Timeout: cfg.Timeout},
	}
}

func (t *TypesenseSource) Name() string {
	return "typesense"
}

// Fetch tries each configured collection in order and returns the first
// export with documents.
func (t *TypesenseSource) Fetch(ctx context.Context) ([]models.Document, error) {
	var errs []error
	for _, collection := range t.Collections {
		docs, err := t.export(ctx, collection)
		if err == nil && len(docs) > 0 {
			logger.Info().Str("collection", collection).Int("documents", len(docs)).Msg("typesense export complete")
			return docs, nil
		}
		if err == nil {
			err = models.ErrEmptyExport
		}
		logger.Warn().Err(err).Str("collection", collection).Msg("typesense export failed")
		errs = append(errs, fmt.Errorf("collection %s: %w", collection, err))

		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return nil, models.ErrEmptyExport
	}
	return nil, errors.Join(errs...)
}

func (t *TypesenseSource) export(ctx context.Context, collection string) ([]models.Document, error) {
	endpoint := fmt.Sprintf("%s/collections/%s/documents/export", t.BaseURL, url.PathEscape(collection))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(typesenseKeyHeader, t.APIKey)

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("export status %d: %s", resp.StatusCode, body)
	}
	return decodeNDJSON(resp.Body)
}
