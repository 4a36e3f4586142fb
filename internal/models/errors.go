package models

import "errors"

var (
	// ErrDatasetUnavailable is returned by every query before the first
	// snapshot has been published.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrRefreshInProgress  = errors.New("refresh already in progress")
	// ErrNoData means no source, cache or snapshot file produced documents.
	ErrNoData      = errors.New("no raw data available")
	ErrCacheMiss   = errors.New("raw cache miss")
	ErrEmptyExport = errors.New("export returned no documents")
)
