package models

// WorkerError is reported by a background worker that failed one unit of
// work without stopping the others.
type WorkerError struct {
	WorkerId int
	Message  string
	Err      error
}

type ErrorHandler struct {
	ErrChan chan WorkerError
}
