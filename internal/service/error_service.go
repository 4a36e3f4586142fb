package service

import (
	"sync"
	"sync/atomic"

	"github.com/chandhuDev/JobLens/internal/interfaces"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

// ErrorService collects failures reported by background workers. Workers
// keep going after a Send; the caller decides what the total means.
type ErrorService struct {
	ErrorHandler *models.ErrorHandler

	failed atomic.Int64
	done   chan struct{}
	once   sync.Once
}

var _ interfaces.ErrorClient = (*ErrorService)(nil)

func SetUpErrorClient() *models.ErrorHandler {
	return &models.ErrorHandler{
		ErrChan: make(chan models.WorkerError, 100),
	}
}

func NewErrorService() *ErrorService {
	return &ErrorService{ErrorHandler: SetUpErrorClient(), done: make(chan struct{})}
}

// HandleError drains the channel until Close. Run it in its own goroutine.
func (e *ErrorService) HandleError() {
	defer close(e.done)
	for werr := range e.ErrorHandler.ErrChan {
		e.failed.Add(1)
		logger.Error().Err(werr.Err).Int("worker", werr.WorkerId).Msg(werr.Message)
	}
}

func (e *ErrorService) Send(werr models.WorkerError) {
	e.ErrorHandler.ErrChan <- werr
}

// Close stops accepting errors and waits until every sent error is logged.
func (e *ErrorService) Close() {
	e.once.Do(func() { close(e.ErrorHandler.ErrChan) })
	<-e.done
}

func (e *ErrorService) Failed() int {
	return int(e.failed.Load())
}
