package interfaces

import "github.com/chandhuDev/JobLens/internal/models"

type ErrorClient interface {
	HandleError()
	Send(e models.WorkerError)
}
