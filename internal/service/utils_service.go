package service

// UtilsService fans a list of titles out to workers in fixed-size batches.
type UtilsService struct {
	BatchChan chan []string
}

func CreateBatchChannel(bufferSize int) *UtilsService {
	return &UtilsService{BatchChan: make(chan []string, bufferSize)}
}

// Feed sends titles in batches of size and closes the channel. It stops
// early when stop is closed.
func (u *UtilsService) Feed(titles []string, size int, stop <-chan struct{}) {
	defer close(u.BatchChan)
	if size <= 0 {
		size = 1
	}
	for start := 0; start < len(titles); start += size {
		end := min(start+size, len(titles))
		select {
		case u.BatchChan <- titles[start:end]:
		case <-stop:
			return
		}
	}
}
