package gui

import (
	"time"

	"github.com/appengine-ltd/weatherdash/internal/weather"
)

// refreshResult is one finished weather fetch handed to the frame loop.
type refreshResult struct {
	Location weather.Location
	Report   weather.Report
	Err      error
	At       time.Time
}

type resultSink interface {
	EnqueueResult(refreshResult)
}

type resultQueue struct {
	ch chan refreshResult
}

func newResultQueue(size int) *resultQueue {
	if size < 1 {
		size = 4
	}
	return &resultQueue{ch: make(chan refreshResult, size)}
}

// EnqueueResult never blocks. When the frame loop has fallen behind the
// oldest queued result is discarded to make room.
func (q *resultQueue) EnqueueResult(res refreshResult) {
	if q == nil {
		return
	}
	for {
		select {
		case q.ch <- res:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

func (q *resultQueue) Dequeue() (refreshResult, bool) {
	if q == nil {
		return refreshResult{}, false
	}
	select {
	case res := <-q.ch:
		return res, true
	default:
		return refreshResult{}, false
	}
}
