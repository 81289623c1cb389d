package gui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const (
	fetchTimeout  = 30 * time.Second
	fetchParallel = 4
)

// refresher fetches every configured city off the frame loop and hands one
// result per city to a sink. At most one refresh round runs at a time.
type refresher struct {
	cron     *gocron.Scheduler
	provider weather.Provider
	locs     []weather.Location
	sink     resultSink
	log      *zap.SugaredLogger
	now      func() time.Time
	busy     atomic.Bool
}

func newRefresher(provider weather.Provider, locs []weather.Location, sink resultSink, log *zap.SugaredLogger) *refresher {
	return &refresher{
		cron:     gocron.NewScheduler(time.Local),
		provider: provider,
		locs:     append([]weather.Location(nil), locs...),
		sink:     sink,
		log:      log,
		now:      time.Now,
	}
}

// Start schedules a fetch every interval, the first one immediately.
func (r *refresher) Start(interval time.Duration) error {
	minutes := int(interval.Minutes())
	if minutes <= 0 {
		minutes = 10
	}
	if _, err := r.cron.Every(minutes).Minutes().Do(r.fetch); err != nil {
		return err
	}
	r.cron.StartAsync()
	r.log.Infow("weather refresh scheduled", "cities", len(r.locs), "minutes", minutes)
	return nil
}

// Trigger runs one fetch now without waiting for it.
func (r *refresher) Trigger() {
	go r.fetch()
}

func (r *refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

func (r *refresher) fetch() {
	if !r.busy.CompareAndSwap(false, true) {
		return
	}
	defer r.busy.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallel)
	for _, loc := range r.locs {
		g.Go(func() error {
			r.fetchOne(gctx, loc)
			// A failed city is reported through the sink, never to the group.
			return nil
		})
	}
	_ = g.Wait()
}

func (r *refresher) fetchOne(ctx context.Context, loc weather.Location) {
	report, err := r.provider.Fetch(ctx, loc)
	if err != nil {
		r.log.Warnw("weather refresh failed", "location", loc.Key(), "error", err)
	} else {
		r.log.Debugw("weather refreshed", "location", loc.Key(), "condition", report.Current.Condition.Label())
	}
	r.sink.EnqueueResult(refreshResult{Location: loc, Report: report, Err: err, At: r.now()})
}
