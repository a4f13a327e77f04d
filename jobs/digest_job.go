package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/anjiri1684/tutor_booking/notifications"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// firstWindow is how far back the first digest after start-up looks.
const firstWindow = 24 * time.Hour

// Digest mails the operator a count of bookings and requests created since
// the previous run. Windows are half-open, so consecutive digests never
// count the same row twice.
type Digest struct {
	bookings repository.BookingRepository
	requests repository.RequestRepository
	notifier notifications.Notifier
	logger   *zap.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

func NewDigest(db *gorm.DB, notifier notifications.Notifier, logger *zap.Logger) *Digest {
	return &Digest{
		bookings: repository.NewGormBookingRepository(db),
		requests: repository.NewGormRequestRepository(db),
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run satisfies cron.Job.
func (d *Digest) Run() {
	if err := d.RunOnce(context.Background()); err != nil {
		d.logger.Error("Digest job failed", zap.Error(err))
	}
}

// RunOnce sends one digest. The window only moves forward once the digest
// has been sent, so a failed run is covered by the next one.
func (d *Digest) RunOnce(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	until := d.now()
	since := d.last
	if since.IsZero() {
		since = until.Add(-firstWindow)
	}

	bookings, err := d.bookings.CountBetween(ctx, since, until)
	if err != nil {
		return err
	}
	requests, err := d.requests.CountBetween(ctx, since, until)
	if err != nil {
		return err
	}

	if bookings == 0 && requests == 0 {
		d.logger.Info("Digest skipped, nothing new", zap.Time("since", since))
		d.last = until
		return nil
	}

	err = d.notifier.Digest(ctx, notifications.DigestNotice{
		Since:    since,
		Until:    until,
		Bookings: bookings,
		Requests: requests,
	})
	if err != nil {
		return err
	}

	d.logger.Info("Digest sent",
		zap.Int64("bookings", bookings),
		zap.Int64("requests", requests),
		zap.Time("since", since))
	d.last = until
	return nil
}

// Schedule registers the digest on c. An empty expression leaves the job off.
func Schedule(c *cron.Cron, expr string, d *Digest) (bool, error) {
	if expr == "" {
		return false, nil
	}
	if _, err := c.AddJob(expr, d); err != nil {
		return false, err
	}
	return true, nil
}
