package poller

import (
	"time"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

type Tracker interface {
	Has(id int64) bool
	MarkSeen(ids ...int64)
}

type detectorState uint8

const (
	uninitialized detectorState = iota
	tracking
)

// Detector turns successive order snapshots into new-order notifications.
// The first snapshot only seeds the tracker.
type Detector struct {
	state   detectorState
	tracker Tracker
	now     func() time.Time
}

func NewDetector(tracker Tracker) *Detector {
	return &Detector{tracker: tracker, now: time.Now}
}

func (d *Detector) Initialized() bool { return d.state == tracking }

// Observe returns notifications for pending orders never seen before and marks
// every id of the snapshot as seen. Not safe for concurrent use.
func (d *Detector) Observe(orders []domain.Order) []domain.Notification {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	if d.state == uninitialized {
		d.tracker.MarkSeen(ids...)
		d.state = tracking
		return nil
	}

	now := d.now()
	var batch []domain.Notification
	fresh := make(map[int64]struct{})
	for _, o := range orders {
		if o.Status != domain.StatusPending || d.tracker.Has(o.ID) {
			continue
		}
		if _, dup := fresh[o.ID]; dup {
			continue
		}
		fresh[o.ID] = struct{}{}
		batch = append(batch, domain.NewNotification(o, now))
	}

	d.tracker.MarkSeen(ids...)
	return batch
}
