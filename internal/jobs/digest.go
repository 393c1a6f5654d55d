// Package jobs runs scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/retention"
)

type summarizer interface {
	Summary(ctx context.Context, ownerID string) (retention.Summary, error)
}

// Digest logs, per owner, how many clients need attention.
type Digest struct {
	cron    *cron.Cron
	source  summarizer
	owners  []string
	timeout time.Duration
}

func NewDigest(source summarizer, owners []string, loc *time.Location) *Digest {
	return &Digest{
		cron:    cron.New(cron.WithLocation(loc)),
		source:  source,
		owners:  owners,
		timeout: 30 * time.Second,
	}
}

// Schedule registers the digest on a standard five-field cron spec.
func (d *Digest) Schedule(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.run); err != nil {
		return fmt.Errorf("schedule retention digest: %w", err)
	}
	log.Info().Str("spec", spec).Strs("owners", d.owners).Msg("retention digest scheduled")
	return nil
}

func (d *Digest) Start() {
	d.cron.Start()
}

// Stop waits for a running digest to finish.
func (d *Digest) Stop() {
	<-d.cron.Stop().Done()
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	d.Collect(ctx)
}

// Collect summarizes every owner. Owners that fail are logged and left out.
func (d *Digest) Collect(ctx context.Context) map[string]retention.Summary {
	out := make(map[string]retention.Summary, len(d.owners))

	for _, owner := range d.owners {
		sum, err := d.source.Summary(ctx, owner)
		if err != nil {
			log.Error().Err(err).Str("owner_id", owner).Msg("retention digest failed")
			continue
		}
		out[owner] = sum

		ev := log.Info()
		if sum.Overdue > 0 {
			ev = log.Warn()
		}
		ev.Str("owner_id", owner).
			Int("overdue", sum.Overdue).
			Int("upcoming", sum.Upcoming).
			Int("ontime", sum.OnTime).
			Msg("retention digest")
	}

	return out
}
