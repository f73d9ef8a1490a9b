package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
)

// RegisterInvitationSweep registers the job that marks pending invitations
// past their expiry as expired. The validation path also checks expiry at
// read time, so the sweep only keeps the stored status honest.
func RegisterInvitationSweep(s *Scheduler, svc invitation.InvitationService, interval time.Duration) {
	s.AddJob("invitation-expiry-sweep", interval, func(ctx context.Context) error {
		count, err := svc.SweepExpired(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			slog.Info("Expired invitations swept", "count", count)
		}
		return nil
	})
}
