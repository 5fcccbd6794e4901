package notifier

import (
	"context"
	"fmt"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/mailer"

	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matchWindow is the tolerance around a session's notify time. The loop
// polls once per minute, so a strict sub-minute window guarantees exactly
// one tick lands inside it for any session/lead-time combination.
const matchWindow = time.Minute

// SessionDirectory is the read side of the session store the scheduler
// pulls from, plus the durable mark that a reminder round completed.
type SessionDirectory interface {
	// ListActiveBetween returns active, not-yet-notified sessions whose
	// scheduled time falls within [start, end].
	ListActiveBetween(ctx context.Context, start, end time.Time) ([]domain.ZumbaSession, error)
	// MarkNotified durably flags a session whose reminder round fully
	// succeeded, excluding it from future ListActiveBetween results.
	MarkNotified(ctx context.Context, id primitive.ObjectID) error
}

// UserDirectory supplies the reminder recipients.
type UserDirectory interface {
	ListOptedInWithEmail(ctx context.Context) ([]domain.User, error)
}

// Scheduler is the Zumba reminder loop. Every minute it scans upcoming
// sessions, matches each session's notify time against the current tick
// and mails every opted-in member exactly once per session.
type Scheduler struct {
	sessions SessionDirectory
	users    UserDirectory
	mail     mailer.Mailer
	tracker  *DispatchTracker

	zone        *time.Location
	pollSpec    string
	lookahead   time.Duration
	sendTimeout time.Duration

	cron *cron.Cron
	log  *logrus.Entry
}

// Options bundle the tunables of the reminder loop.
type Options struct {
	Timezone    *time.Location
	PollSpec    string        // cron spec, normally "@every 1m"
	Lookahead   time.Duration // how far ahead sessions are scanned
	SendTimeout time.Duration // per-email bound so one hang cannot stall a tick
}

// NewScheduler wires a reminder scheduler. It does not start polling;
// call Start.
func NewScheduler(sessions SessionDirectory, users UserDirectory, mail mailer.Mailer, tracker *DispatchTracker, opts Options) *Scheduler {
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	if opts.PollSpec == "" {
		opts.PollSpec = "@every 1m"
	}
	if opts.Lookahead <= 0 {
		opts.Lookahead = 6 * time.Hour
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}
	return &Scheduler{
		sessions:    sessions,
		users:       users,
		mail:        mail,
		tracker:     tracker,
		zone:        opts.Timezone,
		pollSpec:    opts.PollSpec,
		lookahead:   opts.Lookahead,
		sendTimeout: opts.SendTimeout,
		log:         logrus.WithField("component", "zumba-reminder"),
	}
}

// Start begins the per-minute polling loop in the configured time zone.
func (s *Scheduler) Start() error {
	s.cron = cron.NewWithLocation(s.zone)
	if err := s.cron.AddFunc(s.pollSpec, func() {
		s.Tick(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("add reminder poll job: %w", err)
	}
	s.cron.Start()
	s.log.WithFields(logrus.Fields{
		"poll":      s.pollSpec,
		"timezone":  s.zone.String(),
		"lookahead": s.lookahead,
	}).Info("zumba reminder scheduler started")
	return nil
}

// Stop halts the polling loop. In-flight ticks finish on their own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.log.Info("zumba reminder scheduler stopped")
}

// Tick runs one reminder pass. Every error is logged and swallowed: the
// loop must survive any directory or mail failure and simply try again on
// the next minute.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	now = now.In(s.zone)

	sessions, err := s.sessions.ListActiveBetween(ctx, now, now.Add(s.lookahead))
	if err != nil {
		s.log.WithError(err).Warn("session query failed, skipping tick")
		return
	}
	if len(sessions) == 0 {
		return
	}

	users, err := s.users.ListOptedInWithEmail(ctx)
	if err != nil {
		s.log.WithError(err).Warn("user query failed, skipping tick")
		return
	}
	if len(users) == 0 {
		return
	}

	for i := range sessions {
		s.processSession(ctx, now, &sessions[i], users)
	}
}

func (s *Scheduler) processSession(ctx context.Context, now time.Time, session *domain.ZumbaSession, users []domain.User) {
	notifyAt := session.NotifyAt()
	if absDuration(now.Sub(notifyAt)) >= matchWindow {
		// Not this session's minute; later ticks re-evaluate it until it
		// matches or scrolls out of the lookahead.
		return
	}

	when := session.ScheduledAt.In(s.zone).Format("Monday, 02 Jan 2006 at 3:04 PM")
	sessionID := session.ID.Hex()
	allSent := true

	for _, user := range users {
		if s.tracker.Sent(sessionID, user.ID.Hex()) {
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		err := s.mail.Send(sendCtx, user.Email, reminderSubject(session.Title), reminderBody(user.Name, session.Title, when))
		cancel()

		if err != nil {
			// Leave the pair untracked so the next tick inside the window
			// retries it.
			s.tracker.Clear(sessionID, user.ID.Hex())
			allSent = false
			s.log.WithError(err).WithFields(logrus.Fields{
				"session": sessionID,
				"user":    user.ID.Hex(),
			}).Warn("reminder email failed, will retry")
			continue
		}

		s.tracker.MarkSent(sessionID, user.ID.Hex())
		s.log.WithFields(logrus.Fields{
			"session": sessionID,
			"user":    user.ID.Hex(),
		}).Info("reminder email sent")
	}

	if allSent {
		if err := s.sessions.MarkNotified(ctx, session.ID); err != nil {
			s.log.WithError(err).WithField("session", sessionID).
				Warn("failed to durably mark session notified")
		}
	}
}

func reminderSubject(title string) string {
	return fmt.Sprintf("Reminder: %s is coming up", title)
}

func reminderBody(name, title, when string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>This is your reminder that <strong>%s</strong> is scheduled for %s.</p>
<p>Bring water and comfortable shoes. See you on the floor!</p>
<p>— FitTrack</p>`,
		name, title, when)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
