package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/gym-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSessionDir struct {
	sessions []domain.ZumbaSession
	listErr  error
	notified []primitive.ObjectID
}

func (f *fakeSessionDir) ListActiveBetween(_ context.Context, start, end time.Time) ([]domain.ZumbaSession, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.ZumbaSession
	for _, s := range f.sessions {
		if s.IsActive && !s.Notified && !s.ScheduledAt.Before(start) && !s.ScheduledAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionDir) MarkNotified(_ context.Context, id primitive.ObjectID) error {
	f.notified = append(f.notified, id)
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].Notified = true
		}
	}
	return nil
}

type fakeUserDir struct {
	users   []domain.User
	listErr error
}

func (f *fakeUserDir) ListOptedInWithEmail(context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]int // email -> remaining failures
}

func (f *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	if n, ok := f.failFor[to]; ok && n > 0 {
		f.failFor[to] = n - 1
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}

func newTestScheduler(sessions *fakeSessionDir, users *fakeUserDir, mail *fakeMailer) *Scheduler {
	return NewScheduler(sessions, users, mail, NewDispatchTracker(), Options{
		Timezone:  time.UTC,
		Lookahead: 6 * time.Hour,
	})
}

func member(email string) domain.User {
	return domain.User{
		ID:          primitive.NewObjectID(),
		Name:        "Member",
		Email:       email,
		Role:        domain.RoleMember,
		NotifyOptIn: true,
	}
}

func sessionAt(scheduledAt time.Time, leadMinutes int) domain.ZumbaSession {
	return domain.ZumbaSession{
		ID:                primitive.NewObjectID(),
		Title:             "Evening Zumba",
		ScheduledAt:       scheduledAt,
		NotifyLeadMinutes: leadMinutes,
		IsActive:          true,
	}
}

func TestTick_SendsInsideWindowOnly(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	// notifyAt == now: inside the window.
	inWindow := sessionAt(now.Add(60*time.Minute), 60)
	// notifyAt is 5 minutes away: outside.
	outside := sessionAt(now.Add(65*time.Minute), 60)

	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{inWindow, outside}}
	users := &fakeUserDir{users: []domain.User{member("a@x.com")}}
	mail := &fakeMailer{}

	sched := newTestScheduler(sessions, users, mail)
	sched.Tick(context.Background(), now)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "a@x.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Evening Zumba")
}

func TestTick_WindowExclusion(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration // notifyAt - now
		sent   int
	}{
		{"exactly now", 0, 1},
		{"59s early", 59 * time.Second, 1},
		{"59s late", -59 * time.Second, 1},
		{"60s early", time.Minute, 0},
		{"2m late", -2 * time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := sessionAt(now.Add(tt.offset).Add(time.Hour), 60)
			sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
			users := &fakeUserDir{users: []domain.User{member("a@x.com")}}
			mail := &fakeMailer{}

			sched := newTestScheduler(sessions, users, mail)
			sched.Tick(context.Background(), now)

			assert.Len(t, mail.sent, tt.sent)
		})
	}
}

func TestTick_IdempotentAcrossTicks(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	session := sessionAt(now.Add(time.Hour), 60)

	user := member("a@x.com")
	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
	users := &fakeUserDir{users: []domain.User{user}}
	mail := &fakeMailer{}

	tracker := NewDispatchTracker()
	sched := NewScheduler(sessions, users, mail, tracker, Options{Timezone: time.UTC})

	sched.Tick(context.Background(), now)
	require.Len(t, mail.sent, 1)
	assert.True(t, tracker.Sent(session.ID.Hex(), user.ID.Hex()))

	// Second tick 30 seconds later, still inside the window: the tracker
	// and the durable notified flag both suppress a resend.
	sched.Tick(context.Background(), now.Add(30*time.Second))
	assert.Len(t, mail.sent, 1)
}

func TestTick_RetryAfterFailure(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	session := sessionAt(now.Add(time.Hour), 60)

	user := member("a@x.com")
	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
	users := &fakeUserDir{users: []domain.User{user}}
	mail := &fakeMailer{failFor: map[string]int{"a@x.com": 1}}

	tracker := NewDispatchTracker()
	sched := NewScheduler(sessions, users, mail, tracker, Options{Timezone: time.UTC})

	// First attempt fails: nothing tracked, session not marked notified.
	sched.Tick(context.Background(), now)
	assert.Empty(t, mail.sent)
	assert.False(t, tracker.Sent(session.ID.Hex(), user.ID.Hex()))
	assert.Empty(t, sessions.notified)

	// Next tick still inside the window retries and succeeds.
	sched.Tick(context.Background(), now.Add(45*time.Second))
	require.Len(t, mail.sent, 1)
	assert.True(t, tracker.Sent(session.ID.Hex(), user.ID.Hex()))
	require.Len(t, sessions.notified, 1)
	assert.Equal(t, session.ID, sessions.notified[0])
}

func TestTick_PartialFailureOnlyRetriesFailedUser(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	session := sessionAt(now.Add(time.Hour), 60)

	ok := member("ok@x.com")
	flaky := member("flaky@x.com")
	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
	users := &fakeUserDir{users: []domain.User{ok, flaky}}
	mail := &fakeMailer{failFor: map[string]int{"flaky@x.com": 1}}

	sched := newTestScheduler(sessions, users, mail)

	sched.Tick(context.Background(), now)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ok@x.com", mail.sent[0].to)
	assert.Empty(t, sessions.notified, "partial success must not mark the session notified")

	sched.Tick(context.Background(), now.Add(30*time.Second))
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "flaky@x.com", mail.sent[1].to)
	assert.Len(t, sessions.notified, 1)
}

func TestTick_DirectoryFailuresSkipTick(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	session := sessionAt(now.Add(time.Hour), 60)

	t.Run("session query fails", func(t *testing.T) {
		sessions := &fakeSessionDir{listErr: errors.New("mongo down")}
		users := &fakeUserDir{users: []domain.User{member("a@x.com")}}
		mail := &fakeMailer{}

		newTestScheduler(sessions, users, mail).Tick(context.Background(), now)
		assert.Empty(t, mail.sent)
	})

	t.Run("user query fails", func(t *testing.T) {
		sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
		users := &fakeUserDir{listErr: errors.New("mongo down")}
		mail := &fakeMailer{}

		newTestScheduler(sessions, users, mail).Tick(context.Background(), now)
		assert.Empty(t, mail.sent)
	})
}

func TestTick_DefaultLeadTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	// Lead of zero falls back to 60 minutes, so a session one hour out
	// matches right now.
	session := sessionAt(now.Add(time.Hour), 0)
	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
	users := &fakeUserDir{users: []domain.User{member("a@x.com")}}
	mail := &fakeMailer{}

	newTestScheduler(sessions, users, mail).Tick(context.Background(), now)
	assert.Len(t, mail.sent, 1)
}

func TestEndToEndReminderScenario(t *testing.T) {
	// One session at T with a 60 minute lead, one opted-in member. The
	// tick at T-60m sends the mail and records the pair; the tick at
	// T-59m sends nothing more.
	sessionTime := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	session := sessionAt(sessionTime, 60)

	user := member("a@x.com")
	sessions := &fakeSessionDir{sessions: []domain.ZumbaSession{session}}
	users := &fakeUserDir{users: []domain.User{user}}
	mail := &fakeMailer{}

	tracker := NewDispatchTracker()
	sched := NewScheduler(sessions, users, mail, tracker, Options{Timezone: time.UTC})

	sched.Tick(context.Background(), sessionTime.Add(-60*time.Minute))
	require.Len(t, mail.sent, 1)
	assert.True(t, tracker.Sent(session.ID.Hex(), user.ID.Hex()))

	sched.Tick(context.Background(), sessionTime.Add(-59*time.Minute))
	assert.Len(t, mail.sent, 1, "no duplicate reminder on the next tick")
}
