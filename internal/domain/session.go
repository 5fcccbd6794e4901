package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultNotifyLeadMinutes is used when a session was created without an
// explicit reminder lead time.
const DefaultNotifyLeadMinutes = 60

// ZumbaSession is a scheduled group class created by an admin.
type ZumbaSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	ScheduledAt time.Time          `bson:"scheduledAt" json:"scheduledAt"`

	// NotifyLeadMinutes is how many minutes before ScheduledAt the reminder
	// email goes out. Zero means "not set"; readers fall back to
	// DefaultNotifyLeadMinutes.
	NotifyLeadMinutes int `bson:"notifyLeadMinutes,omitempty" json:"notifyLeadMinutes"`

	IsActive bool `bson:"isActive" json:"isActive"`

	// Notified is the durable record that the reminder round for this
	// session completed successfully for every opted-in recipient. Once
	// set, the session is excluded from reminder queries, so a restarted
	// process never re-mails a fully handled session.
	Notified bool `bson:"notified" json:"notified"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LeadMinutes returns the configured lead time, defaulting when unset.
func (s *ZumbaSession) LeadMinutes() int {
	if s.NotifyLeadMinutes <= 0 {
		return DefaultNotifyLeadMinutes
	}
	return s.NotifyLeadMinutes
}

// NotifyAt is the instant the reminder for this session should be sent.
func (s *ZumbaSession) NotifyAt() time.Time {
	return s.ScheduledAt.Add(-time.Duration(s.LeadMinutes()) * time.Minute)
}
