package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

type EventType string

const (
	UserCreated EventType = "user.created"
	UserUpdated EventType = "user.updated"
	UserDeleted EventType = "user.deleted"
)

// UserEvent describes a lifecycle change that has already been persisted.
type UserEvent struct {
	Type       EventType `json:"type"`
	User       UserDTO   `json:"user"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher receives user events after a successful write.
type EventPublisher interface {
	Publish(ctx context.Context, evt UserEvent) error
}

// Publishers fans one event out to every publisher and joins their errors.
type Publishers []EventPublisher

func (p Publishers) Publish(ctx context.Context, evt UserEvent) error {
	var errs []error
	for _, pub := range p {
		if pub == nil {
			continue
		}
		if err := pub.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// notifier publishes best effort: the write is already committed, so a
// failed publish is logged and never turned into a request failure.
type notifier struct {
	pub    EventPublisher
	logger *logrus.Logger
}

func (n notifier) notify(ctx context.Context, typ EventType, user UserDTO) {
	if n.pub == nil {
		return
	}
	evt := UserEvent{Type: typ, User: user, OccurredAt: time.Now().UTC()}
	if err := n.pub.Publish(ctx, evt); err != nil && n.logger != nil {
		n.logger.WithError(err).
			WithFields(logrus.Fields{"event": string(typ), "user_id": user.ID}).
			Warn("publish user event failed")
	}
}
