// Package consumer runs the inbound message loop: it polls the subscribed
// request topics, decodes each record and dispatches it to the pipeline
// registered for its topic. Messages are processed strictly sequentially in
// delivery order so concurrent documents never race each other into the
// external APIs.
package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"verifier/pkg/broker"
	"verifier/pkg/domain"
	"verifier/pkg/logger"
)

// Handler processes one decoded verification request.
type Handler func(ctx context.Context, req domain.VerificationRequest) error

// Router dispatches inbound records to the Handler registered for their
// topic. Registration happens before the loop starts; Handle is then only
// ever called sequentially.
type Router struct {
	handlers map[string]Handler
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Register binds topic to h, replacing any previous handler.
func (r *Router) Register(topic string, h Handler) {
	r.handlers[topic] = h
}

// Topics lists the registered topics.
func (r *Router) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		topics = append(topics, t)
	}

	return topics
}

// Handle decodes msg and runs its topic's handler. Records on unknown topics
// and records that do not decode are logged and dropped; they get no
// response and no retry.
func (r *Router) Handle(ctx context.Context, msg *broker.Message) error {
	h, ok := r.handlers[msg.Topic]
	if !ok {
		logger.Warn(ctx, "no handler registered for topic")

		return nil
	}

	var req domain.VerificationRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		logger.Warn(ctx, "could not decode message, dropping", zap.Error(err))

		return nil
	}

	return h(logger.WithFields(ctx, zap.String("userId", req.ID)), req)
}
