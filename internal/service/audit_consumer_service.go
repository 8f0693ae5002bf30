package service

import (
	"context"
	"encoding/json"

	"secure-chat-be/internal/events"
	"secure-chat-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains chat-turn events from the in-process bus and
// writes them to the structured audit log.
type auditConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewAuditConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(msg *message.Message) {
	var evt events.ChatTurnCompleted
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("audit", "failed to unmarshal chat turn event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	cs.logger.Info("audit", "chat turn completed", map[string]interface{}{
		"user_id":     evt.UserId.String(),
		"session_id":  evt.SessionId.String(),
		"question_id": evt.QuestionId.String(),
		"answer_id":   evt.AnswerId.String(),
		"created_at":  evt.CreatedAt,
	})
	msg.Ack()
}
