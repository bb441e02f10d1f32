package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/internal/errs"
	"github.com/nborodulin471/booking-system/hotel/internal/model"
)

type reconcile func(ctx context.Context, task model.ReconcileTask) error

// Consumer replays reconcile tasks from the queue. Unparseable messages and
// tasks for rooms that no longer exist are acked and dropped; other failed
// applications are left unacked for redelivery.
type Consumer struct {
	reconcileHandler reconcile
	log              *zap.Logger
}

func NewConsumer(reconcileHandler reconcile, log *zap.Logger) *Consumer {
	return &Consumer{
		reconcileHandler: reconcileHandler,
		log:              log.Named("consumer"),
	}
}

// Setup runs on every consumer-group rebalance and must be safe to call more
// than once with the same handler.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var task model.ReconcileTask
			if err := json.Unmarshal(message.Value, &task); err != nil {
				consumer.log.Error("unmarshal reconcile task", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.reconcileHandler(context.Background(), task); err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					// the room is gone; redelivery can never succeed
					consumer.log.Warn("reconcile task dropped, room does not exist",
						zap.String("taskID", task.TaskID), zap.Int64("roomID", task.RoomID))
					session.MarkMessage(message, "")
					continue
				}
				consumer.log.Error("apply reconcile task",
					zap.String("taskID", task.TaskID), zap.Int64("roomID", task.RoomID), zap.Error(err))
				continue
			}

			consumer.log.Debug("reconcile task applied",
				zap.String("taskID", task.TaskID), zap.Int64("roomID", task.RoomID), zap.String("op", task.Op))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
