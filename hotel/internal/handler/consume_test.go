package handler_test

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nborodulin471/booking-system/hotel/internal/errs"
	"github.com/nborodulin471/booking-system/hotel/internal/handler"
	"github.com/nborodulin471/booking-system/hotel/internal/model"
	"github.com/nborodulin471/booking-system/pkg/kafka"
)

type stubSession struct {
	ctx    context.Context
	marked []*sarama.ConsumerMessage
}

func (s *stubSession) Claims() map[string][]int32 { return nil }
func (s *stubSession) MemberID() string           { return "" }
func (s *stubSession) GenerationID() int32        { return 0 }
func (s *stubSession) MarkOffset(topic string, partition int32, offset int64, metadata string) {
}
func (s *stubSession) Commit() {}
func (s *stubSession) ResetOffset(topic string, partition int32, offset int64, metadata string) {
}
func (s *stubSession) MarkMessage(msg *sarama.ConsumerMessage, metadata string) {
	s.marked = append(s.marked, msg)
}
func (s *stubSession) Context() context.Context { return s.ctx }

type stubClaim struct {
	msgs chan *sarama.ConsumerMessage
}

func (c *stubClaim) Topic() string                            { return kafka.ReconcileTopic }
func (c *stubClaim) Partition() int32                         { return 0 }
func (c *stubClaim) InitialOffset() int64                     { return 0 }
func (c *stubClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *stubClaim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func TestConsumer_SetupSurvivesRebalance(t *testing.T) {
	t.Parallel()

	consumer := handler.NewConsumer(
		func(context.Context, model.ReconcileTask) error { return nil },
		zap.NewExample().Named("test"))

	// sarama calls Setup again on every rebalance with the same handler
	require.NoError(t, consumer.Setup(nil))
	require.NotPanics(t, func() {
		require.NoError(t, consumer.Setup(nil))
		require.NoError(t, consumer.Setup(nil))
	})
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()

	var applied []model.ReconcileTask
	consumer := handler.NewConsumer(func(_ context.Context, task model.ReconcileTask) error {
		applied = append(applied, task)
		switch task.RoomID {
		case 404:
			return errs.ErrNotFound
		case 500:
			return errors.New("db down")
		}
		return nil
	}, zap.NewExample().Named("test"))

	msgs := make(chan *sarama.ConsumerMessage, 4)
	msgs <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"taskId":"a","roomId":7,"op":"release"}`)}
	msgs <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`not json`)}
	msgs <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"taskId":"b","roomId":404,"op":"release"}`)}
	msgs <- &sarama.ConsumerMessage{Offset: 4, Value: []byte(`{"taskId":"c","roomId":500,"op":"release"}`)}
	close(msgs)

	sess := &stubSession{ctx: context.Background()}
	require.NoError(t, consumer.ConsumeClaim(sess, &stubClaim{msgs: msgs}))

	require.Len(t, applied, 3)
	require.Equal(t, "a", applied[0].TaskID)
	require.Equal(t, "b", applied[1].TaskID)
	require.Equal(t, "c", applied[2].TaskID)

	// acked: the applied task, the unparseable payload, the vanished room.
	// the transient failure stays unacked for redelivery.
	require.Len(t, sess.marked, 3)
	offsets := []int64{sess.marked[0].Offset, sess.marked[1].Offset, sess.marked[2].Offset}
	require.Equal(t, []int64{1, 2, 3}, offsets)
}
