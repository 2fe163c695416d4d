package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProducer_SendEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockWriterInterface(ctrl)
	producer := &Producer{
		Writer: mockWriter,
		Logger: zap.NewNop().Sugar(),
	}

	event := Event{
		Type:       FeedbackCreated,
		ProjectID:  "project-1",
		FeedbackID: "feedback-1",
		Rating:     5,
		Timestamp:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}

	var gotMsg kafka.Message
	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			gotMsg = msgs[0]
			return nil
		})

	err := producer.SendEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, []byte("project-1"), gotMsg.Key)

	var decoded Event
	require.NoError(t, json.Unmarshal(gotMsg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestProducer_SendEventWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockWriterInterface(ctrl)
	producer := &Producer{
		Writer: mockWriter,
		Logger: zap.NewNop().Sugar(),
	}

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	err := producer.SendEvent(context.Background(), Event{Type: FeedbackCreated, ProjectID: "p1"})
	assert.Error(t, err)
}
