//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/adapter/kafka"
	"github.com/couchcryptid/farm-data-engine/internal/config"
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/observability"
	"github.com/couchcryptid/farm-data-engine/internal/pipeline"
	"github.com/robfig/cron/v3"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "test-farm-records"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("farm-test"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// publishedMessage holds a deserialized message read from the topic.
type publishedMessage struct {
	Record  domain.FarmRecord
	Key     string
	Headers map[string]string
}

func readPublished(ctx context.Context, t *testing.T, consumer *kafkago.Reader) publishedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var record domain.FarmRecord
	require.NoError(t, json.Unmarshal(msg.Value, &record), "unmarshal message")

	return publishedMessage{Record: record, Key: string(msg.Key), Headers: headers}
}

func newConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// TestKafkaWriter verifies that kafka.Writer publishes records with their
// key and headers.
func TestKafkaWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	date := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)
	ds, err := domain.NewBuilder(domain.NewRandom(1), nil).CreateSingleDayDataset(domain.DayOptions{
		Season:   domain.Summer,
		CropType: domain.Vegetables,
		FarmName: "Integration Farm",
		Date:     date,
	})
	require.NoError(t, err)
	require.NoError(t, writer.LoadBatch(ctx, ds))

	msg := readPublished(ctx, t, newConsumer(t, broker))
	assert.Equal(t, "Integration Farm", msg.Key)
	assert.Equal(t, "DATA_001", msg.Headers["record_id"])
	assert.Equal(t, "vegetables", msg.Headers["crop_type"])
	assert.Equal(t, "summer", msg.Headers["season"])
	assert.Equal(t, "2025-08-14", msg.Headers["record_date"])
	assert.Equal(t, ds[0], msg.Record)
}

// TestPublisherEndToEnd runs the scheduled pipeline against real Kafka and
// reads back one full batch.
func TestPublisherEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	const batchSize = 5
	source := pipeline.NewDatasetSource(domain.NewBuilder(domain.NewRandom(99), domain.UUIDIDs{}), "Publisher Farm")
	metrics := observability.NewMetricsForTesting()
	p := pipeline.New(source, writer, pipeline.Options{
		Schedule:  cron.Every(time.Second),
		BatchSize: batchSize,
		Logger:    discardLogger(),
		Metrics:   metrics,
	})

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := newConsumer(t, broker)
	ids := make(map[string]bool, batchSize)
	for len(ids) < batchSize {
		msg := readPublished(ctx, t, consumer)
		assert.Equal(t, "Publisher Farm", msg.Key)
		assert.NoError(t, domain.ValidateRecord(msg.Record))
		assert.Equal(t, msg.Record.ID, msg.Headers["record_id"])
		ids[msg.Record.ID] = true
	}

	pipelineCancel()
	require.NoError(t, <-errCh)
	require.NoError(t, p.CheckReadiness(ctx))
}
