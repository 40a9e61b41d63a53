package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/config"
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes farm records to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes records in a single WriteMessages call.
// Records are keyed by farm name so one farm's days stay on one partition.
func (w *Writer) LoadBatch(ctx context.Context, records []domain.FarmRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d farm records: %w", len(msgs), err)
	}
	w.logger.Debug("published farm records", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a FarmRecord into a Kafka message.
func serializeToMessage(record domain.FarmRecord) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize farm record %s: %w", record.ID, err)
	}
	return kafkago.Message{
		Key:   []byte(record.FarmName),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "record_id", Value: []byte(record.ID)},
			{Key: "crop_type", Value: []byte(record.CropType.String())},
			{Key: "season", Value: []byte(record.Season.String())},
			{Key: "record_date", Value: []byte(record.Date.Format(time.DateOnly))},
		},
	}, nil
}
