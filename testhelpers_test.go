//go:build integration

package main_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/database"
	"github.com/lostxrotimi/service-studio/internal/common/kafka"
	contentEvents "github.com/lostxrotimi/service-studio/internal/events"
	"github.com/lostxrotimi/service-studio/internal/proto/events"
	"github.com/lostxrotimi/service-studio/internal/repository"
)

type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// studioStack is one wired service instance sharing the infra with others.
type studioStack struct {
	Content         *application.ContentRepository
	Bookings        *application.BookingService
	Consumer        *contentEvents.ContentEventConsumer
	CleanupProducer func()
}

// setupContainers starts PostgreSQL and Kafka. The schema is left unmigrated.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	db, stopPostgres := startPostgres(ctx, t)
	brokers, stopKafka := startKafka(ctx, t)
	createTopics(t, brokers, events.TopicContentEvents)

	return &testInfra{
		DB:           db,
		KafkaBrokers: brokers,
		Cleanup: func() {
			stopKafka()
			stopPostgres()
		},
	}
}

func startPostgres(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "studio",
				"POSTGRES_PASSWORD": "studio",
				"POSTGRES_DB":       "studio_test",
			},
			// postgres logs readiness twice: once for the init pass, once for real.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "start postgres")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := database.PostgresConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "studio",
		Password: "studio",
		DBName:   "studio_test",
		SSLMode:  "disable",
	}

	var db *gorm.DB
	require.Eventually(t, func() bool {
		conn, err := database.Connect(cfg, zap.NewNop())
		if err != nil {
			return false
		}
		sqlDB, err := conn.DB()
		if err != nil || sqlDB.Ping() != nil {
			return false
		}
		db = conn
		return true
	}, 30*time.Second, time.Second, "postgres never accepted connections")

	return db, func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	}
}

func startKafka(ctx context.Context, t *testing.T) ([]string, func()) {
	t.Helper()
	container, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "start kafka")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)

	return brokers, func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate kafka: %v", err)
		}
	}
}

func migrate(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.AutoMigrate(&repository.PhotoModel{}, &repository.BookingModel{}))
}

// setupStudioStack wires one service instance whose events carry instanceID as source.
func setupStudioStack(t *testing.T, db *gorm.DB, brokers []string, instanceID string) *studioStack {
	t.Helper()
	logger := zap.NewNop()

	photoRepo := repository.NewGormPhotoRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	content := application.NewContentRepository(photoRepo, bookingRepo, logger)
	content.Load(context.Background())

	producer := kafka.NewProducer(brokers, logger)
	publisher := contentEvents.NewKafkaPublisher(producer, events.TopicContentEvents, instanceID, logger)

	// A fresh group per run so a reused broker never replays old offsets.
	groupID := instanceID + "-" + uuid.NewString()[:8]

	return &studioStack{
		Content:         content,
		Bookings:        application.NewBookingService(bookingRepo, content, publisher, logger),
		Consumer:        contentEvents.NewContentEventConsumer(brokers, groupID, events.TopicContentEvents, instanceID, content, logger),
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// waitForEvent reads topic from the beginning until an event of eventType arrives.
func waitForEvent(t *testing.T, brokers []string, topic, eventType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	consumer := kafka.NewConsumer(brokers, "assert-"+uuid.NewString()[:8], topic, zap.NewNop())
	defer func() { _ = consumer.Close() }()

	var (
		found kafka.CloudEvent
		ok    bool
	)
	_ = consumer.Consume(ctx, func(_ context.Context, msg kafkago.Message) error {
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err == nil && ce.Type == eventType {
			found, ok = ce, true
			cancel()
		}
		return nil
	})
	require.True(t, ok, "no %q event on %q within %s", eventType, topic, timeout)
	return found
}

// createTopics creates topics through the controller so the first publish does not race auto-creation.
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	configs := make([]kafkago.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		configs = append(configs, kafkago.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	}
	require.NoError(t, ctrl.CreateTopics(configs...))

	// metadata propagation
	time.Sleep(time.Second)
}
