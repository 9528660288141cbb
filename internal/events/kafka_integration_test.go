//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"opendid/internal/events"
	"opendid/internal/platform/kafka"
	"opendid/pkg/testutil/containers"
)

type KafkaRelaySuite struct {
	suite.Suite
	broker string
}

func TestKafkaRelaySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaRelaySuite))
}

func (s *KafkaRelaySuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
}

func (s *KafkaRelaySuite) TestRelayPublishesKeyedRecordsInOrder() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	topic := "opendid.events." + uuid.NewString()

	client, err := kafka.New(ctx, kafka.Config{Brokers: []string{s.broker}, Topic: topic})
	s.Require().NoError(err)
	defer client.Close()
	s.Require().NoError(client.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(client.EnsureTopic(ctx, 1, 1), "existing topic is not an error")

	log := events.NewInMemoryLog()
	publisher := events.NewPublisher(log)
	for _, name := range []events.Name{events.DocumentRegistered, events.DIDCreated, events.DIDStatusUpdated} {
		s.Require().NoError(publisher.Emit(ctx, events.Event{Name: name, Subject: "did:omn:kafka"}))
	}

	relay := events.NewRelay(log, events.NewKafkaSink(client, client.Topic()))
	n, err := relay.Flush(ctx)
	s.Require().NoError(err)
	s.Equal(3, n)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var got []events.Event
	for len(got) < 3 {
		fetches := consumer.PollFetches(ctx)
		s.Require().NoError(ctx.Err())
		fetches.EachRecord(func(r *kgo.Record) {
			s.Equal("did:omn:kafka", string(r.Key))
			var e events.Event
			s.Require().NoError(json.Unmarshal(r.Value, &e))
			got = append(got, e)
		})
	}
	s.Equal(events.DocumentRegistered, got[0].Name)
	s.Equal(events.DIDCreated, got[1].Name)
	s.Equal(events.DIDStatusUpdated, got[2].Name)
	s.Equal(uint64(3), got[2].Sequence)
}
