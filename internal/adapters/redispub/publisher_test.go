package redispub_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tidegate/charcore/internal/adapters/redispub"
	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/events"
)

type PublisherTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	publisher  *redispub.Publisher
}

func (s *PublisherTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.publisher = redispub.NewPublisher(&redispub.PublisherConfig{
		Client:  s.mockClient,
		Channel: "test-channel",
	})
}

func (s *PublisherTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) TestPublishesAttributeChange() {
	expected, err := json.Marshal(redispub.ChangeMessage{
		CharacterID: "char-1",
		Attribute:   string(attribute.Health),
		OldValue:    80,
		NewValue:    50,
	})
	s.Require().NoError(err)

	s.mock.ExpectPublish("test-channel", string(expected)).SetVal(1)

	err = s.publisher.HandleEvent(&events.AttributeChangedEvent{
		BaseEvent: events.BaseEvent{
			Type:        events.EventTypeAttributeChanged,
			CharacterID: "char-1",
		},
		Attribute: attribute.Health,
		OldValue:  80,
		NewValue:  50,
	})
	s.NoError(err)
}

func (s *PublisherTestSuite) TestPublishFailure() {
	expected, err := json.Marshal(redispub.ChangeMessage{
		CharacterID: "char-1",
		Attribute:   string(attribute.Mana),
		OldValue:    10,
		NewValue:    20,
	})
	s.Require().NoError(err)

	s.mock.ExpectPublish("test-channel", string(expected)).SetErr(errors.New("redis error"))

	err = s.publisher.HandleEvent(&events.AttributeChangedEvent{
		BaseEvent: events.BaseEvent{
			Type:        events.EventTypeAttributeChanged,
			CharacterID: "char-1",
		},
		Attribute: attribute.Mana,
		OldValue:  10,
		NewValue:  20,
	})
	s.Error(err)
}

func (s *PublisherTestSuite) TestIgnoresOtherEvents() {
	// No publish expectation; any command would fail the suite teardown
	err := s.publisher.HandleEvent(&events.AbilityGrantedEvent{
		BaseEvent:    events.BaseEvent{Type: events.EventTypeAbilityGranted},
		AbilityClass: "fireball",
	})
	s.NoError(err)
}

func (s *PublisherTestSuite) TestDefaultChannel() {
	p := redispub.NewPublisher(&redispub.PublisherConfig{Client: s.mockClient})
	s.Equal("redis-attribute-publisher", p.ID())
}
