package queue

import (
	"testing"

	"vidtube/pkg/config"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
)

// Pins the constructor the application wires at startup.
var _ func(*config.Config, *logger.Logger) (*Client, error) = NewRabbitMQClient

func TestNewRabbitMQClient_UnreachableBroker(t *testing.T) {
	cfg := &config.Config{
		RabbitMQUser:     "guest",
		RabbitMQPassword: "guest",
		RabbitMQHost:     "127.0.0.1",
		RabbitMQPort:     "1", // nothing listens here
	}

	client, err := NewRabbitMQClient(cfg, logger.New())

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_CloseZeroValue(t *testing.T) {
	client := &Client{}

	assert.NotPanics(t, func() { client.Close() })
}
