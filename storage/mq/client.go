package mq

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"MonthlyMasti/config"
)

// 通知扇出用的拓扑，在 Init 时声明好
const (
	NotifyExchange   = "notifications"
	NotifyQueue      = "notifications.email"
	NotifyRoutingKey = "notifications.submission"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()
		conn, connErr = amqp.Dial(url)
		if connErr != nil {
			return
		}

		var ch *amqp.Channel
		ch, connErr = conn.Channel()
		if connErr != nil {
			return
		}
		defer ch.Close()

		connErr = declareTopology(ch)
	})

	return connErr
}

func Connection() *amqp.Connection {
	return conn
}

func Close() error {
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		NotifyExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		NotifyQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, NotifyRoutingKey, NotifyExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	return nil
}
