package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"github.com/dkruglov/lending-service/pkg/breaker"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       breaker.New(20, 30*time.Second, 0.5, 5),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       breaker.Breaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}
