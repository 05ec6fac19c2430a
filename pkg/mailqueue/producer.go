package mailqueue

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/ferrous/regiment/pkg/cleanup"
)

// VerificationEvent is consumed by the external mail service, which renders
// and delivers the verification email.
type VerificationEvent struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProducerI interface {
	PublishVerification(ctx context.Context, event *VerificationEvent) error
}

type Producer struct {
	writer *kafka.Writer
}

type BrokerCfg struct {
	Broker   string
	Topic    string
	Username string
	Password string
}

func NewProducer(cfg *BrokerCfg) *Producer {
	mechanism := plain.Mechanism{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	transport := &kafka.Transport{
		SASL: mechanism,
		TLS:  &tls.Config{},
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		Transport:    transport,
		WriteTimeout: 10 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing kafka writer",
		F:    writer.Close,
	})
	return &Producer{
		writer: writer,
	}
}

func (p *Producer) PublishVerification(ctx context.Context, event *VerificationEvent) error {
	value, err := sonic.ConfigDefault.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Email),
		Value: value,
		Time:  time.Now(),
	})
}
