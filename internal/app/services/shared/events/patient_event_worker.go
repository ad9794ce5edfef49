package events

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// PatientEventWorker drains the registration queue and logs each event. It is
// the in-process stand-in for downstream consumers such as queue displays.
type PatientEventWorker struct {
	conn      *amqp.Connection
	log       *zap.Logger
	queueName string
	cancel    context.CancelFunc
}

func NewPatientEventWorker(conn *amqp.Connection, log *zap.Logger, queueName string) *PatientEventWorker {
	return &PatientEventWorker{
		conn:      conn,
		log:       log,
		queueName: queueName,
	}
}

// Start consumes in a background goroutine until Stop is called.
func (w *PatientEventWorker) Start() error {
	ch, err := w.conn.Channel()
	if err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName, // queue
		"",          // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(delivery)
			}
		}
	}()

	return nil
}

func (w *PatientEventWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *PatientEventWorker) handle(delivery amqp.Delivery) {
	var event models.PatientRegisteredEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		w.log.Error("Discarding malformed patient event", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	w.log.Info("Patient registered",
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
		zap.String(constvars.LoggingUHIDKey, event.UHID),
		zap.String("doctor_assigned", event.DoctorAssigned),
	)
	delivery.Ack(false)
}
