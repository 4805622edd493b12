package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// WatermillBridge implements Publisher and Subscriber on top of watermill's
// in-memory GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
	tracer trace.Tracer
}

const (
	// Metadata keys used to carry Message fields through watermill.
	metaKeyVisitorID = "visitor_id"
	metaKeyTopic     = "topic"
)

// GoChannel does not carry message contexts to subscribers, so the publish
// span travels in the metadata.
var traceContext = propagation.TraceContext{}

// NewWatermillBridge creates an in-memory bus without tracing.
func NewWatermillBridge() *WatermillBridge {
	return NewWatermillBridgeWithTracer(noop.NewTracerProvider().Tracer("salon-pubsub"))
}

// NewWatermillBridgeWithTracer creates an in-memory bus that records a span
// for every publish and every handled message.
func NewWatermillBridgeWithTracer(tracer trace.Tracer) *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
		tracer: tracer,
	}
}

func mapToWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyVisitorID, msg.VisitorID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyVisitorID && k != metaKeyTopic && !isTraceField(k) {
			metadata[k] = v
		}
	}

	return Message{
		Topic:     wmMsg.Metadata.Get(metaKeyTopic),
		VisitorID: wmMsg.Metadata.Get(metaKeyVisitorID),
		Payload:   wmMsg.Payload,
		Metadata:  metadata,
	}
}

func isTraceField(key string) bool {
	for _, f := range traceContext.Fields() {
		if key == f {
			return true
		}
	}
	return false
}

func (wb *WatermillBridge) spanAttributes(operation string, msg Message, id string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", msg.Topic),
		attribute.String("messaging.message_id", id),
		attribute.String("visitor.id", msg.VisitorID),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
	)
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	if msg.Topic == "" {
		return fmt.Errorf("publish: empty topic")
	}
	wmMsg := mapToWatermillMessage(msg)

	spanCtx, span := wb.tracer.Start(ctx, "pubsub.publish."+msg.Topic, wb.spanAttributes("publish", msg, wmMsg.UUID))
	defer span.End()
	wmMsg.SetContext(spanCtx)
	traceContext.Inject(spanCtx, propagation.MapCarrier(wmMsg.Metadata))

	if err := wb.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements the Subscriber interface. It returns once the
// subscription is active; messages are handled on a background goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			msg := mapToPubSubMessage(wmMsg)

			parent := traceContext.Extract(wmMsg.Context(), propagation.MapCarrier(wmMsg.Metadata))
			msgCtx, span := wb.tracer.Start(parent, "pubsub.process."+topic, wb.spanAttributes("process", msg, wmMsg.UUID))
			if err := handler(msgCtx, msg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			// GoChannel redelivers nacked messages forever; failures are
			// logged and acknowledged instead.
			wmMsg.Ack()
			span.End()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bridge and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}

// Shutdown lets the dependency container close the bridge.
func (wb *WatermillBridge) Shutdown() error {
	return wb.Close()
}
