package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// EventInfo describes a registered typed event for tooling.
type EventInfo struct {
	Name          string
	Module        string
	Description   string
	TypeName      string
	PayloadFields []string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]EventInfo{}
)

// Event wraps a topic name and provides type-safe publishing and
// subscribing for payloads of type T.
type Event[T any] struct {
	name string
}

// NewEvent creates a typed event and records it in the event registry.
// Events are declared at package level, so a duplicate name panics at
// startup.
func NewEvent[T any](name string, description string) Event[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var fields []string
	typeName := ""
	if t != nil {
		typeName = t.Name()
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				tag := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
				if tag != "" && tag != "-" {
					fields = append(fields, tag)
				}
			}
		}
	}

	module, _, _ := strings.Cut(name, ".")

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q registered twice", name))
	}
	registry[name] = EventInfo{
		Name:          name,
		Module:        module,
		Description:   description,
		TypeName:      typeName,
		PayloadFields: fields,
	}

	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Registered returns every declared event sorted by name.
func Registered() []EventInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]EventInfo, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Publish sends a typed event as JSON.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
	})
}

// Subscribe decodes each message on the event's topic into T before
// calling handler.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, payload)
	})
}
