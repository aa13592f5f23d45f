package notification

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNop_Publish(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), "t", []byte("x")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	p.Close()
}

func TestMemory_RecordsInOrder(t *testing.T) {
	m := NewMemory()
	m.Publish(context.Background(), "a", []byte("1"))
	m.Publish(context.Background(), "b", []byte("2"))

	msgs := m.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Topic != "a" || string(msgs[1].Payload) != "2" {
		t.Errorf("unexpected messages %+v", msgs)
	}
}

func TestMemory_CopiesPayload(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	m.Publish(context.Background(), "a", buf)
	buf[0] = 'z'

	if got := string(m.Messages()[0].Payload); got != "abc" {
		t.Errorf("payload = %q, want abc", got)
	}
}

func TestMemory_Err(t *testing.T) {
	m := NewMemory()
	m.Err = errors.New("down")
	if err := m.Publish(context.Background(), "a", nil); err == nil {
		t.Fatal("expected error")
	}
	if len(m.Messages()) != 0 {
		t.Error("expected nothing recorded")
	}
}

func TestNewMQTTPublisher_RequiresBroker(t *testing.T) {
	if _, err := NewMQTTPublisher(MQTTConfig{}); err == nil {
		t.Fatal("expected error for empty broker")
	}
}

func TestNewMQTTPublisher_Unreachable(t *testing.T) {
	_, err := NewMQTTPublisher(MQTTConfig{
		Broker:         "tcp://127.0.0.1:1",
		ClientID:       "vitalapp-test",
		ConnectTimeout: 2 * time.Second,
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
}
