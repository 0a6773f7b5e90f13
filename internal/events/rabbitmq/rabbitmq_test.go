package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/citygrid/internal/domain"
	"github.com/vbonduro/citygrid/internal/events"
)

type publishCall struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	calls      []publishCall
	publishErr error
	closed     bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.calls = append(f.calls, publishCall{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishImportCompleted(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "utility_imports"}

	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	ev := events.ImportCompleted{Kind: domain.KindWaterSupply, CityID: 3, Count: 12, At: at}
	require.NoError(t, p.PublishImportCompleted(context.Background(), ev))

	require.Len(t, ch.calls, 1)
	call := ch.calls[0]
	assert.Equal(t, "", call.exchange)
	assert.Equal(t, "utility_imports", call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp.Persistent, call.msg.DeliveryMode)
	assert.Equal(t, at, call.msg.Timestamp)

	var got map[string]any
	require.NoError(t, json.Unmarshal(call.msg.Body, &got))
	assert.Equal(t, "water-supply", got["kind"])
	assert.Equal(t, float64(3), got["cityId"])
	assert.Equal(t, float64(12), got["count"])
}

func TestPublishImportCompletedError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p := &Publisher{ch: ch, queue: "q"}

	err := p.PublishImportCompleted(context.Background(), events.ImportCompleted{Kind: domain.KindElectricity})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestPublishImportCompletedCancelledContext(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "q"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishImportCompleted(ctx, events.ImportCompleted{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ch.calls)
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "q"}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
