package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subj)
	f.payloads = append(f.payloads, data)
	return nil
}

func TestPublishLowStock(t *testing.T) {
	conn := &fakeConn{}
	p := NewPublisher(conn, "inventory.stock.low", nil)

	low := []entity.StockPosition{{ProductID: "p1", ProductName: "Arroz", CurrentStock: 1, MinStock: 5}}
	require.NoError(t, p.PublishLowStock(context.Background(), low))

	require.Len(t, conn.payloads, 1)
	assert.Equal(t, "inventory.stock.low", conn.subjects[0])

	var ev LowStockEvent
	require.NoError(t, json.Unmarshal(conn.payloads[0], &ev))
	assert.Equal(t, 1, ev.Count)
	assert.Equal(t, "Arroz", ev.Items[0].ProductName)
	assert.Equal(t, int64(5), ev.Items[0].MinStock)
}

func TestPublishLowStock_SinPosicionesNoPublica(t *testing.T) {
	conn := &fakeConn{}
	require.NoError(t, NewPublisher(conn, "x", nil).PublishLowStock(context.Background(), nil))
	assert.Empty(t, conn.payloads)
}

func TestPublishLowStock_ErrorDeConexion(t *testing.T) {
	conn := &fakeConn{err: errors.New("nats: connection closed")}
	err := NewPublisher(conn, "x", nil).PublishLowStock(context.Background(), []entity.StockPosition{{ProductID: "p"}})
	assert.ErrorContains(t, err, "connection closed")
}

func TestPublishLowStock_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conn := &fakeConn{}
	err := NewPublisher(conn, "x", nil).PublishLowStock(ctx, []entity.StockPosition{{ProductID: "p"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, conn.payloads)
}
