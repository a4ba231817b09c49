// Package events publica en NATS las alertas de stock bajo del dashboard.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/inventory-console/internal/domain/entity"
	"github.com/jhoicas/inventory-console/pkg/logger"
)

// LowStockItem un producto en o por debajo de su mínimo.
type LowStockItem struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku,omitempty"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
}

// LowStockEvent mensaje publicado en el subject de alertas.
type LowStockEvent struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Count       int            `json:"count"`
	Items       []LowStockItem `json:"items"`
}

// NewLowStockEvent arma el evento a partir de las posiciones en stock bajo.
func NewLowStockEvent(low []entity.StockPosition, at time.Time) LowStockEvent {
	ev := LowStockEvent{GeneratedAt: at.UTC(), Count: len(low), Items: make([]LowStockItem, 0, len(low))}
	for _, p := range low {
		ev.Items = append(ev.Items, LowStockItem{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			SKU:          p.SKU,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
		})
	}
	return ev
}

// publisher es la parte de *nats.Conn que se usa.
type publisher interface {
	Publish(subj string, data []byte) error
}

// Publisher publica alertas de stock bajo.
type Publisher struct {
	conn    publisher
	subject string
	log     *logger.Logger
}

// Connect abre la conexión NATS con reconexión infinita.
func Connect(url string, log *logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("inventory-console"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("NATS desconectado")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("NATS reconectado")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

// NewPublisher construye el publicador sobre una conexión abierta (*nats.Conn).
func NewPublisher(conn publisher, subject string, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{conn: conn, subject: subject, log: log}
}

// PublishLowStock publica el evento. Sin posiciones no publica nada.
func (p *Publisher) PublishLowStock(ctx context.Context, low []entity.StockPosition) error {
	if len(low) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(NewLowStockEvent(low, time.Now()))
	if err != nil {
		return fmt.Errorf("serializar alerta: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publicar en %s: %w", p.subject, err)
	}
	p.log.Debug().Str("subject", p.subject).Int("count", len(low)).Msg("alerta de stock bajo publicada")
	return nil
}
