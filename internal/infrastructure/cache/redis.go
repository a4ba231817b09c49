// Package cache guarda en Redis el resumen del dashboard ya calculado.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventory-console/internal/domain/inventory"
	"github.com/jhoicas/inventory-console/pkg/config"
)

const (
	maxRetries      = 3
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 300 * time.Millisecond
	dialTimeout     = 5 * time.Second
	readTimeout     = 3 * time.Second
	writeTimeout    = 3 * time.Second

	keyPrefix = "inventory-console:summary:"
)

// Connect abre el cliente Redis y verifica la conexión con un PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      maxRetries,
		MinRetryBackoff: minRetryBackoff,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// SummaryCache implementa el memo del dashboard. La clave la calcula el llamador a partir
// del contenido de productos, movimientos, día y zona horaria; aquí solo se prefija.
type SummaryCache struct {
	rdb redis.Cmdable
}

// NewSummaryCache construye el memo sobre un cliente ya conectado.
func NewSummaryCache(rdb redis.Cmdable) *SummaryCache {
	return &SummaryCache{rdb: rdb}
}

// Get devuelve (nil, false, nil) si la clave no existe.
func (c *SummaryCache) Get(ctx context.Context, key string) (*inventory.Summary, bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	s, err := decodeSummary(raw)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Set guarda el resumen con expiración ttl (0 = sin expiración).
func (c *SummaryCache) Set(ctx context.Context, key string, s *inventory.Summary, ttl time.Duration) error {
	raw, err := encodeSummary(s)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func encodeSummary(s *inventory.Summary) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("serializar resumen: %w", err)
	}
	return raw, nil
}

func decodeSummary(raw []byte) (*inventory.Summary, error) {
	var s inventory.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("deserializar resumen: %w", err)
	}
	return &s, nil
}
