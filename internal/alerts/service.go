package alerts

import (
	"context"
	"encoding/json"
	"fmt"

	"estoque/internal/inventory"
	kafkax "estoque/internal/kafka"
	"estoque/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Service watches recorded movements and warns when a product drops below
// its minimum stock threshold. The threshold is informational in the
// engine; this is where it becomes visible.
type Service struct {
	Redis       *redis.Client
	Log         *zap.Logger
	ServiceName string
}

// HandleMovementRecorded is wired as the consumer handler.
func (s *Service) HandleMovementRecorded(ctx context.Context, m kafkago.Message) error {
	var env inventory.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != inventory.EventMovementRecorded {
		return nil
	}

	// dedup via event_id
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[inventory.MovementRecordedPayload](env.Payload)
	if err != nil {
		return err
	}
	if p.StockAfter >= p.StockMin {
		return nil
	}

	// one alert per product per window, otherwise every OUT movement of a
	// low product repeats the same warning
	akey := fmt.Sprintf(redisx.KeyLowStockAlert, p.ProductID)
	if throttled, _ := redisx.Exists(ctx, s.Redis, akey); throttled {
		return nil
	}
	_ = s.Redis.Set(ctx, akey, "1", redisx.TTLLowStockAlert).Err()

	s.Log.Warn("product below minimum stock",
		zap.String("product_id", p.ProductID),
		zap.Int("stock_after", p.StockAfter),
		zap.Int("stock_min", p.StockMin),
		zap.String("movement_id", p.MovementID),
		zap.String("reason", p.Reason),
	)
	return nil
}
