package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/lga_lookup_service/internal/models"
)

const (
	importQueueKey = "lookup_import_events"

	KindAreasImported    = "lga_import"
	KindIncidentImported = "incident_import"
)

// ImportEvent - уведомление о завершенном импорте
type ImportEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Kind         string    `json:"kind"`
	AreaCount    int       `json:"area_count,omitempty"`
	IncidentID   int64     `json:"incident_id,omitempty"`
	AreaID       int64     `json:"area_id,omitempty"`
	IncidentType string    `json:"incident_type,omitempty"`
	PolygonCount int       `json:"polygon_count,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewAreasImportedEvent создает событие импорта пакета районов
func NewAreasImportedEvent(count int) ImportEvent {
	return ImportEvent{
		EventID:   uuid.New(),
		Kind:      KindAreasImported,
		AreaCount: count,
		Timestamp: time.Now().UTC(),
	}
}

// NewIncidentImportedEvent создает событие импорта инцидента
func NewIncidentImportedEvent(incident *models.Incident, polygonCount int) ImportEvent {
	return ImportEvent{
		EventID:      uuid.New(),
		Kind:         KindIncidentImported,
		IncidentID:   incident.ID,
		AreaID:       incident.LocalGovernmentAreaID,
		IncidentType: incident.Type,
		PolygonCount: polygonCount,
		Timestamp:    time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации событий импорта
type Publisher interface {
	Publish(ctx context.Context, event ImportEvent) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди, воркер забирает справа
func (p *RedisPublisher) Publish(ctx context.Context, event ImportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal import event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, importQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish import event to Redis: %w", err)
	}
	return nil
}
