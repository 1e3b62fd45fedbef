package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/ingest"
	"github.com/shenikar/lga_lookup_service/internal/models"
	"github.com/shenikar/lga_lookup_service/internal/webhook"
)

// AreaRepository определяет контракт хранилища районов (LGA)
type AreaRepository interface {
	CreateAreas(ctx context.Context, areas []*models.LocalGovernmentArea) error
	GetByID(ctx context.Context, id int64) (*models.LocalGovernmentArea, error)
	FindContaining(ctx context.Context, point *geom.Point) (*models.LocalGovernmentArea, error)
	FindIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.LocalGovernmentArea, error)
}

// AreaService определяет импорт районов и пространственный поиск по ним
type AreaService interface {
	ImportAreas(ctx context.Context, payload []byte) (int, error)
	FindByPoint(ctx context.Context, point *geom.Point) (*models.LocalGovernmentArea, error)
	FindByPolygon(ctx context.Context, polygon *geom.Polygon) ([]*models.LocalGovernmentArea, error)
}

type areaService struct {
	repo      AreaRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

// NewAreaService создает сервис районов. publisher может быть nil - тогда уведомления не отправляются.
func NewAreaService(repo AreaRepository, logger *logrus.Logger, publisher webhook.Publisher) AreaService {
	return &areaService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// ImportAreas разбирает пакет районов и сохраняет его целиком или не сохраняет ничего
func (s *areaService) ImportAreas(ctx context.Context, payload []byte) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "ImportAreas",
		"bytes":   len(payload),
	})
	log.Info("Importing local government areas")

	areas, err := ingest.ParseAreas(payload)
	if err != nil {
		log.WithError(err).Warn("Rejected area batch")
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.repo.CreateAreas(ctx, areas); err != nil {
		log.WithError(err).Error("Failed to store area batch")
		return 0, fmt.Errorf("service: could not import areas: %w", err)
	}

	log.WithField("count", len(areas)).Info("Areas imported successfully")
	publish(ctx, s.publisher, log, webhook.NewAreasImportedEvent(len(areas)))
	return len(areas), nil
}

// FindByPoint возвращает район, содержащий точку (граница считается принадлежащей району).
// Если районы перекрываются, хранилище детерминированно возвращает район с наименьшим id.
func (s *areaService) FindByPoint(ctx context.Context, point *geom.Point) (*models.LocalGovernmentArea, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "area",
		"method":    "FindByPoint",
		"longitude": point.X(),
		"latitude":  point.Y(),
	})

	area, err := s.repo.FindContaining(ctx, point)
	if err != nil {
		log.WithError(err).Info("No area found for point")
		return nil, fmt.Errorf("service: find area by point: %w", err)
	}

	log.WithField("area_id", area.ID).Debug("Area found for point")
	return area, nil
}

// FindByPolygon возвращает все районы, пересекающиеся с полигоном. Пустой результат - ErrNotFound.
func (s *areaService) FindByPolygon(ctx context.Context, polygon *geom.Polygon) ([]*models.LocalGovernmentArea, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "FindByPolygon",
	})

	areas, err := s.repo.FindIntersecting(ctx, polygon)
	if err != nil {
		log.WithError(err).Error("Failed to find intersecting areas")
		return nil, fmt.Errorf("service: find areas by polygon: %w", err)
	}
	if len(areas) == 0 {
		log.Info("No areas intersect polygon")
		return nil, fmt.Errorf("service: find areas by polygon: %w", ErrNotFound)
	}

	log.WithField("count", len(areas)).Debug("Intersecting areas found")
	return areas, nil
}

// publish отправляет событие импорта. Ошибка доставки не влияет на уже завершенный импорт.
func publish(ctx context.Context, publisher webhook.Publisher, log *logrus.Entry, event webhook.ImportEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_id", event.EventID).Warn("Failed to publish import event")
	}
}
