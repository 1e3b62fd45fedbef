package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/ingest"
	"github.com/shenikar/lga_lookup_service/internal/models"
	"github.com/shenikar/lga_lookup_service/internal/webhook"
)

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	// CreateWithPolygons атомарно сохраняет инцидент и все его полигоны, заполняя ID
	CreateWithPolygons(ctx context.Context, incident *models.Incident, polygons []*models.IncidentPolygon) error
	FindPolygonsIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.IncidentPolygon, error)
}

// IncidentService определяет импорт инцидентов и поиск их полигонов
type IncidentService interface {
	ImportIncident(ctx context.Context, areaID int64, incidentType string, payload []byte) (*models.Incident, error)
	FindIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.IncidentPolygon, error)
}

type incidentService struct {
	areas     AreaRepository
	incidents IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewIncidentService(areas AreaRepository, incidents IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher) IncidentService {
	return &incidentService{
		areas:     areas,
		incidents: incidents,
		logger:    logger,
		publisher: publisher,
	}
}

// ImportIncident импортирует FeatureCollection инцидента для существующего района.
// Вся валидация выполняется до записи; инцидент и полигоны коммитятся одной транзакцией.
func (s *incidentService) ImportIncident(ctx context.Context, areaID int64, incidentType string, payload []byte) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ImportIncident",
		"area_id": areaID,
		"type":    incidentType,
	})
	log.Info("Importing incident")

	if _, err := s.areas.GetByID(ctx, areaID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithError(err).Warn("Attempted to import incident for a non-existent area")
		} else {
			log.WithError(err).Error("Failed to check area existence")
		}
		return nil, fmt.Errorf("service: import incident: %w", err)
	}

	collection, err := ingest.ParseIncidentCollection(payload)
	if err != nil {
		log.WithError(err).Warn("Rejected incident payload")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	incident := &models.Incident{
		Description:           collection.Description,
		Type:                  incidentType,
		Year:                  collection.Year,
		DateReported:          collection.DateReported,
		LocalGovernmentAreaID: areaID,
	}
	polygons := make([]*models.IncidentPolygon, 0, len(collection.Polygons))
	for _, p := range collection.Polygons {
		polygons = append(polygons, &models.IncidentPolygon{Polygon: p})
	}

	if err := s.incidents.CreateWithPolygons(ctx, incident, polygons); err != nil {
		log.WithError(err).Error("Failed to store incident")
		return nil, fmt.Errorf("service: could not import incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"polygons":    len(polygons),
	}).Info("Incident imported successfully")
	publish(ctx, s.publisher, log, webhook.NewIncidentImportedEvent(incident, len(polygons)))
	return incident, nil
}

// FindIntersecting возвращает полигоны инцидентов, пересекающиеся с полигоном.
// Пустой результат не является ошибкой.
func (s *incidentService) FindIntersecting(ctx context.Context, polygon *geom.Polygon) ([]*models.IncidentPolygon, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FindIntersecting",
	})

	found, err := s.incidents.FindPolygonsIntersecting(ctx, polygon)
	if err != nil {
		log.WithError(err).Error("Failed to find intersecting incident polygons")
		return nil, fmt.Errorf("service: find incident polygons: %w", err)
	}
	if found == nil {
		found = []*models.IncidentPolygon{}
	}

	log.WithField("count", len(found)).Debug("Incident polygons found")
	return found, nil
}
