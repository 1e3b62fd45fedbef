package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/lga_lookup_service/internal/models"
	"github.com/shenikar/lga_lookup_service/internal/service/mocks"
	"github.com/shenikar/lga_lookup_service/internal/webhook"
	webhook_mocks "github.com/shenikar/lga_lookup_service/internal/webhook/mocks"
)

const validIncident = `{
	"type": "FeatureCollection",
	"description": "Bushfire",
	"year": 2019,
	"date_reported": "2019-12-30",
	"features": [
		{"type": "Feature", "geometry": {"type": "Polygon",
			"coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]}},
		{"type": "Feature", "geometry": {"type": "MultiPolygon",
			"coordinates": [
				[[[2,2],[2,3],[3,3],[3,2],[2,2]]],
				[[[4,4],[4,5],[5,5],[5,4],[4,4]]]
			]}}
	]
}`

type incidentTestDeps struct {
	areas     *mocks.MockAreaRepository
	incidents *mocks.MockIncidentRepository
	publisher *webhook_mocks.MockPublisher
}

// newTestIncidentService - вспомогательная функция для создания сервиса инцидентов с моками
func newTestIncidentService(t *testing.T) (IncidentService, incidentTestDeps) {
	ctrl := gomock.NewController(t)
	deps := incidentTestDeps{
		areas:     mocks.NewMockAreaRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		publisher: webhook_mocks.NewMockPublisher(ctrl),
	}
	svc := NewIncidentService(deps.areas, deps.incidents, newTestLogger(), deps.publisher)
	return svc, deps
}

func TestImportIncident_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	deps.areas.EXPECT().GetByID(ctx, int64(1)).Return(&models.LocalGovernmentArea{ID: 1}, nil).Times(1)
	deps.incidents.EXPECT().
		CreateWithPolygons(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident, polygons []*models.IncidentPolygon) error {
			assert.Equal(t, "Bushfire", incident.Description)
			assert.Equal(t, "bushfire", incident.Type)
			assert.Equal(t, 2019, incident.Year)
			assert.Equal(t, int64(1), incident.LocalGovernmentAreaID)
			// 1 Polygon + 2 полигона из MultiPolygon
			assert.Len(t, polygons, 3)
			incident.ID = 42
			return nil
		}).
		Times(1)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ImportEvent) error {
			assert.Equal(t, webhook.KindIncidentImported, event.Kind)
			assert.Equal(t, int64(42), event.IncidentID)
			assert.Equal(t, 3, event.PolygonCount)
			return nil
		}).
		Times(1)

	// Действие
	incident, err := svc.ImportIncident(ctx, 1, "bushfire", []byte(validIncident))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), incident.ID)
}

func TestImportIncident_AreaNotFound(t *testing.T) {
	svc, deps := newTestIncidentService(t)

	deps.areas.EXPECT().
		GetByID(gomock.Any(), int64(999)).
		Return(nil, fmt.Errorf("local government area 999: %w", ErrNotFound)).
		Times(1)
	deps.incidents.EXPECT().CreateWithPolygons(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	incident, err := svc.ImportIncident(context.Background(), 999, "flood", []byte(validIncident))

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportIncident_EmptyPayloadForMissingArea(t *testing.T) {
	svc, deps := newTestIncidentService(t)

	deps.areas.EXPECT().
		GetByID(gomock.Any(), int64(999)).
		Return(nil, fmt.Errorf("local government area 999: %w", ErrNotFound)).
		Times(1)
	deps.incidents.EXPECT().CreateWithPolygons(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	incident, err := svc.ImportIncident(context.Background(), 999, "flood", []byte{})

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestImportIncident_InvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "malformed json", payload: `{"type":`},
		{name: "not a collection", payload: `{"type":"Feature"}`},
		{name: "point feature", payload: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestIncidentService(t)

			deps.areas.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.LocalGovernmentArea{ID: 1}, nil).Times(1)
			deps.incidents.EXPECT().CreateWithPolygons(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			incident, err := svc.ImportIncident(context.Background(), 1, "flood", []byte(tt.payload))

			assert.Nil(t, incident)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestImportIncident_StorageError(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	dbErr := errors.New("constraint violation")

	deps.areas.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.LocalGovernmentArea{ID: 1}, nil).Times(1)
	deps.incidents.EXPECT().CreateWithPolygons(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	incident, err := svc.ImportIncident(context.Background(), 1, "flood", []byte(validIncident))

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestFindIntersecting_Success(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	polygon := testSquare(t)
	expected := []*models.IncidentPolygon{{ID: 100, IncidentID: 42, WKT: "POLYGON((0 0,0 1,1 1,1 0,0 0))"}}

	deps.incidents.EXPECT().FindPolygonsIntersecting(gomock.Any(), polygon).Return(expected, nil).Times(1)

	found, err := svc.FindIntersecting(context.Background(), polygon)

	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindIntersecting_EmptyIsNotAnError(t *testing.T) {
	svc, deps := newTestIncidentService(t)

	deps.incidents.EXPECT().FindPolygonsIntersecting(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	found, err := svc.FindIntersecting(context.Background(), testSquare(t))

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found)
}

func TestFindIntersecting_StorageError(t *testing.T) {
	svc, deps := newTestIncidentService(t)

	deps.incidents.EXPECT().FindPolygonsIntersecting(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	found, err := svc.FindIntersecting(context.Background(), testSquare(t))

	require.Error(t, err)
	assert.Nil(t, found)
}
