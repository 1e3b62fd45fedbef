package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"

	"github.com/shenikar/lga_lookup_service/internal/config"
	"github.com/shenikar/lga_lookup_service/internal/geometry"
	"github.com/shenikar/lga_lookup_service/internal/service"
)

const (
	msgAreaNotFound          = "Local Government Area not found"
	msgNoAreaForCoordinates  = "Local Government Area not found for the given coordinates"
	msgNoAreasForPolygon     = "No Local Government Areas found for the given polygon"
	msgDatabaseError         = "database error"
	msgInvalidRequestBody    = "invalid request body"
	msgPayloadTooLarge       = "payload too large"
	msgAreasUploaded         = "Data uploaded successfully"
	msgIncidentImported      = "Incident data imported successfully"
	uploadFieldAreas         = "file"
	uploadFieldIncident      = "json_file"
	multipartContentTypeBase = "multipart/form-data"
)

type Handler struct {
	areaService     service.AreaService
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(areaService service.AreaService, incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		areaService:     areaService,
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Router /health/ [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Healthy"})
}

// @Summary Import local government areas
// @Description Import a JSON array of area records as one batch. Accepts a multipart file in field "file" or a raw JSON body. Either every record is stored or none is.
// @Tags Data Injection
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file false "JSON array of area records"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Malformed payload or missing keys"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "Payload too large"
// @Failure 500 {object} map[string]string "Database error"
// @Router /data-injection/import-lga [post]
func (h *Handler) importLGA(c *gin.Context) {
	log := h.logger.WithField("method", "importLGA")

	payload, ok := h.readUpload(c, log, uploadFieldAreas)
	if !ok {
		return
	}

	count, err := h.areaService.ImportAreas(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	log.WithField("count", count).Info("Area batch imported")
	c.JSON(http.StatusOK, MessageResponse{Message: msgAreasUploaded})
}

// @Summary Import an incident
// @Description Import a GeoJSON FeatureCollection of Polygon/MultiPolygon features as one incident of the given type for an existing area. Accepts a multipart file in field "json_file" or a raw body.
// @Tags Data Injection
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param lga_id path int true "Local Government Area ID"
// @Param type path string true "Incident type"
// @Param json_file formData file false "GeoJSON FeatureCollection"
// @Success 200 {object} ImportIncidentResponse
// @Failure 400 {object} map[string]string "Malformed GeoJSON or wrong feature shape"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Local Government Area not found"
// @Failure 413 {object} map[string]string "Payload too large"
// @Failure 500 {object} map[string]string "Database error"
// @Router /data-injection/import-incident/{lga_id}/{type} [post]
func (h *Handler) importIncident(c *gin.Context) {
	areaID, err := strconv.ParseInt(c.Param("lga_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lga_id"})
		return
	}
	incidentType := strings.TrimSpace(c.Param("type"))
	if incidentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incident type is required"})
		return
	}
	log := h.logger.WithFields(logrus.Fields{
		"method":  "importIncident",
		"area_id": areaID,
		"type":    incidentType,
	})

	payload, ok := h.readUpload(c, log, uploadFieldIncident)
	if !ok {
		return
	}

	incident, err := h.incidentService.ImportIncident(c.Request.Context(), areaID, incidentType, payload)
	if err != nil {
		h.respondError(c, log, err, msgAreaNotFound)
		return
	}

	c.JSON(http.StatusOK, ImportIncidentResponse{
		Message:    msgIncidentImported,
		IncidentID: incident.ID,
	})
}

// @Summary Find areas by point or polygon
// @Description Point returns the area containing the coordinate (boundary included, lowest id wins on overlap). Polygon returns every intersecting area. The geometry shape must match the declared type.
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body FindPlacesRequest true "Lookup request"
// @Success 200 {object} AreaResponse "For type Point"
// @Success 200 {object} AreasResponse "For type Polygon"
// @Failure 400 {object} map[string]string "Invalid geometry or type mismatch"
// @Failure 404 {object} map[string]string "No matching area"
// @Failure 500 {object} map[string]string "Database error"
// @Router /findPlaces [post]
func (h *Handler) findPlaces(c *gin.Context) {
	var input FindPlacesRequest
	log := h.logger.WithField("method", "findPlaces")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequestBody})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, err := DTOToQuery(input, h.validate)
	if err != nil {
		log.WithError(err).Warn("Invalid geometry")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch q := query.(type) {
	case geometry.PointQuery:
		h.lookupPoint(c, log, q.Point)
	case geometry.PolygonQuery:
		h.lookupPolygon(c, log, q.Polygon)
	}
}

// @Summary Find the area containing a coordinate
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body Coordinate true "Coordinate"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid coordinate"
// @Failure 404 {object} map[string]string "No area contains the coordinate"
// @Failure 500 {object} map[string]string "Database error"
// @Router /findPlaces/coordinates [post]
func (h *Handler) findPlacesByCoordinates(c *gin.Context) {
	var input Coordinate
	log := h.logger.WithField("method", "findPlacesByCoordinates")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequestBody})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.lookupPoint(c, log, DTOToPoint(input))
}

// @Summary Find areas intersecting a polygon
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body PolygonGeometry true "Polygon"
// @Success 200 {object} AreasResponse
// @Failure 400 {object} map[string]string "Invalid polygon"
// @Failure 404 {object} map[string]string "No area intersects the polygon"
// @Failure 500 {object} map[string]string "Database error"
// @Router /findPlaces/polygon [post]
func (h *Handler) findPlacesByPolygon(c *gin.Context) {
	var input PolygonGeometry
	log := h.logger.WithField("method", "findPlacesByPolygon")

	polygon, ok := h.bindPolygon(c, log, &input, &input)
	if !ok {
		return
	}

	h.lookupPolygon(c, log, polygon)
}

// @Summary Find incident polygons intersecting a polygon
// @Description Returns every stored incident polygon intersecting the query polygon, geometry as WKT. An empty list is a valid result.
// @Tags Lookup
// @Accept json
// @Produce json
// @Param request body FindIncidentsRequest true "Polygon"
// @Success 200 {object} IncidentPolygonsResponse
// @Failure 400 {object} map[string]string "Invalid polygon"
// @Failure 500 {object} map[string]string "Database error"
// @Router /find-incidents [post]
func (h *Handler) findIncidents(c *gin.Context) {
	var input FindIncidentsRequest
	log := h.logger.WithField("method", "findIncidents")

	polygon, ok := h.bindPolygon(c, log, &input, &input.Geometry)
	if !ok {
		return
	}

	found, err := h.incidentService.FindIntersecting(c.Request.Context(), polygon)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentPolygonsResponse(found))
}

func (h *Handler) lookupPoint(c *gin.Context, log *logrus.Entry, point *geom.Point) {
	area, err := h.areaService.FindByPoint(c.Request.Context(), point)
	if err != nil {
		h.respondError(c, log, err, msgNoAreaForCoordinates)
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

func (h *Handler) lookupPolygon(c *gin.Context, log *logrus.Entry, polygon *geom.Polygon) {
	areas, err := h.areaService.FindByPolygon(c.Request.Context(), polygon)
	if err != nil {
		h.respondError(c, log, err, msgNoAreasForPolygon)
		return
	}
	c.JSON(http.StatusOK, ModelsToAreasResponse(areas))
}

// bindPolygon читает тело в input, валидирует его и строит полигон из geometryDTO
func (h *Handler) bindPolygon(c *gin.Context, log *logrus.Entry, input any, geometryDTO *PolygonGeometry) (*geom.Polygon, bool) {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequestBody})
		return nil, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	polygon, err := DTOToPolygon(*geometryDTO)
	if err != nil {
		log.WithError(err).Warn("Invalid polygon")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return polygon, true
}

// readUpload возвращает содержимое файла из multipart-поля field или сырое тело запроса.
// Размер ограничен MAX_UPLOAD_BYTES, пустое содержимое возвращается как есть.
func (h *Handler) readUpload(c *gin.Context, log *logrus.Entry, field string) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	var (
		payload []byte
		err     error
	)
	if strings.HasPrefix(c.ContentType(), multipartContentTypeBase) {
		payload, err = readFormFile(c, field)
	} else {
		payload, err = io.ReadAll(c.Request.Body)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.WithField("limit", tooLarge.Limit).Warn("Upload exceeds size limit")
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgPayloadTooLarge})
			return nil, false
		}
		log.WithError(err).Warn("Failed to read upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	// Пустое тело отклоняет сервис: для инцидента сначала проверяется район
	return payload, true
}

func readFormFile(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing file field '%s': %w", field, err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return io.ReadAll(file)
}

// respondError отображает ошибку сервиса в HTTP-ответ:
// ErrInvalidInput - 400, ErrNotFound - 404, остальное - 500 без деталей хранилища
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		log.WithError(err).Warn("Rejected client input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound) && notFoundMessage != "":
		log.WithError(err).Info("Requested resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgDatabaseError})
	}
}
