package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fixturematch/backend/internal/catalog"
	"github.com/fixturematch/backend/internal/domain"
	"github.com/fixturematch/backend/internal/infrastructure/catalogfile"
	"github.com/fixturematch/backend/internal/infrastructure/metrics"
	"github.com/fixturematch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	directory   *usecase.Directory
	store       *catalog.Store
	catalogPath string
}

// NewHandler creates a new HTTP handler
func NewHandler(directory *usecase.Directory, store *catalog.Store, catalogPath string) *Handler {
	return &Handler{
		directory:   directory,
		store:       store,
		catalogPath: catalogPath,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": "fixturematch-backend",
	}
	if snap, err := h.store.Current(); err == nil {
		status["catalog_version"] = snap.Version()
		status["products"] = snap.Len()
	} else {
		status["status"] = "degraded"
		status["catalog_version"] = ""
	}
	c.JSON(http.StatusOK, status)
}

// searchRequest is the legacy search body: a single SKU field.
type searchRequest struct {
	SKU string `json:"sku" form:"sku"`
}

// Search handles SKU search requests. The response shape matches the
// original storefront widget: {success, sku, product, compatibles} on a hit,
// {success:false, message} otherwise.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Please enter a SKU number",
		})
		return
	}

	sku := strings.ToUpper(strings.TrimSpace(req.SKU))
	if sku == "" {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Please enter a SKU number",
		})
		return
	}

	start := time.Now()
	lookup, err := h.directory.FindCompatibles(c.Request.Context(), sku)
	metrics.LookupDurationHistogram.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.LookupCounter.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "No product found for SKU " + sku,
			})
			return
		}
		metrics.LookupCounter.WithLabelValues("error").Inc()
		zap.L().Error("search failed", zap.String("sku", sku), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred processing the search",
		})
		return
	}

	metrics.LookupCounter.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"sku":         sku,
		"product":     lookup.Product,
		"compatibles": lookup.Compatibles,
	})
}

// GetCompatibles returns the structured lookup for a product id.
func (h *Handler) GetCompatibles(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))

	start := time.Now()
	lookup, err := h.directory.FindCompatibles(c.Request.Context(), id)
	metrics.LookupDurationHistogram.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.LookupCounter.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		metrics.LookupCounter.WithLabelValues("error").Inc()
		zap.L().Error("lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	metrics.LookupCounter.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, lookup)
}

// GetMatch runs a single-category diagnostic query.
func (h *Handler) GetMatch(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
	category := domain.Category(c.Param("category"))

	result, err := h.directory.Match(c.Request.Context(), id, category)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		default:
			zap.L().Error("match failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "match failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   result.Category,
		"applicable": result.Applicable,
		"products":   result.Matches,
		"reason":     result.Reason,
	})
}

// ReloadCatalog re-reads the catalog file and publishes a fresh snapshot.
// Readers in flight keep the snapshot they started with.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	snap, err := catalogfile.Load(h.catalogPath)
	if err != nil {
		zap.L().Error("catalog reload failed", zap.String("path", h.catalogPath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog reload failed"})
		return
	}

	h.store.Publish(snap)
	metrics.SnapshotProducts.Set(float64(snap.Len()))
	zap.L().Info("catalog snapshot published",
		zap.String("version", snap.Version()),
		zap.Int("products", snap.Len()),
	)

	c.JSON(http.StatusOK, gin.H{
		"catalog_version": snap.Version(),
		"products":        snap.Len(),
	})
}
