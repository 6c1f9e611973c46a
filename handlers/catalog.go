package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"barberbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:services"
	catalogCacheTTL = 5 * time.Minute
)

// ListServicesHandler returns the active service catalogue shown on step one
// of the booking wizard. The catalogue changes rarely, so reads go through
// the cache and admin catalogue edits drop the key.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	if hb.Cache != nil {
		if raw, err := hb.Cache.Get(c.Request.Context(), catalogCacheKey).Result(); err == nil {
			var services []models.Service
			if json.Unmarshal([]byte(raw), &services) == nil {
				c.JSON(http.StatusOK, gin.H{"services": services})
				return
			}
		}
	}

	services, err := hb.ServiceRepo.GetAllActive()
	if err != nil {
		getLogger(c).Error("Failed to load service catalogue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	if hb.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := hb.Cache.Set(c.Request.Context(), catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				getLogger(c).Warn("Failed to cache service catalogue", zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// invalidateCatalogCache drops the cached catalogue after an admin edit.
func (hb *HandlerBundle) invalidateCatalogCache(c *gin.Context) {
	if hb.Cache == nil {
		return
	}
	if err := hb.Cache.Del(c.Request.Context(), catalogCacheKey).Err(); err != nil {
		getLogger(c).Warn("Failed to invalidate catalogue cache", zap.Error(err))
	}
}

// GetServiceHandler returns a single catalogue entry.
func (hb *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := hb.ServiceRepo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListStaffHandler returns the active staff roster.
func (hb *HandlerBundle) ListStaffHandler(c *gin.Context) {
	staff, err := hb.Users.GetStaff()
	if err != nil {
		getLogger(c).Error("Failed to load staff roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
