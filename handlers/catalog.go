package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	catalogRepo "handrest/database/repository/catalog"
	"handrest/services/pricing"
	"handrest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogHandler serves the public pricing reference data. Listings are
// cached in Redis as JSON; a cache miss or a Redis outage falls through to
// Mongo.
type CatalogHandler struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository, cache *redis.Client) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Cache: cache}
}

// serveCached answers from the Redis cache when it can, otherwise loads
// fresh data and caches it.
func (h *CatalogHandler) serveCached(c *gin.Context, key string, load func() (any, error)) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.Cache != nil {
		if raw, err := h.Cache.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(raw))
			return
		}
	}

	data, err := load()
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		utils.GetLogger().Error("Failed to encode catalog response: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(ctx, key, body, catalogCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache catalog response: " + err.Error())
		}
	}
	c.Data(http.StatusOK, "application/json", body)
}

// CategoriesHandler lists active service categories.
func (h *CatalogHandler) CategoriesHandler(c *gin.Context) {
	h.serveCached(c, "catalog:categories", func() (any, error) {
		return h.Repo.Categories()
	})
}

// PackagesHandler lists active packages, optionally scoped to
// ?category_id=.
func (h *CatalogHandler) PackagesHandler(c *gin.Context) {
	categoryID := c.Query("category_id")
	h.serveCached(c, "catalog:packages:"+categoryID, func() (any, error) {
		return h.Repo.Packages(categoryID)
	})
}

// FeaturedPackagesHandler lists packages flagged for the landing page.
func (h *CatalogHandler) FeaturedPackagesHandler(c *gin.Context) {
	h.serveCached(c, "catalog:packages:featured", func() (any, error) {
		return h.Repo.FeaturedPackages()
	})
}

// FeaturesHandler lists custom features. With ?category_id= the listing is
// narrowed to features eligible for that category; a feature with no
// category mappings is eligible everywhere.
func (h *CatalogHandler) FeaturesHandler(c *gin.Context) {
	categoryID := c.Query("category_id")
	h.serveCached(c, "catalog:features:"+categoryID, func() (any, error) {
		features, err := h.Repo.Features()
		if err != nil {
			return nil, err
		}
		if categoryID == "" {
			return features, nil
		}
		mappings, err := h.Repo.FeatureMappings()
		if err != nil {
			return nil, err
		}
		return pricing.EligibleFeatures(features, mappings, categoryID), nil
	})
}

// AddOnsHandler lists active add-ons.
func (h *CatalogHandler) AddOnsHandler(c *gin.Context) {
	h.serveCached(c, "catalog:addons", func() (any, error) {
		return h.Repo.AddOns()
	})
}

// PanchayathsHandler lists serviceable panchayaths.
func (h *CatalogHandler) PanchayathsHandler(c *gin.Context) {
	h.serveCached(c, "catalog:panchayaths", func() (any, error) {
		return h.Repo.Panchayaths()
	})
}
