package paintings

import (
	"errors"
	"net/http"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/gallery"
	"gallery-app/internal/inquiry"
	"gallery-app/internal/pricing"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store  *gallery.Store
	prices *pricing.Formatter
	links  inquiry.LinkBuilder
}

func NewHandler(store *gallery.Store, prices *pricing.Formatter, links inquiry.LinkBuilder) *Handler {
	return &Handler{store: store, prices: prices, links: links}
}

// ------------------------------
// GET /paintings  (public gallery)
// ------------------------------
func (h *Handler) ListGallery(c *gin.Context) {
	sortOption, ok := catalog.ParseSortOption(c.DefaultQuery("sort", string(catalog.SortNewest)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort option"})
		return
	}

	view := gallery.View{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		Sort:          sortOption,
	}

	proj := gallery.Project(h.store.List(), view)

	c.JSON(http.StatusOK, GalleryResponse{
		Paintings:     toDTOs(proj.Paintings, h.prices),
		TotalCount:    proj.TotalCount,
		FilteredCount: proj.FilteredCount,
		Loading:       h.store.Loading(),
	})
}

// ------------------------------
// GET /paintings/:id
// ------------------------------
func (h *Handler) GetPainting(c *gin.Context) {
	p, ok := h.store.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, PaintingDTO{Painting: p, PriceLabel: h.prices.Format(p.Price)})
}

// ------------------------------
// GET /paintings/:id/inquiry
// ------------------------------
func (h *Handler) InquiryLink(c *gin.Context) {
	p, ok := h.store.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.links.PaintingLink(p)})
}

// ------------------------------
// GET /inquiry  (floating contact button)
// ------------------------------
func (h *Handler) GeneralInquiryLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.links.GeneralLink()})
}

// ------------------------------
// GET /admin/paintings  (admin table, unfiltered)
// ------------------------------
func (h *Handler) ListAdmin(c *gin.Context) {
	items := h.store.List()
	c.JSON(http.StatusOK, GalleryResponse{
		Paintings:     toDTOs(items, h.prices),
		TotalCount:    len(items),
		FilteredCount: len(items),
		Loading:       h.store.Loading(),
	})
}

// ------------------------------
// POST /admin/paintings
// ------------------------------
func (h *Handler) CreatePainting(c *gin.Context) {
	var req CreatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !catalog.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	created, err := h.store.Create(c.Request.Context(), req.toNewPainting())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add painting"})
		return
	}

	c.JSON(http.StatusCreated, PaintingDTO{Painting: created, PriceLabel: h.prices.Format(created.Price)})
}

// ------------------------------
// PUT /admin/paintings/:id
// ------------------------------
func (h *Handler) UpdatePainting(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePaintingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		case errors.Is(err, catalog.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/paintings/:id
// ------------------------------
func (h *Handler) DeletePainting(c *gin.Context) {
	err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /admin/stats  (dashboard cards)
// ------------------------------
func (h *Handler) Stats(c *gin.Context) {
	items := h.store.List()

	available := 0
	for _, p := range items {
		if p.Available {
			available++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     len(items),
		"available": available,
		"sold":      len(items) - available,
	})
}
