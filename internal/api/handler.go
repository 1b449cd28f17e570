// Package api exposes the store and aggregate logic to the editor and list
// views over HTTP. Views go through these operations only; they never touch
// the persisted blob directly.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zencool/invoicer/internal/application/port"
	"github.com/zencool/invoicer/internal/domain/entity"
	"github.com/zencool/invoicer/internal/export"
	"github.com/zencool/invoicer/internal/infrastructure/persistence/repository"
	"github.com/zencool/invoicer/internal/invoice"
	"github.com/zencool/invoicer/internal/render"
)

// Handler serves the invoice HTTP API.
type Handler struct {
	repo     port.InvoiceRepository
	factory  *invoice.Factory
	renderer *render.Renderer
	exporter *export.ExcelExporter
	logger   *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(repo port.InvoiceRepository, factory *invoice.Factory, renderer *render.Renderer, exporter *export.ExcelExporter, logger *zap.Logger) *Handler {
	return &Handler{
		repo:     repo,
		factory:  factory,
		renderer: renderer,
		exporter: exporter,
		logger:   logger,
	}
}

// Register mounts all invoice routes on the router.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/invoices", h.List)
		api.POST("/invoices/draft", h.Draft)
		api.GET("/invoices/:id", h.Get)
		api.PUT("/invoices/:id", h.Save)
		api.DELETE("/invoices/:id", h.Delete)
		api.GET("/invoices/:id/document", h.Document)
		api.GET("/invoices/:id/pdf", h.PDF)
		api.GET("/invoice-number/next", h.NextNumber)
		api.GET("/export/invoices.xlsx", h.Export)
	}
}

// List returns the list projections in storage order.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.ListProjections(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Draft returns a new unsaved invoice with default field values. Nothing is
// persisted until the client saves it.
func (h *Handler) Draft(c *gin.Context) {
	c.JSON(http.StatusOK, h.factory.NewDraft())
}

// Get returns one invoice by ID.
func (h *Handler) Get(c *gin.Context) {
	inv := h.loadInvoice(c)
	if inv == nil {
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Save upserts the invoice in the request body. The path ID wins over any ID
// in the payload, keeping identifiers immutable after creation.
func (h *Handler) Save(c *gin.Context) {
	var inv entity.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		h.logger.Warn("Rejected invalid invoice payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice payload"})
		return
	}
	inv.ID = c.Param("id")

	if err := h.repo.Save(c.Request.Context(), &inv); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &inv)
}

// Delete removes the invoice. Deleting an absent ID still answers 204; the
// outcome is the same either way.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Document returns the rendered HTML document. With ?print=1 the document
// opens the print dialog on load.
func (h *Handler) Document(c *gin.Context) {
	inv := h.loadInvoice(c)
	if inv == nil {
		return
	}

	var html string
	var err error
	if c.Query("print") == "1" {
		html, err = h.renderer.PrintHTML(inv)
	} else {
		html, err = h.renderer.HTML(inv)
	}
	if err != nil {
		h.logger.Error("Failed to render document", zap.String("id", inv.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render document"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDF returns the invoice as an A4 PDF download.
func (h *Handler) PDF(c *gin.Context) {
	inv := h.loadInvoice(c)
	if inv == nil {
		return
	}

	pdf, err := h.renderer.PDF(inv)
	if err != nil {
		h.logger.Error("Failed to generate PDF", zap.String("id", inv.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate PDF"})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// NextNumber returns the next suggested invoice number. The suggestion is
// not validated against numbers already in the collection.
func (h *Handler) NextNumber(c *gin.Context) {
	n, err := h.repo.NextInvoiceNumberSuggestion(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoiceNumber": n})
}

// Export returns the invoice register as an .xlsx download.
func (h *Handler) Export(c *gin.Context) {
	items, err := h.repo.ListProjections(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}

	book, err := h.exporter.Register(items)
	if err != nil {
		h.logger.Error("Failed to export register", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export register"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

// loadInvoice fetches the path invoice and writes the error response itself.
// A nil result means the response is already written.
func (h *Handler) loadInvoice(c *gin.Context) *entity.Invoice {
	inv, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return nil
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return nil
	}
	return inv
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrCorruptStore) {
		h.logger.Error("Invoice store is corrupt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice store data is corrupt"})
		return
	}
	h.logger.Error("Store operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
}
