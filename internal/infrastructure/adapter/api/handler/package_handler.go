package handler

import (
	"net/http"
	"strconv"

	"github.com/stakeway/backoffice/internal/domain/entity"
	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/usecase/catalog"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PackageHandler handles catalog package HTTP requests
type PackageHandler struct {
	catalogService *catalog.Service
	logger         coreport.Logger
}

// NewPackageHandler creates a new package handler instance
func NewPackageHandler(catalogService *catalog.Service, logger coreport.Logger) *PackageHandler {
	return &PackageHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// List handles the GET /api/packages endpoint
func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponses(pkgs))
}

// Get handles the GET /api/packages/:id endpoint
func (h *PackageHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid package ID format",
		})
		return
	}

	pkg, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// Create handles the POST /api/packages endpoint
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	pkg, err := h.packageFromRequest(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.catalogService.Add(c.Request.Context(), pkg); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageResponse(pkg))
}

// Update handles the PUT /api/packages/:id endpoint
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid package ID format",
		})
		return
	}

	var req dto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	pkg, err := h.packageFromRequest(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	pkg.ID = id

	if err := h.catalogService.Update(c.Request.Context(), pkg); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

func (h *PackageHandler) packageFromRequest(req *dto.PackageRequest) (*entity.Package, error) {
	priceCents, err := entity.ParseAmountToCents(req.Price)
	if err != nil {
		return nil, err
	}

	return &entity.Package{
		Name:               req.Name,
		PriceCents:         priceCents,
		DiscountPercent:    req.DiscountPercent,
		StackingPeriodDays: req.StackingPeriodDays,
		Features:           req.Features,
		MinTokensRequired:  req.MinTokensRequired,
	}, nil
}
