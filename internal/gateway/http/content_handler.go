package http

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/vehiclebff/internal/errors"
	gatewayDomain "github.com/allisson/vehiclebff/internal/gateway/domain"
	gatewayUseCase "github.com/allisson/vehiclebff/internal/gateway/usecase"
	"github.com/allisson/vehiclebff/internal/httputil"
)

// ContentHandler serves branch, FAQ, landing page and make/model content.
type ContentHandler struct {
	gateway gatewayUseCase.GatewayUseCase
	logger  *slog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(gateway gatewayUseCase.GatewayUseCase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{gateway: gateway, logger: logger}
}

// ListBranchesHandler lists branches, optionally filtered.
// GET /api/v1/content/branches?zipCode=&limit=&branchType=
func (h *ContentHandler) ListBranchesHandler(c *gin.Context) {
	limit, hasLimit, err := httputil.ParseOptionalInt(c, "limit")
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error()), h.logger)
		return
	}

	query := url.Values{}
	if zipCode, ok := httputil.OptionalQuery(c, "zipCode"); ok {
		query.Set("ZipCode", zipCode)
	}
	if hasLimit {
		query.Set("Limit", strconv.Itoa(limit))
	}
	if branchType, ok := httputil.OptionalQuery(c, "branchType"); ok {
		query.Set("BranchType", branchType)
	}

	relay(c, h.gateway, h.logger, gatewayDomain.ContentBranches, gatewayDomain.Input{Query: query})
}

// GetBranchHandler returns one branch.
// GET /api/v1/content/branches/:branchId
func (h *ContentHandler) GetBranchHandler(c *gin.Context) {
	branchID, ok := intParam(c, "branchId", h.logger)
	if !ok {
		return
	}

	relay(c, h.gateway, h.logger, gatewayDomain.ContentBranchDetail, gatewayDomain.Input{
		Params: map[string]string{"branchId": branchID},
	})
}

// ListFAQsHandler lists FAQs.
// GET /api/v1/content/faqs
func (h *ContentHandler) ListFAQsHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentFAQs, gatewayDomain.Input{})
}

// GetFAQHandler returns one FAQ.
// GET /api/v1/content/faqs/:slug
func (h *ContentHandler) GetFAQHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentFAQBySlug, gatewayDomain.Input{
		Params: map[string]string{"slug": c.Param("slug")},
	})
}

// ListLandingPagesHandler lists landing pages.
// GET /api/v1/content/landing-page
func (h *ContentHandler) ListLandingPagesHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentLandingPages, gatewayDomain.Input{})
}

// GetLandingPageHandler returns one landing page.
// GET /api/v1/content/landing-page/:slug
func (h *ContentHandler) GetLandingPageHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentLandingPage, gatewayDomain.Input{
		Params: map[string]string{"slug": c.Param("slug")},
	})
}

// MakeContentHandler returns the content page of a make.
// GET /api/v1/content/make-model/:make
func (h *ContentHandler) MakeContentHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentMakeModelByMake, gatewayDomain.Input{
		Params: map[string]string{"make": c.Param("make")},
	})
}

// MakeModelContentHandler returns the content page of a model.
// GET /api/v1/content/make-model/:make/:model
func (h *ContentHandler) MakeModelContentHandler(c *gin.Context) {
	relay(c, h.gateway, h.logger, gatewayDomain.ContentMakeModelByModel, gatewayDomain.Input{
		Params: map[string]string{"make": c.Param("make"), "model": c.Param("model")},
	})
}
