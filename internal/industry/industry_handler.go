package industry

import (
	"net/http"

	"biztime/internal/shared/apperror"
	"biztime/internal/shared/contextutil"
	"biztime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("industry.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("industry.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("industry request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, err)
}

// List responds with a bare array, not a wrapped object.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Raw(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create industry validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Resource(c, http.StatusCreated, "industry", resp)
}

func (h *Handler) Associate(c *gin.Context) {
	indCode := c.Param("ind_code")

	var req AssociateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http associate company validation failed", zap.Error(err))
		response.Error(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Associate(c.Request.Context(), indCode, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Resource(c, http.StatusOK, "association", []AssociationResponse{resp})
}
