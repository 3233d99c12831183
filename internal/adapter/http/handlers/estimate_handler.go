package handlers

import (
	"net/http"

	request "marcenaria_site/internal/adapter/http/dto/request"
	response "marcenaria_site/internal/adapter/http/dto/response"
	"marcenaria_site/internal/adapter/http/middleware"
	"marcenaria_site/internal/usecase"
	"marcenaria_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the estimator API.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Calcula uma estimativa de preço
// @Description  Calcula o preço de uma cozinha ou guarda-roupa e guarda como último orçamento da sessão.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Dados do móvel"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Calculate(c.Request.Context(), middleware.SessionID(c), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetLatestEstimate godoc
// @Summary      Último orçamento da sessão
// @Tags         estimates
// @Produce      json
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/latest [get]
func (h *EstimateHandler) GetLatestEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetLatest(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
