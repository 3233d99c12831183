package handlers

import (
	"encoding/json"
	"net/http"

	request "marcenaria_site/internal/adapter/http/dto/request"
	"marcenaria_site/internal/adapter/http/middleware"
	"marcenaria_site/internal/usecase"
	"marcenaria_site/pkg"

	"github.com/gin-gonic/gin"
)

const maxAnalyticsBody = 8 << 10

var errInvalidAnalyticsPayload = pkg.NewDomainErrorSimple("INVALID_ANALYTICS_EVENT", "Invalid analytics event", http.StatusBadRequest)

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// TrackEvent godoc
// @Summary      Registra uma interação do visitante
// @Description  Eventos aceitos: nav_click, button_click, whatsapp_click, form_submit.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        payload  body  request.AnalyticsEventRequest  true  "Evento"
// @Success      202
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/events [post]
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAnalyticsBody)
	body, err := c.GetRawData()
	if err != nil || request.ValidateAnalyticsPayload(body) != nil {
		c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
		return
	}

	var payload request.AnalyticsEventRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Track(c.Request.Context(), payload.ToEvent(middleware.SessionID(c))); err != nil {
		c.JSON(errInvalidAnalyticsPayload.HTTPStatus, errInvalidAnalyticsPayload.ToHTTPError())
		return
	}
	c.Status(http.StatusAccepted)
}
