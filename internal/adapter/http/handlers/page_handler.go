package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	request "marcenaria_site/internal/adapter/http/dto/request"
	"marcenaria_site/internal/adapter/http/middleware"
	"marcenaria_site/internal/adapter/http/ui"
	"marcenaria_site/internal/adapter/http/views"
	"marcenaria_site/internal/config"
	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	estimateOrigin   = "orcamento"
	lightboxKeyParam = "tecla"
)

// PageHandler renders the site pages. Every route works without JavaScript: the wizard,
// the menu and the gallery viewer keep their state in the request.
type PageHandler struct {
	site      *config.SiteStore
	uiCfg     config.UIConfig
	estimates usecase.IEstimateUseCase
	contacts  usecase.IContactUseCase
	analytics usecase.IAnalyticsUseCase
	log       *logger.Logger
}

func NewPageHandler(
	site *config.SiteStore,
	uiCfg config.UIConfig,
	estimates usecase.IEstimateUseCase,
	contacts usecase.IContactUseCase,
	analytics usecase.IAnalyticsUseCase,
	log *logger.Logger,
) *PageHandler {
	return &PageHandler{site: site, uiCfg: uiCfg, estimates: estimates, contacts: contacts, analytics: analytics, log: log}
}

func (h *PageHandler) layout(c *gin.Context, title string) views.Layout {
	offset, _ := strconv.Atoi(c.Query("y"))
	header := ui.HeaderFromOffset(h.uiCfg.HeaderOffset, offset)
	return views.NewLayout(h.site.Get(), title, c.Request.URL.Path, ui.MenuFromQuery(c.Query("menu")), header)
}

// keepScroll carries the ?y= scroll offset over a redirect.
func keepScroll(c *gin.Context, target string) string {
	if y := c.Query("y"); y != "" {
		return target + "?y=" + url.QueryEscape(y)
	}
	return target
}

func (h *PageHandler) notify(kind ui.NotificationKind, msg string) *ui.Notification {
	return ui.NewNotification(kind, msg, h.uiCfg.NotificationDismiss)
}

func (h *PageHandler) Home(c *gin.Context) {
	site := h.site.Get()
	featured := site.Gallery
	if len(featured) > 3 {
		featured = featured[:3]
	}
	c.HTML(http.StatusOK, "home.html", views.HomePage{
		Layout:   h.layout(c, "Início"),
		Services: site.Services,
		Featured: featured,
	})
}

func (h *PageHandler) Gallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery.html", views.GalleryPage{
		Layout: h.layout(c, "Galeria"),
		Images: h.site.Get().Gallery,
	})
}

// GalleryImage opens the viewer at :index. ?tecla=ArrowLeft|ArrowRight|Escape moves or
// closes it and redirects to the resulting URL.
func (h *PageHandler) GalleryImage(c *gin.Context) {
	images := h.site.Get().Gallery
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || len(images) == 0 {
		h.NotFound(c)
		return
	}

	lb := ui.NewLightbox(len(images))
	lb.Open(index)

	if key := c.Query(lightboxKeyParam); key != "" && lb.HandleKey(key) {
		if !lb.IsOpen() {
			c.Redirect(http.StatusSeeOther, keepScroll(c, "/galeria"))
			return
		}
		c.Redirect(http.StatusSeeOther, keepScroll(c, "/galeria/"+strconv.Itoa(lb.Index())))
		return
	}
	if lb.Index() != index {
		c.Redirect(http.StatusSeeOther, keepScroll(c, "/galeria/"+strconv.Itoa(lb.Index())))
		return
	}

	c.HTML(http.StatusOK, "gallery.html", views.GalleryPage{
		Layout:   h.layout(c, "Galeria"),
		Images:   images,
		Lightbox: views.NewLightboxView(images, lb),
	})
}

func (h *PageHandler) Estimator(c *gin.Context) {
	w := ui.NewWizard(ui.EstimatorSteps(), 0, url.Values{})
	c.HTML(http.StatusOK, "estimator.html", views.NewEstimatorPage(h.layout(c, "Orçamento"), w, ""))
}

// EstimatorStep handles one wizard transition (action=next|back). Completing the last
// step computes the estimate.
func (h *PageHandler) EstimatorStep(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderError(c, http.StatusBadRequest, "Formulário inválido.")
		return
	}
	values := c.Request.PostForm
	step, _ := strconv.Atoi(values.Get("step"))
	w := ui.NewWizard(ui.EstimatorSteps(), step, values)
	layout := h.layout(c, "Orçamento")

	if values.Get("action") == "back" {
		w.Back()
		c.HTML(http.StatusOK, "estimator.html", views.NewEstimatorPage(layout, w, ""))
		return
	}

	done, err := w.Next()
	if err != nil {
		var fe *ui.FieldError
		invalid := ""
		if errors.As(err, &fe) {
			invalid = fe.Field
		}
		page := views.NewEstimatorPage(layout, w, invalid)
		page.Error = err.Error()
		page.Notification = h.notify(ui.NotificationError, err.Error())
		c.HTML(http.StatusUnprocessableEntity, "estimator.html", page)
		return
	}
	if !done {
		c.HTML(http.StatusOK, "estimator.html", views.NewEstimatorPage(layout, w, ""))
		return
	}

	estimate, err := h.estimates.Calculate(c.Request.Context(), middleware.SessionID(c), request.EstimateInputFromForm(values))
	if err != nil {
		h.log.Warn("estimate page calculation failed", logger.String("session_id", middleware.SessionID(c)), logger.ErrorF(err))
		page := views.NewEstimatorPage(layout, w, "")
		page.Notification = h.notify(ui.NotificationError, estimatePageMessage(err))
		status := http.StatusUnprocessableEntity
		if !usecase.IsValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "estimator.html", page)
		return
	}

	h.trackSubmit(c, estimateOrigin)
	result := views.NewBreakdownView(estimate)
	page := views.NewEstimatorPage(layout, w, "")
	page.Result = &result
	c.HTML(http.StatusOK, "estimator.html", page)
}

// Contact renders the form. ?origem=orcamento pre-fills it with the session's latest estimate.
func (h *PageHandler) Contact(c *gin.Context) {
	page := h.contactPage(c, views.ContactFormView{})

	if c.Query("origem") == estimateOrigin {
		estimate, err := h.estimates.GetLatest(c.Request.Context(), middleware.SessionID(c))
		switch {
		case err == nil:
			page.Form.Subject = "Orçamento: " + views.FurnitureLabel(estimate.Input.FurnitureType)
			page.Form.Message = views.EstimateSummary(estimate)
			page.Form.EstimateID = estimate.ID
		case errors.Is(err, usecase.ErrEstimateNotFound):
			page.Notification = h.notify(ui.NotificationInfo, "Faça uma simulação para anexar o orçamento à mensagem.")
		default:
			h.log.Warn("latest estimate lookup failed", logger.String("session_id", middleware.SessionID(c)), logger.ErrorF(err))
		}
	}

	c.HTML(http.StatusOK, "contact.html", page)
}

// ContactSubmit relays the form. Success shows a fresh form; failure keeps what was typed.
func (h *PageHandler) ContactSubmit(c *gin.Context) {
	f, err := readContactForm(c)
	if err != nil {
		appErr := contactParseError(err)
		page := h.contactPage(c, formView(f.form))
		page.Notification = h.notify(ui.NotificationError, appErr.Message)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			page.InvalidField = request.FieldAttachment
		}
		c.HTML(appErr.HTTPStatus, "contact.html", page)
		return
	}

	if _, err := h.contacts.Submit(c.Request.Context(), f.submission); err != nil {
		appErr := mapContactError(err)
		page := h.contactPage(c, formView(f.form))
		page.Notification = h.notify(ui.NotificationError, appErr.Message)
		page.InvalidField = contactFailureField(err)
		c.HTML(appErr.HTTPStatus, "contact.html", page)
		return
	}

	h.trackSubmit(c, "contato")
	page := h.contactPage(c, views.ContactFormView{})
	page.Notification = h.notify(ui.NotificationSuccess, "Mensagem enviada com sucesso! Retornaremos em breve.")
	c.HTML(http.StatusOK, "contact.html", page)
}

func (h *PageHandler) contactPage(c *gin.Context, form views.ContactFormView) views.ContactPage {
	return views.ContactPage{
		Layout:    h.layout(c, "Contato"),
		Form:      form,
		FileLabel: views.NoFileLabel,
		MaxFileMB: int(usecase.MaxAttachmentSize >> 20),
	}
}

func formView(f request.ContactForm) views.ContactFormView {
	return views.ContactFormView{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Subject:    f.Subject,
		Message:    f.Message,
		EstimateID: f.EstimateID,
	}
}

func (h *PageHandler) trackSubmit(c *gin.Context, label string) {
	if h.analytics == nil {
		return
	}
	_ = h.analytics.Track(c.Request.Context(), entities.AnalyticsEvent{
		Name:      entities.EventFormSubmit,
		Label:     label,
		Page:      c.Request.URL.Path,
		SessionID: middleware.SessionID(c),
	})
}

// NotFound answers JSON under /v1 and the error page elsewhere.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Route not found"})
		return
	}
	h.renderError(c, http.StatusNotFound, "Página não encontrada.")
}

// InternalError is the panic fallback.
func (h *PageHandler) InternalError(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}
	h.renderError(c, http.StatusInternalServerError, genericErrorMessage)
}

func (h *PageHandler) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", views.ErrorPage{
		Layout:  h.layout(c, "Erro"),
		Status:  status,
		Message: msg,
	})
}
