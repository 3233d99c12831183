package handlers

import (
	"errors"
	"net/http"

	request "marcenaria_site/internal/adapter/http/dto/request"
	response "marcenaria_site/internal/adapter/http/dto/response"
	"marcenaria_site/internal/adapter/http/middleware"
	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase"
	"marcenaria_site/pkg"

	"github.com/gin-gonic/gin"
)

// maxContactBody bounds the multipart body. It sits above the attachment limit so an
// oversized file is still parsed and reported as such.
const maxContactBody = 3 * usecase.MaxAttachmentSize

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_PAYLOAD", "Formulário inválido", http.StatusBadRequest)

// ContactHandler serves the contact form API.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// SubmitContact godoc
// @Summary      Envia o formulário de contato
// @Description  Valida os campos e o anexo opcional (até 5 MB, JPG/PNG/PDF) e repassa ao endpoint de formulários.
// @Tags         contact
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nome"
// @Param        email        formData  string  true   "E-mail"
// @Param        phone        formData  string  false  "Telefone"
// @Param        subject      formData  string  false  "Assunto"
// @Param        message      formData  string  true   "Mensagem"
// @Param        estimate_id  formData  string  false  "Orçamento de referência"
// @Param        attachment   formData  file    false  "Foto ou planta"
// @Success      201  {object}  response.ContactResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      415  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	submission, err := readContactSubmission(c)
	if err != nil {
		appErr := contactParseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	lead, err := h.usecase.Submit(c.Request.Context(), submission)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContactRequest(lead))
}

// GetContact godoc
// @Summary      Situação de um contato enviado nesta sessão
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  response.ContactResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contact/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err == nil && lead.SessionID != middleware.SessionID(c) {
		err = usecase.ErrContactNotFound
	}
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContactRequest(lead))
}

type contactForm struct {
	form       request.ContactForm
	submission entities.ContactSubmission
}

func readContactSubmission(c *gin.Context) (entities.ContactSubmission, error) {
	f, err := readContactForm(c)
	return f.submission, err
}

// readContactForm parses the multipart body. The plain form is returned even when the
// attachment cannot be read so the page can keep what the visitor typed.
func readContactForm(c *gin.Context) (contactForm, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBody)

	var out contactForm
	if err := c.ShouldBind(&out.form); err != nil {
		return out, err
	}

	var attachment *entities.Attachment
	fh, err := c.FormFile(request.FieldAttachment)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return out, err
	default:
		attachment, err = request.ReadAttachment(fh, usecase.MaxAttachmentSize)
		if err != nil {
			return out, err
		}
	}

	out.submission = out.form.ToSubmission(middleware.SessionID(c), attachment)
	return out, nil
}

func contactParseError(err error) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return mapContactError(usecase.ErrAttachmentTooLarge)
	}
	return errInvalidContactPayload
}
