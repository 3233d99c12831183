package handlers

import (
	"errors"
	"net/http"

	request "marcenaria_site/internal/adapter/http/dto/request"
	"marcenaria_site/internal/adapter/http/ui"
	"marcenaria_site/internal/domain/services"
	"marcenaria_site/internal/usecase"
	"marcenaria_site/pkg"
)

const genericErrorMessage = "Ocorreu um erro inesperado. Tente novamente em instantes."

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, services.ErrUnknownFurnitureType):
		return pkg.NewDomainErrorSimple("INVALID_FURNITURE_TYPE", "Tipo de móvel inválido", http.StatusBadRequest)
	case errors.Is(err, services.ErrMissingMaterial):
		return pkg.NewDomainErrorSimple("MISSING_MATERIAL", "Selecione o material", http.StatusBadRequest)
	case errors.Is(err, services.ErrMissingHandles):
		return pkg.NewDomainErrorSimple("MISSING_HANDLES", "Selecione os puxadores", http.StatusBadRequest)
	case errors.Is(err, services.ErrDimensionOutOfRange):
		return pkg.NewDomainErrorSimple("DIMENSION_OUT_OF_RANGE", "Medidas ou quantidades acima do limite aceito", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Sessão inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Nenhum orçamento calculado nesta sessão", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

var contactFieldMessages = map[string]string{
	request.FieldName:    "Informe seu nome.",
	request.FieldEmail:   "Informe um e-mail válido.",
	request.FieldMessage: "Escreva sua mensagem.",
}

func mapContactError(err error) *pkg.AppError {
	var fe *usecase.ContactFieldError
	switch {
	case errors.As(err, &fe):
		msg, ok := contactFieldMessages[fe.Field]
		if !ok {
			msg = "Verifique os campos do formulário."
		}
		return pkg.NewDomainError("INVALID_CONTACT", msg, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "O arquivo excede o limite de 5 MB.", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrAttachmentType):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TYPE", "Formato de arquivo não permitido. Envie JPG, PNG ou PDF.", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "Seu envio anterior ainda está em andamento.", http.StatusConflict)
	case errors.Is(err, usecase.ErrRelayRejected):
		return pkg.NewDomainError("RELAY_REJECTED", "Não foi possível enviar sua mensagem. Tente novamente.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrRelayUnavailable):
		return pkg.NewDomainError("RELAY_UNAVAILABLE", "Falha de conexão ao enviar. Verifique sua internet e tente novamente.", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contato não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", genericErrorMessage, err, http.StatusInternalServerError)
	}
}

// contactFailureField is the form input to highlight for err, or "".
func contactFailureField(err error) string {
	var fe *usecase.ContactFieldError
	switch {
	case errors.As(err, &fe):
		return fe.Field
	case errors.Is(err, usecase.ErrAttachmentTooLarge), errors.Is(err, usecase.ErrAttachmentType):
		return request.FieldAttachment
	}
	return ""
}

// estimatePageMessage is the toast text for a failed calculation on the estimator page.
func estimatePageMessage(err error) string {
	var fe *ui.FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	if usecase.IsValidationError(err) {
		return mapEstimateError(err).Message + "."
	}
	return genericErrorMessage
}
