package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marcenaria_site/internal/adapter/http/handlers/mocks"
	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase"

	"go.uber.org/mock/gomock"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func contactFields() map[string]string {
	return map[string]string{
		"name":    "Ana",
		"email":   "ana@example.com",
		"message": "Quero um armário",
	}
}

func TestContactHandler_SubmitContact(t *testing.T) {
	t.Run("success with attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/contact", h.SubmitContact)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.ContactSubmission) (entities.ContactRequest, error) {
				if s.SessionID != testSessionID || s.Name != "Ana" {
					t.Fatalf("unexpected submission: %+v", s)
				}
				if s.Attachment == nil || s.Attachment.Filename != "planta.png" || len(s.Attachment.Data) != len(pngHeader) {
					t.Fatalf("unexpected attachment: %+v", s.Attachment)
				}
				return entities.ContactRequest{ID: "lead-1", Status: entities.ContactStatusEnviado}, nil
			},
		)

		req := multipartRequest(t, "/v1/contact", contactFields(), &filePart{name: "planta.png", contentType: "image/png", data: pngHeader})
		w := serve(r, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["contact_id"] != "lead-1" || body["status"] != "enviado" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("without attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/contact", h.SubmitContact)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s entities.ContactSubmission) (entities.ContactRequest, error) {
				if s.Attachment != nil {
					t.Fatalf("expected no attachment")
				}
				return entities.ContactRequest{ID: "lead-2", Status: entities.ContactStatusEnviado}, nil
			},
		)

		w := serve(r, multipartRequest(t, "/v1/contact", contactFields(), nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid field", &usecase.ContactFieldError{Field: "email", Reason: "is required"}, http.StatusBadRequest, "INVALID_CONTACT"},
		{"too large", usecase.ErrAttachmentTooLarge, http.StatusRequestEntityTooLarge, "ATTACHMENT_TOO_LARGE"},
		{"bad type", usecase.ErrAttachmentType, http.StatusUnsupportedMediaType, "ATTACHMENT_TYPE"},
		{"in flight", usecase.ErrSubmissionInProgress, http.StatusConflict, "SUBMISSION_IN_PROGRESS"},
		{"relay rejected", &usecase.RelayStatusError{Status: 422}, http.StatusBadGateway, "RELAY_REJECTED"},
		{"relay unavailable", usecase.ErrRelayUnavailable, http.StatusServiceUnavailable, "RELAY_UNAVAILABLE"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIContactUseCase(ctrl)
			h := NewContactHandler(uc)

			r := newTestRouter(t)
			r.POST("/v1/contact", h.SubmitContact)

			uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactRequest{}, tc.err)

			w := serve(r, multipartRequest(t, "/v1/contact", contactFields(), nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.code {
				t.Fatalf("unexpected response body: %s", w.Body.String())
			}
		})
	}

	t.Run("body over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/contact", h.SubmitContact)

		big := bytes.Repeat([]byte{'a'}, int(maxContactBody)+1024)
		w := serve(r, multipartRequest(t, "/v1/contact", contactFields(), &filePart{name: "foto.jpg", contentType: "image/jpeg", data: big}))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.POST("/v1/contact", h.SubmitContact)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := serve(r, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestContactHandler_GetContact(t *testing.T) {
	t.Run("own lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/contact/:id", h.GetContact)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.ContactRequest{ID: "lead-1", SessionID: testSessionID, Status: entities.ContactStatusEnviado}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/contact/lead-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("other session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/contact/:id", h.GetContact)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.ContactRequest{ID: "lead-1", SessionID: "someone-else"}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/contact/lead-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := newTestRouter(t)
		r.GET("/v1/contact/:id", h.GetContact)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.ContactRequest{}, usecase.ErrContactNotFound)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/v1/contact/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
