package formrelay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/usecase/interfaces"
)

var ErrMissingEndpoint = errors.New("missing contact endpoint")

const defaultTimeout = 15 * time.Second

// FormRelayGateway posts the contact form to a hosted form endpoint (Formspree style).
//
// One multipart request per submission with Accept: application/json. Any 2xx means
// the message was accepted.
type FormRelayGateway struct {
	endpoint string
	client   *http.Client
	log      *logger.Logger
	mockMode bool
}

var _ interfaces.IContactGateway = (*FormRelayGateway)(nil)

func NewFormRelayGateway(endpoint string, timeout time.Duration, mock bool, log *logger.Logger) (*FormRelayGateway, error) {
	if mock {
		log.Info("form relay mock mode enabled")
		return &FormRelayGateway{log: log, mockMode: true}, nil
	}
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FormRelayGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}, nil
}

func (g *FormRelayGateway) Forward(ctx context.Context, s entities.ContactSubmission) (int, error) {
	if g.mockMode {
		g.log.Info("form relay mock forward",
			logger.String("session_id", s.SessionID),
			logger.Bool("attachment", s.Attachment != nil),
		)
		return http.StatusOK, nil
	}

	body, contentType, err := encodeSubmission(s)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	g.log.Debug("form relay response", logger.Int("status", resp.StatusCode))
	return resp.StatusCode, nil
}

func encodeSubmission(s entities.ContactSubmission) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct{ name, value string }{
		{"name", s.Name},
		{"email", s.Email},
		{"phone", s.Phone},
		{"_subject", s.Subject},
		{"message", s.Message},
		{"estimate_id", s.EstimateID},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if a := s.Attachment; a != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="attachment"; filename=%q`, a.Filename))
		h.Set("Content-Type", a.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(a.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
