package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marcenaria_site/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCollector_Send(t *testing.T) {
	var got mpPayload
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewHTTPCollector(srv.URL+"/mp/collect", "G-TEST", "s3cr3t", time.Second)
	require.NoError(t, err)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	err = c.Send(context.Background(), entities.AnalyticsEvent{
		Name:       entities.EventWhatsAppClick,
		Label:      "hero",
		Page:       "/",
		SessionID:  "sid-1",
		Params:     map[string]any{"button": "whatsapp"},
		OccurredAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "api_secret=s3cr3t&measurement_id=G-TEST", query)
	assert.Equal(t, "sid-1", got.ClientID)
	assert.Equal(t, at.UnixMicro(), got.TimestampMicros)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "whatsapp_click", got.Events[0].Name)
	assert.Equal(t, "hero", got.Events[0].Params["label"])
	assert.Equal(t, "/", got.Events[0].Params["page_location"])
	assert.Equal(t, "whatsapp", got.Events[0].Params["button"])
}

func TestHTTPCollector_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := NewHTTPCollector(srv.URL, "", "", 0)
	require.NoError(t, err)
	assert.Error(t, c.Send(context.Background(), entities.AnalyticsEvent{Name: entities.EventNavClick}))
}
