package request

import (
	"errors"
	"fmt"
	"strings"

	"marcenaria_site/internal/domain/entities"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidAnalyticsPayload = errors.New("invalid analytics payload")

const analyticsEventSchema = `{
  "type": "object",
  "required": ["event"],
  "additionalProperties": false,
  "properties": {
    "event": {"type": "string", "enum": ["nav_click", "button_click", "whatsapp_click", "form_submit"]},
    "label": {"type": "string", "maxLength": 200},
    "page": {"type": "string", "maxLength": 500},
    "params": {
      "type": "object",
      "maxProperties": 20,
      "additionalProperties": {"type": ["string", "number", "boolean"]}
    }
  }
}`

var analyticsSchema = gojsonschema.NewStringLoader(analyticsEventSchema)

// AnalyticsEventRequest is the body of POST /v1/analytics/events.
type AnalyticsEventRequest struct {
	Event  string         `json:"event" example:"whatsapp_click"`
	Label  string         `json:"label,omitempty" example:"hero"`
	Page   string         `json:"page,omitempty" example:"/"`
	Params map[string]any `json:"params,omitempty"`
}

// ValidateAnalyticsPayload checks the raw body against the event schema.
func ValidateAnalyticsPayload(body []byte) error {
	result, err := gojsonschema.Validate(analyticsSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAnalyticsPayload, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidAnalyticsPayload, strings.Join(errs, "; "))
	}
	return nil
}

func (r AnalyticsEventRequest) ToEvent(sessionID string) entities.AnalyticsEvent {
	return entities.AnalyticsEvent{
		Name:      entities.AnalyticsEventName(r.Event),
		Label:     r.Label,
		Page:      r.Page,
		SessionID: sessionID,
		Params:    r.Params,
	}
}
