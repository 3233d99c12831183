package entities

import "time"

// AnalyticsEventName is one of the interactions the site tracks.
type AnalyticsEventName string

const (
	EventNavClick      AnalyticsEventName = "nav_click"
	EventButtonClick   AnalyticsEventName = "button_click"
	EventWhatsAppClick AnalyticsEventName = "whatsapp_click"
	EventFormSubmit    AnalyticsEventName = "form_submit"
)

// AnalyticsEvent is a fire-and-forget notification about an interaction.
type AnalyticsEvent struct {
	Name       AnalyticsEventName `json:"event"`
	Label      string             `json:"label,omitempty"`
	Page       string             `json:"page,omitempty"`
	SessionID  string             `json:"session_id,omitempty"`
	Params     map[string]any     `json:"params,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
