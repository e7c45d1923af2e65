package model

import "time"

// Location carries optional GPS coordinates attached to a message.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Context is optional request metadata. Screen and EntityID feed the system
// prompt; Language is consulted only by the auto-detecting chat route.
type Context struct {
	Screen   string `json:"screen,omitempty"`
	EntityID string `json:"entity_id,omitempty"`
	Language string `json:"language,omitempty"`
}

type Attachment struct {
	Type     string `json:"type" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Filename string `json:"filename" binding:"required"`
}

type ChatRequest struct {
	UserID      string       `json:"user_id" binding:"required"`
	Role        string       `json:"role" binding:"required"`
	Message     string       `json:"message" binding:"required"`
	Context     *Context     `json:"context,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	// Timestamp is the client's send time. It is echoed nowhere; the
	// response carries its own server-side timestamp.
	Timestamp string `json:"timestamp" binding:"required"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Language  string `json:"language"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id"`
}

// NewChatResponse stamps the envelope with the current time. An empty
// response text is valid output.
func NewChatResponse(text, language, userID string) ChatResponse {
	return ChatResponse{
		Response:  text,
		Language:  language,
		Timestamp: time.Now().Format(time.RFC3339),
		UserID:    userID,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type LanguagesResponse struct {
	SupportedLanguages []string `json:"supported_languages"`
	DefaultLanguage    string   `json:"default_language"`
}
