package models

import (
	"time"

	"gorm.io/datatypes"
)

// AIOutput is one stored generation: the form input that produced it, the AI
// response text, and the creator it belongs to. Column names match the live
// table, which predates this service.
type AIOutput struct {
	ID           uint           `json:"id" gorm:"primaryKey;column:id"`
	FormData     datatypes.JSON `json:"formData" gorm:"column:formData"`
	AIResponse   *string        `json:"aiResponse" gorm:"column:aiResponse"`
	TemplateSlug *string        `json:"templateSlug" gorm:"column:templateSlug"`
	CreatedBy    string         `json:"createdBy" gorm:"column:createdBy"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:createdAt"`
}

// TableName keeps the camel-cased table name the frontend already writes to
func (AIOutput) TableName() string { return "aiOutput" }

// HistoryEntry is the normalized, frontend-facing shape of a stored output.
// FormData is always a structured mapping and Query is the best-effort
// extracted input string. Built per request, never persisted.
type HistoryEntry struct {
	ID           uint                   `json:"id"`
	FormData     map[string]interface{} `json:"formData"`
	AIResponse   string                 `json:"aiResponse"`
	TemplateSlug string                 `json:"templateSlug"`
	CreatedBy    string                 `json:"createdBy"`
	CreatedAt    time.Time              `json:"createdAt"`
	Query        string                 `json:"query"`
}
