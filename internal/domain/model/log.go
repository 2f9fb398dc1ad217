package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action types recorded in the activity log.
const (
	ActionCalculate     = "calculate"
	ActionFormInput     = "form_input"
	ActionFormStep      = "form_step"
	ActionLogin         = "login"
	ActionUpdateProduct = "update_product"
)

// LogEntry is a request or activity record stored in the logs collection.
// Context-specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`

	Subject    string `bson:"subject,omitempty" json:"subject,omitempty"`
	ActionType string `bson:"action_type,omitempty" json:"action_type,omitempty"`
	ProductID  string `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Mode       Mode   `bson:"mode,omitempty" json:"mode,omitempty"`
	Trigger    string `bson:"trigger,omitempty" json:"trigger,omitempty"`

	Fields map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField sets one entry in Fields, allocating the map on first use.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into Fields.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	for k, v := range fields {
		e.WithField(k, v)
	}
	return e
}

// LogQueryOptions filters activity log lookups.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ProductID  string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
