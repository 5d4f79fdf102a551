package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertEvent - оповещение о высоком риске, уходящее во внешний вебхук
type AlertEvent struct {
	ID        uuid.UUID `json:"id"`
	Level     string    `json:"level"`
	Area      string    `json:"area,omitempty"`
	District  string    `json:"district,omitempty"`
	Risk      int       `json:"risk"`
	Message   string    `json:"message"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
