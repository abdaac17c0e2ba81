package models

import "time"

// Base — общие поля времени для всех таблиц
type Base struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
