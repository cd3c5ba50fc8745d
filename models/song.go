package models

import "github.com/google/uuid"

// Song modeli, t_songs tablosunu temsil eder.
type Song struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Artist string    `json:"artist"`
	Lyrics string    `json:"lyrics"`
}
