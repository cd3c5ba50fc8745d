package models

import "github.com/google/uuid"

// User modeli, t_users tablosunu temsil eder.
// Password alanı her zaman bcrypt özetini taşır, düz metin asla saklanmaz.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
}
