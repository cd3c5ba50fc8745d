package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"songbook/database"
	"songbook/helpers"
)

// DB global değişkeni main.go'dan aktarılacak.
var DB database.Database

// IsLogin, korumalı rotalara yalnızca geçerli bir erişim tokenı taşıyan isteklerin
// ulaşmasına izin verir. Token çözülse bile kullanıcının hâlâ var olduğu her istekte
// veritabanından doğrulanır; silinmiş bir hesabın tokenı sahte tokendan ayırt edilmez.
func IsLogin(c *fiber.Ctx) error {
	token := c.Get("token")
	if token == "" {
		token = c.Get("Access-Token")
	}
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"token": fiber.Map{"message": "Please provide your access token"}},
		})
	}

	claims, err := helpers.DecodeToken(token)
	if err != nil {
		return invalidToken(c)
	}

	var userID uuid.UUID
	err = DB.QueryRow(c.Context(), `SELECT id FROM t_users WHERE email = $1`, claims.Email).Scan(&userID)
	if err != nil {
		return invalidToken(c)
	}

	// Çözülen kimliği sonraki handler'lara aktar.
	c.Locals("currentUser", claims)

	return c.Next()
}

func invalidToken(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": fiber.Map{"token": fiber.Map{"message": "Invalid access token"}},
	})
}
