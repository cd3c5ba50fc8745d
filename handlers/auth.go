package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"songbook/helpers"
	"songbook/models"
)

// RegisterUser, yeni bir kullanıcı kaydı oluşturur.
func RegisterUser(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// Gövde çözülemezse alanlar boş kalır ve doğrulama eksik alanları raporlar.
	_ = c.BodyParser(&body)

	fieldErrors := fiber.Map{}
	if body.Email == "" {
		fieldErrors["email"] = fiber.Map{"message": "Email is required"}
	}
	if body.Password == "" {
		fieldErrors["password"] = fiber.Map{"message": "Password is required"}
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	hashedPassword, err := helpers.HashPassword(body.Password)
	if err != nil {
		log.Printf("Şifre hashleme hatası: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errors": fiber.Map{"register": fiber.Map{"message": "Could not register user"}},
		})
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    body.Email,
		Password: hashedPassword,
	}

	query := `INSERT INTO t_users (id, email, password) VALUES ($1, $2, $3)`
	_, err = DB.Exec(c.Context(), query, user.ID, user.Email, user.Password)
	if err != nil {
		// E-posta benzersizliği tamamen veritabanı kısıtına emanet; eşzamanlı
		// yazımda ikinci kayıt burada reddedilir.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"email": fiber.Map{"message": "Duplicate email"}},
			})
		}
		log.Printf("Kullanıcı kaydı oluşturma hatası: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errors": fiber.Map{"register": fiber.Map{"message": "Could not register user"}},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginUser, kullanıcıyı doğrular ve imzalı erişim tokenı döner.
func LoginUser(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = c.BodyParser(&body)

	var user models.User
	query := `SELECT id, password FROM t_users WHERE email = $1`
	err := DB.QueryRow(c.Context(), query, body.Email).Scan(&user.ID, &user.Password)
	if err != nil || !helpers.MatchPassword(body.Password, user.Password) {
		// Bilinmeyen e-posta ile yanlış şifre aynı mesajı döner, ikisi ayırt edilemez.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"login": fiber.Map{"message": "Invalid email/password"}},
		})
	}

	accessToken, err := helpers.EncodeToken(user.ID.String(), body.Email)
	if err != nil {
		log.Printf("Token imzalama hatası: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errors": fiber.Map{"login": fiber.Map{"message": "Could not sign access token"}},
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"accessToken": accessToken})
}
