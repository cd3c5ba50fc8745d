package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"songbook/models"
)

type songBody struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// CreateSong, yeni bir şarkı ekler. Sözler kayıttan önce harici arama
// servisinden senkron olarak getirilir; arama başarısız olursa kayıt yapılmaz.
func CreateSong(c *fiber.Ctx) error {
	var body songBody
	_ = c.BodyParser(&body)

	if errs := validateSong(body); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	lyrics, err := Lyrics.Fetch(c.Context(), body.Artist, body.Title)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"lyrics": fiber.Map{"message": err.Error()}},
		})
	}

	song := models.Song{
		ID:     uuid.New(),
		Title:  body.Title,
		Artist: body.Artist,
		Lyrics: lyrics,
	}

	query := `INSERT INTO t_songs (id, title, artist, lyrics) VALUES ($1, $2, $3, $4)`
	_, err = DB.Exec(c.Context(), query, song.ID, song.Title, song.Artist, song.Lyrics)
	if err != nil {
		log.Printf("Şarkı ekleme hatası: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"errors": fiber.Map{"song": fiber.Map{"message": "Could not create song"}},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(song)
}

// GetSongs, tüm şarkıları listeler. Sıralama garantisi yoktur.
func GetSongs(c *fiber.Ctx) error {
	rows, err := DB.Query(c.Context(), `SELECT id, title, artist, lyrics FROM t_songs`)
	if err != nil {
		log.Println("Şarkı sorgulama hatası:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"songs": fiber.Map{"message": err.Error()}},
		})
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Lyrics); err != nil {
			log.Println("Şarkı tarama hatası:", err)
			continue
		}
		songs = append(songs, song)
	}

	return c.Status(fiber.StatusOK).JSON(songs)
}

// GetSongByID, tek bir şarkıyı getirir.
func GetSongByID(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// Bozuk kimlik, olmayan kayıtla aynı şekilde yanıtlanır.
		return songNotFound(c)
	}

	var song models.Song
	query := `SELECT id, title, artist, lyrics FROM t_songs WHERE id = $1`
	err = DB.QueryRow(c.Context(), query, songID).Scan(&song.ID, &song.Title, &song.Artist, &song.Lyrics)
	if err != nil {
		if err == pgx.ErrNoRows {
			return songNotFound(c)
		}
		log.Println("Şarkı detay sorgu hatası:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"song": fiber.Map{"message": err.Error()}},
		})
	}

	return c.Status(fiber.StatusOK).JSON(song)
}

// UpdateSong, bir şarkının başlık ve sanatçı alanlarını olduğu gibi değiştirir.
// Sözler yeniden getirilmez.
func UpdateSong(c *fiber.Ctx) error {
	var body songBody
	_ = c.BodyParser(&body)

	// Alan doğrulaması kayıt aramasından önce çalışır.
	if errs := validateSong(body); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return songNotFound(c)
	}

	var song models.Song
	query := `UPDATE t_songs SET title = $1, artist = $2 WHERE id = $3 RETURNING id, title, artist, lyrics`
	err = DB.QueryRow(c.Context(), query, body.Title, body.Artist, songID).
		Scan(&song.ID, &song.Title, &song.Artist, &song.Lyrics)
	if err != nil {
		if err == pgx.ErrNoRows {
			return songNotFound(c)
		}
		log.Println("Şarkı güncelleme hatası:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"song": fiber.Map{"message": err.Error()}},
		})
	}

	return c.Status(fiber.StatusOK).JSON(song)
}

// DeleteSong, bir şarkıyı siler ve silinen kaydın son halini döner.
func DeleteSong(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return songNotFound(c)
	}

	var song models.Song
	query := `DELETE FROM t_songs WHERE id = $1 RETURNING id, title, artist, lyrics`
	err = DB.QueryRow(c.Context(), query, songID).
		Scan(&song.ID, &song.Title, &song.Artist, &song.Lyrics)
	if err != nil {
		if err == pgx.ErrNoRows {
			return songNotFound(c)
		}
		log.Println("Şarkı silme hatası:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"delete": fiber.Map{"message": err.Error()}},
		})
	}

	return c.Status(fiber.StatusOK).JSON(song)
}

func validateSong(body songBody) fiber.Map {
	errs := fiber.Map{}
	if body.Title == "" {
		errs["title"] = fiber.Map{"message": "Title is required"}
	}
	if body.Artist == "" {
		errs["artist"] = fiber.Map{"message": "Artist is required"}
	}
	return errs
}

func songNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"errors": fiber.Map{"song": fiber.Map{"message": "Song not found"}},
	})
}
