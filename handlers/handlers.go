package handlers

import (
	"songbook/database"
	"songbook/services"
)

// DB ve Lyrics global değişkenleri main.go'dan aktarılacak.
var DB database.Database
var Lyrics *services.LyricsClient
