package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Storage, şarkı sözü önbelleğinin kullandığı minimal arabirim.
// gofiber/storage sürücüleri (redis dahil) bu arabirimi sağlar.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// LyricsClient, harici şarkı sözü arama servisine istek atar.
// Cache nil olabilir; o durumda her çağrı doğrudan servise gider.
type LyricsClient struct {
	baseURL    string
	httpClient *http.Client
	cache      Storage
	ttl        time.Duration
}

func NewLyricsClient(baseURL string, client *http.Client, cache Storage, ttl time.Duration) *LyricsClient {
	if baseURL == "" {
		baseURL = "https://api.lyrics.ovh/v1"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &LyricsClient{
		baseURL:    baseURL,
		httpClient: client,
		cache:      cache,
		ttl:        ttl,
	}
}

// Fetch, verilen sanatçı/başlık için şarkı sözünü getirir.
// Ağ hatası veya 200 dışı her yanıt hata olarak döner; çağıran bunu istemci hatasına çevirir.
func (l *LyricsClient) Fetch(ctx context.Context, artist, title string) (string, error) {
	key := normalize(artist) + "/" + normalize(title)

	if l.cache != nil {
		if val, err := l.cache.Get(key); err == nil && len(val) > 0 {
			return string(val), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+key, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Lyrics string `json:"lyrics"`
		Error  string `json:"error"`
	}

	if resp.StatusCode != http.StatusOK {
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error != "" {
			return "", fmt.Errorf("lyrics lookup failed: %s", body.Error)
		}
		return "", fmt.Errorf("lyrics lookup failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("lyrics lookup failed: %w", err)
	}

	if l.cache != nil {
		// Önbellek yazım hatası aramayı geçersiz kılmaz.
		_ = l.cache.Set(key, []byte(body.Lyrics), l.ttl)
	}

	return body.Lyrics, nil
}

// normalize, boşluk dizilerini arama servisinin yol formatına (%20) çevirir.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), "%20")
}
