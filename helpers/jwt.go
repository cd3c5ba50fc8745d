package helpers

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// İmza anahtarı süreç boyunca sabittir; main konfigürasyonu yükledikten sonra SetSecret çağırır.
var jwtSecret = []byte(os.Getenv("SECRET"))

// Claims, erişim tokenına gömülen kimlik yüküdür.
// Süre sınırı yoktur, token anahtar değişene kadar geçerlidir.
type Claims struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SetSecret, imza anahtarını süreç başlangıcında ayarlar.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// EncodeToken, kullanıcı kimliğini HS256 ile imzalı kompakt bir tokena çevirir.
func EncodeToken(id, email string) (string, error) {
	claims := &Claims{ID: id, Email: email}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// DecodeToken, tokenı doğrular ve içindeki claims'i döner.
// Bozuk yapı veya geçersiz imza hata olarak döner.
func DecodeToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("geçersiz token")
	}

	return claims, nil
}
