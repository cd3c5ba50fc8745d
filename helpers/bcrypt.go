package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword, düz metin şifreyi bcrypt ile özetler.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

// MatchPassword, düz metin şifreyi kayıtlı özetle karşılaştırır.
// Özet bozuksa veya eşleşme yoksa false döner, hata fırlatmaz.
func MatchPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
