// Package sesiones firma y valida el token que viaja en la cookie de sesión.
// El token es un JWT HS256 que solo transporta el ID de sesión: la identidad
// del usuario vive en el store del servidor, así el logout revoca de verdad.
package sesiones

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el ID de la sesión del lado servidor.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}

// Firmar genera el token firmado para una sesión ya creada en el store.
func Firmar(secret, sessionID string, ttlMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sesiones: secret vacío")
	}
	if sessionID == "" {
		return "", fmt.Errorf("sesiones: session_id vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlMinutes) * time.Minute)),
		},
		SessionID: sessionID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validar verifica firma y expiración del token y devuelve el ID de sesión.
func Validar(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sesiones: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.SessionID, nil
}
