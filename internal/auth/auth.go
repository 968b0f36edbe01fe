package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the staff identity carried by a verified token.
type Claims struct {
	StaffID int64
	Email   string
	Role    string
}

type Auth struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttlHours int) Auth {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return Auth{
		secret: []byte(secret),
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

func (a Auth) GenerateToken(staffID int64, email, role string) (string, error) {
	if staffID == 0 || email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"staff_id": staffID,
		"email":    email,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(a.ttl).Unix(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return signed, nil
}

// VerifyToken accepts both "Bearer <token>" and a bare token string.
func (a Auth) VerifyToken(tokenString string) (Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Claims{}, errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return Claims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return Claims{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token claims")
	}

	staffID, ok := claims["staff_id"].(float64)
	if !ok || staffID == 0 {
		return Claims{}, errors.New("missing staff id in token")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Claims{
		StaffID: int64(staffID),
		Email:   email,
		Role:    role,
	}, nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.New("invalid credentials")
	}
	return nil
}
