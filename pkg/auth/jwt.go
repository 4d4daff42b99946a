// Package auth provides JWT issuing/validation and the gRPC interceptor that
// guards the AgroCrédito service surface.
package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig selects the signing mode. Exactly one of the key fields is
// required: PrivateKeyPEM for issuer mode, PublicKeyPEM for validation-only
// mode, or Secret for symmetric HS256.
type JWTConfig struct {
	Secret        string
	PrivateKeyPEM string
	PublicKeyPEM  string
	Issuer        string
	Expiration    time.Duration
}

// JWTService signs and validates tokens.
type JWTService struct {
	cfg        JWTConfig
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewJWTService builds a service from cfg. With only a public key configured
// the service can validate but not issue.
func NewJWTService(cfg JWTConfig) (*JWTService, error) {
	svc := &JWTService{cfg: cfg}

	switch {
	case cfg.PrivateKeyPEM != "":
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth: parse RSA private key: %w", err)
		}
		svc.privateKey = key
		svc.publicKey = &key.PublicKey
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth: parse RSA public key: %w", err)
		}
		svc.publicKey = key
	case cfg.Secret != "":
		// HS256 mode, nothing to parse.
	default:
		return nil, errors.New("auth: config requires PrivateKeyPEM, PublicKeyPEM, or Secret")
	}
	return svc, nil
}

func (s *JWTService) rsaMode() bool { return s.publicKey != nil }

// GenerateToken issues a token for userID carrying the given roles.
func (s *JWTService) GenerateToken(userID uuid.UUID, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID: userID,
		Roles:  roles,
	}

	if s.rsaMode() {
		if s.privateKey == nil {
			return "", errors.New("auth: validation-only service cannot issue tokens")
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
		if err != nil {
			return "", fmt.Errorf("auth: sign token: %w", err)
		}
		return signed, nil
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString, checking signature, expiry, and issuer.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	method := "HS256"
	keyFunc := func(*jwt.Token) (interface{}, error) { return []byte(s.cfg.Secret), nil }
	if s.rsaMode() {
		method = "RS256"
		keyFunc = func(*jwt.Token) (interface{}, error) { return s.publicKey, nil }
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{method})}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("auth: parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}
	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key.
func LoadKeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("auth: read key file %q: %w", path, err)
	}
	return data, nil
}

// GenerateKeyPair returns a fresh PEM-encoded 2048-bit RSA keypair. Intended
// for development and tests.
func GenerateKeyPair() (privateKeyPEM, publicKeyPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: generate RSA key: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: marshal public key: %w", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return privPEM, pubPEM, nil
}
