package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/pkg/errors"
)

// SecretValue keeps credentials out of logs and JSON dumps of the config.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

func (s SecretValue) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PrivateKey parses the configured PEM. When none is configured a fresh 2048 bit
// key is generated, so tokens do not survive a restart.
func (c TokenConfig) PrivateKey() (*rsa.PrivateKey, error) {
	if c.RsaPrivateKeyPem == "" {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, errors.Wrap(err, "generate private key")
		}
		return key, nil
	}
	return ParseRSAPrivateKey([]byte(c.RsaPrivateKeyPem.Value()))
}

// ParseRSAPrivateKey accepts PKCS1 and PKCS8 PEM blocks.
func ParseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse private key")
	}
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return rsaKey, nil
}
