package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
)

// EncryptedKind is the kind of the single entry of an encrypted envelope.
const EncryptedKind = "__encrypted__"

// ErrKeySize is returned when a key is not 32 bytes long.
var ErrKeySize = errors.New("encryption key must be 32 bytes (AES-256)")

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new snapshots.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys are old keys tried when decryption with ActiveKey fails.
	// This enables key rotation without losing saved stacks.
	FallbackKeys [][]byte
}

// Validate checks every key length.
func (c EncryptionConfig) Validate() error {
	if len(c.ActiveKey) != 32 {
		return ErrKeySize
	}
	for i, k := range c.FallbackKeys {
		if len(k) != 32 {
			return fmt.Errorf("fallback key %d: %w", i, ErrKeySize)
		}
	}
	return nil
}

type encryptionMiddleware struct {
	next   ports.SnapshotStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that seals snapshots with AES-GCM.
// The stored envelope keeps the container id and save time readable; the
// entries and their screen arguments are only visible through the middleware.
// It panics on an invalid config; call Validate first for user-provided keys.
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	plainText, err := json.Marshal(snap.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot entries: %w", err)
	}

	ciphertext, err := encrypt(plainText, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt snapshot: %w", err)
	}

	envelope := &domain.Snapshot{
		ContainerID: snap.ContainerID,
		SavedAt:     snap.SavedAt,
		Entries: []domain.SnapshotEntry{{
			Kind: EncryptedKind,
			Args: map[string]any{"data": base64.StdEncoding.EncodeToString(ciphertext)},
		}},
	}
	return m.next.Save(ctx, key, envelope)
}

func (m *encryptionMiddleware) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	envelope, err := m.next.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	if len(envelope.Entries) != 1 || envelope.Entries[0].Kind != EncryptedKind {
		// Fail secure: a plain snapshot in an encrypted store is not trusted.
		return nil, errors.New("snapshot is missing encrypted data envelope")
	}
	encoded, ok := envelope.Entries[0].Args["data"].(string)
	if !ok {
		return nil, errors.New("snapshot envelope has no data")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt snapshot: %w", err)
	}

	var entries []domain.SnapshotEntry
	if err := json.Unmarshal(plainText, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decrypted entries: %w", err)
	}

	return &domain.Snapshot{
		ContainerID: envelope.ContainerID,
		SavedAt:     envelope.SavedAt,
		Entries:     entries,
	}, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], nil)
}
