package identity

import (
	"context"
	"fmt"
	"sync"

	"bookclub/internal/models"

	"github.com/google/uuid"
)

// MemoryProvider is an in-process Provider used for local runs and tests.
type MemoryProvider struct {
	mu       sync.Mutex
	accounts map[string]string // email -> uid
}

// NewMemoryProvider creates an empty in-memory identity provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{accounts: make(map[string]string)}
}

func (p *MemoryProvider) CreateUser(_ context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password must not be empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return nil, fmt.Errorf("the email address is already in use by another account")
	}

	uid := uuid.NewString()
	p.accounts[email] = uid
	return &models.Account{UID: uid, Email: email}, nil
}

func (p *MemoryProvider) CustomToken(_ context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email must not be empty")
	}
	// Opaque stand-in for a provider token; callers only check for success.
	return "memory-token-" + uuid.NewString(), nil
}
