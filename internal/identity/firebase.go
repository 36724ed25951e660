package identity

import (
	"context"
	"fmt"
	"time"

	"bookclub/internal/models"
	"bookclub/internal/observability"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider against Firebase Auth.
type FirebaseProvider struct {
	client  *auth.Client
	timeout time.Duration
}

// NewFirebaseProvider initializes the Firebase app from a service account
// credentials file and returns a Provider backed by its Auth client.
func NewFirebaseProvider(ctx context.Context, credentialsFile string, timeout time.Duration) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase auth client: %w", err)
	}

	return &FirebaseProvider{client: client, timeout: timeout}, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		observability.IdentityCallErrors.WithLabelValues("create_user").Inc()
		return nil, err
	}

	return &models.Account{UID: record.UID, Email: record.Email}, nil
}

func (p *FirebaseProvider) CustomToken(ctx context.Context, email string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	token, err := p.client.CustomToken(ctx, email)
	if err != nil {
		observability.IdentityCallErrors.WithLabelValues("custom_token").Inc()
		return "", err
	}
	return token, nil
}
