package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/domain/repository"
	"github.com/polkiloo/tareffa/internal/pkg/auth"
	"github.com/polkiloo/tareffa/internal/pkg/ids"
)

const sessionKeyPrefix = "tareffa_user:"

// SessionKey returns the durable storage key of a session.
func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// AdminCredentials identify the single studio administrator.
type AdminCredentials struct {
	Email    string
	Password string
}

// SessionUseCase signs identities in and out. Sign-in never fails on credentials:
// the administrator credentials yield the admin identity and anything else yields
// the generic client identity.
type SessionUseCase struct {
	sessions   repository.SessionRepository
	hasher     auth.PasswordHasher
	tokens     auth.Strategy
	adminEmail string
	adminHash  string
	now        func() time.Time
}

// NewSessionUseCase constructs SessionUseCase, hashing the admin password once.
func NewSessionUseCase(sessions repository.SessionRepository, hasher auth.PasswordHasher, strategy auth.Strategy, admin AdminCredentials) (*SessionUseCase, error) {
	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return nil, err
	}
	return &SessionUseCase{
		sessions:   sessions,
		hasher:     hasher,
		tokens:     strategy,
		adminEmail: strings.TrimSpace(admin.Email),
		adminHash:  hash,
		now:        time.Now,
	}, nil
}

// SignIn resolves credentials to an identity and opens a session for it.
func (u *SessionUseCase) SignIn(ctx context.Context, email, password string) (*model.Identity, string, error) {
	identity := model.GenericIdentity(u.now())
	if u.isAdmin(email, password) {
		identity = model.AdminIdentity(u.now())
		identity.Email = u.adminEmail
	}
	return u.open(ctx, identity)
}

// SignInWithProvider simulates third party sign-in, always as the generic client.
func (u *SessionUseCase) SignInWithProvider(ctx context.Context) (*model.Identity, string, error) {
	return u.open(ctx, model.GenericIdentity(u.now()))
}

// SignUp opens a session for the generic client carrying the supplied name and email.
func (u *SessionUseCase) SignUp(ctx context.Context, name, email, password string) (*model.Identity, string, error) {
	identity := model.GenericIdentity(u.now())
	identity.Name = name
	identity.Email = email
	return u.open(ctx, identity)
}

// SignOut forgets the session behind token. Unknown or invalid tokens are ignored.
func (u *SessionUseCase) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil
	}
	return u.sessions.Delete(ctx, SessionKey(sessionID))
}

// Current rehydrates the identity behind token from durable storage.
func (u *SessionUseCase) Current(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	sessionID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	identity, err := u.sessions.Load(ctx, SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return identity, nil
}

func (u *SessionUseCase) isAdmin(email, password string) bool {
	if email != u.adminEmail {
		return false
	}
	return u.hasher.Compare(u.adminHash, password) == nil
}

func (u *SessionUseCase) open(ctx context.Context, identity model.Identity) (*model.Identity, string, error) {
	sessionID := ids.New(ids.PrefixSession)
	token, err := u.tokens.IssueToken(sessionID)
	if err != nil {
		return nil, "", err
	}
	if err := u.sessions.Save(ctx, SessionKey(sessionID), identity); err != nil {
		return nil, "", err
	}
	return &identity, token, nil
}
