package test

import (
	"context"
	"errors"

	"github.com/polkiloo/tareffa/internal/domain/model"
	pkgAuth "github.com/polkiloo/tareffa/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues tokens of the form "token:<session>" unless overridden.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(sessionID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(sessionID)
	}
	return "token:" + sessionID, nil
}

// ParseToken reverses IssueToken.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[len(prefix):], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// IdentityResolverStub implements middleware identity lookup.
type IdentityResolverStub struct {
	Identity  *model.Identity
	Err       error
	ResolveFn func(context.Context, string) (*model.Identity, error)
}

// CurrentIdentity either delegates to override or returns predefined result.
func (s IdentityResolverStub) CurrentIdentity(ctx context.Context, token string) (*model.Identity, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Identity, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
