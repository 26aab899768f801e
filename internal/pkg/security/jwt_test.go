package security

import (
	"SocialMapp/internal/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revokedSet map[string]time.Duration

func (r revokedSet) IsRevoked(_ context.Context, signature string) (bool, error) {
	_, ok := r[signature]
	return ok, nil
}

func (r revokedSet) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	r[signature] = ttl
	return nil
}

type brokenRevocations struct{}

func (brokenRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func (brokenRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("secret", "SocialMapp", nil)
	token, err := v.GenerateToken("uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	acct, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, service.Account{ID: "uid-1", Email: "a@example.com"}, acct)
}

func TestVerifier_Expired(t *testing.T) {
	v := NewVerifier("secret", "SocialMapp", nil)
	token, err := v.GenerateToken("uid-1", "a@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, service.ErrExpiredCredential)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestVerifier_Rejects(t *testing.T) {
	ctx := context.Background()
	v := NewVerifier("secret", "SocialMapp", nil)

	_, err := v.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	other := NewVerifier("another-secret", "SocialMapp", nil)
	token, err := other.GenerateToken("uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	foreign := NewVerifier("secret", "someone-else", nil)
	token, err = foreign.GenerateToken("uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestVerifier_Revocation(t *testing.T) {
	ctx := context.Background()
	issuer := NewVerifier("secret", "SocialMapp", nil)
	token, err := issuer.GenerateToken("uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	sig, err := ExtractSignature(token)
	require.NoError(t, err)

	v := NewVerifier("secret", "SocialMapp", revokedSet{sig: time.Hour})
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	v = NewVerifier("secret", "SocialMapp", brokenRevocations{})
	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrDependency)
}

func TestVerifier_RevokeThenVerify(t *testing.T) {
	ctx := context.Background()
	store := revokedSet{}
	v := NewVerifier("secret", "SocialMapp", store)
	token, err := v.GenerateToken("uid-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	_, err = v.Verify(ctx, token)
	require.NoError(t, err)

	require.NoError(t, v.Revoke(ctx, token))
	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.InDelta(t, time.Hour.Seconds(), store[sig].Seconds(), 5)

	_, err = v.Verify(ctx, token)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	assert.ErrorIs(t, NewVerifier("secret", "SocialMapp", nil).Revoke(ctx, token), ErrRevocationDisabled)
}
