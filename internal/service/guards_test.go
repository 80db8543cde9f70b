package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/mocks"
	"github.com/imaginarybank/webcore/internal/testutil"
)

func newGuard(t *testing.T, sess domainauth.Session, fetchErr error) *Guard {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	api.EXPECT().FetchSession(gomock.Any()).Return(sess, fetchErr).AnyTimes()
	return NewGuard(GuardOptions{
		Sessions: NewSessionCache(SessionCacheOptions{API: api}),
	})
}

func TestGuard_RequireAuthenticated_Allows(t *testing.T) {
	guard := newGuard(t, testutil.NewSession().Build(), nil)

	decision := guard.RequireAuthenticated(context.Background(), "/accounts")

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.RedirectTo)
}

func TestGuard_RequireAuthenticated_RedirectsWithDestination(t *testing.T) {
	guard := newGuard(t, domainauth.Anonymous(), nil)

	decision := guard.RequireAuthenticated(context.Background(), "/home")

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login?redirect=%2Fhome", decision.RedirectTo)
}

func TestGuard_RequireAuthenticated_ToleratesFetchFailure(t *testing.T) {
	guard := newGuard(t, domainauth.Anonymous(), apperrors.Transport(nil, "connection refused"))

	decision := guard.RequireAuthenticated(context.Background(), "/accounts")

	// A broken fetch resolves to anonymous; the gate redirects, it never errors.
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.RedirectTo, "/login?redirect=")
}

func TestGuard_RequireAnonymous_Allows(t *testing.T) {
	guard := newGuard(t, domainauth.Anonymous(), nil)

	decision := guard.RequireAnonymous(context.Background(), "/login")

	assert.True(t, decision.Allowed)
}

func TestGuard_RequireAnonymous_RedirectsToLanding(t *testing.T) {
	guard := newGuard(t, testutil.NewSession().Build(), nil)

	for _, destination := range []string{"/login", "/register", "/onboarding"} {
		decision := guard.RequireAnonymous(context.Background(), destination)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "/home", decision.RedirectTo)
	}
}
