package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/mocks"
	"github.com/imaginarybank/webcore/internal/ports"
	"github.com/imaginarybank/webcore/internal/testutil"
)

type fakeTokenClearer struct {
	clears atomic.Int32
}

func (f *fakeTokenClearer) Clear() { f.clears.Add(1) }

func TestAuthFlow_LoginURL(t *testing.T) {
	flow := NewAuthFlow(AuthFlowOptions{})

	assert.Equal(t, "/api/v1/auth/oidc/start", flow.LoginURL(""))
	assert.Equal(t, "/api/v1/auth/oidc/start?redirect=%2Faccounts", flow.LoginURL("/accounts"))
}

func TestAuthFlow_BeginLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAuthProvider(ctrl)
	provider.EXPECT().Begin(gomock.Any(), ports.BeginInput{ReturnPath: "/sites"}).
		Return("https://idp.example.com/auth?state=s1", "s1", "n1", nil)

	flow := NewAuthFlow(AuthFlowOptions{Provider: provider})

	result, err := flow.BeginLogin(context.Background(), "/sites")

	require.NoError(t, err)
	assert.Equal(t, "https://idp.example.com/auth?state=s1", result.AuthURL)
	assert.Equal(t, "s1", result.State)
	assert.Equal(t, "n1", result.Nonce)
}

func TestAuthFlow_BeginLogin_NoProvider(t *testing.T) {
	flow := NewAuthFlow(AuthFlowOptions{})

	_, err := flow.BeginLogin(context.Background(), "/sites")
	assert.Error(t, err)
}

func TestAuthFlow_CompleteLogin_InvalidatesSessionCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAuthProvider(ctrl)
	api := mocks.NewMockSessionAPI(ctrl)

	identity := domainauth.Identity{PrincipalID: "ops-1", Email: "ops@example.com"}
	provider.EXPECT().Exchange(gomock.Any(), ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"}).
		Return(identity, nil)

	anon := domainauth.Anonymous()
	authed := testutil.NewSession().Build()
	gomock.InOrder(
		api.EXPECT().FetchSession(gomock.Any()).Return(anon, apperrors.Unauthenticated("no session")),
		api.EXPECT().FetchSession(gomock.Any()).Return(authed, nil),
	)

	sessions := NewSessionCache(SessionCacheOptions{API: api})
	flow := NewAuthFlow(AuthFlowOptions{
		API:      api,
		Provider: provider,
		Caches:   AuthFlowCaches{Sessions: sessions},
	})
	ctx := context.Background()

	assert.True(t, sessions.Get(ctx).IsAnonymous())

	got, err := flow.CompleteLogin(ctx, ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	// The stale anonymous entry must be gone.
	assert.Equal(t, authed, sessions.Get(ctx))
}

func TestAuthFlow_Logout_ClearsBothCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	api.EXPECT().Logout(gomock.Any()).Return(nil)
	api.EXPECT().FetchSession(gomock.Any()).Return(testutil.NewSession().Build(), nil).Times(2)

	sessions := NewSessionCache(SessionCacheOptions{API: api})
	tokens := &fakeTokenClearer{}
	flow := NewAuthFlow(AuthFlowOptions{
		API:    api,
		Caches: AuthFlowCaches{Sessions: sessions, Tokens: tokens},
	})
	ctx := context.Background()

	sessions.Get(ctx)

	require.NoError(t, flow.Logout(ctx))
	assert.Equal(t, int32(1), tokens.clears.Load())

	// Next read re-fetches (second FetchSession expectation).
	sessions.Get(ctx)
}

func TestAuthFlow_Logout_ClearsCachesEvenOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	api.EXPECT().Logout(gomock.Any()).Return(apperrors.Transport(nil, "connection reset"))

	sessions := NewSessionCache(SessionCacheOptions{API: api})
	tokens := &fakeTokenClearer{}
	flow := NewAuthFlow(AuthFlowOptions{
		API:    api,
		Caches: AuthFlowCaches{Sessions: sessions, Tokens: tokens},
	})

	err := flow.Logout(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int32(1), tokens.clears.Load())
}
