package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainauth "github.com/imaginarybank/webcore/internal/domain/auth"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/mocks"
	"github.com/imaginarybank/webcore/internal/testutil"
)

func TestSessionCache_Get_FetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	sess := testutil.NewSession().Build()
	api.EXPECT().FetchSession(gomock.Any()).Return(sess, nil).Times(1)

	cache := NewSessionCache(SessionCacheOptions{API: api})
	ctx := context.Background()

	first := cache.Get(ctx)
	second := cache.Get(ctx)

	assert.Equal(t, sess, first)
	assert.Equal(t, sess, second)
}

func TestSessionCache_Get_CoalescesConcurrentCallers(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	sess := testutil.NewSession().Build()

	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().FetchSession(gomock.Any()).DoAndReturn(
		func(context.Context) (domainauth.Session, error) {
			close(started)
			<-release
			return sess, nil
		}).Times(1)

	cache := NewSessionCache(SessionCacheOptions{API: api})

	const callers = 8
	results := make([]domainauth.Session, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = cache.Get(context.Background())
		}()
	}
	<-started
	close(release)
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, sess, got)
	}
}

func TestSessionCache_Get_FailureResolvesToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)
	api.EXPECT().FetchSession(gomock.Any()).
		Return(domainauth.Anonymous(), apperrors.Unauthenticated("no session")).
		Times(1)

	cache := NewSessionCache(SessionCacheOptions{API: api})

	got := cache.Get(context.Background())
	assert.True(t, got.IsAnonymous())

	// The failure is cached like a success; no second fetch.
	got = cache.Get(context.Background())
	assert.True(t, got.IsAnonymous())
}

func TestSessionCache_Invalidate_ForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)

	anon := domainauth.Anonymous()
	authed := testutil.NewSession().Build()
	gomock.InOrder(
		api.EXPECT().FetchSession(gomock.Any()).Return(anon, apperrors.Unauthenticated("no session")),
		api.EXPECT().FetchSession(gomock.Any()).Return(authed, nil),
	)

	cache := NewSessionCache(SessionCacheOptions{API: api})
	ctx := context.Background()

	assert.True(t, cache.Get(ctx).IsAnonymous())

	cache.Invalidate()

	assert.Equal(t, authed, cache.Get(ctx))
}

func TestSessionCache_InvalidateDuringFetchDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSessionAPI(ctrl)

	stale := testutil.NewSession().WithPrincipalID("cust-stale").Build()
	fresh := testutil.NewSession().WithPrincipalID("cust-fresh").Build()

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		api.EXPECT().FetchSession(gomock.Any()).DoAndReturn(
			func(context.Context) (domainauth.Session, error) {
				close(started)
				<-release
				return stale, nil
			}),
		api.EXPECT().FetchSession(gomock.Any()).Return(fresh, nil),
	)

	cache := NewSessionCache(SessionCacheOptions{API: api})

	done := make(chan domainauth.Session, 1)
	go func() { done <- cache.Get(context.Background()) }()

	<-started
	cache.Invalidate()
	close(release)
	first := <-done

	got := cache.Get(context.Background())

	assert.Equal(t, "cust-stale", first.PrincipalID)
	assert.Equal(t, "cust-fresh", got.PrincipalID,
		"a fetch resolved after Invalidate must not repopulate the cache")
}
