package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model/dto"
)

type fakeAPI struct {
	signUpErr  error
	signInErr  error
	signOutErr error
	oauthURL   string
	user       dto.AuthUserSnapshot
}

func (f *fakeAPI) SignUp(_ context.Context, req dto.SignUpRequest) (*dto.AuthTokenResponse, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &dto.AuthTokenResponse{User: f.user}, nil
}

func (f *fakeAPI) SignIn(_ context.Context, req dto.SignInRequest) (*dto.AuthTokenResponse, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &dto.AuthTokenResponse{User: f.user}, nil
}

func (f *fakeAPI) OAuthURL(_ context.Context, provider string) (string, error) {
	return f.oauthURL + provider, nil
}

func (f *fakeAPI) SignOut(_ context.Context) error {
	return f.signOutErr
}

func TestSignInSetsCurrentUser(t *testing.T) {
	api := &fakeAPI{user: dto.AuthUserSnapshot{ID: "42", Email: "priya@example.com"}}
	m := NewManager(api)

	require.Nil(t, m.CurrentUser())

	err := m.SignIn(context.Background(), "priya@example.com", "password123")
	require.NoError(t, err)

	u := m.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "42", u.ID)
	assert.False(t, m.IsLoading())
}

func TestSignInFailureKeepsUserNil(t *testing.T) {
	api := &fakeAPI{signInErr: errors.New("INVALID_CREDENTIALS: Invalid email or password")}
	m := NewManager(api)

	err := m.SignIn(context.Background(), "priya@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, m.CurrentUser())
	assert.False(t, m.IsLoading())
}

func TestSignUpSetsCurrentUser(t *testing.T) {
	api := &fakeAPI{user: dto.AuthUserSnapshot{ID: "7"}}
	m := NewManager(api)

	err := m.SignUp(context.Background(), "new@example.com", "password123", "New")
	require.NoError(t, err)
	require.NotNil(t, m.CurrentUser())
}

func TestSignOutClearsUser(t *testing.T) {
	api := &fakeAPI{user: dto.AuthUserSnapshot{ID: "42"}}
	m := NewManager(api)

	require.NoError(t, m.SignIn(context.Background(), "a@b.c", "password123"))
	require.NotNil(t, m.CurrentUser())

	require.NoError(t, m.SignOut(context.Background()))
	assert.Nil(t, m.CurrentUser())
}

func TestSignInWithProviderReturnsURL(t *testing.T) {
	api := &fakeAPI{oauthURL: "https://auth.test/"}
	m := NewManager(api)

	url, err := m.SignInWithProvider(context.Background(), "github")
	require.NoError(t, err)
	assert.Equal(t, "https://auth.test/github", url)
}

func TestSubscribeNotifiesAndUnsubscribes(t *testing.T) {
	api := &fakeAPI{user: dto.AuthUserSnapshot{ID: "42"}}
	m := NewManager(api)

	calls := 0
	cancel := m.Subscribe(func() { calls++ })

	require.NoError(t, m.SignIn(context.Background(), "a@b.c", "password123"))
	// loading true, user set, loading false：至少三次通知
	assert.GreaterOrEqual(t, calls, 3)

	cancel()
	before := calls
	require.NoError(t, m.SignOut(context.Background()))
	assert.Equal(t, before, calls)
}
