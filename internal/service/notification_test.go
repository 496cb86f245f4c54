package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model"
	"MonthlyMasti/pkg/email"
	"MonthlyMasti/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func withUsers(t *testing.T, users []model.User, err error) {
	t.Helper()
	orig := listUsers
	listUsers = func(ctx context.Context) ([]model.User, error) {
		return users, err
	}
	t.Cleanup(func() { listUsers = orig })
}

func withMockEmail(t *testing.T) *email.MockClient {
	t.Helper()
	mock := email.NewMockClient()
	email.SetClient(mock)
	return mock
}

func TestNotifyAllSendsToEveryUser(t *testing.T) {
	withUsers(t, []model.User{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	}, nil)
	mock := withMockEmail(t)

	err := Notification().NotifyAll(context.Background(), "Priya")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 2)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, mock.SentTo())
	assert.Equal(t, notifySubject, mock.Calls[0].Subject)
	assert.Contains(t, mock.Calls[0].Text, "Priya just submitted their monthly check-in")
}

func TestNotifyAllNameFallback(t *testing.T) {
	withUsers(t, []model.User{{Email: "a@example.com"}}, nil)
	mock := withMockEmail(t)

	err := Notification().NotifyAll(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Text, "Someone just submitted")
}

func TestNotifyAllContinuesPastRecipientFailure(t *testing.T) {
	withUsers(t, []model.User{
		{Email: "fail@example.com"},
		{Email: "ok@example.com"},
	}, nil)
	mock := withMockEmail(t)
	mock.FailFor["fail@example.com"] = true

	err := Notification().NotifyAll(context.Background(), "Priya")
	// 单个收件人失败不影响整体结果
	require.NoError(t, err)
	assert.Contains(t, mock.SentTo(), "ok@example.com")
}

func TestNotifyAllSkipsUsersWithoutEmail(t *testing.T) {
	withUsers(t, []model.User{
		{Email: ""},
		{Email: "a@example.com"},
	}, nil)
	mock := withMockEmail(t)

	err := Notification().NotifyAll(context.Background(), "Priya")
	require.NoError(t, err)

	assert.Equal(t, []string{"a@example.com"}, mock.SentTo())
}

func TestNotifyAllUserFetchFailure(t *testing.T) {
	withUsers(t, nil, errors.New("db offline"))
	mock := withMockEmail(t)

	err := Notification().NotifyAll(context.Background(), "Priya")
	require.Error(t, err)
	assert.Empty(t, mock.Calls)
}

func TestNotifyAllNoUsers(t *testing.T) {
	withUsers(t, nil, nil)
	mock := withMockEmail(t)

	err := Notification().NotifyAll(context.Background(), "Priya")
	require.NoError(t, err)
	assert.Empty(t, mock.Calls)
}
