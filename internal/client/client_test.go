package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MonthlyMasti/internal/model/dto"
)

func TestSubmitParsesLegacySuccess(t *testing.T) {
	var got dto.SubmitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Submit(context.Background(), dto.SubmitRequest{Name: "Priya", FormTimestamp: "ts"})
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.Name)
}

func TestSubmitSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"store offline"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Submit(context.Background(), dto.SubmitRequest{Name: "Priya"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store offline")
}

func TestNotify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.NotifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Priya", req.Name)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Notify(context.Background(), "Priya"))
}

func TestUploadMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "photos", r.FormValue("kind"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "pic.jpg", header.Filename)

		w.Write([]byte(`{"data":{"url":"https://cdn.test/photos/1_pic.jpg"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	url, err := c.Upload(context.Background(), "photos", "pic.jpg", bytes.NewReader([]byte("jpegdata")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/photos/1_pic.jpg", url)
}

func TestSignInStoresAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/login":
			w.Write([]byte(`{"data":{"access_token":"tok123","refresh_token":"ref","expires_in":1800,"user":{"id":"42","email":"a@b.c"}}}`))
		case "/v1/users/me":
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":{"id":"42","email":"a@b.c"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SignIn(context.Background(), dto.SignInRequest{Email: "a@b.c", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", resp.AccessToken)

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", me.ID)
}

func TestEnvelopeErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SignIn(context.Background(), dto.SignInRequest{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_CREDENTIALS")
}
