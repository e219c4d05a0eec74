package handler

import (
	"net/http"
	"testing"

	"vidtube-go/internal/model"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture() *gin.Engine {
	alice := &model.User{ID: 1, Username: "alice"}
	bob := &model.User{ID: 2, Username: "bob"}
	users := newStubUsers(alice, bob)
	h := NewSubscriptionHandler(service.NewSubscriptionService(newStubSubscriptions(), users))

	r, authed := newTestEngine(alice)
	authed.POST("/subscriptions/c/:channelId", h.Toggle)
	authed.POST("/subscriptions/c", h.Subscribe)
	authed.DELETE("/subscriptions/c", h.Unsubscribe)
	authed.GET("/subscriptions/u/:channelId", h.ListSubscribers)
	return r
}

func TestSubscriptionToggle(t *testing.T) {
	r := newSubscriptionFixture()

	w := doJSON(t, r, http.MethodPost, "/subscriptions/c/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Subscribed successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"subscribed": true, "subscribersCount": float64(1)}, body["data"])

	w = doJSON(t, r, http.MethodPost, "/subscriptions/c/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unsubscribed successfully", decode(t, w)["message"])
}

func TestSubscriptionErrors(t *testing.T) {
	r := newSubscriptionFixture()

	cases := []struct {
		name   string
		method string
		target string
		body   interface{}
		code   int
	}{
		{"self", http.MethodPost, "/subscriptions/c/1", nil, http.StatusBadRequest},
		{"unknown channel", http.MethodPost, "/subscriptions/c/99", nil, http.StatusNotFound},
		{"invalid id", http.MethodPost, "/subscriptions/c/abc", nil, http.StatusBadRequest},
		{"missing channel id", http.MethodPost, "/subscriptions/c", gin.H{}, http.StatusBadRequest},
		{"not subscribed", http.MethodDelete, "/subscriptions/c", gin.H{"channelId": 2}, http.StatusNotFound},
		{"subscribers of unknown channel", http.MethodGet, "/subscriptions/u/99", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, false, decode(t, w)["success"])
		})
	}
}

func TestSubscribeTwiceConflicts(t *testing.T) {
	r := newSubscriptionFixture()

	w := doJSON(t, r, http.MethodPost, "/subscriptions/c", gin.H{"channelId": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/subscriptions/c", gin.H{"channelId": 2})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/subscriptions/c", gin.H{"channelId": 2})
	assert.Equal(t, http.StatusOK, w.Code)
}
