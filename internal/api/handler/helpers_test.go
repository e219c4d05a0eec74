package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 10},
		{"?page=3&limit=20", 3, 20},
		{"?page=0&limit=-1", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
		{"?limit=500", 1, 50},
		{"?page=288230376151711744&limit=50", 10000, 50},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)

			page, limit := parsePagination(c)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	r, _ := newTestEngine(nil)
	r.GET("/videos/:videoId", func(c *gin.Context) {
		id, ok := parseIDParam(c, "videoId", "Invalid video id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := doJSON(t, r, http.MethodGet, "/videos/42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(42), decode(t, w)["id"])

	for _, bad := range []string{"abc", "0", "-3"} {
		w := doJSON(t, r, http.MethodGet, "/videos/"+bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		body := decode(t, w)
		assert.Equal(t, "Invalid video id", body["message"])
		assert.Equal(t, false, body["success"])
	}
}

func TestCurrentUserMissing(t *testing.T) {
	r, authed := newTestEngine(nil)
	authed.GET("/me", func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := doJSON(t, r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized request", decode(t, w)["message"])
}

func TestHealthcheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all up", func(t *testing.T) {
		r, _ := newTestEngine(nil)
		h := NewHealthHandler("vidtube-go", "1.0.0", map[string]Pinger{"database": up})
		r.GET("/healthcheck", h.Healthcheck)

		w := doJSON(t, r, http.MethodGet, "/healthcheck", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "vidtube-go", data["service"])
		assert.Equal(t, map[string]interface{}{"database": "up"}, data["dependencies"])
	})

	t.Run("dependency down", func(t *testing.T) {
		r, _ := newTestEngine(nil)
		h := NewHealthHandler("vidtube-go", "1.0.0", map[string]Pinger{"database": up, "redis": down})
		r.GET("/healthcheck", h.Healthcheck)

		w := doJSON(t, r, http.MethodGet, "/healthcheck", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Len(t, body["errors"], 1)
	})
}
