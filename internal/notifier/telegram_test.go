package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annakov/streetstore/internal/logger"
	"github.com/annakov/streetstore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() models.Order {
	return models.Order{
		ProductName:      "Худи Oversize Premium",
		Price:            3990,
		Size:             "M",
		TelegramUsername: "buyer_01",
	}
}

func TestSendOrder(t *testing.T) {
	var got sendMessageRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegram(func() string { return "token123" }, func() string { return "-100500" }, &logger.Logger{})
	tg.apiURL = srv.URL

	err := tg.SendOrder(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Equal(t, "/bottoken123/sendMessage", path)
	assert.Equal(t, "-100500", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Худи Oversize Premium")
	assert.Contains(t, got.Text, "3\u00a0990")
	assert.Contains(t, got.Text, "@buyer_01")
}

func TestSendOrderWithoutCredentials(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	tg := NewTelegram(func() string { return "" }, func() string { return "" }, &logger.Logger{})
	tg.apiURL = srv.URL

	err := tg.SendOrder(context.Background(), testOrder())
	require.NoError(t, err)
	assert.False(t, requested, "no request must be made without credentials")
}

func TestSendOrderAPIErrorIsAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := NewTelegram(func() string { return "t" }, func() string { return "c" }, &logger.Logger{})
	tg.apiURL = srv.URL

	// a failed notification must not fail the order flow
	assert.NoError(t, tg.SendOrder(context.Background(), testOrder()))
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		price    float64
		expected string
	}{
		{3990, "3\u00a0990"},
		{1490, "1\u00a0490"},
		{999, "999"},
		{1990.50, "1\u00a0990,50"},
		{1234567, "1\u00a0234\u00a0567"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, formatPrice(tc.price))
	}
}
