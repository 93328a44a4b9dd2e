package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/annakov/streetstore/internal/logger"
	"github.com/annakov/streetstore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `Название,Цена,Описание,Изображение,Наличие
Худи,3990,Теплое худи,http://x,да
Футболка,1490,Базовая,http://y,нет
`

func newTestFetcher(url string) *Fetcher {
	return NewFetcher(func() string { return url }, 2*time.Second, NewParser(), &logger.Logger{})
}

func TestFetcherLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	products := newTestFetcher(srv.URL).Load(context.Background())

	require.Len(t, products, 2)
	assert.Equal(t, "Худи", products[0].Name)
	assert.Equal(t, 3990.0, products[0].Price)
}

func TestFetcherLoadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	products := newTestFetcher(srv.URL).Load(context.Background())

	assertFallback(t, products)
}

func TestFetcherLoadNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	products := newTestFetcher(srv.URL).Load(context.Background())

	assertFallback(t, products)
}

func TestFetcherLoadEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(""))
	}))
	defer srv.Close()

	products := newTestFetcher(srv.URL).Load(context.Background())

	assertFallback(t, products)
}

func TestFetcherLoadHeaderOnlyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Название,Цена,Описание,Изображение,Наличие\n"))
	}))
	defer srv.Close()

	products := newTestFetcher(srv.URL).Load(context.Background())

	assertFallback(t, products)
}

// assertFallback checks the 6-item built-in catalog with ids 1..6.
func assertFallback(t *testing.T, products []models.Product) {
	t.Helper()
	require.Len(t, products, 6)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
	}
}
