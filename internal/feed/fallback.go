package feed

import "github.com/annakov/streetstore/internal/models"

// FallbackCatalog returns the built-in demo catalog used whenever the feed
// is unreachable or yields no valid rows. Returned as a fresh slice so
// callers can't mutate the seed data.
func FallbackCatalog() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Худи Oversize Premium",
			Price:       3990,
			Description: "Стильное худи свободного кроя из плотного хлопка. Идеально для повседневной носки.",
			ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=500&fit=crop",
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Футболка базовая",
			Price:       1490,
			Description: "Классическая футболка из 100% хлопка. Комфортная посадка, мягкая ткань.",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=500&fit=crop",
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Джинсы Wide Leg",
			Price:       4990,
			Description: "Модные джинсы широкого кроя. Высокая посадка, качественный деним.",
			ImageURL:    "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400&h=500&fit=crop",
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Куртка-рубашка",
			Price:       5490,
			Description: "Универсальная куртка-рубашка из плотной фланели. Отлично подходит для межсезонья.",
			ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400&h=500&fit=crop",
			InStock:     false,
		},
		{
			ID:          5,
			Name:        "Свитшот с принтом",
			Price:       2990,
			Description: "Мягкий свитшот с уникальным принтом. Теплый флис внутри.",
			ImageURL:    "https://images.unsplash.com/photo-1578587018452-892bacefd3f2?w=400&h=500&fit=crop",
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Брюки карго",
			Price:       3490,
			Description: "Практичные брюки карго с множеством карманов. Удобный крой.",
			ImageURL:    "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400&h=500&fit=crop",
			InStock:     true,
		},
	}
}
