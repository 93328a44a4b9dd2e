package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain fields",
			line:     "Худи,3990,Теплое худи,http://x,да",
			expected: []string{"Худи", "3990", "Теплое худи", "http://x", "да"},
		},
		{
			name:     "comma inside quotes",
			line:     `"Hoodie, oversized",3990,desc,url,yes`,
			expected: []string{"Hoodie, oversized", "3990", "desc", "url", "yes"},
		},
		{
			name:     "fields are trimmed",
			line:     " a , b ,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "unterminated quote flushes last field",
			line:     `"abc,def`,
			expected: []string{"abc,def"},
		},
		{
			name:     "empty line yields one empty field",
			line:     "",
			expected: []string{""},
		},
		{
			name:     "trailing comma yields empty field",
			line:     "a,b,",
			expected: []string{"a", "b", ""},
		},
	}

	parser := NewParser()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parser.ParseLine(tc.line))
		})
	}
}

// Tokenizing and rejoining with "," reconstructs the line (up to trimming)
// for lines without quoted commas.
func TestParseLineRoundTrip(t *testing.T) {
	parser := NewParser()
	lines := []string{
		"a,b,c",
		"Худи,3990,Теплое худи,http://x,да",
		"one,two",
	}

	for _, line := range lines {
		values := parser.ParseLine(line)
		assert.Equal(t, line, strings.Join(values, ","))
	}
}

func TestIsHeaderRow(t *testing.T) {
	parser := NewParser()

	testCases := []struct {
		name     string
		values   []string
		isHeader bool
	}{
		{
			name:     "english header",
			values:   []string{"Name", "Price", "Description", "Image", "Stock"},
			isHeader: true,
		},
		{
			name:     "russian header",
			values:   []string{"Название", "Цена", "Описание", "Изображение", "Наличие"},
			isHeader: true,
		},
		{
			name:     "quoted header token",
			values:   []string{`"price"`, "x", "y"},
			isHeader: true,
		},
		{
			name:     "single keyword anywhere",
			values:   []string{"foo", "Цена"},
			isHeader: true,
		},
		{
			name:     "product data row",
			values:   []string{"Худи", "3990", "Теплое худи", "http://x", "да"},
			isHeader: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isHeader, parser.IsHeaderRow(tc.values))
		})
	}
}

func TestMapRow(t *testing.T) {
	parser := NewParser()

	testCases := []struct {
		name     string
		values   []string
		accepted bool
	}{
		{
			name:     "valid row",
			values:   []string{"ValidShirt", "1990", "desc", "url", "да"},
			accepted: true,
		},
		{
			name:     "empty name",
			values:   []string{"", "1990", "desc", "url", "да"},
			accepted: false,
		},
		{
			name:     "negative price",
			values:   []string{"Shirt", "-5", "desc", "url", "yes"},
			accepted: false,
		},
		{
			name:     "negative price with currency noise",
			values:   []string{"Shirt", "-1 990,50 ₽", "desc", "url", "yes"},
			accepted: false,
		},
		{
			name:     "unparseable price",
			values:   []string{"Shirt", "дорого", "desc", "url", "yes"},
			accepted: false,
		},
		{
			name:     "too few fields",
			values:   []string{"Shirt", "1990", "desc"},
			accepted: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := parser.mapRow(tc.values, 0)
			assert.Equal(t, tc.accepted, ok)
		})
	}
}

func TestMapRowPriceNormalization(t *testing.T) {
	parser := NewParser()

	product, ok := parser.mapRow([]string{"Shirt", "1 990,50 ₽", "desc", "url", "yes"}, 0)
	require.True(t, ok)
	assert.Equal(t, 1990.50, product.Price)
}

func TestMapRowStockFlag(t *testing.T) {
	parser := NewParser()

	testCases := []struct {
		token   string
		inStock bool
	}{
		{"да", true},
		{"Да", true},
		{"yes", true},
		{"YES", true},
		{"true", true},
		{"1", true},
		{`"да"`, true},
		{"нет", false},
		{"no", false},
		{"0", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run("token "+tc.token, func(t *testing.T) {
			product, ok := parser.mapRow([]string{"Shirt", "1990", "desc", "url", tc.token}, 0)
			require.True(t, ok)
			assert.Equal(t, tc.inStock, product.InStock)
		})
	}
}

func TestParseAssignsPositionalIDs(t *testing.T) {
	parser := NewParser()
	csv := strings.Join([]string{
		"Название,Цена,Описание,Изображение,Наличие",
		"Худи,3990,Теплое худи,http://x,да",
		"Футболка,1490,Базовая,http://y,нет",
	}, "\n")

	products := parser.Parse(csv)
	require.Len(t, products, 2)

	// ids are 1-based and exclude the header line
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Худи", products[0].Name)
	assert.True(t, products[0].InStock)
	assert.Equal(t, 2, products[1].ID)
	assert.False(t, products[1].InStock)
}

func TestParseWithoutHeaderKeepsFirstRow(t *testing.T) {
	parser := NewParser()
	csv := "Худи,3990,Теплое худи,http://x,да\nФутболка,1490,Базовая,http://y,да"

	products := parser.Parse(csv)
	require.Len(t, products, 2)
	assert.Equal(t, "Худи", products[0].Name)
	assert.Equal(t, 1, products[0].ID)
}

func TestParseDropsMalformedRowsSilently(t *testing.T) {
	parser := NewParser()
	csv := strings.Join([]string{
		"name,price,description,image,stock",
		"Худи,3990,Теплое худи,http://x,да",
		"битая строка",
		",1490,без имени,http://y,да",
		"Джинсы,free,цена словами,http://z,да",
		"Футболка,1490,Базовая,http://y,да",
	}, "\n")

	products := parser.Parse(csv)
	require.Len(t, products, 2)
	assert.Equal(t, "Худи", products[0].Name)
	assert.Equal(t, "Футболка", products[1].Name)
	// dropped rows keep their positions, so ids have gaps
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 5, products[1].ID)
}

func TestParseSkipsBlankLines(t *testing.T) {
	parser := NewParser()
	csv := "\n\nХуди,3990,Теплое худи,http://x,да\n\n"

	products := parser.Parse(csv)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)
}

func TestParseEmptyFeed(t *testing.T) {
	parser := NewParser()
	assert.Empty(t, parser.Parse(""))
	assert.Empty(t, parser.Parse("   \n  \n"))
}

func TestParserConfigurableKeywords(t *testing.T) {
	parser := NewParser()
	parser.HeaderKeywords = []string{"artikel"}
	parser.StockTokens = []string{"ja"}

	assert.True(t, parser.IsHeaderRow([]string{"Artikel", "Preis"}))
	assert.False(t, parser.IsHeaderRow([]string{"name", "price"}))

	product, ok := parser.mapRow([]string{"Hemd", "10", "", "", "ja"}, 0)
	require.True(t, ok)
	assert.True(t, product.InStock)
}
