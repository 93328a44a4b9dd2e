package feed

import (
	"strconv"
	"strings"

	"github.com/annakov/streetstore/internal/models"
)

// minFields is the number of columns a row must have before a mapping is
// attempted: name, price, description, image url, stock flag.
const minFields = 5

// defaultHeaderKeywords are the labels (English and Russian) whose presence
// in the first row marks it as a header.
var defaultHeaderKeywords = []string{
	"name", "название",
	"price", "цена",
	"description", "описание",
	"image", "изображение",
	"stock", "наличие",
}

// defaultStockTokens are the values of the stock column treated as "in stock".
var defaultStockTokens = []string{"да", "yes", "true", "1"}

// Parser converts the raw CSV feed body into a product catalog.
//
// The feed is not a declared schema: the header is detected heuristically,
// malformed rows are dropped silently, and both keyword sets are plain
// fields so tests and alternate feeds can swap them out.
type Parser struct {
	HeaderKeywords []string
	StockTokens    []string
}

func NewParser() *Parser {
	return &Parser{
		HeaderKeywords: defaultHeaderKeywords,
		StockTokens:    defaultStockTokens,
	}
}

// ParseLine splits one physical line into fields. A double quote toggles the
// in-quotes state without being emitted; a comma outside quotes ends the
// current field. Fields are trimmed of surrounding whitespace. An
// unterminated quote simply leaves the state open: the accumulator is still
// flushed as the last field. Embedded newlines inside quotes are not
// supported, a physical line is always a record boundary.
func (p *Parser) ParseLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))

	return values
}

// IsHeaderRow reports whether the tokenized first line looks like a header.
// Best-effort heuristic: a data row that happens to contain a keyword
// substring is misclassified, which is accepted.
func (p *Parser) IsHeaderRow(values []string) bool {
	for _, v := range values {
		lower := stripQuotes(strings.ToLower(v))
		for _, keyword := range p.HeaderKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// Parse converts the whole feed body into products, preserving line order.
// Blank lines are skipped; the first remaining line is header-sniffed; ids
// are assigned by data-row position, 1-based and header-exclusive.
func (p *Parser) Parse(csv string) []models.Product {
	var lines []string
	for _, line := range strings.Split(csv, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	start := 0
	if p.IsHeaderRow(p.ParseLine(lines[0])) {
		start = 1
	}

	var products []models.Product
	for i, line := range lines[start:] {
		if product, ok := p.mapRow(p.ParseLine(line), i); ok {
			products = append(products, product)
		}
	}

	return products
}

// mapRow builds a product from tokenized values at data-row position pos.
// Rows with too few fields, an empty name or a non-positive price contribute
// nothing; every field is defaulted independently on unparseable input.
func (p *Parser) mapRow(values []string, pos int) (models.Product, bool) {
	if len(values) < minFields {
		return models.Product{}, false
	}

	name := strings.TrimSpace(stripQuotes(values[0]))
	price := parsePrice(values[1])
	description := strings.TrimSpace(stripQuotes(values[2]))
	imageURL := strings.TrimSpace(stripQuotes(values[3]))
	inStock := p.parseStock(values[4])

	if name == "" || price <= 0 {
		return models.Product{}, false
	}

	return models.Product{
		ID:          pos + 1,
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
		InStock:     inStock,
	}, true
}

// parsePrice strips everything except digits, dots, commas and the minus
// sign, normalizes the decimal comma and parses the rest. The sign must
// survive cleaning so negative prices stay negative and fail the acceptance
// check. Unparseable input yields 0, which is rejected the same way.
func parsePrice(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, raw)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

func (p *Parser) parseStock(raw string) bool {
	value := stripQuotes(strings.TrimSpace(strings.ToLower(raw)))
	for _, token := range p.StockTokens {
		if value == token {
			return true
		}
	}
	return false
}

// stripQuotes removes at most one leading and one trailing literal quote.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
