// Package search turns free-text product queries into structured intent.
// The analyzer here is deterministic and keyword-based; a smarter backend
// can replace it behind the same interface.
package search

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange bounds a query's acceptable prices. Nil ends are unbounded.
type PriceRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Intent is the structured interpretation of a search query.
type Intent struct {
	ProductType string     `json:"product_type,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Category    string     `json:"category,omitempty"`
	Features    []string   `json:"features,omitempty"`
	PriceRange  PriceRange `json:"price_range"`
	Keywords    []string   `json:"keywords"`
}

// Analyzer extracts intent from a raw query string.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*Intent, error)
}

// categoryVocab maps product-type tokens to catalog categories.
var categoryVocab = map[string]string{
	"laptop":     "computers",
	"notebook":   "computers",
	"desktop":    "computers",
	"monitor":    "displays",
	"tv":         "displays",
	"television": "displays",
	"phone":      "phones",
	"smartphone": "phones",
	"headphones": "audio",
	"earbuds":    "audio",
	"speaker":    "audio",
	"keyboard":   "peripherals",
	"mouse":      "peripherals",
	"router":     "networking",
	"ssd":        "storage",
	"drive":      "storage",
}

// brandVocab lists brands recognized without catalog access.
var brandVocab = map[string]struct{}{
	"acer":      {},
	"apple":     {},
	"asus":      {},
	"dell":      {},
	"hp":        {},
	"lenovo":    {},
	"lg":        {},
	"logitech":  {},
	"samsung":   {},
	"sony":      {},
	"toshiba":   {},
	"microsoft": {},
}

// featureVocab lists descriptive tokens worth surfacing separately.
var featureVocab = map[string]struct{}{
	"4k":               {},
	"oled":             {},
	"gaming":           {},
	"wireless":         {},
	"bluetooth":        {},
	"portable":         {},
	"curved":           {},
	"mechanical":       {},
	"noise-cancelling": {},
}

// stopwords are dropped from keywords entirely.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "best": {}, "cheap": {}, "for": {},
	"good": {}, "in": {}, "of": {}, "or": {}, "the": {}, "with": {},
}

// KeywordAnalyzer is a deterministic, vocabulary-driven Analyzer.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer creates a KeywordAnalyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze tokenizes the query and classifies each token against the
// vocabularies. Price bounds come from "under X" / "over X" / "$X-$Y"
// phrasings. Never fails on malformed input; worst case the whole query
// lands in Keywords.
func (a *KeywordAnalyzer) Analyze(_ context.Context, query string) (*Intent, error) {
	intent := &Intent{}

	tokens := tokenize(query)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// Price bound phrasings consume the following number token.
		if bound, ok := priceBoundWord(tok); ok && i+1 < len(tokens) {
			if amount, ok := parseAmount(tokens[i+1]); ok {
				switch bound {
				case boundMax:
					intent.PriceRange.Max = &amount
				case boundMin:
					intent.PriceRange.Min = &amount
				}
				i++
				continue
			}
		}

		if lo, hi, ok := parseAmountRange(tok); ok {
			intent.PriceRange.Min = &lo
			intent.PriceRange.Max = &hi
			continue
		}
		if amount, ok := parseAmount(tok); ok {
			// A bare amount reads as a ceiling.
			intent.PriceRange.Max = &amount
			continue
		}

		if cat, ok := categoryVocab[tok]; ok {
			if intent.ProductType == "" {
				intent.ProductType = tok
				intent.Category = cat
			}
			intent.Keywords = append(intent.Keywords, tok)
			continue
		}

		if _, ok := brandVocab[tok]; ok && intent.Brand == "" {
			intent.Brand = tok
			intent.Keywords = append(intent.Keywords, tok)
			continue
		}

		if _, ok := featureVocab[tok]; ok {
			intent.Features = append(intent.Features, tok)
			intent.Keywords = append(intent.Keywords, tok)
			continue
		}

		if _, ok := stopwords[tok]; ok {
			continue
		}

		intent.Keywords = append(intent.Keywords, tok)
	}

	return intent, nil
}

type priceBound int

const (
	boundMax priceBound = iota
	boundMin
)

func priceBoundWord(tok string) (priceBound, bool) {
	switch tok {
	case "under", "below", "max":
		return boundMax, true
	case "over", "above", "min":
		return boundMin, true
	}
	return 0, false
}

func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?()[]\"'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// parseAmount parses "$800", "800", or "800.50" into a decimal.
func parseAmount(tok string) (decimal.Decimal, bool) {
	tok = strings.TrimPrefix(tok, "$")
	if tok == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(tok)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseAmountRange parses "$500-$800" or "500-800" into a bounded range.
func parseAmountRange(tok string) (lo, hi decimal.Decimal, ok bool) {
	parts := strings.SplitN(tok, "-", 2)
	if len(parts) != 2 {
		return lo, hi, false
	}
	lo, okLo := parseAmount(parts[0])
	hi, okHi := parseAmount(parts[1])
	if !okLo || !okHi || hi.LessThan(lo) {
		return lo, hi, false
	}
	return lo, hi, true
}
