// Package domain defines the core business types for pricewatch.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Availability represents stock status reported by a retailer.
type Availability string

// Availability constants.
const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityUnknown    Availability = "unknown"
)

// Classification categorizes a detected price change.
type Classification string

// Classification constants.
const (
	ChangeNew       Classification = "new"
	ChangeIncrease  Classification = "increase"
	ChangeDecrease  Classification = "decrease"
	ChangeUnchanged Classification = "unchanged"
)

// Product is a trackable catalog item. The catalog is owned by the
// user-facing side; the refresh pipeline only reads it.
type Product struct {
	ID          string    `json:"id"                    db:"id"`
	Name        string    `json:"name"                  db:"name"`
	Category    string    `json:"category,omitempty"    db:"category"`
	Brand       string    `json:"brand,omitempty"       db:"brand"`
	Model       string    `json:"model,omitempty"       db:"model"`
	Description string    `json:"description,omitempty" db:"description"`
	ImageURL    string    `json:"image_url,omitempty"   db:"image_url"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// Descriptor returns the search descriptor adapters use to locate the
// product on a retailer.
func (p *Product) Descriptor() ProductDescriptor {
	return ProductDescriptor{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Model:     p.Model,
		Category:  p.Category,
	}
}

// ProductDescriptor is the adapter-facing identity of a product.
type ProductDescriptor struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Model     string `json:"model,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Store is a retailer whose prices the pipeline observes.
type Store struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Slug      string    `json:"slug"       db:"slug"`
	URL       string    `json:"url"        db:"url"`
	Active    bool      `json:"active"     db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PriceQuote is a single price observation for a (product, store) pair.
// Quotes are never edited; every refresh appends a new one.
type PriceQuote struct {
	ProductID    string           `json:"product_id"              db:"product_id"`
	StoreID      string           `json:"store_id"                db:"store_id"`
	Price        decimal.Decimal  `json:"price"                   db:"price"`
	Currency     string           `json:"currency"                db:"currency"`
	Availability Availability     `json:"availability"            db:"availability"`
	Title        string           `json:"title,omitempty"         db:"title"`
	SourceURL    string           `json:"source_url,omitempty"    db:"source_url"`
	ShippingCost *decimal.Decimal `json:"shipping_cost,omitempty" db:"shipping_cost"`
	ObservedAt   time.Time        `json:"observed_at"             db:"observed_at"`
}

// BestQuote returns the quote with the lowest price. Ties are broken by
// input order: the first quote at the minimum price wins. Returns nil for
// an empty slice.
func BestQuote(quotes []PriceQuote) *PriceQuote {
	if len(quotes) == 0 {
		return nil
	}
	best := &quotes[0]
	for i := 1; i < len(quotes); i++ {
		if quotes[i].Price.LessThan(best.Price) {
			best = &quotes[i]
		}
	}
	return best
}

// PriceAlert is a user's standing request to be notified when a product's
// best price drops to or below TargetPrice. An alert fires at most once
// per activation.
type PriceAlert struct {
	ID          string          `json:"id"                 db:"id"`
	UserID      string          `json:"user_id"            db:"user_id"`
	ProductID   string          `json:"product_id"         db:"product_id"`
	TargetPrice decimal.Decimal `json:"target_price"       db:"target_price"`
	IsActive    bool            `json:"is_active"          db:"is_active"`
	CreatedAt   time.Time       `json:"created_at"         db:"created_at"`
	FiredAt     *time.Time      `json:"fired_at,omitempty" db:"fired_at"`
}

// Valid reports whether the alert has a usable threshold. Malformed alerts
// are skipped by the matcher, never fatal.
func (a *PriceAlert) Valid() bool {
	return a.TargetPrice.IsPositive()
}

// Favorite marks a product a user wants on their watch list. Favorited
// products are included in scheduled refresh cycles.
type Favorite struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChangeEvent is the classified delta between a new quote and the last
// persisted quote for the same (product, store) pair. Derived, not stored.
type ChangeEvent struct {
	ProductID      string           `json:"product_id"`
	StoreID        string           `json:"store_id"`
	OldPrice       *decimal.Decimal `json:"old_price,omitempty"`
	NewPrice       decimal.Decimal  `json:"new_price"`
	Delta          decimal.Decimal  `json:"delta"`
	DeltaPercent   decimal.Decimal  `json:"delta_percent"`
	Classification Classification   `json:"classification"`
	ObservedAt     time.Time        `json:"observed_at"`
}

// NotificationIntent is the transient output of a matched alert. Once an
// intent exists, the corresponding alert has already been deactivated.
type NotificationIntent struct {
	AlertID         string          `json:"alert_id"`
	UserID          string          `json:"user_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	StoreID         string          `json:"store_id"`
	TriggeringPrice decimal.Decimal `json:"triggering_price"`
	TargetPrice     decimal.Decimal `json:"target_price"`
	Savings         decimal.Decimal `json:"savings"`
	SourceURL       string          `json:"source_url,omitempty"`
}

// RefreshSummary reports the outcome of one refresh cycle. It is only
// accurate once the whole batch has completed.
type RefreshSummary struct {
	JobID             string                 `json:"job_id,omitempty"`
	ProductsRequested int                    `json:"products_requested"`
	ProductsSucceeded int                    `json:"products_succeeded"`
	ProductsFailed    int                    `json:"products_failed"`
	QuotesWritten     int                    `json:"quotes_written"`
	QuotesDropped     int                    `json:"quotes_dropped"`
	ChangesByClass    map[Classification]int `json:"changes_by_classification"`
	NotificationsSent int                    `json:"notifications_sent"`
	StartedAt         time.Time              `json:"started_at"`
	CompletedAt       time.Time              `json:"completed_at"`
}

// JobRun records a single execution of a refresh job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
