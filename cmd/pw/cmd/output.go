package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tBRAND\tCATEGORY\tMODEL\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			products[i].ID,
			truncate(products[i].Name, 40),
			products[i].Brand,
			products[i].Category,
			products[i].Model,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Model:\t%s\n", p.Model)
	if p.Description != "" {
		tw.writef("Description:\t%s\n", truncate(p.Description, 80))
	}
	return tw.finish()
}

func printStoreTable(stores []domain.Store) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSLUG\tACTIVE\n")
	for i := range stores {
		tw.writef("%s\t%s\t%s\t%v\n",
			stores[i].ID,
			stores[i].Name,
			stores[i].Slug,
			stores[i].Active,
		)
	}
	return tw.finish()
}

func printQuoteTable(quotes []domain.PriceQuote) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("STORE\tPRICE\tCURRENCY\tAVAILABILITY\tOBSERVED\n")
	for i := range quotes {
		q := &quotes[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			q.StoreID,
			q.Price.StringFixed(2),
			q.Currency,
			q.Availability,
			q.ObservedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printAlertTable(alerts []domain.PriceAlert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tTARGET\tACTIVE\tFIRED\n")
	for i := range alerts {
		a := &alerts[i]
		fired := "-"
		if a.FiredAt != nil {
			fired = a.FiredAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%v\t%s\n",
			a.ID,
			a.ProductID,
			a.TargetPrice.StringFixed(2),
			a.IsActive,
			fired,
		)
	}
	return tw.finish()
}

func printFavoriteTable(favorites []domain.Favorite) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tADDED\n")
	for i := range favorites {
		tw.writef("%s\t%s\t%s\n",
			favorites[i].ID,
			favorites[i].ProductID,
			favorites[i].CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		errText := truncate(r.ErrorText, 40)
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			errText,
		)
	}
	return tw.finish()
}

func printRefreshSummary(s *domain.RefreshSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Requested:\t%d\n", s.ProductsRequested)
	tw.writef("Succeeded:\t%d\n", s.ProductsSucceeded)
	tw.writef("Failed:\t%d\n", s.ProductsFailed)
	tw.writef("Quotes written:\t%d\n", s.QuotesWritten)
	tw.writef("Quotes dropped:\t%d\n", s.QuotesDropped)
	tw.writef("Notifications:\t%d\n", s.NotificationsSent)
	for class, count := range s.ChangesByClass {
		tw.writef("Changes (%s):\t%d\n", class, count)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
