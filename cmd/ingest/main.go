// Command ingest bulk-loads products from a CSV file. Fixed columns identify
// the product; every remaining column is treated as an attribute code and
// validated against the category's requirement set. Rows are fanned out to a
// bounded worker pool; a store failure cancels the remaining batch, while
// per-product violations only reject that product.
//
// CSV layout:
//
//	part_number,brand_id,category_id,short_description,currency,list_price,effective_date,<attr code>,...
//
// category_id, price columns and attribute cells may be empty.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/usecases"
	"github.com/light-bringer/catalog-engine/internal/config"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
	"github.com/light-bringer/catalog-engine/internal/services"
)

var csvPath = flag.String("csv", "", "Path to the product CSV file")

var fixedColumns = map[string]bool{
	"part_number":       true,
	"brand_id":          true,
	"category_id":       true,
	"short_description": true,
	"currency":          true,
	"list_price":        true,
	"effective_date":    true,
}

func main() {
	flag.Parse()
	if *csvPath == "" {
		log.Fatal("usage: ingest -csv <file>")
	}
	if err := run(); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.Load()

	zlog, err := logger.New(cfg.Logger.Mode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync()

	serviceOpts, err := services.NewServiceOptions(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	file, err := os.Open(*csvPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", *csvPath, err)
	}
	defer file.Close()

	stats, err := ingestAll(ctx, serviceOpts.IngestProduct, file, cfg.Ingest.Workers, zlog)
	if err != nil {
		return err
	}

	zlog.Info("ingestion finished",
		"ingested", stats.ingested.Load(),
		"rejected", stats.rejected.Load(),
		"duplicates", stats.duplicates)
	return nil
}

type ingestStats struct {
	ingested   atomic.Int64
	rejected   atomic.Int64
	duplicates int64
}

// productIngester is the slice of the ingest usecase the driver needs.
type productIngester interface {
	Execute(ctx context.Context, in *usecases.IngestProductInput) (*usecases.IngestProductResult, error)
}

// ingestAll streams rows from r through a bounded worker pool. The reader and
// the workers share a cancellable group: the first store error stops the
// feed and drains the remaining rows unprocessed.
func ingestAll(ctx context.Context, ingest productIngester, r io.Reader, workers int, zlog *logger.Logger) (*ingestStats, error) {
	// A non-positive worker count would leave the rows channel without
	// consumers and deadlock the feeder.
	if workers < 1 {
		workers = 1
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["part_number"]; !ok {
		return nil, fmt.Errorf("CSV has no part_number column")
	}

	stats := &ingestStats{}
	rows := make(chan []string, workers*2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(rows)
		seen := make(map[string]bool)
		for {
			record, err := reader.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read CSV row: %w", err)
			}

			pn := strings.TrimSpace(record[columns["part_number"]])
			if seen[pn] {
				stats.duplicates++
				zlog.Warn("duplicate part number skipped", "part_number", pn)
				continue
			}
			seen[pn] = true

			select {
			case rows <- record:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for record := range rows {
				in := rowToInput(header, columns, record)
				result, err := ingest.Execute(gctx, in)
				if err != nil {
					return fmt.Errorf("ingest %s: %w", in.PartNumber, err)
				}
				if result.Committed {
					stats.ingested.Add(1)
					continue
				}
				stats.rejected.Add(1)
				for _, v := range result.Violations {
					zlog.Warn("violation",
						"part_number", in.PartNumber,
						"code", string(v.Code),
						"attribute", v.AttributeCode,
						"message", v.Message)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func rowToInput(header []string, columns map[string]int, record []string) *usecases.IngestProductInput {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	in := &usecases.IngestProductInput{
		PartNumber:       cell("part_number"),
		BrandID:          cell("brand_id"),
		ShortDescription: cell("short_description"),
		Values:           make(map[string]string),
	}
	if v := cell("category_id"); v != "" {
		in.CategoryID = &v
	}
	if list := cell("list_price"); list != "" {
		in.Price = &usecases.PriceInput{
			Currency: cell("currency"),
			List:     list,
		}
		if date := cell("effective_date"); date != "" {
			if d, err := civil.ParseDate(date); err == nil {
				in.Price.EffectiveDate = d
			}
		}
	}

	for i, name := range header {
		name = strings.TrimSpace(name)
		if fixedColumns[name] || i >= len(record) {
			continue
		}
		if value := strings.TrimSpace(record[i]); value != "" {
			in.Values[name] = value
		}
	}
	return in
}
