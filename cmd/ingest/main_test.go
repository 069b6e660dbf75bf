package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/usecases"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

type fakeIngester struct {
	mu     sync.Mutex
	seen   []string
	reject map[string][]domain.Violation
	fail   map[string]error
}

func (f *fakeIngester) Execute(_ context.Context, in *usecases.IngestProductInput) (*usecases.IngestProductResult, error) {
	f.mu.Lock()
	f.seen = append(f.seen, in.PartNumber)
	f.mu.Unlock()

	if err, ok := f.fail[in.PartNumber]; ok {
		return nil, err
	}
	if violations, ok := f.reject[in.PartNumber]; ok {
		return &usecases.IngestProductResult{PartNumber: in.PartNumber, Violations: violations}, nil
	}
	return &usecases.IngestProductResult{PartNumber: in.PartNumber, Committed: true}, nil
}

const csvHeader = "part_number,brand_id,category_id,short_description,currency,list_price,effective_date,color\n"

func TestIngestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("zero workers still drains the file", func(t *testing.T) {
		input := csvHeader +
			"PN-1,b1,,d,USD,10.00,2026-01-01,Black\n" +
			"PN-2,b1,,d,USD,11.00,2026-01-01,White\n" +
			"PN-3,b1,,d,USD,12.00,2026-01-01,Black\n"

		ing := &fakeIngester{}
		stats, err := ingestAll(ctx, ing, strings.NewReader(input), 0, logger.NewNop())
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.ingested.Load())
		assert.Len(t, ing.seen, 3)
	})

	t.Run("duplicate part numbers are skipped", func(t *testing.T) {
		input := csvHeader +
			"PN-1,b1,,d,USD,10.00,2026-01-01,Black\n" +
			"PN-1,b1,,d,USD,10.00,2026-01-01,Black\n"

		ing := &fakeIngester{}
		stats, err := ingestAll(ctx, ing, strings.NewReader(input), 4, logger.NewNop())
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.ingested.Load())
		assert.Equal(t, int64(1), stats.duplicates)
	})

	t.Run("violations reject the product without stopping the batch", func(t *testing.T) {
		input := csvHeader +
			"PN-GOOD,b1,,d,USD,10.00,2026-01-01,Black\n" +
			"PN-BAD,b1,,d,USD,10.00,2026-01-01,Chartreuse\n"

		ing := &fakeIngester{reject: map[string][]domain.Violation{
			"PN-BAD": {{Code: domain.ViolationUnknownOption, AttributeCode: "color"}},
		}}
		stats, err := ingestAll(ctx, ing, strings.NewReader(input), 2, logger.NewNop())
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.ingested.Load())
		assert.Equal(t, int64(1), stats.rejected.Load())
	})

	t.Run("store error aborts the run", func(t *testing.T) {
		input := csvHeader +
			"PN-1,b1,,d,USD,10.00,2026-01-01,Black\n"

		boom := errors.New("spanner unavailable")
		ing := &fakeIngester{fail: map[string]error{"PN-1": boom}}
		_, err := ingestAll(ctx, ing, strings.NewReader(input), 2, logger.NewNop())
		require.ErrorIs(t, err, boom)
	})
}
