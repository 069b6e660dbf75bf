package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_price"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// PriceRepo implements PriceRepository for Spanner.
type PriceRepo struct {
	client *spanner.Client
	model  *m_price.Model
}

// NewPriceRepo creates a new PriceRepo.
func NewPriceRepo(client *spanner.Client) contracts.PriceRepository {
	return &PriceRepo{
		client: client,
		model:  m_price.NewModel(),
	}
}

// FetchHistory retrieves all price rows of a product. Selection of the
// effective row is the domain's job; the repo only materializes candidates.
func (r *PriceRepo) FetchHistory(ctx context.Context, partNumber string) ([]domain.Price, error) {
	stmt := query.From(m_price.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_price.PartNumber, partNumber)).
		OrderBy(m_price.EffectiveDate, query.Desc).
		OrderBy(m_price.CreatedAt, query.Desc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var prices []domain.Price
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read price history: %w", err)
		}
		var data m_price.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price row: %w", err)
		}
		price, err := dataToPrice(&data)
		if err != nil {
			return nil, err
		}
		prices = append(prices, *price)
	}
	return prices, nil
}

// InsertMut creates a mutation appending a price row.
func (r *PriceRepo) InsertMut(p *domain.Price) (*spanner.Mutation, error) {
	if p.List == nil || p.List.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	data := &m_price.Data{
		PartNumber:    p.PartNumber,
		EffectiveDate: p.EffectiveDate,
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
	}

	num, denom, err := moneyColumns(p.List)
	if err != nil {
		return nil, err
	}
	data.ListNumerator, data.ListDenominator = num, denom

	if data.RetailNumerator, data.RetailDenominator, err = nullMoneyColumns(p.Retail); err != nil {
		return nil, err
	}
	if data.DiscountNumerator, data.DiscountDenominator, err = nullMoneyColumns(p.Discount); err != nil {
		return nil, err
	}
	if data.CostNumerator, data.CostDenominator, err = nullMoneyColumns(p.Cost); err != nil {
		return nil, err
	}

	return r.model.InsertMut(data), nil
}

func moneyColumns(m *domain.Money) (int64, int64, error) {
	if !m.IsSafeForStorage() {
		return 0, 0, fmt.Errorf("amount exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}
	return m.Numerator(), m.Denominator(), nil
}

func nullMoneyColumns(m *domain.Money) (spanner.NullInt64, spanner.NullInt64, error) {
	if m == nil {
		return spanner.NullInt64{}, spanner.NullInt64{}, nil
	}
	num, denom, err := moneyColumns(m)
	if err != nil {
		return spanner.NullInt64{}, spanner.NullInt64{}, err
	}
	return spanner.NullInt64{Int64: num, Valid: true}, spanner.NullInt64{Int64: denom, Valid: true}, nil
}

func dataToPrice(data *m_price.Data) (*domain.Price, error) {
	list, err := domain.NewMoney(data.ListNumerator, data.ListDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid list price for %s@%s: %w", data.PartNumber, data.EffectiveDate, err)
	}
	price := &domain.Price{
		PartNumber:    data.PartNumber,
		EffectiveDate: data.EffectiveDate,
		Currency:      data.Currency,
		List:          list,
		CreatedAt:     data.CreatedAt,
	}
	if price.Retail, err = nullMoney(data.RetailNumerator, data.RetailDenominator); err != nil {
		return nil, err
	}
	if price.Discount, err = nullMoney(data.DiscountNumerator, data.DiscountDenominator); err != nil {
		return nil, err
	}
	if price.Cost, err = nullMoney(data.CostNumerator, data.CostDenominator); err != nil {
		return nil, err
	}
	return price, nil
}

func nullMoney(num, denom spanner.NullInt64) (*domain.Money, error) {
	if !num.Valid {
		return nil, nil
	}
	return domain.NewMoney(num.Int64, denom.Int64)
}
