package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_product"
	"github.com/light-bringer/catalog-engine/internal/models/m_product_value"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client     *spanner.Client
	model      *m_product.Model
	valueModel *m_product_value.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) contracts.ProductRepository {
	return &ProductRepo{
		client:     client,
		model:      m_product.NewModel(),
		valueModel: m_product_value.NewModel(),
	}
}

// GetByPartNumber retrieves a product.
func (r *ProductRepo) GetByPartNumber(ctx context.Context, partNumber string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{partNumber}, r.model.ReadColumns())
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product %q: %w", partNumber, err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return dataToProduct(&data), nil
}

// Exists checks whether a part number is already cataloged.
func (r *ProductRepo) Exists(ctx context.Context, partNumber string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{partNumber}, []string{m_product.PartNumber})
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// FetchValues retrieves all attribute values of a product.
func (r *ProductRepo) FetchValues(ctx context.Context, partNumber string) ([]domain.AttributeValue, error) {
	stmt := query.From(m_product_value.TableName).
		Select(r.valueModel.ReadColumns()...).
		Where(query.Eq(m_product_value.PartNumber, partNumber)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var values []domain.AttributeValue
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read product values: %w", err)
		}
		var data m_product_value.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product value: %w", err)
		}
		value, err := dataToValue(&data)
		if err != nil {
			return nil, fmt.Errorf("corrupt value row for %s/%s: %w", data.PartNumber, data.AttributeID, err)
		}
		values = append(values, *value)
	}
	return values, nil
}

// InsertMut creates a mutation for inserting a product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	data := &m_product.Data{
		PartNumber:       p.PartNumber,
		BrandID:          p.BrandID,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		MarketingText:    p.MarketingText,
	}
	if p.CategoryID != nil {
		data.CategoryID = spanner.NullString{StringVal: *p.CategoryID, Valid: true}
	}
	if p.DimensionID != nil {
		data.DimensionID = spanner.NullString{StringVal: *p.DimensionID, Valid: true}
	}
	if p.WarrantyID != nil {
		data.WarrantyID = spanner.NullString{StringVal: *p.WarrantyID, Valid: true}
	}
	if p.VendorID != nil {
		data.VendorID = spanner.NullString{StringVal: *p.VendorID, Valid: true}
	}
	return r.model.InsertMut(data)
}

// ValueMut creates a mutation for one attribute value row after re-checking
// the slot invariant; a value that slipped past validation must not reach the
// store.
func (r *ProductRepo) ValueMut(v *domain.AttributeValue, createdAt time.Time) (*spanner.Mutation, error) {
	if err := v.Value.CheckSlots(); err != nil {
		return nil, err
	}

	data := &m_product_value.Data{
		PartNumber:  v.PartNumber,
		AttributeID: v.AttributeID,
		CreatedAt:   createdAt,
	}
	tv := v.Value
	switch {
	case tv.Text != nil:
		data.ValueText = spanner.NullString{StringVal: *tv.Text, Valid: true}
	case tv.Int != nil:
		data.ValueInt = spanner.NullInt64{Int64: *tv.Int, Valid: true}
	case tv.Decimal != nil:
		data.ValueDecimal = spanner.NullFloat64{Float64: *tv.Decimal, Valid: true}
	case tv.Bool != nil:
		data.ValueBool = spanner.NullBool{Bool: *tv.Bool, Valid: true}
	case tv.Date != nil:
		data.ValueDate = spanner.NullDate{Date: *tv.Date, Valid: true}
	case tv.JSON != nil:
		data.ValueJSON = spanner.NullString{StringVal: *tv.JSON, Valid: true}
	case tv.OptionID != nil:
		data.OptionID = spanner.NullString{StringVal: *tv.OptionID, Valid: true}
	}
	data.Unit = nullString(tv.Unit)

	return r.valueModel.InsertMut(data), nil
}

func dataToProduct(data *m_product.Data) *domain.Product {
	p := &domain.Product{
		PartNumber:       data.PartNumber,
		BrandID:          data.BrandID,
		ShortDescription: data.ShortDescription,
		LongDescription:  data.LongDescription,
		MarketingText:    data.MarketingText,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.CategoryID.Valid {
		v := data.CategoryID.StringVal
		p.CategoryID = &v
	}
	if data.DimensionID.Valid {
		v := data.DimensionID.StringVal
		p.DimensionID = &v
	}
	if data.WarrantyID.Valid {
		v := data.WarrantyID.StringVal
		p.WarrantyID = &v
	}
	if data.VendorID.Valid {
		v := data.VendorID.StringVal
		p.VendorID = &v
	}
	return p
}

// dataToValue reconstructs the tagged union from the row's nullable columns.
// A row with zero or several populated slots is corrupt and rejected here; the
// storage schema has no CHECK constraint, the domain invariant is the law.
func dataToValue(data *m_product_value.Data) (*domain.AttributeValue, error) {
	populated := 0
	for _, valid := range []bool{
		data.ValueText.Valid, data.ValueInt.Valid, data.ValueDecimal.Valid,
		data.ValueBool.Valid, data.ValueDate.Valid, data.ValueJSON.Valid,
		data.OptionID.Valid,
	} {
		if valid {
			populated++
		}
	}
	if populated != 1 {
		return nil, domain.ErrInvalidSlot
	}

	tv := domain.TypedValue{Unit: data.Unit.StringVal}
	switch {
	case data.ValueText.Valid:
		tv.Type = domain.TypeText
		tv.Text = &data.ValueText.StringVal
	case data.ValueInt.Valid:
		tv.Type = domain.TypeInt
		tv.Int = &data.ValueInt.Int64
	case data.ValueDecimal.Valid:
		tv.Type = domain.TypeDecimal
		tv.Decimal = &data.ValueDecimal.Float64
	case data.ValueBool.Valid:
		tv.Type = domain.TypeBool
		tv.Bool = &data.ValueBool.Bool
	case data.ValueDate.Valid:
		tv.Type = domain.TypeDate
		tv.Date = &data.ValueDate.Date
	case data.ValueJSON.Valid:
		tv.Type = domain.TypeJSON
		tv.JSON = &data.ValueJSON.StringVal
	case data.OptionID.Valid:
		tv.Type = domain.TypeEnum
		tv.OptionID = &data.OptionID.StringVal
	}
	if err := tv.CheckSlots(); err != nil {
		return nil, err
	}
	return &domain.AttributeValue{
		PartNumber:  data.PartNumber,
		AttributeID: data.AttributeID,
		Value:       tv,
	}, nil
}
