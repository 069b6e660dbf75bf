package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_category"
	"github.com/light-bringer/catalog-engine/internal/models/m_category_attribute"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client    *spanner.Client
	model     *m_category.Model
	linkModel *m_category_attribute.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryRepository {
	return &CategoryRepo{
		client:    client,
		model:     m_category.NewModel(),
		linkModel: m_category_attribute.NewModel(),
	}
}

// GetByID retrieves a single category.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, r.model.ReadColumns())
	if err != nil {
		if notFound(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category %q: %w", categoryID, err)
	}

	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	return dataToCategory(&data), nil
}

// FetchChain resolves the ancestor chain root→leaf by following parent
// pointers one row at a time. The walk itself lives in the domain so the
// depth bound and cycle rule are identical for every store implementation.
func (r *CategoryRepo) FetchChain(ctx context.Context, categoryID string) ([]domain.Category, error) {
	var readErr error
	chain, err := domain.WalkChain(categoryID, func(id string) (*domain.Category, bool) {
		cat, err := r.GetByID(ctx, id)
		if err != nil {
			if err != domain.ErrCategoryNotFound {
				readErr = err
			}
			return nil, false
		}
		return cat, true
	})
	if readErr != nil {
		return nil, readErr
	}
	return chain, err
}

// FetchRequirements retrieves the explicit requirement links of the given
// categories in one query, keyed by category ID.
func (r *CategoryRepo) FetchRequirements(ctx context.Context, categoryIDs []string) (map[string][]domain.RequirementLink, error) {
	out := make(map[string][]domain.RequirementLink, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return out, nil
	}

	stmt := query.From(m_category_attribute.TableName).
		Select(r.linkModel.ReadColumns()...).
		Where(query.In(m_category_attribute.CategoryID, categoryIDs)).
		OrderBy(m_category_attribute.DisplayOrder, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read requirement links: %w", err)
		}
		var data m_category_attribute.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse requirement link: %w", err)
		}
		out[data.CategoryID] = append(out[data.CategoryID], domain.RequirementLink{
			CategoryID:   data.CategoryID,
			AttributeID:  data.AttributeID,
			IsRequired:   data.IsRequired,
			DisplayOrder: data.DisplayOrder,
		})
	}
	return out, nil
}

// InsertMut creates a mutation for inserting a category.
func (r *CategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	data := &m_category.Data{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Code:       nullString(c.Code),
	}
	if c.ParentID != nil {
		data.ParentID = spanner.NullString{StringVal: *c.ParentID, Valid: true}
	}
	data.ClassificationCode = nullString(c.ClassificationCode)
	return r.model.InsertMut(data)
}

// InsertRequirementMut creates a mutation for a requirement link.
func (r *CategoryRepo) InsertRequirementMut(link *domain.RequirementLink) *spanner.Mutation {
	return r.linkModel.InsertMut(&m_category_attribute.Data{
		CategoryID:   link.CategoryID,
		AttributeID:  link.AttributeID,
		IsRequired:   link.IsRequired,
		DisplayOrder: link.DisplayOrder,
	})
}

func dataToCategory(data *m_category.Data) *domain.Category {
	cat := &domain.Category{
		CategoryID:         data.CategoryID,
		Code:               data.Code.StringVal,
		Name:               data.Name,
		ClassificationCode: data.ClassificationCode.StringVal,
	}
	if data.ParentID.Valid {
		parent := data.ParentID.StringVal
		cat.ParentID = &parent
	}
	return cat
}
