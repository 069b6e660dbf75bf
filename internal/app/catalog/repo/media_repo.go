package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_media"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// MediaRepo implements MediaRepository for Spanner.
type MediaRepo struct {
	client *spanner.Client
	model  *m_media.Model
}

// NewMediaRepo creates a new MediaRepo.
func NewMediaRepo(client *spanner.Client) contracts.MediaRepository {
	return &MediaRepo{
		client: client,
		model:  m_media.NewModel(),
	}
}

// FetchByPart retrieves all media rows of a product.
func (r *MediaRepo) FetchByPart(ctx context.Context, partNumber string) ([]domain.Media, error) {
	stmt := query.From(m_media.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_media.PartNumber, partNumber)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var items []domain.Media
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read media: %w", err)
		}
		var data m_media.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse media row: %w", err)
		}
		item := domain.Media{
			MediaID:    data.MediaID,
			PartNumber: data.PartNumber,
			Type:       domain.MediaType(data.MediaType),
			URL:        data.URL,
			CreatedAt:  data.CreatedAt,
		}
		if data.Position.Valid {
			pos := data.Position.Int64
			item.Position = &pos
		}
		items = append(items, item)
	}
	return items, nil
}

// InsertMut creates a mutation for appending a media row.
func (r *MediaRepo) InsertMut(m *domain.Media) *spanner.Mutation {
	data := &m_media.Data{
		MediaID:    m.MediaID,
		PartNumber: m.PartNumber,
		MediaType:  string(m.Type),
		URL:        m.URL,
		CreatedAt:  m.CreatedAt,
	}
	if m.Position != nil {
		data.Position = spanner.NullInt64{Int64: *m.Position, Valid: true}
	}
	return r.model.InsertMut(data)
}
