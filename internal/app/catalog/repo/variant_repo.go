package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_variant"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// VariantRepo implements VariantRepository for Spanner.
type VariantRepo struct {
	client *spanner.Client
	tx     *committer.Committer
	model  *m_variant.Model
}

// NewVariantRepo creates a new VariantRepo.
func NewVariantRepo(client *spanner.Client, tx *committer.Committer) contracts.VariantRepository {
	return &VariantRepo{
		client: client,
		tx:     tx,
		model:  m_variant.NewModel(),
	}
}

// rowReader is satisfied by both read-only and read-write transactions.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// ParentOf returns the parent part number of a variant child, or false when
// the product has none.
func (r *VariantRepo) ParentOf(ctx context.Context, partNumber string) (string, bool, error) {
	return parentEdge(ctx, r.client.Single(), partNumber)
}

func parentEdge(ctx context.Context, reader rowReader, partNumber string) (string, bool, error) {
	row, err := reader.ReadRow(ctx, m_variant.TableName,
		spanner.Key{partNumber}, []string{m_variant.ParentPartNumber})
	if err != nil {
		if notFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read variant edge: %w", err)
	}
	var parent string
	if err := row.Columns(&parent); err != nil {
		return "", false, fmt.Errorf("failed to parse variant edge: %w", err)
	}
	return parent, true, nil
}

// ChildrenOf returns the part numbers of all variants of a parent.
func (r *VariantRepo) ChildrenOf(ctx context.Context, partNumber string) ([]string, error) {
	stmt := query.From(m_variant.TableName).
		Select(m_variant.ChildPartNumber).
		Where(query.Eq(m_variant.ParentPartNumber, partNumber)).
		OrderBy(m_variant.ChildPartNumber, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var children []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read variant children: %w", err)
		}
		var child string
		if err := row.Columns(&child); err != nil {
			return nil, fmt.Errorf("failed to parse variant child: %w", err)
		}
		children = append(children, child)
	}
	return children, nil
}

// Attach writes the child→parent edge. The invariant checks run against reads
// in the same read-write transaction as the buffered write; transaction locks
// serialize concurrent attaches of the same child, so the second one observes
// the first edge and fails with ErrAlreadyHasParent instead of overwriting it.
func (r *VariantRepo) Attach(ctx context.Context, childPN, parentPN string, createdAt time.Time) error {
	return r.tx.ApplyInTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		if err := domain.CheckAttach(childPN, parentPN, func(pn string) (string, bool, error) {
			return parentEdge(ctx, txn, pn)
		}); err != nil {
			return err
		}
		return txn.BufferWrite([]*spanner.Mutation{
			r.model.InsertMut(&m_variant.Data{
				ChildPartNumber:  childPN,
				ParentPartNumber: parentPN,
				CreatedAt:        createdAt,
			}),
		})
	})
}
