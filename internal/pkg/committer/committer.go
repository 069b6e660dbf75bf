// Package committer collects Spanner mutations from multiple repositories and
// applies them in a single atomic commit. Repositories never apply mutations
// themselves; they hand them to a CommitPlan owned by the calling usecase, so a
// product, its attribute values, its initial price and its media either all land
// or none do.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan accumulates mutations for a single atomic commit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation to the plan. Nil mutations are ignored so callers can
// pass through "nothing changed" results without checking.
func (p *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		p.mutations = append(p.mutations, mut)
	}
}

// AddAll appends multiple mutations to the plan.
func (p *CommitPlan) AddAll(muts []*spanner.Mutation) {
	for _, mut := range muts {
		p.Add(mut)
	}
}

// Mutations returns the collected mutations.
func (p *CommitPlan) Mutations() []*spanner.Mutation {
	return p.mutations
}

// IsEmpty reports whether the plan holds no mutations.
func (p *CommitPlan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (p *CommitPlan) Count() int {
	return len(p.mutations)
}

// Committer applies CommitPlans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ApplyInTransaction runs fn inside a read-write transaction. Used when reads
// must be consistent with the writes being buffered (e.g. variant attachment,
// which re-checks the parent edge before writing).
func (c *Committer) ApplyInTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
