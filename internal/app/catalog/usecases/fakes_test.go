package usecases

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
)

// catalogState is the shared in-memory backing of the fake repositories.
type catalogState struct {
	attrs      map[string]*domain.Attribute        // by code
	attrsByID  map[string]*domain.Attribute        // by ID
	options    map[string][]domain.AttributeOption // by attribute ID
	categories map[string]*domain.Category         // by ID
	links      map[string][]domain.RequirementLink // by category ID
	products   map[string]bool                     // by part number
	parents    map[string]string                   // child part number → parent
}

func newCatalogState() *catalogState {
	return &catalogState{
		attrs:      make(map[string]*domain.Attribute),
		attrsByID:  make(map[string]*domain.Attribute),
		options:    make(map[string][]domain.AttributeOption),
		categories: make(map[string]*domain.Category),
		links:      make(map[string][]domain.RequirementLink),
		products:   make(map[string]bool),
		parents:    make(map[string]string),
	}
}

func (s *catalogState) addAttribute(a *domain.Attribute, options ...domain.AttributeOption) {
	s.attrs[a.Code] = a
	s.attrsByID[a.AttributeID] = a
	if len(options) > 0 {
		s.options[a.AttributeID] = options
	}
}

// mut builds a placeholder mutation; the fakes only count mutations.
func mut() *spanner.Mutation {
	return spanner.InsertOrUpdate("fake", []string{"k"}, []interface{}{"v"})
}

type fakeAttrRepo struct{ state *catalogState }

func (r *fakeAttrRepo) GetByCode(_ context.Context, code string) (*domain.Attribute, error) {
	a, ok := r.state.attrs[code]
	if !ok {
		return nil, domain.ErrAttributeNotFound
	}
	return a, nil
}

func (r *fakeAttrRepo) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Attribute, error) {
	out := make(map[string]*domain.Attribute)
	for _, id := range ids {
		if a, ok := r.state.attrsByID[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (r *fakeAttrRepo) ListOptions(_ context.Context, attributeID string) ([]domain.AttributeOption, error) {
	return r.state.options[attributeID], nil
}

func (r *fakeAttrRepo) InsertMut(*domain.Attribute) *spanner.Mutation            { return mut() }
func (r *fakeAttrRepo) InsertOptionMut(*domain.AttributeOption) *spanner.Mutation { return mut() }

func (r *fakeAttrRepo) UpdateMut(edit *domain.AttributeEdit) *spanner.Mutation {
	if !edit.Changes().HasChanges() {
		return nil
	}
	return mut()
}

type fakeCatRepo struct{ state *catalogState }

func (r *fakeCatRepo) GetByID(_ context.Context, categoryID string) (*domain.Category, error) {
	c, ok := r.state.categories[categoryID]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCatRepo) FetchChain(_ context.Context, categoryID string) ([]domain.Category, error) {
	return domain.WalkChain(categoryID, func(id string) (*domain.Category, bool) {
		c, ok := r.state.categories[id]
		return c, ok
	})
}

func (r *fakeCatRepo) FetchRequirements(_ context.Context, categoryIDs []string) (map[string][]domain.RequirementLink, error) {
	out := make(map[string][]domain.RequirementLink)
	for _, id := range categoryIDs {
		if links, ok := r.state.links[id]; ok {
			out[id] = links
		}
	}
	return out, nil
}

func (r *fakeCatRepo) InsertMut(*domain.Category) *spanner.Mutation               { return mut() }
func (r *fakeCatRepo) InsertRequirementMut(*domain.RequirementLink) *spanner.Mutation { return mut() }

type fakeProductRepo struct{ state *catalogState }

func (r *fakeProductRepo) GetByPartNumber(_ context.Context, partNumber string) (*domain.Product, error) {
	if !r.state.products[partNumber] {
		return nil, domain.ErrProductNotFound
	}
	return &domain.Product{PartNumber: partNumber, BrandID: "brand-1"}, nil
}

func (r *fakeProductRepo) Exists(_ context.Context, partNumber string) (bool, error) {
	return r.state.products[partNumber], nil
}

func (r *fakeProductRepo) FetchValues(context.Context, string) ([]domain.AttributeValue, error) {
	return nil, nil
}

func (r *fakeProductRepo) InsertMut(*domain.Product) *spanner.Mutation { return mut() }

func (r *fakeProductRepo) ValueMut(v *domain.AttributeValue, _ time.Time) (*spanner.Mutation, error) {
	if err := v.Value.CheckSlots(); err != nil {
		return nil, err
	}
	return mut(), nil
}

type fakePriceRepo struct{}

func (r *fakePriceRepo) FetchHistory(context.Context, string) ([]domain.Price, error) {
	return nil, nil
}

func (r *fakePriceRepo) InsertMut(p *domain.Price) (*spanner.Mutation, error) {
	if p.List == nil || p.List.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	return mut(), nil
}

type fakeMediaRepo struct{}

func (r *fakeMediaRepo) FetchByPart(context.Context, string) ([]domain.Media, error) {
	return nil, nil
}

func (r *fakeMediaRepo) InsertMut(*domain.Media) *spanner.Mutation { return mut() }

type fakeVariantRepo struct{ state *catalogState }

func (r *fakeVariantRepo) ParentOf(_ context.Context, partNumber string) (string, bool, error) {
	parent, ok := r.state.parents[partNumber]
	return parent, ok, nil
}

func (r *fakeVariantRepo) ChildrenOf(_ context.Context, partNumber string) ([]string, error) {
	var children []string
	for child, parent := range r.state.parents {
		if parent == partNumber {
			children = append(children, child)
		}
	}
	return children, nil
}

// Attach mirrors the store contract: the invariant check and the write happen
// as one step against the same state.
func (r *fakeVariantRepo) Attach(_ context.Context, childPN, parentPN string, _ time.Time) error {
	if err := domain.CheckAttach(childPN, parentPN, func(pn string) (string, bool, error) {
		parent, ok := r.state.parents[pn]
		return parent, ok, nil
	}); err != nil {
		return err
	}
	r.state.parents[childPN] = parentPN
	return nil
}

// fakeApplier records every applied plan instead of committing.
type fakeApplier struct {
	plans []*committer.CommitPlan
}

func (a *fakeApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	a.plans = append(a.plans, plan)
	return nil
}

func (a *fakeApplier) applied() int {
	return len(a.plans)
}

func (a *fakeApplier) lastCount() int {
	if len(a.plans) == 0 {
		return 0
	}
	return a.plans[len(a.plans)-1].Count()
}
