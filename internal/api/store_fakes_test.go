package api_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/phrazzld/showroom-api/internal/domain"
	"github.com/phrazzld/showroom-api/internal/store"
)

// fakeAutoStore is an in-memory store.AutoStore for handler tests.
type fakeAutoStore struct {
	autos  map[int64]*domain.Auto
	nextID int64
}

func newFakeAutoStore() *fakeAutoStore {
	return &fakeAutoStore{autos: make(map[int64]*domain.Auto)}
}

var _ store.AutoStore = (*fakeAutoStore)(nil)

func (f *fakeAutoStore) Create(ctx context.Context, auto *domain.Auto) error {
	if err := auto.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	f.nextID++
	auto.ID = f.nextID
	stored := *auto
	f.autos[auto.ID] = &stored
	return nil
}

func (f *fakeAutoStore) List(ctx context.Context) ([]*domain.Auto, error) {
	autos := make([]*domain.Auto, 0, len(f.autos))
	for _, auto := range f.autos {
		copied := *auto
		autos = append(autos, &copied)
	}
	sort.Slice(autos, func(i, j int) bool { return autos[i].ID < autos[j].ID })
	return autos, nil
}

func (f *fakeAutoStore) GetByID(ctx context.Context, id int64) (*domain.Auto, error) {
	auto, ok := f.autos[id]
	if !ok {
		return nil, store.ErrAutoNotFound
	}
	copied := *auto
	return &copied, nil
}

func (f *fakeAutoStore) Update(ctx context.Context, auto *domain.Auto) error {
	if err := auto.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if _, ok := f.autos[auto.ID]; !ok {
		return store.ErrAutoNotFound
	}
	stored := *auto
	f.autos[auto.ID] = &stored
	return nil
}

func (f *fakeAutoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.autos[id]; !ok {
		return store.ErrAutoNotFound
	}
	delete(f.autos, id)
	return nil
}

// fakeBuyerStore is an in-memory store.BuyerStore. It checks buyer auto
// references against the paired fakeAutoStore the way the database's
// foreign key constraint would.
type fakeBuyerStore struct {
	buyers    map[int64]*domain.Buyer
	nextID    int64
	autoStore *fakeAutoStore
}

func newFakeBuyerStore(autoStore *fakeAutoStore) *fakeBuyerStore {
	return &fakeBuyerStore{
		buyers:    make(map[int64]*domain.Buyer),
		autoStore: autoStore,
	}
}

var _ store.BuyerStore = (*fakeBuyerStore)(nil)

func (f *fakeBuyerStore) checkReference(autoID *int64) error {
	if autoID == nil {
		return nil
	}
	if _, ok := f.autoStore.autos[*autoID]; !ok {
		return fmt.Errorf("%w: auto with ID %d not found", store.ErrInvalidReference, *autoID)
	}
	return nil
}

func (f *fakeBuyerStore) Create(ctx context.Context, buyer *domain.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if err := f.checkReference(buyer.AutoID); err != nil {
		return err
	}
	f.nextID++
	buyer.ID = f.nextID
	stored := *buyer
	f.buyers[buyer.ID] = &stored
	return nil
}

func (f *fakeBuyerStore) List(ctx context.Context) ([]*domain.Buyer, error) {
	buyers := make([]*domain.Buyer, 0, len(f.buyers))
	for _, buyer := range f.buyers {
		copied := *buyer
		buyers = append(buyers, &copied)
	}
	sort.Slice(buyers, func(i, j int) bool { return buyers[i].ID < buyers[j].ID })
	return buyers, nil
}

func (f *fakeBuyerStore) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	buyer, ok := f.buyers[id]
	if !ok {
		return nil, store.ErrBuyerNotFound
	}
	copied := *buyer
	return &copied, nil
}

func (f *fakeBuyerStore) FindByAutoID(ctx context.Context, autoID int64) ([]*domain.Buyer, error) {
	all, _ := f.List(ctx)
	matched := make([]*domain.Buyer, 0)
	for _, buyer := range all {
		if buyer.AutoID != nil && *buyer.AutoID == autoID {
			matched = append(matched, buyer)
		}
	}
	return matched, nil
}

func (f *fakeBuyerStore) Update(ctx context.Context, buyer *domain.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if _, ok := f.buyers[buyer.ID]; !ok {
		return store.ErrBuyerNotFound
	}
	if err := f.checkReference(buyer.AutoID); err != nil {
		return err
	}
	stored := *buyer
	f.buyers[buyer.ID] = &stored
	return nil
}

func (f *fakeBuyerStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.buyers[id]; !ok {
		return store.ErrBuyerNotFound
	}
	delete(f.buyers, id)
	return nil
}
