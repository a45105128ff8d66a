//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/showroom-api/internal/domain"
	"github.com/phrazzld/showroom-api/internal/platform/postgres"
	"github.com/phrazzld/showroom-api/internal/store"
)

func TestBuyerStore_Create(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		buyerStore := postgres.NewBuyerStore(tx, nil)
		ctx := context.Background()

		auto := mustInsertAuto(t, tx, "Benz")

		t.Run("with auto reference", func(t *testing.T) {
			buyer, err := domain.NewBuyer("Tom Hanks", 54, "M", &auto.ID)
			require.NoError(t, err)

			require.NoError(t, buyerStore.Create(ctx, buyer))
			require.NotZero(t, buyer.ID, "Create must assign the buyer's ID")

			got, err := buyerStore.GetByID(ctx, buyer.ID)
			require.NoError(t, err)
			assert.Equal(t, "Tom Hanks", got.Name)
			assert.Equal(t, 54, got.Age)
			assert.Equal(t, "M", got.Gender)
			require.NotNil(t, got.AutoID)
			assert.Equal(t, auto.ID, *got.AutoID)
		})

		t.Run("without auto reference", func(t *testing.T) {
			buyer, err := domain.NewBuyer("Julia Roberts", 45, "F", nil)
			require.NoError(t, err)

			require.NoError(t, buyerStore.Create(ctx, buyer))

			got, err := buyerStore.GetByID(ctx, buyer.ID)
			require.NoError(t, err)
			assert.Nil(t, got.AutoID)
		})

		// Last: a foreign key violation aborts the surrounding
		// transaction, so nothing may run in it afterwards.
		t.Run("nonexistent auto reference", func(t *testing.T) {
			missingAuto := auto.ID + 1000
			buyer, err := domain.NewBuyer("Tom Hanks", 54, "M", &missingAuto)
			require.NoError(t, err)

			err = buyerStore.Create(ctx, buyer)
			assert.ErrorIs(t, err, store.ErrInvalidReference,
				"a foreign key violation must surface as ErrInvalidReference")
		})
	})
}

func TestBuyerStore_FindByAutoID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		buyerStore := postgres.NewBuyerStore(tx, nil)
		ctx := context.Background()

		auto := mustInsertAuto(t, tx, "Benz")
		other := mustInsertAuto(t, tx, "Eyvah eyvah 2")

		for _, name := range []string{"Tom Hanks", "Julia Roberts"} {
			buyer, err := domain.NewBuyer(name, 45, "F", &auto.ID)
			require.NoError(t, err)
			require.NoError(t, buyerStore.Create(ctx, buyer))
		}
		stranger, err := domain.NewBuyer("John Smidth", 54, "M", &other.ID)
		require.NoError(t, err)
		require.NoError(t, buyerStore.Create(ctx, stranger))

		buyers, err := buyerStore.FindByAutoID(ctx, auto.ID)
		require.NoError(t, err)
		require.Len(t, buyers, 2)
		assert.Equal(t, "Tom Hanks", buyers[0].Name)
		assert.Equal(t, "Julia Roberts", buyers[1].Name)

		none, err := buyerStore.FindByAutoID(ctx, other.ID+1000)
		require.NoError(t, err)
		assert.Empty(t, none)
		assert.NotNil(t, none, "FindByAutoID returns an empty slice, never nil")
	})
}

func TestBuyerStore_Update(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		buyerStore := postgres.NewBuyerStore(tx, nil)
		ctx := context.Background()

		auto := mustInsertAuto(t, tx, "Benz")
		buyer, err := domain.NewBuyer("John Smidth", 54, "M", nil)
		require.NoError(t, err)
		require.NoError(t, buyerStore.Create(ctx, buyer))

		buyer.Name = "Tom Hanks"
		buyer.AutoID = &auto.ID
		require.NoError(t, buyerStore.Update(ctx, buyer))

		got, err := buyerStore.GetByID(ctx, buyer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tom Hanks", got.Name)
		require.NotNil(t, got.AutoID)
		assert.Equal(t, auto.ID, *got.AutoID)

		t.Run("nonexistent buyer", func(t *testing.T) {
			missing := *buyer
			missing.ID = buyer.ID + 1000
			missing.AutoID = nil
			err := buyerStore.Update(ctx, &missing)
			assert.ErrorIs(t, err, store.ErrBuyerNotFound)
		})

		// Last: a foreign key violation aborts the surrounding
		// transaction, so nothing may run in it afterwards.
		t.Run("nonexistent auto reference", func(t *testing.T) {
			missingAuto := auto.ID + 1000
			buyer.AutoID = &missingAuto
			err := buyerStore.Update(ctx, buyer)
			assert.ErrorIs(t, err, store.ErrInvalidReference)
		})
	})
}

func TestBuyerStore_Delete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		buyerStore := postgres.NewBuyerStore(tx, nil)
		ctx := context.Background()

		buyer, err := domain.NewBuyer("Tom Hanks", 54, "M", nil)
		require.NoError(t, err)
		require.NoError(t, buyerStore.Create(ctx, buyer))

		require.NoError(t, buyerStore.Delete(ctx, buyer.ID))

		_, err = buyerStore.GetByID(ctx, buyer.ID)
		assert.ErrorIs(t, err, store.ErrBuyerNotFound)

		err = buyerStore.Delete(ctx, buyer.ID)
		assert.ErrorIs(t, err, store.ErrBuyerNotFound)
	})
}
