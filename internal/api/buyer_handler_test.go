package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/showroom-api/internal/domain"
)

func mustCreateBuyer(t *testing.T, buyers *fakeBuyerStore, name string, age int, gender string, autoID *int64) *domain.Buyer {
	t.Helper()

	buyer, err := domain.NewBuyer(name, age, gender, autoID)
	require.NoError(t, err)
	require.NoError(t, buyers.Create(context.Background(), buyer))
	return buyer
}

func TestCreateBuyer(t *testing.T) {
	t.Parallel()

	t.Run("valid create returns success flag only", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		auto := mustCreateAuto(t, autos, "Benz", "2012-05-04")

		rec := doJSON(t, router, http.MethodPost, "/buyers", map[string]any{
			"name":    "Tom Hanks",
			"age":     54,
			"gender":  "M",
			"auto_id": auto.ID,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"success": true}, decodeBody(t, rec))
		assert.Len(t, buyers.buyers, 1)
	})

	t.Run("each required field is mandatory", func(t *testing.T) {
		t.Parallel()

		full := map[string]any{
			"name":    "Tom Hanks",
			"age":     54,
			"gender":  "M",
			"auto_id": 1,
		}

		for field := range full {
			t.Run("missing "+field, func(t *testing.T) {
				t.Parallel()
				autos := newFakeAutoStore()
				buyers := newFakeBuyerStore(autos)
				router := newTestRouter(autos, buyers)
				mustCreateAuto(t, autos, "Benz", "2012-05-04")

				body := make(map[string]any, len(full)-1)
				for k, v := range full {
					if k != field {
						body[k] = v
					}
				}

				rec := doJSON(t, router, http.MethodPost, "/buyers", body)

				require.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "Missing field for Buyer", decodeBody(t, rec)["message"])
				assert.Empty(t, buyers.buyers, "no row may be persisted on a validation failure")
			})
		}
	})

	t.Run("nonexistent auto reference surfaces as 400", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		rec := doJSON(t, router, http.MethodPost, "/buyers", map[string]any{
			"name":    "Tom Hanks",
			"age":     54,
			"gender":  "M",
			"auto_id": 42,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Bad formatted request due to nonexistent auto id 42", body["message"])
	})
}

func TestListBuyers(t *testing.T) {
	t.Parallel()

	autos := newFakeAutoStore()
	buyers := newFakeBuyerStore(autos)
	router := newTestRouter(autos, buyers)

	auto := mustCreateAuto(t, autos, "Benz", "2012-05-04")
	mustCreateBuyer(t, buyers, "Tom Hanks", 54, "M", &auto.ID)
	mustCreateBuyer(t, buyers, "Julia Roberts", 45, "F", nil)

	rec := doJSON(t, router, http.MethodGet, "/buyers", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	list, ok := body["buyers"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	first := list[0].(map[string]any)
	assert.Equal(t, "Tom Hanks", first["name"])
	assert.Equal(t, float64(auto.ID), first["auto_id"])

	second := list[1].(map[string]any)
	assert.Equal(t, "Julia Roberts", second["name"])
	assert.Nil(t, second["auto_id"])
}

func TestDeleteBuyer(t *testing.T) {
	t.Parallel()

	t.Run("existing buyer", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		mustCreateBuyer(t, buyers, "Tom Hanks", 54, "M", nil)

		rec := doJSON(t, router, http.MethodDelete, "/buyers/1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["deleted"])
		assert.Empty(t, buyers.buyers)
	})

	t.Run("nonexistent buyer", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		router := newTestRouter(autos, newFakeBuyerStore(autos))

		rec := doJSON(t, router, http.MethodDelete, "/buyers/100", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "No buyer with given id 100 is found", body["message"])
	})
}

func TestUpdateBuyer(t *testing.T) {
	t.Parallel()

	t.Run("partial update returns the full entity", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		mustCreateBuyer(t, buyers, "John Smidth", 54, "M", nil)

		rec := doJSON(t, router, http.MethodPatch, "/buyers/1", map[string]any{
			"name": "Tom Hanks",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeBody(t, rec)["updated"].(map[string]any)
		assert.Equal(t, "Tom Hanks", updated["name"])
		assert.Equal(t, float64(54), updated["age"])
		assert.Equal(t, "M", updated["gender"])
	})

	t.Run("zero values are skipped", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		mustCreateBuyer(t, buyers, "John Smidth", 54, "M", nil)

		rec := doJSON(t, router, http.MethodPatch, "/buyers/1", map[string]any{
			"name": "",
			"age":  0,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeBody(t, rec)["updated"].(map[string]any)
		assert.Equal(t, "John Smidth", updated["name"])
		assert.Equal(t, float64(54), updated["age"])
	})

	t.Run("nonexistent auto reference surfaces as 400", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		buyers := newFakeBuyerStore(autos)
		router := newTestRouter(autos, buyers)

		mustCreateBuyer(t, buyers, "John Smidth", 54, "M", nil)

		rec := doJSON(t, router, http.MethodPatch, "/buyers/1", map[string]any{
			"auto_id": 42,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad formatted request due to nonexistent auto id 42",
			decodeBody(t, rec)["message"])
	})

	t.Run("nonexistent buyer", func(t *testing.T) {
		t.Parallel()
		autos := newFakeAutoStore()
		router := newTestRouter(autos, newFakeBuyerStore(autos))

		rec := doJSON(t, router, http.MethodPatch, "/buyers/9", map[string]any{
			"name": "Tom Hanks",
		})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Buyer with id: 9 could not be found.", decodeBody(t, rec)["message"])
	})
}
