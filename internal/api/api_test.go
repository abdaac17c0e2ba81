package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"catalog/internal/db/dbtest"
	"catalog/internal/products"
	"catalog/internal/seed"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

func newTestRouter(t *testing.T, seedHash string) *gin.Engine {
	t.Helper()
	gdb := dbtest.New(t)
	svc := products.NewService(gdb, zap.NewNop())
	fixtures, err := seed.DefaultFixtures()
	require.NoError(t, err)
	return NewRouter(Deps{
		DB:            gdb,
		Products:      svc,
		Seeder:        seed.NewService(svc, fixtures, zap.NewNop()),
		Logger:        zap.NewNop(),
		SeedTokenHash: seedHash,
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

var newShirt = map[string]any{
	"title":  "Men's Turbine Long Sleeve Tee",
	"price":  35.5,
	"stock":  4,
	"sizes":  []string{"M", "L"},
	"gender": "men",
	"tags":   []string{"shirt"},
	"images": []string{"t1.jpg", "t2.jpg"},
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, "")
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductLifecycle(t *testing.T) {
	r := newTestRouter(t, "")

	w := do(t, r, http.MethodPost, "/api/products", newShirt)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[products.ProductView](t, w)
	assert.Equal(t, "mens_turbine_long_sleeve_tee", created.Slug)
	assert.Equal(t, []string{"t1.jpg", "t2.jpg"}, created.Images)

	for _, term := range []string{created.ID, created.Slug, "MEN'S TURBINE LONG SLEEVE TEE"} {
		w = do(t, r, http.MethodGet, "/api/products/"+url.PathEscape(term), nil)
		require.Equal(t, http.StatusOK, w.Code, term)
		got := decode[products.ProductView](t, w)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Images, got.Images)
	}

	w = do(t, r, http.MethodPatch, "/api/products/"+created.ID, map[string]any{
		"price":  40,
		"images": []string{"n.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[products.ProductView](t, w)
	assert.Equal(t, "40", updated.Price.String())
	assert.Equal(t, []string{"n.jpg"}, updated.Images)

	w = do(t, r, http.MethodGet, "/api/products?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]products.ProductView](t, w), 1)

	w = do(t, r, http.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]any](t, w)
	assert.EqualValues(t, 404, body["statusCode"])
	assert.Equal(t, "Not Found", body["error"])
}

func TestCreateDuplicateIsClientError(t *testing.T) {
	r := newTestRouter(t, "")

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/products", newShirt).Code)

	w := do(t, r, http.MethodPost, "/api/products", newShirt)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Contains(t, body["message"], "UNIQUE")
}

func TestValidation(t *testing.T) {
	r := newTestRouter(t, "")

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing title", http.MethodPost, "/api/products", map[string]any{"sizes": []string{}, "gender": "men"}, http.StatusBadRequest},
		{"bad gender", http.MethodPost, "/api/products", map[string]any{"title": "x", "sizes": []string{}, "gender": "alien"}, http.StatusBadRequest},
		{"negative price", http.MethodPost, "/api/products", map[string]any{"title": "x", "sizes": []string{}, "gender": "kid", "price": -3}, http.StatusBadRequest},
		{"negative limit", http.MethodGet, "/api/products?limit=-1", nil, http.StatusBadRequest},
		{"negative offset", http.MethodGet, "/api/products?offset=-1", nil, http.StatusBadRequest},
		{"patch non uuid", http.MethodPatch, "/api/products/some-slug", map[string]any{}, http.StatusBadRequest},
		{"delete non uuid", http.MethodDelete, "/api/products/some-slug", nil, http.StatusBadRequest},
		{"patch missing", http.MethodPatch, "/api/products/" + uuid.NewString(), map[string]any{}, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/api/products/" + uuid.NewString(), nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestSeedEndpoint(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		r := newTestRouter(t, "")
		w := do(t, r, http.MethodGet, "/api/seed", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "SEED EXECUTED", w.Body.String())

		w = do(t, r, http.MethodGet, "/api/products?limit=50", nil)
		fixtures, err := seed.DefaultFixtures()
		require.NoError(t, err)
		assert.Len(t, decode[[]products.ProductView](t, w), len(fixtures))
	})

	t.Run("guarded", func(t *testing.T) {
		hash, err := HashToken("s3cret")
		require.NoError(t, err)
		r := newTestRouter(t, hash)

		assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/api/seed", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/api/seed", nil, SeedTokenHeader, "wrong").Code)
		assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/seed", nil, SeedTokenHeader, " s3cret ").Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, "")
	w := do(t, r, http.MethodOptions, "/api/products", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCheckToken(t *testing.T) {
	hash, err := HashToken("token")
	require.NoError(t, err)
	assert.True(t, CheckToken(hash, "token"))
	assert.False(t, CheckToken(hash, "other"))
	assert.False(t, CheckToken("not-a-hash", "token"))
	assert.False(t, CheckToken("", ""))
	assert.False(t, CheckToken(hash, "   "))
	assert.True(t, CheckToken(hash, "token\n"))

	_, err = HashToken("  ")
	assert.ErrorIs(t, err, errEmptySeedToken)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, seedTokenCost, cost)
}

func TestPriceIsJSONNumber(t *testing.T) {
	r := newTestRouter(t, "")

	w := do(t, r, http.MethodPost, "/api/products", newShirt)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode[map[string]any](t, w)
	price, ok := body["price"].(float64)
	require.True(t, ok, "price should be a number, got %T in %s", body["price"], w.Body.String())
	assert.Equal(t, 35.5, price)

	w = do(t, r, http.MethodGet, "/api/products/"+body["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, ok = decode[map[string]any](t, w)["price"].(float64)
	assert.True(t, ok, w.Body.String())
}
