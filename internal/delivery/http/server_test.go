package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"gearshare/config"
	"gearshare/internal/delivery/http/middleware"
	"gearshare/internal/delivery/http/router"
	"gearshare/internal/delivery/http/router/handler"
	"gearshare/internal/infra/auth"
	"gearshare/internal/infra/persistence"
	"gearshare/internal/infra/persistence/sqlite"
	"gearshare/internal/infra/persistence/store"
	"gearshare/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t *testing.T
	e *echo.Echo
}

// newTestServer wires the full application on an in-memory SQLite database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Database.Driver = config.DriverSQLite
	cfg.SQLite = &config.SQLiteConfig{Path: sqlite.MemoryPath}
	cfg.ApplyDefaults()
	cfg.Auth.BcryptCost = bcrypt.MinCost

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(cfg, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, persistence.AutoMigrate(context.Background(), db))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	policy, err := auth.NewCasbinPolicy()
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	principals := store.NewPrincipalRepositories(db)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    store.NewTransactionManager(db),
		Principals:   principals,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Config:       cfg,
		Logger:       logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		Principals: principals,
		Hasher:     hasher,
		Logger:     logger,
	})
	itemUC := impl.NewItemService(impl.ItemServiceParams{
		ItemRepo: store.NewItemRepository(db),
		Logger:   logger,
	})
	rentalUC := impl.NewRentalService(impl.RentalServiceParams{
		RentalRepo: store.NewRentalRepository(db),
		Logger:     logger,
	})

	e := NewEcho(cfg, logger, middleware.NewErrorMiddleware(logger), router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC),
		ProfileHandler: handler.NewProfileHandler(profileUC),
		ItemHandler:    handler.NewItemHandler(itemUC),
		RentalHandler:  handler.NewRentalHandler(rentalUC),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, policy, logger),
	})

	return &testServer{t: t, e: e}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func (s *testServer) register(namespace, email string) (int64, string) {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/"+namespace+"/register",
		`{"first_name":"First","last_name":"Last","email":"`+email+`","password":"pw-`+email+`"}`, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[map[string]any](s.t, rec)
	id, ok := body[namespace+"_id"].(float64)
	require.True(s.t, ok, rec.Body.String())
	token, ok := body["token"].(string)
	require.True(s.t, ok)

	return int64(id), token
}

func (s *testServer) login(namespace, email string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/"+namespace+"/login", `{"email":"`+email+`","password":"pw-`+email+`"}`, "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	return decodeBody[map[string]any](s.t, rec)["token"].(string)
}

func TestServer_OwnerScenario(t *testing.T) {
	s := newTestServer(t)

	ownerID, _ := s.register("owner", "a@x.io")
	assert.EqualValues(t, 1, ownerID)

	rec := s.do(http.MethodPost, "/api/owner/login", `{"email":"a@x.io","password":"pw-a@x.io"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody[map[string]any](t, rec)
	token := login["token"].(string)
	user := login["user"].(map[string]any)
	assert.Equal(t, "a@x.io", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = s.do(http.MethodGet, "/api/owner/profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "First", profile["first_name"])
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = s.do(http.MethodPost, "/api/items/create", `{"title":"Drill","make":"Bosch","daily_cost":12.5,"available":true}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Item created successfully","item_id":1}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/items", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]map[string]any](t, rec)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0]["owner_id"])
	assert.Equal(t, "Drill", items[0]["title"])

	rec = s.do(http.MethodGet, "/api/items/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/items/999", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/owners/1/items", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodPut, "/api/items/update/1", `{"daily_cost":15}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[map[string]any](t, rec)["item"].(map[string]any)
	assert.EqualValues(t, 15, updated["daily_cost"])
	assert.Equal(t, "Drill", updated["title"])
}

func TestServer_Authentication(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register("owner", "a@x.io")

	rec := s.do(http.MethodGet, "/api/owner/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header is missing", decodeBody[map[string]any](t, rec)["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/owner/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/owner/profile", "", token+"tampered")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Invalid token", decodeBody[map[string]any](t, rec)["error"])

	rec = s.do(http.MethodPost, "/api/owner/login", `{"email":"a@x.io","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/owner/login", `{"email":"nobody@x.io","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/owner/register",
		`{"first_name":"F","last_name":"L","email":"A@X.io","password":"other"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_NamespacesAreDisjoint(t *testing.T) {
	s := newTestServer(t)

	ownerID, ownerToken := s.register("owner", "same@x.io")
	renterID, renterToken := s.register("renter", "same@x.io")
	assert.Equal(t, ownerID, renterID, "ids are assigned per namespace")

	rec := s.do(http.MethodGet, "/api/owner/profile", "", renterToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/items/create", `{"title":"Saw"}`, renterToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/rentals/rent_item/1", `{"start_date":"a","end_date":"b","total_cost":1}`, ownerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/renter/profile", "", renterToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CrossOwnerMutationIsNotFound(t *testing.T) {
	s := newTestServer(t)
	_, first := s.register("owner", "one@x.io")
	secondID, second := s.register("owner", "two@x.io")

	rec := s.do(http.MethodPost, "/api/items/create", `{"title":"Drill"}`, first)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/items/delete/1", "", second)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/items/update/1", `{"title":"Stolen"}`, second)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/items/1", "", "")
	items := decodeBody[[]map[string]any](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Drill", items[0]["title"])

	rec = s.do(http.MethodGet, "/api/owners/1/items", "", second)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/owners/"+strconv.FormatInt(secondID, 10)+"/items", "", second)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/items/delete/1", "", first)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RentalLifecycle(t *testing.T) {
	s := newTestServer(t)
	_, renter := s.register("renter", "r@x.io")

	rec := s.do(http.MethodPost, "/api/rentals/rent_item/1",
		`{"start_date":"2024-05-01","end_date":"2024-05-03","total_cost":30}`, renter)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Item rented successfully","rental_id":1}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/rented_items", "", renter)
	require.Equal(t, http.StatusOK, rec.Code)
	rentals := decodeBody[[]map[string]any](t, rec)
	require.Len(t, rentals, 1)
	assert.EqualValues(t, 1, rentals[0]["renter_id"])

	rec = s.do(http.MethodGet, "/api/rentals/1", "", renter)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/rentals/2", "", renter)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/rentals/remove_item/1", "", renter)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/rentals/remove_item/1", "", renter)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ProfileLifecycle(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register("owner", "p@x.io")

	rec := s.do(http.MethodPut, "/api/owner/update_profile", `{"last_name":"Changed","email":""}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Owner updated successfully"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/owner/profile", "", token)
	profile := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "First", profile["first_name"])
	assert.Equal(t, "Changed", profile["last_name"])
	assert.Equal(t, "p@x.io", profile["email"])

	// The password is untouched by an update that does not supply one.
	s.login("owner", "p@x.io")

	rec = s.do(http.MethodPut, "/api/owner/update_profile", `{"password":"new-secret"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodPost, "/api/owner/login", `{"email":"p@x.io","password":"new-secret"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/owner/delete_profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Owner deleted successfully"}`, rec.Body.String())

	// The token outlives the principal; the profile itself is gone.
	rec = s.do(http.MethodGet, "/api/owner/profile", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/owner/delete_profile", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RepeatedPartialUpdateKeepsOtherFields(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register("renter", "same@x.io")

	profileWithoutUpdatedAt := func() map[string]any {
		rec := s.do(http.MethodGet, "/api/renter/profile", "", token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		profile := decodeBody[map[string]any](t, rec)
		delete(profile, "updated_at")

		return profile
	}

	rec := s.do(http.MethodPut, "/api/renter/update_profile", `{"first_name":"X"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := profileWithoutUpdatedAt()

	rec = s.do(http.MethodPut, "/api/renter/update_profile", `{"first_name":"X"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, first, profileWithoutUpdatedAt())
	assert.Equal(t, "X", first["first_name"])
	assert.Equal(t, "Last", first["last_name"])
	assert.Equal(t, "same@x.io", first["email"])

	// The original password still logs in.
	s.login("renter", "same@x.io")
}

func TestServer_PasswordLengthIsValidated(t *testing.T) {
	s := newTestServer(t)
	long := strings.Repeat("p", 80)

	rec := s.do(http.MethodPost, "/api/owner/register",
		`{"first_name":"A","last_name":"B","email":"long@x.io","password":"`+long+`"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody[map[string]any](t, rec)["code"])

	limit := strings.Repeat("p", 72)
	rec = s.do(http.MethodPost, "/api/owner/register",
		`{"first_name":"A","last_name":"B","email":"long@x.io","password":"`+limit+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeBody[map[string]any](t, rec)["token"].(string)

	rec = s.do(http.MethodPut, "/api/owner/update_profile", `{"password":"`+long+`"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeBody[map[string]any](t, rec)["code"])

	rec = s.do(http.MethodPost, "/api/owner/login", `{"email":"long@x.io","password":"`+limit+`"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
