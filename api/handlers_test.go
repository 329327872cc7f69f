package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craftshare/backend/auth"
	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/models"
)

const testJWTSecret = "test-secret-test-secret-test-secret"

// fakeStore is an in-memory stand-in for the S3 gateway.
type fakeStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	uploads    int
	failUpload bool
	failRemove bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	if s.failUpload {
		return "", errors.New("fake store: upload failed")
	}
	s.objects[key] = append([]byte(nil), data...)
	return "https://cdn.test/" + key, nil
}

func (s *fakeStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRemove {
		return errors.New("fake store: remove failed")
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *fakeStore) objectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *fakeStore) uploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads
}

func setupTest(t *testing.T) (*httptest.Server, *fakeStore) {
	t.Helper()
	zerolog.SetGlobalLevel(zerolog.Disabled)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Image{}, &models.Comment{}))

	tokens, err := auth.NewTokenManager(testJWTSecret)
	require.NoError(t, err)

	store := newFakeStore()
	srv := httptest.NewServer(newRouter(database.New(db), store, tokens))
	t.Cleanup(srv.Close)

	return srv, store
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decodeBody[messageResponse](t, resp).Message
}

type testUser struct {
	id    uint
	email string
	token string
}

func registerUser(t *testing.T, srv *httptest.Server, email, password string) testUser {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[authResponse](t, resp)
	require.NotEmpty(t, out.Token)
	require.NotNil(t, out.User)

	return testUser{id: out.User.ID, email: out.User.Email, token: out.Token}
}

func createProject(t *testing.T, srv *httptest.Server, token, title string, isPublic bool) models.Project {
	t.Helper()

	body := fmt.Sprintf(`{"title":%q,"description":"","isPublic":%t}`, title, isPublic)
	resp := doJSON(t, srv, http.MethodPost, "/api/projects", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeBody[models.Project](t, resp)
}

func uploadImage(t *testing.T, srv *httptest.Server, token string, projectID uint, filename string, data []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/api/images/%d", srv.URL, projectID), &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func postComment(t *testing.T, srv *httptest.Server, token string, projectID uint, content string) *http.Response {
	t.Helper()
	body := fmt.Sprintf(`{"content":%q}`, content)
	return doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/comments/%d", projectID), token, body)
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := setupTest(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"email":"a@x.io","password":"pw12345"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "passwordHash")
	assert.NotContains(t, string(raw), "password_hash")

	var registered authResponse
	require.NoError(t, json.Unmarshal(raw, &registered))
	assert.Equal(t, "a@x.io", registered.User.Email)
	assert.NotEmpty(t, registered.Token)

	// a fresh registration can log in right away
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.io","password":"pw12345"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := decodeBody[authResponse](t, resp)
	assert.NotEmpty(t, loggedIn.Token)

	// wrong password and unknown email are indistinguishable
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.io","password":"wrong-pw"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", errorMessage(t, resp))

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"nobody@x.io","password":"pw12345"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", errorMessage(t, resp))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _ := setupTest(t)

	registerUser(t, srv, "a@x.io", "pw12345")

	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"email":"a@x.io","password":"pw12345"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", errorMessage(t, resp))

	// emails are compared case-insensitively
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"email":"A@X.IO","password":"pw12345"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", errorMessage(t, resp))
}

func TestRegisterValidation(t *testing.T) {
	srv, _ := setupTest(t)

	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"email":"not-an-email","password":"pw12345"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{"email":"b@x.io","password":"pw"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTokenLifecycle(t *testing.T) {
	srv, _ := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")

	// valid token works
	createProject(t, srv, u.token, "P", true)

	// tampered token is rejected
	resp := doJSON(t, srv, http.MethodPost, "/api/projects", u.token+"x", `{"title":"P","isPublic":true}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", errorMessage(t, resp))

	// expired token is rejected
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: u.id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	resp = doJSON(t, srv, http.MethodPost, "/api/projects", signed, `{"title":"P","isPublic":true}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", errorMessage(t, resp))

	// missing token on a gated endpoint
	resp = doJSON(t, srv, http.MethodPost, "/api/projects", "", `{"title":"P","isPublic":true}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token provided", errorMessage(t, resp))
}

func TestPublicProjectListing(t *testing.T) {
	srv, _ := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")

	createProject(t, srv, u.token, "Alpha", true)
	createProject(t, srv, u.token, "Beta", false)

	resp := doJSON(t, srv, http.MethodGet, "/api/projects", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	projects := decodeBody[[]models.Project](t, resp)

	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Title)
	assert.True(t, projects[0].IsPublic)
	require.NotNil(t, projects[0].User)
	assert.Equal(t, "a@x.io", projects[0].User.Email)

	// the owner's token changes nothing: private rows never appear here
	resp = doJSON(t, srv, http.MethodGet, "/api/projects", u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]models.Project](t, resp), 1)
}

func TestPrivateProjectVisibility(t *testing.T) {
	srv, _ := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")

	p := createProject(t, srv, owner.token, "P", false)
	path := fmt.Sprintf("/api/projects/%d", p.ID)

	resp := doJSON(t, srv, http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", errorMessage(t, resp))

	resp = doJSON(t, srv, http.MethodGet, path, owner.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[models.Project](t, resp)
	assert.Equal(t, p.ID, got.ID)
	require.NotNil(t, got.User)
	assert.Equal(t, "a@x.io", got.User.Email)

	resp = doJSON(t, srv, http.MethodGet, path, other.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// the visibility gate holds across every read endpoint
	for _, path := range []string{
		fmt.Sprintf("/api/images/%d", p.ID),
		fmt.Sprintf("/api/comments/%d", p.ID),
	} {
		resp = doJSON(t, srv, http.MethodGet, path, other.token, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}

	resp = doJSON(t, srv, http.MethodGet, "/api/projects/9999", owner.token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found", errorMessage(t, resp))
}

func TestProjectUpdate(t *testing.T) {
	srv, _ := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")

	p := createProject(t, srv, owner.token, "Before", false)
	path := fmt.Sprintf("/api/projects/%d", p.ID)

	resp := doJSON(t, srv, http.MethodPut, path, owner.token, `{"title":"After","description":"d","isPublic":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Project](t, resp)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, owner.id, updated.UserID)

	// a non-owner cannot even see that the project exists
	resp = doJSON(t, srv, http.MethodPut, path, other.token, `{"title":"X","isPublic":true}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found", errorMessage(t, resp))

	resp = doJSON(t, srv, http.MethodPut, path, owner.token, `{"title":"","isPublic":true}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImageUploadAndList(t *testing.T) {
	srv, store := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", false)

	payload := bytes.Repeat([]byte{0x89}, 1024)
	resp := uploadImage(t, srv, u.token, p.ID, "pic.png", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	image := decodeBody[models.Image](t, resp)
	assert.Equal(t, p.ID, image.ProjectID)
	assert.True(t, strings.HasPrefix(image.Key, fmt.Sprintf("projects/%d/", p.ID)), image.Key)
	assert.True(t, strings.HasSuffix(image.Key, "-pic.png"), image.Key)
	assert.Contains(t, image.URL, image.Key)
	assert.True(t, store.has(image.Key))

	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/images/%d", p.ID), u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	images := decodeBody[[]models.Image](t, resp)
	require.Len(t, images, 1)
	assert.Equal(t, image.ID, images[0].ID)
}

func TestImageUploadRequiresOwnership(t *testing.T) {
	srv, store := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")
	p := createProject(t, srv, owner.token, "P", true)

	resp := uploadImage(t, srv, other.token, p.ID, "pic.png", []byte("data"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project not found", errorMessage(t, resp))
	assert.Equal(t, 0, store.uploadCount())
}

func TestImageUploadMissingFile(t *testing.T) {
	srv, store := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", false)

	resp := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/images/%d", p.ID), u.token, `{"not":"multipart"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No image file provided", errorMessage(t, resp))
	assert.Equal(t, 0, store.uploadCount())
}

func TestOversizeUpload(t *testing.T) {
	srv, store := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", false)

	resp := uploadImage(t, srv, u.token, p.ID, "big.bin", bytes.Repeat([]byte{0xAB}, 6<<20))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "File too large", errorMessage(t, resp))

	// the blob gateway was never contacted
	assert.Equal(t, 0, store.uploadCount())

	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/images/%d", p.ID), u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Image](t, resp))
}

func TestImageDelete(t *testing.T) {
	srv, store := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", false)

	resp := uploadImage(t, srv, u.token, p.ID, "pic.png", []byte("data"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	image := decodeBody[models.Image](t, resp)

	path := fmt.Sprintf("/api/images/%d/%d", p.ID, image.ID)
	resp = doJSON(t, srv, http.MethodDelete, path, u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Image deleted successfully", errorMessage(t, resp))

	// row gone and blob gone
	assert.False(t, store.has(image.Key))
	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/images/%d", p.ID), u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Image](t, resp))

	// a second delete finds nothing
	resp = doJSON(t, srv, http.MethodDelete, path, u.token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Image not found", errorMessage(t, resp))
}

func TestImageDeleteBlobFailureKeepsRow(t *testing.T) {
	srv, store := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", false)

	resp := uploadImage(t, srv, u.token, p.ID, "pic.png", []byte("data"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	image := decodeBody[models.Image](t, resp)

	store.failRemove = true
	path := fmt.Sprintf("/api/images/%d/%d", p.ID, image.ID)
	resp = doJSON(t, srv, http.MethodDelete, path, u.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// the row survives a failed blob delete, so a retry can finish the job
	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/images/%d", p.ID), u.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]models.Image](t, resp), 1)

	store.failRemove = false
	resp = doJSON(t, srv, http.MethodDelete, path, u.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, store.has(image.Key))
}

func TestCommentFlow(t *testing.T) {
	srv, _ := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")
	p := createProject(t, srv, owner.token, "P", true)

	resp := postComment(t, srv, other.token, p.ID, "hi")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	comment := decodeBody[models.Comment](t, resp)
	assert.Equal(t, "hi", comment.Content)
	assert.Equal(t, other.id, comment.UserID)
	require.NotNil(t, comment.User)
	assert.Equal(t, "b@x.io", comment.User.Email)

	// even the project owner cannot delete someone else's comment
	path := fmt.Sprintf("/api/comments/%d/%d", p.ID, comment.ID)
	resp = doJSON(t, srv, http.MethodDelete, path, owner.token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Comment not found", errorMessage(t, resp))

	resp = doJSON(t, srv, http.MethodDelete, path, other.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Comment deleted successfully", errorMessage(t, resp))
}

func TestCommentValidationAndVisibility(t *testing.T) {
	srv, _ := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")

	public := createProject(t, srv, owner.token, "Pub", true)
	private := createProject(t, srv, owner.token, "Priv", false)

	resp := postComment(t, srv, other.token, public.ID, "   ")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Comment content is required", errorMessage(t, resp))

	// whoever cannot see the project cannot comment on it
	resp = postComment(t, srv, other.token, private.ID, "hi")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", errorMessage(t, resp))

	resp = postComment(t, srv, owner.token, private.ID, "note to self")
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCommentOrdering(t *testing.T) {
	srv, _ := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")
	p := createProject(t, srv, u.token, "P", true)

	for _, content := range []string{"first", "second", "third"} {
		resp := postComment(t, srv, u.token, p.ID, content)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/comments/%d", p.ID), "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments := decodeBody[[]models.Comment](t, resp)
	require.Len(t, comments, 3)

	assert.Equal(t, "third", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "first", comments[2].Content)
	require.NotNil(t, comments[0].User)
	assert.Equal(t, "a@x.io", comments[0].User.Email)
}

func TestProjectCascade(t *testing.T) {
	srv, store := setupTest(t)
	owner := registerUser(t, srv, "a@x.io", "pw12345")
	other := registerUser(t, srv, "b@x.io", "pw12345")

	p := createProject(t, srv, owner.token, "P", true)

	resp := uploadImage(t, srv, owner.token, p.ID, "pic.png", []byte("data"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	image := decodeBody[models.Image](t, resp)

	for _, c := range []struct {
		token   string
		content string
	}{
		{owner.token, "mine"},
		{other.token, "theirs"},
	} {
		resp := postComment(t, srv, c.token, p.ID, c.content)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// a non-owner cannot delete the project
	path := fmt.Sprintf("/api/projects/%d", p.ID)
	resp = doJSON(t, srv, http.MethodDelete, path, other.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodDelete, path, owner.token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Project deleted successfully", errorMessage(t, resp))

	// children are gone together with the project, blobs included
	for _, path := range []string{
		fmt.Sprintf("/api/projects/%d", p.ID),
		fmt.Sprintf("/api/images/%d", p.ID),
		fmt.Sprintf("/api/comments/%d", p.ID),
	} {
		resp = doJSON(t, srv, http.MethodGet, path, owner.token, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	assert.False(t, store.has(image.Key))
	assert.Equal(t, 0, store.objectCount())
}

func TestInvalidIDs(t *testing.T) {
	srv, _ := setupTest(t)
	u := registerUser(t, srv, "a@x.io", "pw12345")

	resp := doJSON(t, srv, http.MethodGet, "/api/projects/abc", u.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/api/images/0", u.token, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := setupTest(t)

	resp := doJSON(t, srv, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}
