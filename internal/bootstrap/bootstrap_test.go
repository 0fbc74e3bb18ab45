package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/app/models"
	memoryRepos "github.com/cohort-tools/api/internal/app/repositories/memory"
	"github.com/cohort-tools/api/internal/config"
	pkgAuth "github.com/cohort-tools/api/internal/pkg/auth"
	"github.com/cohort-tools/api/internal/pkg/roster"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T, protect bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.ProtectAPI = protect
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = "6h"
	cfg.JWT.Issuer = "cohort-tools-test"
	cfg.JWT.BcryptCost = config.MinBcryptCost

	lgr := zerolog.Nop()
	deps, err := BuildDependencies(cfg, memoryRepos.NewRepositories(), pkgAuth.NewMemoryRevocationList(), lgr)
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	return &testAPI{t: t, router: SetupRouter(cfg, deps, lgr)}
}

func (a *testAPI) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			data, err := json.Marshal(body)
			if err != nil {
				a.t.Fatal(err)
			}
			r = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body %s", w.Code, want, w.Body.String())
	}
}

var cohortBody = map[string]interface{}{
	"cohortSlug":     "ft-wd-paris-2024-06",
	"cohortName":     "FT WD PARIS 2024 06",
	"program":        "Web Dev",
	"campus":         "Paris",
	"programManager": "Mat",
	"leadTeacher":    "Josh",
}

func TestCohortLifecycle(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(http.MethodGet, "/api/cohorts", "", nil)
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty list = %s", w.Body.String())
	}

	w = api.do(http.MethodPost, "/api/cohorts", "", cohortBody)
	expectStatus(t, w, http.StatusCreated)
	var created map[string]interface{}
	decodeInto(t, w, &created)
	id, _ := created["_id"].(string)
	if id == "" || created["totalHours"] != float64(360) || created["inProgress"] != false {
		t.Fatalf("created = %v", created)
	}

	w = api.do(http.MethodPost, "/api/cohorts", "", cohortBody)
	expectStatus(t, w, http.StatusBadRequest)
	var dup map[string]interface{}
	decodeInto(t, w, &dup)
	if dup["duplicate"] != true {
		t.Errorf("duplicate = %v", dup)
	}

	w = api.do(http.MethodPut, "/api/cohorts/"+id, "", map[string]interface{}{"inProgress": true, "format": "Part Time"})
	expectStatus(t, w, http.StatusOK)
	var updated models.Cohort
	decodeInto(t, w, &updated)
	if !updated.InProgress || updated.Format != models.FormatPartTime || updated.Slug != "ft-wd-paris-2024-06" {
		t.Errorf("updated = %+v", updated)
	}

	w = api.do(http.MethodPut, "/api/cohorts/"+id, "", map[string]interface{}{"endDate": "2030-01-01T00:00:00Z"})
	expectStatus(t, w, http.StatusOK)
	decodeInto(t, w, &updated)
	if updated.EndDate == nil {
		t.Fatalf("endDate not set: %+v", updated)
	}

	w = api.do(http.MethodPut, "/api/cohorts/"+id, "", `{"endDate": null, "program": "", "campus": ""}`)
	expectStatus(t, w, http.StatusOK)
	var clearedCohort models.Cohort
	decodeInto(t, w, &clearedCohort)
	if clearedCohort.EndDate != nil || clearedCohort.Program != "" || clearedCohort.Campus != "" || clearedCohort.Format != models.FormatPartTime {
		t.Errorf("cleared = %+v", clearedCohort)
	}
	expectStatus(t, api.do(http.MethodPut, "/api/cohorts/"+id, "", map[string]interface{}{"program": "Cooking"}), http.StatusBadRequest)

	w = api.do(http.MethodPost, "/api/cohorts", "", map[string]interface{}{"cohortSlug": "x", "cohortName": "x", "programManager": "a", "leadTeacher": "b", "campus": "Tokyo"})
	expectStatus(t, w, http.StatusBadRequest)

	w = api.do(http.MethodGet, "/api/cohorts/"+id, "", nil)
	expectStatus(t, w, http.StatusOK)

	w = api.do(http.MethodDelete, "/api/cohorts/"+id, "", nil)
	expectStatus(t, w, http.StatusNoContent)
	if w.Body.Len() != 0 {
		t.Errorf("delete body = %q", w.Body.String())
	}

	expectStatus(t, api.do(http.MethodGet, "/api/cohorts/"+id, "", nil), http.StatusNotFound)
	expectStatus(t, api.do(http.MethodDelete, "/api/cohorts/"+id, "", nil), http.StatusNotFound)
	expectStatus(t, api.do(http.MethodGet, "/api/cohorts/not-an-id", "", nil), http.StatusBadRequest)
}

func TestStudentsAndPopulate(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(http.MethodPost, "/api/cohorts", "", cohortBody)
	expectStatus(t, w, http.StatusCreated)
	var cohort models.Cohort
	decodeInto(t, w, &cohort)

	student := map[string]interface{}{
		"firstName": "Christine",
		"lastName":  "Clayton",
		"email":     "christine@example.com",
		"phone":     "567-890-1234",
		"languages": []string{"English", "English", "Dutch"},
		"cohort":    cohort.ID,
	}
	w = api.do(http.MethodPost, "/api/students", "", student)
	expectStatus(t, w, http.StatusCreated)
	var created map[string]interface{}
	decodeInto(t, w, &created)
	studentID, _ := created["_id"].(string)
	if created["image"] != models.DefaultStudentImage {
		t.Errorf("image = %v", created["image"])
	}
	if langs, _ := created["languages"].([]interface{}); len(langs) != 2 {
		t.Errorf("languages = %v", created["languages"])
	}

	expectStatus(t, api.do(http.MethodPost, "/api/students", "", student), http.StatusBadRequest)

	other := map[string]interface{}{"firstName": "A", "lastName": "B", "email": "a@example.com", "phone": "1", "cohort": "00000000-0000-0000-0000-000000000000"}
	w = api.do(http.MethodPost, "/api/students", "", other)
	expectStatus(t, w, http.StatusBadRequest)

	w = api.do(http.MethodGet, "/api/students/"+studentID, "", nil)
	expectStatus(t, w, http.StatusOK)
	var populated map[string]interface{}
	decodeInto(t, w, &populated)
	if c, ok := populated["cohort"].(map[string]interface{}); !ok || c["cohortSlug"] != cohort.Slug {
		t.Errorf("populated cohort = %v", populated["cohort"])
	}

	w = api.do(http.MethodGet, "/api/students/cohort/"+cohort.ID+"?populate=false", "", nil)
	expectStatus(t, w, http.StatusOK)
	var bare []map[string]interface{}
	decodeInto(t, w, &bare)
	if len(bare) != 1 || bare[0]["cohort"] != cohort.ID {
		t.Errorf("bare = %v", bare)
	}

	w = api.do(http.MethodPut, "/api/students/"+studentID, "", `{"cohort": null, "background": "Physics"}`)
	expectStatus(t, w, http.StatusOK)
	var cleared map[string]interface{}
	decodeInto(t, w, &cleared)
	if cleared["cohort"] != nil || cleared["background"] != "Physics" {
		t.Errorf("cleared = %v", cleared)
	}

	expectStatus(t, api.do(http.MethodDelete, "/api/students/"+studentID, "", nil), http.StatusNoContent)
	w = api.do(http.MethodGet, "/api/students", "", nil)
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("list after delete = %s", w.Body.String())
	}
}

func TestRosterImportExport(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(http.MethodPost, "/api/cohorts", "", cohortBody)
	expectStatus(t, w, http.StatusCreated)
	var cohort models.Cohort
	decodeInto(t, w, &cohort)

	var sheet bytes.Buffer
	err := roster.Write(&sheet, []*models.Student{
		{FirstName: "A", LastName: "One", Email: "a@example.com", Phone: "1"},
		{FirstName: "B", LastName: "Two", Email: "b@example.com", Phone: "2", Languages: []models.Language{models.LanguageGerman}},
		{FirstName: "", LastName: "Three", Email: "c@example.com", Phone: "3"},
	})
	if err != nil {
		t.Fatal(err)
	}

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	part, err := mw.CreateFormFile("file", "roster.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(sheet.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("cohortId", cohort.ID); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/students/import", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	expectStatus(t, w, http.StatusOK)

	var result map[string]interface{}
	decodeInto(t, w, &result)
	if result["importedCount"] != float64(2) || result["skipped"] != float64(1) || result["cohortId"] != cohort.ID {
		t.Errorf("import result = %v", result)
	}

	w = api.do(http.MethodGet, "/api/cohorts/"+cohort.ID+"/students/export", "", nil)
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != roster.ContentType {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), cohort.Slug+".xlsx") {
		t.Errorf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}
	rows, err := roster.Read(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("exported %d rows", len(rows))
	}

	w = api.do(http.MethodPost, "/api/students/import", "", `{}`)
	expectStatus(t, w, http.StatusBadRequest)
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada@example.com", "password": "weak", "name": "Ada"})
	expectStatus(t, w, http.StatusBadRequest)
	expectStatus(t, api.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ada@example.com", "password": "weak"}), http.StatusUnauthorized)

	w = api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada@example.com", "password": "Secret1" + strings.Repeat("x", 70), "name": "Ada"})
	expectStatus(t, w, http.StatusBadRequest)
	var tooLong map[string]interface{}
	decodeInto(t, w, &tooLong)
	if tooLong["code"] != "AUTH_003" || tooLong["field"] != "password" {
		t.Errorf("long password = %v", tooLong)
	}

	w = api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada\u00a0x@example.com", "password": "Secret1", "name": "Ada"})
	expectStatus(t, w, http.StatusBadRequest)
	var badEmail map[string]interface{}
	decodeInto(t, w, &badEmail)
	if badEmail["code"] != "AUTH_002" || badEmail["field"] != "email" {
		t.Errorf("bad email = %v", badEmail)
	}

	w = api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "", "password": "", "name": ""})
	expectStatus(t, w, http.StatusBadRequest)
	var missing map[string]interface{}
	decodeInto(t, w, &missing)
	if missing["message"] != "Provide email, password and name" {
		t.Errorf("missing fields message = %v", missing["message"])
	}

	w = api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada@example.com", "password": "Secret1", "name": "Ada"})
	expectStatus(t, w, http.StatusCreated)
	var signup struct {
		User map[string]interface{} `json:"user"`
	}
	decodeInto(t, w, &signup)
	if signup.User["email"] != "ada@example.com" || signup.User["_id"] == "" {
		t.Errorf("user = %v", signup.User)
	}
	if _, leaked := signup.User["password"]; leaked {
		t.Error("password hash leaked")
	}
	userID, _ := signup.User["_id"].(string)

	expectStatus(t, api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada@example.com", "password": "Secret1", "name": "Ada"}), http.StatusBadRequest)

	w = api.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ada@example.com", "password": "Wrong1"})
	expectStatus(t, w, http.StatusUnauthorized)
	var denied map[string]interface{}
	decodeInto(t, w, &denied)
	if denied["message"] != "Unable to authenticate the user" {
		t.Errorf("login failure message = %v", denied["message"])
	}

	w = api.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ada@example.com", "password": "Secret1"})
	expectStatus(t, w, http.StatusOK)
	var login struct {
		AuthToken string `json:"authToken"`
	}
	decodeInto(t, w, &login)
	if login.AuthToken == "" {
		t.Fatal("no token")
	}

	w = api.do(http.MethodGet, "/auth/verify", login.AuthToken, nil)
	expectStatus(t, w, http.StatusOK)
	var claims map[string]interface{}
	decodeInto(t, w, &claims)
	if claims["_id"] != userID || claims["name"] != "Ada" {
		t.Errorf("claims = %v", claims)
	}

	expectStatus(t, api.do(http.MethodGet, "/api/users/"+userID, login.AuthToken, nil), http.StatusOK)
	expectStatus(t, api.do(http.MethodGet, "/api/users/"+userID, "", nil), http.StatusUnauthorized)

	sig := strings.LastIndex(login.AuthToken, ".") + 1
	flipped := "A"
	if login.AuthToken[sig] == 'A' {
		flipped = "B"
	}
	tampered := login.AuthToken[:sig] + flipped + login.AuthToken[sig+1:]
	w = api.do(http.MethodGet, "/auth/verify", tampered, nil)
	expectStatus(t, w, http.StatusUnauthorized)
	var rejected map[string]interface{}
	decodeInto(t, w, &rejected)
	if rejected["message"] != "token not provided or not valid" {
		t.Errorf("rejection message = %v", rejected["message"])
	}

	expectStatus(t, api.do(http.MethodPost, "/auth/logout", login.AuthToken, nil), http.StatusNoContent)
	expectStatus(t, api.do(http.MethodGet, "/auth/verify", login.AuthToken, nil), http.StatusUnauthorized)
}

func TestProtectedWrites(t *testing.T) {
	api := newTestAPI(t, true)

	expectStatus(t, api.do(http.MethodPost, "/api/cohorts", "", cohortBody), http.StatusUnauthorized)
	expectStatus(t, api.do(http.MethodGet, "/api/cohorts", "", nil), http.StatusOK)

	expectStatus(t, api.do(http.MethodPost, "/auth/signup", "", map[string]string{"email": "ada@example.com", "password": "Secret1", "name": "Ada"}), http.StatusCreated)
	w := api.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "ada@example.com", "password": "Secret1"})
	expectStatus(t, w, http.StatusOK)
	var login struct {
		AuthToken string `json:"authToken"`
	}
	decodeInto(t, w, &login)

	expectStatus(t, api.do(http.MethodPost, "/api/cohorts", login.AuthToken, cohortBody), http.StatusCreated)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	api := newTestAPI(t, false)

	w := api.do(http.MethodGet, "/health", "", nil)
	expectStatus(t, w, http.StatusOK)

	w = api.do(http.MethodGet, "/api/nope", "", nil)
	expectStatus(t, w, http.StatusNotFound)
	var body map[string]interface{}
	decodeInto(t, w, &body)
	if body["message"] != "This route does not exist" {
		t.Errorf("body = %v", body)
	}
}
