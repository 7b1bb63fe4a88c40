package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dailyfeels-backend/internal/data/repos"
	"github.com/yungbote/dailyfeels-backend/internal/data/repos/testutil"
	types "github.com/yungbote/dailyfeels-backend/internal/domain"
	httpH "github.com/yungbote/dailyfeels-backend/internal/http/handlers"
	"github.com/yungbote/dailyfeels-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)

	entryService := services.NewEntryService(tx, log, repos.NewMoodEntryRepo(tx, log))
	configService := services.NewMoodConfigService(tx, log, repos.NewMoodConfigRepo(tx, log))
	reportService := services.NewReportService(log, entryService, configService)
	statusService := services.NewStatusService(log, repos.NewStatusCheckRepo(tx, log))

	return NewRouter(RouterConfig{
		Log:               log,
		EntryHandler:      httpH.NewEntryHandler(log, entryService),
		MoodConfigHandler: httpH.NewMoodConfigHandler(log, configService),
		ExportHandler:     httpH.NewExportHandler(log, reportService),
		StatusHandler:     httpH.NewStatusHandler(log, statusService),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEntryRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/entries", `{"date":"2024-05-01","mood_value":"happy","emoji":"😀","note":"sunny"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert: status %d body %s", w.Code, w.Body.String())
	}
	var created types.MoodEntry
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Date != "2024-05-01" || created.MoodValue != "happy" {
		t.Fatalf("created entry wrong: %+v", created)
	}

	// Same date again: mutate in place.
	w = do(t, r, http.MethodPost, "/api/entries", `{"date":"2024-05-01","mood_value":"sad","emoji":"😢"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert: status %d", w.Code)
	}
	var updated types.MoodEntry
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed across upserts")
	}

	w = do(t, r, http.MethodGet, "/api/entries?start=2024-05-01&end=2024-05-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var listed []types.MoodEntry
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].MoodValue != "sad" {
		t.Fatalf("list wrong: %+v", listed)
	}

	w = do(t, r, http.MethodPost, "/api/entries", `{"date":"not-a-date","mood_value":"sad","emoji":"😢"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: status %d", w.Code)
	}

	w = do(t, r, http.MethodDelete, "/api/entries/"+created.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d body %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodDelete, "/api/entries/"+created.ID.String(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestMoodConfigRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/moods/defaults", "")
	if w.Code != http.StatusOK {
		t.Fatalf("defaults: status %d", w.Code)
	}
	var defaults []types.MoodDefinition
	if err := json.Unmarshal(w.Body.Bytes(), &defaults); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if len(defaults) != 7 {
		t.Fatalf("expected 7 default moods, got %d", len(defaults))
	}

	w = do(t, r, http.MethodPost, "/api/moods/config", `{"moods":[{"value":"calm","emoji":"🙂","label":"Calm","color":"#10b981"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set config: status %d body %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/moods/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get config: status %d", w.Code)
	}
	var cfg struct {
		Moods []types.MoodDefinition `json:"moods"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if len(cfg.Moods) != 1 || cfg.Moods[0].Value != "calm" {
		t.Fatalf("config wrong: %+v", cfg.Moods)
	}

	// Defaults endpoint ignores the stored palette.
	w = do(t, r, http.MethodGet, "/api/moods/defaults", "")
	if err := json.Unmarshal(w.Body.Bytes(), &defaults); err != nil {
		t.Fatalf("decode defaults again: %v", err)
	}
	if len(defaults) != 7 {
		t.Fatalf("defaults must stay fixed, got %d", len(defaults))
	}
}

func TestExportRoute(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, http.MethodPost, "/api/entries", `{"date":"2024-06-01","mood_value":"happy","emoji":"😀"}`)
	do(t, r, http.MethodPost, "/api/entries", `{"date":"2024-06-02","mood_value":"sad","emoji":"😢"}`)

	w := do(t, r, http.MethodGet, "/api/export/pdf?start=2024-06-01&end=2024-06-30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export: status %d body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `mood_report_2024-06-01_2024-06-30.pdf`) {
		t.Fatalf("content disposition %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Fatalf("body is not a PDF")
	}

	// No bounds: literal start/end tokens in the filename.
	w = do(t, r, http.MethodGet, "/api/export/pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export all time: status %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "mood_report_start_end.pdf") {
		t.Fatalf("content disposition %q", cd)
	}
}

func TestStatusAndHealthRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Daily Feels API is running") {
		t.Fatalf("root: %d %q", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/status", `{"client_name":"web"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/status", `{"client_name":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty client_name: %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status: %d", w.Code)
	}
	var checks []types.StatusCheck
	if err := json.Unmarshal(w.Body.Bytes(), &checks); err != nil {
		t.Fatalf("decode checks: %v", err)
	}
	if len(checks) != 1 || checks[0].ClientName != "web" {
		t.Fatalf("checks wrong: %+v", checks)
	}
}
