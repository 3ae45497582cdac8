package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
	"github.com/millworks/prodtrack/internal/handler"
	"github.com/millworks/prodtrack/pkg/db"
	projectdb "github.com/millworks/prodtrack/pkg/db/project"
	stagedb "github.com/millworks/prodtrack/pkg/db/stage"
	"github.com/millworks/prodtrack/pkg/importer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	return Register(&handler.RegisterConfig{
		DB:        database,
		StageDB:   stagedb.NewDBService(database),
		ProjectDB: projectdb.NewDBService(database),
	})
}

func doJSON(t *testing.T, b *Backend, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	b.R.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	b := newTestBackend(t)
	w := doJSON(t, b, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDBProbe(t *testing.T) {
	b := newTestBackend(t)
	w := doJSON(t, b, http.MethodGet, "/api/test-db", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decode[[]map[string]int](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0]["number"])
}

func TestStageCRUD(t *testing.T) {
	b := newTestBackend(t)

	w := doJSON(t, b, http.MethodPost, "/api/stages", gin.H{"name": " Under Manufacturing ", "remarks": "shop floor"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Stage](t, w)
	assert.Equal(t, "Under Manufacturing", created.Name)
	require.NotEmpty(t, created.ID)

	w = doJSON(t, b, http.MethodGet, "/api/stages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Stage](t, w), 1)

	w = doJSON(t, b, http.MethodGet, "/api/stages/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, b, http.MethodPut, "/api/stages/"+created.ID, gin.H{"name": "Dispatched", "remarks": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dispatched", decode[model.Stage](t, w).Name)

	w = doJSON(t, b, http.MethodPost, "/api/stages", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, b, http.MethodDelete, "/api/stages/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, b, http.MethodDelete, "/api/stages/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, b, http.MethodGet, "/api/stages/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// The full lifecycle: stage creation, project creation with derived dispatch
// month, stage-only transition, delete, repeat delete.
func TestProjectLifecycle(t *testing.T) {
	b := newTestBackend(t)

	w := doJSON(t, b, http.MethodPost, "/api/stages", gin.H{"name": "Under Manufacturing"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{
		"projectNo":       "P-100",
		"customerName":    "Acme",
		"projectDate":     "2024-01-10",
		"targetDate":      "2024-03-15",
		"productionStage": "Under Manufacturing",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Project](t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "March 2024", created.DispatchMonth)

	w = doJSON(t, b, http.MethodPut, "/api/projects/"+created.ID+"/stage", gin.H{"productionStage": "Dispatched"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, b, http.MethodGet, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.Project](t, w)
	assert.Equal(t, "Dispatched", got.ProductionStage)
	assert.Equal(t, "P-100", got.ProjectNo)
	assert.Equal(t, "Acme", got.CustomerName)
	assert.Equal(t, "2024-01-10", got.ProjectDate.String())
	assert.Equal(t, "2024-03-15", got.TargetDate.String())
	assert.Equal(t, "March 2024", got.DispatchMonth)

	w = doJSON(t, b, http.MethodDelete, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, b, http.MethodGet, "/api/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, b, http.MethodDelete, "/api/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectValidationAndConflict(t *testing.T) {
	b := newTestBackend(t)

	w := doJSON(t, b, http.MethodPost, "/api/projects", gin.H{"projectNo": "  ", "customerName": "Acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{"projectNo": "P-100", "customerName": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{"projectNo": " P-100 ", "customerName": "Globex"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, b, http.MethodPut, "/api/projects/no-such-id", gin.H{"projectNo": "P-9", "customerName": "Acme"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Reusing an id with a fresh projectNo conflicts on the id, and the
	// message says so.
	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{"id": "fixed-id", "projectNo": "P-201", "customerName": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{"id": "fixed-id", "projectNo": "P-202", "customerName": "Acme"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "id")
	assert.Contains(t, w.Body.String(), "fixed-id")
}

func TestDeleteStageLeavesProjectsOrphaned(t *testing.T) {
	b := newTestBackend(t)

	w := doJSON(t, b, http.MethodPost, "/api/stages", gin.H{"name": "Painting"})
	require.Equal(t, http.StatusCreated, w.Code)
	stage := decode[model.Stage](t, w)

	w = doJSON(t, b, http.MethodPost, "/api/projects", gin.H{
		"projectNo":       "P-100",
		"customerName":    "Acme",
		"productionStage": "Painting",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, b, http.MethodDelete, "/api/stages/"+stage.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, b, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode[[]model.Project](t, w)
	require.Len(t, projects, 1)
	assert.Equal(t, "Painting", projects[0].ProductionStage)
}

func TestBulkImportPartialSuccess(t *testing.T) {
	b := newTestBackend(t)

	csvData := strings.Join([]string{
		"Project No,Project Name,Customer Name,Owner,Project Date,Target Date,Dispatch Month,Production Stage,Remarks",
		"P-1,Line A,Acme,someone,10-01-2024,15-03-2024,,Under Manufacturing,",
		"P-2,Line B,Acme,someone,garbage,,,,",
		"P-3,Line C,Globex,someone,11-01-2024,,,,",
	}, "\n")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "projects.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/projects/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	b.R.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	report := decode[importer.Report](t, w)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 3, report.Failed[0].Row)
	assert.Contains(t, report.Failed[0].Error, "Project Date")

	resp := doJSON(t, b, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	projects := decode[[]model.Project](t, resp)
	require.Len(t, projects, 2)
	assert.Equal(t, "P-1", projects[0].ProjectNo)
	assert.Equal(t, "March 2024", projects[0].DispatchMonth)
	assert.Equal(t, "P-3", projects[1].ProjectNo)
}

func TestImportWithoutFile(t *testing.T) {
	b := newTestBackend(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects/import", nil)
	w := httptest.NewRecorder()
	b.R.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTemplateExport(t *testing.T) {
	b := newTestBackend(t)

	w := doJSON(t, b, http.MethodGet, "/api/projects/template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, strings.Join(importer.Headers, ",")+"\n", w.Body.String())
}
