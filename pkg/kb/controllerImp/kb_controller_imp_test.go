package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"agriai/database"
	"agriai/entities"
	"agriai/pkg/kb/repositoryImp"
	"agriai/pkg/kb/serviceImp"
)

func newTestCtrl(t *testing.T) *KBCtrl {
	t.Helper()
	db := database.OpenSQLite(":memory:")
	// nil embedder: search runs on the keyword path.
	return New(serviceImp.New(repositoryImp.New(db), nil))
}

func do(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return rec
}

func TestIngestTextRequiresTitleAndText(t *testing.T) {
	ctrl := newTestCtrl(t)
	for _, body := range []string{
		`{"title": "", "text": "some advice"}`,
		`{"title": "Paddy guide", "text": ""}`,
	} {
		rec := do(t, ctrl.IngestText, http.MethodPost, "/kb/ingest", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestIngestThenDocsAndSearch(t *testing.T) {
	ctrl := newTestCtrl(t)
	rec := do(t, ctrl.IngestText, http.MethodPost, "/kb/ingest",
		`{"title": "Paddy irrigation leaflet", "tags": "paddy,irrigation", "text": "Maintain shallow standing water during tillering. Drain before harvest."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("ingest status = %d body=%s", rec.Code, rec.Body.String())
	}

	docsRec := do(t, ctrl.Docs, http.MethodGet, "/kb/docs", "")
	if docsRec.Code != http.StatusOK {
		t.Fatalf("docs status = %d", docsRec.Code)
	}
	var docs []entities.KBDocument
	if err := json.Unmarshal(docsRec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode docs: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Paddy irrigation leaflet" {
		t.Fatalf("docs = %+v", docs)
	}

	searchRec := do(t, ctrl.Search, http.MethodGet, "/kb/search?q=standing+water", "")
	if searchRec.Code != http.StatusOK {
		t.Fatalf("search status = %d", searchRec.Code)
	}
	if !strings.Contains(searchRec.Body.String(), "tillering") {
		t.Fatalf("search missed ingested chunk: %s", searchRec.Body.String())
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	ctrl := newTestCtrl(t)
	rec := do(t, ctrl.Search, http.MethodGet, "/kb/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
