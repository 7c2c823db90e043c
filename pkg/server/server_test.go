package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/palette"
	"github.com/petspa/salonsite/pkg/profile"
	"github.com/petspa/salonsite/pkg/storage"
)

type fixture struct {
	t       *testing.T
	srv     *Server
	store   *storage.Memory
	handler http.Handler
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	prov, err := content.NewProvider("")
	if err != nil {
		t.Fatal(err)
	}
	store := storage.NewMemory()
	opts := Options{
		Storage: store,
		Content: prov,
		BaseURL: "https://petspa2.test",
		Cookie:  Cookie{Name: "visitor"},
		Logger:  log.New(io.Discard),
	}
	if mutate != nil {
		mutate(&opts)
	}
	srv, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return &fixture{t: t, srv: srv, store: store, handler: srv.Handler()}
}

// client is one browser: it keeps the visitor cookie between requests.
type client struct {
	f      *fixture
	cookie *http.Cookie
}

func (f *fixture) client() *client { return &client{f: f} }

func (c *client) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	c.f.t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.f.handler.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "visitor" {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, target, "", "")
}

func (c *client) form(target string, v url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, target, "application/x-www-form-urlencoded", v.Encode())
}

func (c *client) putJSON(target, body string) *httptest.ResponseRecorder {
	return c.do(http.MethodPut, target, "application/json", body)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func TestNewRequiresDependencies(t *testing.T) {
	prov, _ := content.NewProvider("")
	if _, err := New(Options{Content: prov}); err == nil {
		t.Error("New without storage succeeded")
	}
	if _, err := New(Options{Storage: storage.NewMemory()}); err == nil {
		t.Error("New without content succeeded")
	}
}

func TestPageDefaults(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	rec := c.get("/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if c.cookie == nil || c.cookie.Value == "" {
		t.Fatal("no visitor cookie issued")
	}
	if !c.cookie.HttpOnly {
		t.Error("visitor cookie is not HttpOnly")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-layout="classic"`) {
		t.Error("default page is not classic")
	}
	if !strings.Contains(body, `<option value="fresh-clean" selected>`) {
		t.Error("default palette not selected in switcher")
	}
	// Rehydrating a fresh visitor never writes storage.
	if n := f.store.Len(); n != 0 {
		t.Errorf("first visit wrote %d keys", n)
	}
}

func TestCookieReuse(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.get("/")
	first := c.cookie.Value

	rec := c.get("/")
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie reissued for a known visitor")
	}
	if c.cookie.Value != first {
		t.Error("visitor id changed")
	}
}

func TestMalformedCookieReplaced(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.cookie = &http.Cookie{Name: "visitor", Value: "../../etc"}
	c.get("/")
	if c.cookie.Value == "../../etc" {
		t.Error("malformed visitor id kept")
	}
}

func TestLayoutFormPersists(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.get("/")

	rec := c.form("/layout", url.Values{"profile": {"Bento"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	body := c.get("/").Body.String()
	if !strings.Contains(body, `data-layout="bento"`) {
		t.Error("profile change not visible on next page")
	}

	key := storage.VisitorPrefix(c.cookie.Value) + profile.StorageKey
	if v, ok, _ := f.store.Get(t.Context(), key); !ok || v != "bento" {
		t.Errorf("stored %q = %q, %v", key, v, ok)
	}
}

func TestLayoutFormRejectsUnknown(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.form("/layout", url.Values{"profile": {"split"}})

	rec := c.form("/layout", url.Values{"profile": {"not-a-real-profile"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(c.get("/").Body.String(), `data-layout="split"`) {
		t.Error("rejected profile changed the active one")
	}
}

func TestVisitorsIsolated(t *testing.T) {
	f := newFixture(t, nil)
	a, b := f.client(), f.client()
	a.get("/")
	b.get("/")
	a.form("/layout", url.Values{"profile": {"brutalist"}})

	if strings.Contains(b.get("/").Body.String(), `data-layout="brutalist"`) {
		t.Error("one visitor's profile leaked to another")
	}
}

func TestPaletteForm(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	if rec := c.form("/palette", url.Values{"palette": {"premium-spa"}}); rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(c.get("/").Body.String(), `<option value="premium-spa" selected>`) {
		t.Error("palette change not visible")
	}
	if rec := c.form("/palette", url.Values{"palette": {"neon"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown palette status = %d", rec.Code)
	}
}

func TestContactForm(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		wantCode int
	}{
		{"valid", url.Values{"name": {"Ana"}, "phone": {"+40 712 345 678"}, "pet": {"Rex"}}, http.StatusSeeOther},
		{"with email", url.Values{"name": {"Ana"}, "phone": {"0712345678"}, "email": {"ana@example.com"}}, http.StatusSeeOther},
		{"missing name", url.Values{"phone": {"0712345678"}}, http.StatusBadRequest},
		{"bad phone", url.Values{"name": {"Ana"}, "phone": {"call me"}}, http.StatusBadRequest},
		{"bad email", url.Values{"name": {"Ana"}, "phone": {"0712345678"}, "email": {"nope"}}, http.StatusBadRequest},
		{"long message", url.Values{"name": {"Ana"}, "phone": {"0712345678"}, "message": {strings.Repeat("x", 2001)}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			rec := f.client().form("/contact", tt.values)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
			}
			if tt.wantCode == http.StatusSeeOther {
				if loc := rec.Header().Get("Location"); loc != "/?sent=1#contact" {
					t.Errorf("Location = %q", loc)
				}
			}
		})
	}
}

func TestContactSentPage(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	msg := content.Default().Site.Contact.SuccessMessage
	if strings.Contains(c.get("/").Body.String(), msg) {
		t.Fatal("success message shown before submitting")
	}
	if !strings.Contains(c.get("/?sent=1").Body.String(), msg) {
		t.Error("success message missing after submit")
	}
}

func TestContactFormValidate(t *testing.T) {
	err := ContactForm{Phone: "12"}.Validate()
	if err == nil {
		t.Fatal("invalid form accepted")
	}
	want := "name is required; phone must be at least 6 characters"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestProfilesAPI(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()

	got := decode[[]profileView](t, c.get("/api/profiles"))
	if len(got) != len(layout.Profiles()) {
		t.Fatalf("got %d profiles", len(got))
	}
	for i, p := range layout.Profiles() {
		if got[i].ID != p || got[i].Name == "" {
			t.Errorf("entry %d = %+v", i, got[i])
		}
	}

	snap := decode[profile.Snapshot](t, c.get("/api/profiles/masonry"))
	if diff := cmp.Diff(layout.MustLookup(layout.Masonry), snap.Config); diff != "" {
		t.Errorf("masonry config mismatch (-want +got):\n%s", diff)
	}

	rec := c.get("/api/profiles/not-a-real-profile")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown profile status = %d", rec.Code)
	}
	if e := decode[map[string]string](t, rec); e["error"] != "CONFIGURATION_NOT_FOUND" {
		t.Errorf("error body = %v", e)
	}
}

func TestLayoutAPI(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()

	if snap := decode[profile.Snapshot](t, c.get("/api/layout")); snap.Profile != layout.DefaultProfile {
		t.Errorf("initial profile = %s", snap.Profile)
	}

	rec := c.putJSON("/api/layout", `{"profile":"horizontal"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}
	snap := decode[profile.Snapshot](t, rec)
	if snap.Profile != layout.Horizontal || snap.Config != layout.MustLookup(layout.Horizontal) {
		t.Errorf("PUT returned %+v", snap)
	}

	tests := []struct {
		name, body, code string
	}{
		{"unknown profile", `{"profile":"not-a-real-profile"}`, "INVALID_PROFILE"},
		{"empty profile", `{"profile":""}`, "INVALID_PROFILE"},
		{"malformed", `{"profile":`, "INVALID_FORMAT"},
		{"unknown field", `{"layout":"bento"}`, "INVALID_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.putJSON("/api/layout", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if e := decode[map[string]string](t, rec); e["error"] != tt.code {
				t.Errorf("error = %v, want %s", e, tt.code)
			}
		})
	}

	// Failed requests leave the earlier choice in place.
	if snap := decode[profile.Snapshot](t, c.get("/api/layout")); snap.Profile != layout.Horizontal {
		t.Errorf("profile after failures = %s", snap.Profile)
	}
}

func TestPaletteAPI(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()

	all := decode[[]palette.Palette](t, c.get("/api/palettes"))
	if len(all) != len(palette.IDs()) {
		t.Errorf("got %d palettes", len(all))
	}

	rec := c.putJSON("/api/palette", `{"palette":"warm-friendly"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d", rec.Code)
	}
	if got := decode[palette.Palette](t, c.get("/api/palette")); got.ID != palette.WarmFriendly {
		t.Errorf("current palette = %s", got.ID)
	}

	rec = c.putJSON("/api/palette", `{"palette":"neon"}`)
	if e := decode[map[string]string](t, rec); rec.Code != http.StatusBadRequest || e["error"] != "INVALID_PALETTE" {
		t.Errorf("unknown palette: %d %v", rec.Code, e)
	}
}

func TestPersistedGarbageIgnored(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.get("/")
	prefix := storage.VisitorPrefix(c.cookie.Value)
	_ = f.store.Set(t.Context(), prefix+profile.StorageKey, "not-a-real-profile")
	_ = f.store.Set(t.Context(), prefix+palette.StorageKey, "neon")

	rec := c.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `data-layout="classic"`) {
		t.Error("invalid stored profile not treated as absent")
	}
}

func TestOptionalSections(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Sections = components.Sections{FAQ: true, Pricing: true} })
	body := f.client().get("/").Body.String()
	for _, id := range []string{`id="faq"`, `id="pricing"`} {
		if !strings.Contains(body, id) {
			t.Errorf("page missing %s", id)
		}
	}
}

func TestPageCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	f := newFixture(t, func(o *Options) { o.Cache = fc })
	c := f.client()
	first := c.get("/").Body.String()

	doc := f.srv.content.Current()
	key := f.srv.keyer.PageKey(cache.PageKeyOpts{
		Profile:        string(layout.DefaultProfile),
		Palette:        string(palette.DefaultID),
		ContentVersion: doc.Version,
		Year:           f.srv.now().Year(),
	})
	data, hit, err := fc.Get(t.Context(), key)
	if err != nil || !hit {
		t.Fatalf("page not cached: hit %v err %v", hit, err)
	}
	if string(data) != first {
		t.Error("cached bytes differ from the response")
	}

	// A poisoned entry proves the second response comes from the cache.
	_ = fc.Set(t.Context(), key, []byte("cached"), 0)
	if got := c.get("/").Body.String(); got != "cached" {
		t.Errorf("second response not served from cache: %.40q", got)
	}
}

func TestPageCacheYearRollover(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var now atomic.Int64
	now.Store(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC).Unix())
	f := newFixture(t, func(o *Options) {
		o.Cache = fc
		o.Clock = func() time.Time { return time.Unix(now.Load(), 0).UTC() }
	})
	c := f.client()
	if body := c.get("/").Body.String(); !strings.Contains(body, "&copy; 2026") {
		t.Fatal("first page lacks 2026")
	}

	now.Store(time.Date(2027, 1, 1, 0, 1, 0, 0, time.UTC).Unix())
	if body := c.get("/").Body.String(); !strings.Contains(body, "&copy; 2027") {
		t.Error("cached page still shows last year's footer")
	}
}

func TestConcurrentPages(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()
	c.get("/")
	cookie := c.cookie

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "</html>") {
				errs <- rec.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("bad concurrent response: %.80q", e)
	}
}

func TestAuxiliaryRoutes(t *testing.T) {
	f := newFixture(t, nil)
	c := f.client()

	tests := []struct {
		path, contentType, contains string
	}{
		{"/healthz", "application/json", `"status":"ok"`},
		{"/robots.txt", "text/plain", "Sitemap: https://petspa2.test/sitemap.xml"},
		{"/sitemap.xml", "application/xml", "<loc>https://petspa2.test</loc>"},
		{"/static/site.css", "text/css", "--primary"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := c.get(tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}

	if rec := c.get("/static/missing.css"); rec.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d", rec.Code)
	}
	if rec := c.get("/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d", rec.Code)
	}
}
