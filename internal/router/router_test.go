package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"cat-collector/internal/adapters/auth/session"
	"cat-collector/internal/adapters/storage/sqlite"
	"cat-collector/internal/middleware"
	"cat-collector/internal/router"

	"golang.org/x/crypto/bcrypt"
)

func newServer(t *testing.T, tweak func(*router.Options)) *httptest.Server {
	t.Helper()
	sessions, err := session.NewManager(session.Config{Secret: []byte("test-secret")})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	opts := router.Options{
		Sessions:       sessions,
		BcryptCost:     bcrypt.MinCost,
		AuthRatePerMin: 1000,
		AuthRateBurst:  100,
	}
	if tweak != nil {
		tweak(&opts)
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

// browser: cookie jar y sin seguir redirects, para poder mirar Location.
type browser struct {
	t    *testing.T
	base string
	c    *http.Client
}

func newBrowser(t *testing.T, ts *httptest.Server) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &browser{
		t:    t,
		base: ts.URL,
		c: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) do(req *http.Request) (int, string, string) {
	b.t.Helper()
	res, err := b.c.Do(req)
	if err != nil {
		b.t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(body), res.Header.Get("Location")
}

func (b *browser) get(path string) (int, string, string) {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.base+path, nil)
	if err != nil {
		b.t.Fatalf("new request: %v", err)
	}
	return b.do(req)
}

func (b *browser) post(path string, form url.Values) (int, string, string) {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		b.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) signup(username string) {
	b.t.Helper()
	st, body, loc := b.post("/accounts/signup/", url.Values{
		"username":  {username},
		"password1": {"s3cret-pass"},
		"password2": {"s3cret-pass"},
	})
	if st != http.StatusSeeOther || loc != "/cats/" {
		b.t.Fatalf("signup %s: expected 303 to /cats/, got %d %q body=%s", username, st, loc, body)
	}
}

func (b *browser) createCat(name, breed, desc, age string) string {
	b.t.Helper()
	st, body, loc := b.post("/cats/create/", url.Values{
		"name":        {name},
		"breed":       {breed},
		"description": {desc},
		"age":         {age},
	})
	if st != http.StatusSeeOther {
		b.t.Fatalf("create cat: expected 303, got %d body=%s", st, body)
	}
	id := strings.TrimSuffix(strings.TrimPrefix(loc, "/cats/"), "/")
	if id == "" || strings.Contains(id, "/") {
		b.t.Fatalf("unexpected location %q", loc)
	}
	return id
}

func (b *browser) createToy(name, color string) string {
	b.t.Helper()
	st, body, loc := b.post("/toys/create/", url.Values{"name": {name}, "color": {color}})
	if st != http.StatusSeeOther {
		b.t.Fatalf("create toy: expected 303, got %d body=%s", st, body)
	}
	return strings.TrimSuffix(strings.TrimPrefix(loc, "/toys/"), "/")
}

func TestHTTP_SignupLoginLogout(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)

	alice.signup("alice")

	st, body, _ := alice.get("/cats/")
	if st != http.StatusOK || !strings.Contains(body, "You have no cats yet") {
		t.Fatalf("expected empty cat list, got %d body=%s", st, body)
	}

	// username duplicado => mensaje genérico
	other := newBrowser(t, ts)
	st, body, _ = other.post("/accounts/signup/", url.Values{
		"username":  {"alice"},
		"password1": {"s3cret-pass"},
		"password2": {"s3cret-pass"},
	})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Invalid sign up - try again") {
		t.Fatalf("expected 422 generic signup error, got %d body=%s", st, body)
	}

	st, _, loc := alice.post("/accounts/logout/", nil)
	if st != http.StatusSeeOther || loc != "/" {
		t.Fatalf("logout: expected 303 to /, got %d %q", st, loc)
	}

	st, _, loc = alice.get("/cats/")
	if st != http.StatusFound || loc != "/?next=%2Fcats%2F" {
		t.Fatalf("expected login redirect, got %d %q", st, loc)
	}

	st, body, _ = alice.post("/", url.Values{"username": {"alice"}, "password": {"wrong-pass"}})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Please enter a correct username and password.") {
		t.Fatalf("expected 422 login failure, got %d body=%s", st, body)
	}

	st, _, loc = alice.post("/", url.Values{"username": {"alice"}, "password": {"s3cret-pass"}, "next": {"/toys/"}})
	if st != http.StatusSeeOther || loc != "/toys/" {
		t.Fatalf("expected redirect to next, got %d %q", st, loc)
	}

	st, _, loc = alice.post("/", url.Values{"username": {"alice"}, "password": {"s3cret-pass"}, "next": {"//evil.example"}})
	if st != http.StatusSeeOther || loc != "/cats/" {
		t.Fatalf("expected unsafe next to fall back to /cats/, got %d %q", st, loc)
	}
}

func TestHTTP_LoginRequiredForPost(t *testing.T) {
	ts := newServer(t, nil)
	anon := newBrowser(t, ts)

	st, _, loc := anon.post("/cats/create/", url.Values{"name": {"Tom"}})
	if st != http.StatusSeeOther || !strings.HasPrefix(loc, "/?next=") {
		t.Fatalf("expected 303 to login, got %d %q", st, loc)
	}
	st, _, _ = anon.get("/toys/")
	if st != http.StatusFound {
		t.Fatalf("toys should require login, got %d", st)
	}
}

func TestHTTP_DeletedAccountSessionIsAnonymous(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "cats.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ts := newServer(t, func(o *router.Options) {
		o.DB = db
		o.IsUnique = sqlite.IsUniqueViolation
	})
	alice := newBrowser(t, ts)
	alice.signup("alice")
	alice.createCat("Tom", "Tabby", "Orange", "2")

	if _, err := db.ExecContext(ctx, `DELETE FROM accounts WHERE username = $1`, "alice"); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	st, _, loc := alice.post("/cats/create/", url.Values{
		"name": {"Felix"}, "breed": {"Tabby"}, "description": {"Black"}, "age": {"1"},
	})
	if st != http.StatusSeeOther || loc != "/?next=%2Fcats%2Fcreate%2F" {
		t.Fatalf("expected 303 to login, got %d %q", st, loc)
	}
	st, _, loc = alice.get("/cats/")
	if st != http.StatusFound || loc != "/?next=%2Fcats%2F" {
		t.Fatalf("expected 302 to login, got %d %q", st, loc)
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cats`).Scan(&n); err != nil {
		t.Fatalf("count cats: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected cats to cascade with the account, got %d", n)
	}
}

func TestHTTP_KittenScenario(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	alice.signup("alice")

	st, body, _ := alice.post("/cats/create/", url.Values{
		"name": {"Tom"}, "breed": {"Tabby"}, "description": {"Orange"}, "age": {"-1"},
	})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Ensure this value is greater than or equal to 0.") {
		t.Fatalf("expected 422 for age -1, got %d body=%s", st, body)
	}
	if _, body, _ := alice.get("/cats/"); !strings.Contains(body, "You have no cats yet") {
		t.Fatalf("invalid cat must not be persisted")
	}

	st, body, _ = alice.post("/cats/create/", url.Values{
		"name": {"Tom"}, "breed": {"Tabby"}, "description": {"Orange"}, "age": {"99999999999"},
	})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Ensure this value is less than or equal to 2147483647.") {
		t.Fatalf("expected 422 for out of range age, got %d body=%s", st, body)
	}
	if _, body, _ := alice.get("/cats/"); !strings.Contains(body, "You have no cats yet") {
		t.Fatalf("out of range cat must not be persisted")
	}

	id := alice.createCat("Tom", "Tabby", "Orange", "0")

	st, body, _ = alice.post("/cats/"+id+"/update/", url.Values{
		"breed": {"Tabby"}, "description": {"Orange"}, "age": {"2147483648"},
	})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "less than or equal to 2147483647") {
		t.Fatalf("expected 422 for out of range age on update, got %d body=%s", st, body)
	}

	_, body, _ = alice.get("/cats/")
	if strings.Count(body, `class="cat"`) != 1 || !strings.Contains(body, "Tabby kitten") {
		t.Fatalf("expected exactly one kitten in list, body=%s", body)
	}

	st, body, _ = alice.get("/cats/" + id + "/")
	if st != http.StatusOK {
		t.Fatalf("detail: %d", st)
	}
	if !strings.Contains(body, "Kitten") || !strings.Contains(body, "Tom has not been fed") {
		t.Fatalf("expected kitten wording and empty feedings, body=%s", body)
	}
	if !strings.Contains(body, `name="date"`) || !strings.Contains(body, `<option value="B">Breakfast</option>`) {
		t.Fatalf("expected empty feeding form in detail")
	}
}

func TestHTTP_CrossOwnerIsolation(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	bob := newBrowser(t, ts)
	alice.signup("alice")
	bob.signup("bob")

	id := alice.createCat("Tom", "Tabby", "Orange", "2")

	if st, _, _ := bob.get("/cats/" + id + "/"); st != http.StatusNotFound {
		t.Fatalf("bob detail: expected 404, got %d", st)
	}
	if st, _, _ := bob.get("/cats/" + id + "/update/"); st != http.StatusNotFound {
		t.Fatalf("bob update form: expected 404, got %d", st)
	}
	if st, _, _ := bob.post("/cats/"+id+"/update/", url.Values{"breed": {"x"}, "description": {"y"}, "age": {"1"}}); st != http.StatusNotFound {
		t.Fatalf("bob update: expected 404, got %d", st)
	}
	if st, _, _ := bob.post("/cats/"+id+"/add_feeding/", url.Values{"date": {"2024-01-01"}, "meal": {"B"}}); st != http.StatusNotFound {
		t.Fatalf("bob add feeding: expected 404, got %d", st)
	}
	if st, _, _ := bob.post("/cats/"+id+"/delete/", nil); st != http.StatusNotFound {
		t.Fatalf("bob delete: expected 404, got %d", st)
	}
	if _, body, _ := bob.get("/cats/"); strings.Contains(body, "Tom") {
		t.Fatalf("bob must not see alice's cats")
	}

	_, body, _ := alice.get("/cats/" + id + "/")
	if !strings.Contains(body, "A 2 year old Tabby") || !strings.Contains(body, "Tom has not been fed") {
		t.Fatalf("alice's cat must be untouched, body=%s", body)
	}
}

func TestHTTP_UpdateKeepsName(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	alice.signup("alice")
	id := alice.createCat("Tom", "Tabby", "Orange", "2")

	_, body, _ := alice.get("/cats/" + id + "/update/")
	if strings.Contains(body, `name="name"`) {
		t.Fatalf("update form must not offer the name field")
	}

	st, _, loc := alice.post("/cats/"+id+"/update/", url.Values{
		"name": {"Jerry"}, "breed": {"Siamese"}, "description": {"Loud"}, "age": {"3"},
	})
	if st != http.StatusSeeOther || loc != "/cats/"+id+"/" {
		t.Fatalf("update: expected 303 to detail, got %d %q", st, loc)
	}
	_, body, _ = alice.get("/cats/" + id + "/")
	if !strings.Contains(body, "<h1>Tom</h1>") || !strings.Contains(body, "A 3 year old Siamese") {
		t.Fatalf("expected name kept and fields updated, body=%s", body)
	}
}

func TestHTTP_FeedingsOrderedByDateDesc(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	alice.signup("alice")
	id := alice.createCat("Tom", "Tabby", "Orange", "1")

	for _, f := range []url.Values{
		{"date": {"2024-01-01"}, "meal": {"B"}},
		{"date": {"2024-01-02"}, "meal": {"L"}},
	} {
		if st, body, _ := alice.post("/cats/"+id+"/add_feeding/", f); st != http.StatusSeeOther {
			t.Fatalf("add feeding: expected 303, got %d body=%s", st, body)
		}
	}

	st, body, _ := alice.post("/cats/"+id+"/add_feeding/", url.Values{"date": {"2024-01-03"}, "meal": {"X"}})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Select a valid choice.") {
		t.Fatalf("expected 422 for invalid meal, got %d body=%s", st, body)
	}

	_, body, _ = alice.get("/cats/" + id + "/")
	first := strings.Index(body, "<td>2024-01-02</td><td>Lunch</td>")
	second := strings.Index(body, "<td>2024-01-01</td><td>Breakfast</td>")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected 2024-01-02 before 2024-01-01, body=%s", body)
	}
	if strings.Contains(body, "2024-01-03") {
		t.Fatalf("invalid feeding must not be persisted")
	}
}

func TestHTTP_ToysAndCascadeDelete(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	bob := newBrowser(t, ts)
	alice.signup("alice")
	bob.signup("bob")

	catID := alice.createCat("Tom", "Tabby", "Orange", "1")
	toyID := alice.createToy("Ball", "red")

	_, body, _ := alice.get("/cats/" + catID + "/")
	if !strings.Contains(body, "/assoc_toy/"+toyID+"/") {
		t.Fatalf("expected toy to be offered, body=%s", body)
	}

	if st, _, _ := alice.post("/cats/"+catID+"/assoc_toy/"+toyID+"/", nil); st != http.StatusSeeOther {
		t.Fatalf("assoc toy: %d", st)
	}
	_, body, _ = alice.get("/cats/" + catID + "/")
	if !strings.Contains(body, "/unassoc_toy/"+toyID+"/") || strings.Contains(body, "/assoc_toy/"+toyID+"/") {
		t.Fatalf("expected toy to be associated, body=%s", body)
	}
	if st, _, _ := alice.post("/cats/"+catID+"/assoc_toy/missing/", nil); st != http.StatusNotFound {
		t.Fatalf("assoc missing toy: expected 404, got %d", st)
	}

	// toys no son por dueño
	if st, _, _ := bob.post("/toys/"+toyID+"/update/", url.Values{"name": {"Mouse"}, "color": {"grey"}}); st != http.StatusSeeOther {
		t.Fatalf("bob toy update: expected 303, got %d", st)
	}

	if st, _, _ := alice.post("/cats/"+catID+"/add_feeding/", url.Values{"date": {"2024-01-01"}}); st != http.StatusSeeOther {
		t.Fatalf("add feeding with default meal: %d", st)
	}

	st, _, loc := alice.post("/cats/"+catID+"/delete/", nil)
	if st != http.StatusSeeOther || loc != "/cats/" {
		t.Fatalf("delete: expected 303 to /cats/, got %d %q", st, loc)
	}
	if st, _, _ := alice.get("/cats/" + catID + "/"); st != http.StatusNotFound {
		t.Fatalf("deleted cat: expected 404, got %d", st)
	}

	st, body, _ = alice.get("/toys/" + toyID + "/")
	if st != http.StatusOK || !strings.Contains(body, "Mouse") {
		t.Fatalf("toy should survive cat deletion, got %d body=%s", st, body)
	}

	if st, _, _ := alice.post("/toys/"+toyID+"/delete/", nil); st != http.StatusSeeOther {
		t.Fatalf("delete toy: %d", st)
	}
	if st, _, _ := alice.get("/toys/" + toyID + "/"); st != http.StatusNotFound {
		t.Fatalf("deleted toy: expected 404, got %d", st)
	}
}

func TestHTTP_ToyValidation(t *testing.T) {
	ts := newServer(t, nil)
	alice := newBrowser(t, ts)
	alice.signup("alice")

	st, body, _ := alice.post("/toys/create/", url.Values{"name": {"Ball"}, "color": {strings.Repeat("r", 21)}})
	if st != http.StatusUnprocessableEntity || !strings.Contains(body, "Ensure this value has at most 20 characters.") {
		t.Fatalf("expected 422 for long color, got %d body=%s", st, body)
	}
}

func TestHTTP_RateLimitOnLogin(t *testing.T) {
	ts := newServer(t, func(o *router.Options) {
		o.AuthRatePerMin = 1
		o.AuthRateBurst = 2
	})
	anon := newBrowser(t, ts)

	form := url.Values{"username": {"nobody"}, "password": {"whatever-pass"}}
	for i := 0; i < 2; i++ {
		if st, _, _ := anon.post("/", form); st != http.StatusUnprocessableEntity {
			t.Fatalf("attempt %d: expected 422, got %d", i+1, st)
		}
	}
	if st, _, _ := anon.post("/", form); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", st)
	}
	// el GET del formulario no se limita
	if st, _, _ := anon.get("/"); st != http.StatusOK {
		t.Fatalf("login form: expected 200, got %d", st)
	}
}

func TestHTTP_DebugAuthHeader(t *testing.T) {
	ts := newServer(t, func(o *router.Options) { o.DebugAuth = true })

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/cats/", nil)
	req.Header.Set(middleware.DebugUserHeader, "dev-user")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with debug header, got %d", res.StatusCode)
	}
}

func TestHTTP_OpsEndpoints(t *testing.T) {
	ts := newServer(t, nil)
	b := newBrowser(t, ts)

	if st, body, _ := b.get("/health"); st != http.StatusOK || body != "ok" {
		t.Fatalf("health: %d %q", st, body)
	}
	if st, _, _ := b.get("/about/"); st != http.StatusOK {
		t.Fatalf("about: %d", st)
	}
	if st, _, _ := b.get("/nope"); st != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", st)
	}
	st, body, _ := b.get("/metrics")
	if st != http.StatusOK || !strings.Contains(body, "cat_collector_http_requests_total") {
		t.Fatalf("metrics: %d body=%s", st, body)
	}
	st, body, _ = b.get("/swagger/doc.json")
	if st != http.StatusOK || !strings.Contains(body, "/cats/{catID}/add_feeding/") {
		t.Fatalf("swagger doc: %d body=%s", st, body)
	}
}
