package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"book-hub/pkg/common/config"
	"book-hub/pkg/core/store/storetest"
	"book-hub/pkg/web/router"
)

type testServer struct {
	t *testing.T
	h *server.Hertz
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	cfg := config.Default()
	cfg.Middleware.Security.BcryptCost = bcrypt.MinCost
	cfg.Middleware.JWT.Secret = "router-test-secret"
	for _, m := range mutate {
		m(&cfg)
	}

	h := server.New()
	require.NoError(t, router.RegisterAPIs(h, &cfg, storetest.Open(t)))
	return &testServer{t: t, h: h}
}

type response struct {
	status int
	body   []byte
	header func(string) string
}

func (r response) json(t *testing.T) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(r.body, &m), string(r.body))
	return m
}

func (s *testServer) do(method, path, body string, headers ...ut.Header) response {
	s.t.Helper()
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: strings.NewReader(body), Len: len(body)}
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
	}
	w := ut.PerformRequest(s.h.Engine, method, path, b, headers...)
	res := w.Result()
	return response{
		status: res.StatusCode(),
		body:   res.Body(),
		header: func(k string) string { return string(res.Header.Peek(k)) },
	}
}

func bearer(token string) ut.Header {
	return ut.Header{Key: "Authorization", Value: "Bearer " + token}
}

func (s *testServer) registerAndLogin(email, password string) string {
	s.t.Helper()
	res := s.do("POST", "/auth/register", fmt.Sprintf(
		`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password))
	require.Equal(s.t, http.StatusCreated, res.status, string(res.body))

	res = s.do("POST", "/auth/token", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(s.t, http.StatusOK, res.status, string(res.body))
	return res.json(s.t)["access_token"].(string)
}

func bookJSON(title, author, isbn string) string {
	return fmt.Sprintf(`{"title":%q,"author":%q,"genre":"Fiction","publication_date":"1997-06-26",
		"price":19.5,"rating":4.8,"description":"d","image":"http://img.test/x.png","isbn":%q,
		"pages":320,"language":"en","publisher":"Bloomsbury","stock":7}`, title, author, isbn)
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t)

	res := s.do("GET", "/", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.json(t)["message"], "Welcome")

	res = s.do("GET", "/health", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "healthy", res.json(t)["status"])
	assert.NotEmpty(t, res.header("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	res := s.do("GET", "/", "", ut.Header{Key: "X-Request-Id", Value: "abc-123"})
	assert.Equal(t, "abc-123", res.header("X-Request-Id"))
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	body := `{"email":"ann@example.com","password":"secret1","first_name":"Ann","last_name":"Lee"}`

	res := s.do("POST", "/auth/register", body)
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	user := res.json(t)
	assert.Equal(t, "ann@example.com", user["email"])
	assert.Equal(t, true, user["is_active"])
	assert.NotContains(t, string(res.body), "password")

	res = s.do("POST", "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Email already registered", res.json(t)["detail"])
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"bad email":                `{"email":"not-an-email","password":"secret1","first_name":"A","last_name":"B"}`,
		"short password":           `{"email":"a@example.com","password":"123","first_name":"A","last_name":"B"}`,
		"long password":            fmt.Sprintf(`{"email":"a@example.com","password":%q,"first_name":"A","last_name":"B"}`, strings.Repeat("p", 73)),
		"short multibyte password": fmt.Sprintf(`{"email":"a@example.com","password":%q,"first_name":"A","last_name":"B"}`, "ééé"),
		"long multibyte password":  fmt.Sprintf(`{"email":"a@example.com","password":%q,"first_name":"A","last_name":"B"}`, strings.Repeat("é", 73)),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res := s.do("POST", "/auth/register", body)
			assert.Equal(t, http.StatusUnprocessableEntity, res.status, string(res.body))
		})
	}
}

func TestRegisterCountsPasswordCharacters(t *testing.T) {
	s := newTestServer(t)
	password := strings.Repeat("é", 40)

	res := s.do("POST", "/auth/register", fmt.Sprintf(
		`{"email":"utf8@example.com","password":%q,"first_name":"A","last_name":"B"}`, password))
	require.Equal(t, http.StatusCreated, res.status, string(res.body))

	res = s.do("POST", "/auth/token", fmt.Sprintf(`{"email":"utf8@example.com","password":%q}`, password))
	assert.Equal(t, http.StatusOK, res.status, string(res.body))
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/auth/token", `{"email":"not-an-email","password":"hunter22"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.status, string(res.body))
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin("bo@example.com", "hunter22")
	assert.NotEmpty(t, token)

	wrong := s.do("POST", "/auth/token", `{"email":"bo@example.com","password":"nope-nope"}`)
	unknown := s.do("POST", "/auth/token", `{"email":"who@example.com","password":"hunter22"}`)
	for _, res := range []response{wrong, unknown} {
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, "Incorrect email or password", res.json(t)["detail"])
	}

	res := s.do("POST", "/auth/token", `{"email":"bo@example.com","password":"hunter22"}`)
	assert.Equal(t, "bearer", res.json(t)["token_type"])
}

func TestLoginWithForm(t *testing.T) {
	s := newTestServer(t)
	s.registerAndLogin("form@example.com", "hunter22")

	form := url.Values{"username": {"form@example.com"}, "password": {"hunter22"}}.Encode()
	w := ut.PerformRequest(s.h.Engine, "POST", "/auth/token",
		&ut.Body{Body: strings.NewReader(form), Len: len(form)},
		ut.Header{Key: "Content-Type", Value: "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusOK, w.Result().StatusCode(), string(w.Result().Body()))
}

func TestMe(t *testing.T) {
	s := newTestServer(t)
	token := s.registerAndLogin("me@example.com", "hunter22")

	res := s.do("GET", "/auth/me", "", bearer(token))
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "me@example.com", res.json(t)["email"])

	res = s.do("GET", "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, "Could not validate credentials", res.json(t)["detail"])

	res = s.do("GET", "/auth/me", "", bearer(token+"x"))
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestBooksCRUD(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/books/", bookJSON("Harry Potter", "J. K. Rowling", "isbn-hp"))
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	book := res.json(t)
	id := int(book["id"].(float64))
	assert.NotEmpty(t, book["created_at"])

	res = s.do("POST", "/books/", bookJSON("Other", "Someone", "isbn-hp"))
	assert.Equal(t, http.StatusConflict, res.status)

	res = s.do("PUT", fmt.Sprintf("/books/%d", id), `{"price":5.25}`)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	updated := res.json(t)
	assert.Equal(t, 5.25, updated["price"])
	assert.Equal(t, "Harry Potter", updated["title"])
	assert.Equal(t, float64(7), updated["stock"])

	res = s.do("GET", fmt.Sprintf("/books/%d", id), "")
	assert.Equal(t, http.StatusOK, res.status)

	res = s.do("DELETE", fmt.Sprintf("/books/%d", id), "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Book deleted successfully", res.json(t)["message"])

	res = s.do("DELETE", fmt.Sprintf("/books/%d", id), "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Book not found", res.json(t)["detail"])

	res = s.do("GET", "/books/9999", "")
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestBooksCreateAcceptsEmptyISBN(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/books/", bookJSON("No ISBN", "Anon", ""))
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	assert.Equal(t, "", res.json(t)["isbn"])
}

func TestBooksCreateRequiresFields(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/books/", `{"title":"Only a title"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.status, string(res.body))
}

func TestBooksListPagingAndFilter(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 7; i++ {
		title := fmt.Sprintf("Volume %d", i)
		if i < 2 {
			title = fmt.Sprintf("Harry Potter %d", i)
		}
		res := s.do("POST", "/books/", bookJSON(title, "Author", fmt.Sprintf("isbn-%d", i)))
		require.Equal(t, http.StatusCreated, res.status, string(res.body))
	}

	res := s.do("GET", "/books/?limit=5", "")
	require.Equal(t, http.StatusOK, res.status)
	page := res.json(t)
	assert.Equal(t, float64(7), page["total"])
	assert.Len(t, page["items"], 5)

	res = s.do("GET", "/books/?title=harry", "")
	page = res.json(t)
	assert.Equal(t, float64(2), page["total"])

	res = s.do("GET", "/books/", "")
	assert.Len(t, res.json(t)["items"], 7)

	res = s.do("GET", "/books/?limit=101", "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)

	res = s.do("GET", "/books/?skip=-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)
}

func TestCartFlow(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/cart/", `{"user_id":1,"book_id":42,"quantity":2}`)
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	id := int(res.json(t)["id"].(float64))

	res = s.do("POST", "/cart/", `{"user_id":1,"book_id":42,"quantity":3}`)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, float64(5), res.json(t)["quantity"])

	res = s.do("POST", "/cart/", `{"user_id":1,"book_id":43}`)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, float64(1), res.json(t)["quantity"])

	res = s.do("POST", "/cart/", `{"user_id":2,"book_id":43,"quantity":0}`)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, float64(0), res.json(t)["quantity"])

	res = s.do("GET", "/cart/user/1", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(2), res.json(t)["total"])

	res = s.do("PUT", fmt.Sprintf("/cart/%d", id), `{"quantity":9}`)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(9), res.json(t)["quantity"])

	res = s.do("DELETE", fmt.Sprintf("/cart/%d", id), "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Cart item deleted successfully", res.json(t)["message"])

	res = s.do("GET", fmt.Sprintf("/cart/%d", id), "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Cart item not found", res.json(t)["detail"])

	res = s.do("DELETE", "/cart/user/1/clear", "")
	assert.Equal(t, http.StatusOK, res.status)
	res = s.do("GET", "/cart/user/1", "")
	assert.Equal(t, float64(0), res.json(t)["total"])
}

func TestCartClearEmpty(t *testing.T) {
	s := newTestServer(t)

	res := s.do("DELETE", "/cart/user/77/clear", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "User cart cleared successfully", res.json(t)["message"])
}

func TestServiceRequests(t *testing.T) {
	s := newTestServer(t)
	body := `{"user_id":3,"title":"Rare Atlas","author":"Mercator","genre":"Maps",
		"description":"good","price":120,"contact_email":"s@example.com","status":"approved"}`

	res := s.do("POST", "/service-requests/", body)
	require.Equal(t, http.StatusCreated, res.status, string(res.body))
	created := res.json(t)
	assert.Equal(t, "pending", created["status"])
	id := int(created["id"].(float64))

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status?status=approved", id), "")
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	assert.Equal(t, "Status updated successfully", res.json(t)["message"])
	assert.Equal(t, "approved", res.json(t)["status"])

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status", id), `{"status":"sold"}`)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	assert.Equal(t, "sold", res.json(t)["status"])

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status", id), "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status", id), `{"title":"no status key"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status?status=", id), "")
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	assert.Equal(t, "", res.json(t)["status"])

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status", id), `{"status":"sold"}`)
	require.Equal(t, http.StatusOK, res.status, string(res.body))

	res = s.do("PUT", fmt.Sprintf("/service-requests/%d", id), `{"price":99}`)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(99), res.json(t)["price"])
	assert.Equal(t, "sold", res.json(t)["status"])

	res = s.do("GET", "/service-requests/?user_id=3&status=sold&title=atlas", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(1), res.json(t)["total"])

	res = s.do("GET", "/service-requests/?user_id=4", "")
	assert.Equal(t, float64(0), res.json(t)["total"])

	res = s.do("DELETE", fmt.Sprintf("/service-requests/%d", id), "")
	assert.Equal(t, http.StatusOK, res.status)

	res = s.do("PATCH", fmt.Sprintf("/service-requests/%d/status?status=x", id), "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Service request not found", res.json(t)["detail"])
}

func TestProtectedResources(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Middleware.JWT.ProtectResources = true
	})

	res := s.do("GET", "/books/", "")
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, "Could not validate credentials", res.json(t)["detail"])

	res = s.do("GET", "/books/", "", bearer("not.a.token"))
	assert.Equal(t, http.StatusUnauthorized, res.status)

	token := s.registerAndLogin("guard@example.com", "hunter22")
	res = s.do("GET", "/books/", "", bearer(token))
	assert.Equal(t, http.StatusOK, res.status, string(res.body))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	res := s.do("OPTIONS", "/books/", "",
		ut.Header{Key: "Origin", Value: "http://frontend.test"},
		ut.Header{Key: "Access-Control-Request-Method", Value: "PATCH"},
	)
	assert.Equal(t, "http://frontend.test", res.header("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", res.header("Access-Control-Allow-Credentials"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do("GET", "/health", "")

	res := s.do("GET", "/metrics", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, string(res.body), "book_hub_http_requests_total")
}
