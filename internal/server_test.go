package internal

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"paysera/config"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, conf *config.Config) *Server {
	t.Helper()
	if conf == nil {
		conf = &config.Config{}
	}
	server := NewServer(conf)
	server.SetLogger(newLogger("server", false, nil, io.Discard, zerolog.DebugLevel))
	server.SetPaymentsService(newTestPaysera(t))
	return server
}

func serve(server *Server, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(recorder, request)
	return recorder
}

func payQuery() url.Values {
	return url.Values{
		"amount":     {"1000"},
		"currency":   {"EUR"},
		"first_name": {"John"},
		"last_name":  {"Doe"},
		"email":      {"john.doe@example.com"},
	}
}

func TestServer_PayRedirect(t *testing.T) {
	server := newTestServer(t, nil)

	response := serve(server, httptest.NewRequest(http.MethodGet, "/pay?"+payQuery().Encode(), nil))

	assert.Equal(t, http.StatusFound, response.Code)
	location := response.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "https://www.paysera.com/pay/?"))
	assert.Contains(t, location, "amount=1000")
	assert.Contains(t, location, "p_firstname=John")
	assert.Contains(t, location, "test=0")
}

func TestServer_PayJson(t *testing.T) {
	server := newTestServer(t, nil)
	query := payQuery()
	query.Set("format", "json")
	query.Set("order_id", "A-1")

	response := serve(server, httptest.NewRequest(http.MethodGet, "/pay?"+query.Encode(), nil))

	require.Equal(t, http.StatusOK, response.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Contains(t, body["url"], "orderid=A-1")
	assert.Contains(t, body["url"], "sign=")
}

func TestServer_PayTestModeFromConfig(t *testing.T) {
	conf := &config.Config{}
	conf.Merchant.TestMode = true
	server := newTestServer(t, conf)

	response := serve(server, httptest.NewRequest(http.MethodGet, "/pay?"+payQuery().Encode(), nil))

	require.Equal(t, http.StatusFound, response.Code)
	assert.Contains(t, response.Header().Get("Location"), "test=1")
}

func TestServer_PayValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"missing email", "email", "", "email"},
		{"missing amount", "amount", "", "amount"},
		{"bad amount", "amount", "ten", "amount"},
		{"bad test flag", "test", "maybe", "test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, nil)
			query := payQuery()
			query.Set(tt.key, tt.value)

			response := serve(server, httptest.NewRequest(http.MethodGet, "/pay?"+query.Encode(), nil))

			assert.Equal(t, http.StatusBadRequest, response.Code)
			assert.Contains(t, response.Body.String(), tt.want)
		})
	}
}

func callbackForm() url.Values {
	form := url.Values{}
	for key, value := range callbackPayload() {
		form.Set(key, value)
	}
	return form
}

func postCallback(server *Server, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(server, request)
}

func TestServer_Callback(t *testing.T) {
	server := newTestServer(t, nil)

	response := postCallback(server, callbackForm())

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Body.String())
}

func TestServer_CallbackQuery(t *testing.T) {
	server := newTestServer(t, nil)

	response := serve(server, httptest.NewRequest(http.MethodGet, "/callback?"+callbackForm().Encode(), nil))

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Body.String())
}

func TestServer_CallbackInvalidSignature(t *testing.T) {
	server := newTestServer(t, nil)
	form := callbackForm()
	form.Set("sign", "invalidsignature")

	response := postCallback(server, form)

	assert.Equal(t, http.StatusForbidden, response.Code)
	assert.NotEqual(t, "OK", response.Body.String())
}

func TestServer_CallbackMalformed(t *testing.T) {
	server := newTestServer(t, nil)
	form := callbackForm()
	form.Del("sign")

	response := postCallback(server, form)

	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestServer_Metrics(t *testing.T) {
	server := newTestServer(t, nil)
	postCallback(server, callbackForm())
	bad := callbackForm()
	bad.Set("sign", "x")
	postCallback(server, bad)
	serve(server, httptest.NewRequest(http.MethodGet, "/pay?"+payQuery().Encode(), nil))

	response := serve(server, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, `paysera_callbacks_total{result="valid"} 1`)
	assert.Contains(t, body, `paysera_callbacks_total{result="invalid_signature"} 1`)
	assert.Contains(t, body, `paysera_payment_urls_total{result="ok"} 1`)
}

func TestServer_StartWithoutPayments(t *testing.T) {
	server := NewServer(&config.Config{})
	assert.Error(t, server.Start())

	server = NewServer(nil)
	assert.Error(t, server.Start())
}
