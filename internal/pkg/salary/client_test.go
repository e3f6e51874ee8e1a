package salary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tals012/agriculture-hrms-sub002/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.SalaryConfig{BaseURL: baseURL, User: "apiuser", Password: "apipass"})
}

func TestClient_Enabled(t *testing.T) {
	assert.False(t, NewClient(config.SalaryConfig{}).Enabled())
	assert.True(t, testClient("http://example.com").Enabled())
}

// The provider mandates the endpoint shape and the transliterated field
// names; this pins both.
func TestClient_SubmitMonthly_WireFormat(t *testing.T) {
	var gotPath, gotQuery string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"data": {"ok": true}, "status": "success"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.SubmitMonthly(context.Background(), MonthlyPayload{
		MisparTZ:      "AB123456",
		ShemMishpacha: "כהן",
		ShemPrati:     "משה",
		Chodesh:       "03-2026",
		Shaot100:      160,
		Shaot125:      12.5,
		Shaot150:      3,
		YemeiAvoda:    20,
		YemeiMachala:  1,
		SchumBasis:    "6400.00",
		Bonus:         "0.00",
	})

	require.NoError(t, err)
	assert.Equal(t, "/php/api.php", gotPath)
	assert.Equal(t, "user=apiuser&pass=apipass", gotQuery)

	assert.Equal(t, "2", gotBody["sug"])
	assert.Equal(t, "AB123456", gotBody["mispar_tz"])
	assert.Equal(t, "כהן", gotBody["shem_mishpacha"])
	assert.Equal(t, "משה", gotBody["shem_prati"])
	assert.Equal(t, "03-2026", gotBody["chodesh"])
	assert.Equal(t, 160.0, gotBody["shaot_100"])
	assert.Equal(t, 12.5, gotBody["shaot_125"])
	assert.Equal(t, 3.0, gotBody["shaot_150"])
	assert.Equal(t, 20.0, gotBody["yemei_avoda"])
	assert.Equal(t, 1.0, gotBody["yemei_machala"])
	assert.Equal(t, "6400.00", gotBody["schum_basis"])
	assert.Equal(t, "0.00", gotBody["bonus"])
}

func TestClient_RegisterWorker_ReturnsProviderID(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"data": {"id": "sys-17"}, "status": "success"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	id, err := client.RegisterWorker(context.Background(), RegisterPayload{
		MisparTZ:      "AB123456",
		ShemMishpacha: "כהן",
		ShemPrati:     "משה",
		Telefon:       "0501234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "sys-17", id)
	assert.Equal(t, "1", gotBody["sug"])
	assert.Equal(t, "0501234567", gotBody["telefon"])
}

func TestClient_RegisterWorker_BareStringData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "registered", "status": "success"}`))
	}))
	defer server.Close()

	id, err := testClient(server.URL).RegisterWorker(context.Background(), RegisterPayload{MisparTZ: "X"})

	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestClient_ErrorResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	err := testClient(server.URL).SubmitMonthly(context.Background(), MonthlyPayload{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "boom")
}

func TestClient_ProviderLevelError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null, "status": "error", "error": "unknown worker"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).SubmitMonthly(context.Background(), MonthlyPayload{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unknown worker", apiErr.Message)
}

func TestClient_Disabled(t *testing.T) {
	err := NewClient(config.SalaryConfig{}).SubmitMonthly(context.Background(), MonthlyPayload{})
	require.Error(t, err)
}
