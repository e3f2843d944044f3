package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
)

func testVarsel() domain.EksternVarsel {
	return domain.EksternVarsel{
		VarselID:       uuid.Must(uuid.NewV4()),
		NotifikasjonID: uuid.Must(uuid.NewV4()),
		VarselType:     domain.VarselTypeSMS,
		Mobilnummer:    "+4740000000",
		SmsTekst:       "Du har fått en ny oppgave",
		Sendevindu:     domain.SendevinduLoepende,
	}
}

func TestAltinnKlientSendOK(t *testing.T) {
	t.Parallel()
	varsel := testVarsel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notification/send", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("ApiKey"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, varsel.VarselID.String(), req["varselId"])
		assert.Equal(t, "SMS", req["type"])
		assert.Equal(t, "+4740000000", req["mottaker"])
		assert.Equal(t, varsel.SmsTekst, req["innhold"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", time.Second)
	resp, err := klient.Send(context.Background(), varsel)
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	assert.Empty(t, resp.Feilkode)
	assert.JSONEq(t, `{"status":"OK"}`, resp.Raa)
}

func TestAltinnKlientSendEpost(t *testing.T) {
	t.Parallel()
	varsel := domain.EksternVarsel{
		VarselID:       uuid.Must(uuid.NewV4()),
		NotifikasjonID: uuid.Must(uuid.NewV4()),
		VarselType:     domain.VarselTypeEpost,
		EpostAdresse:   "post@example.com",
		EpostTittel:    "Ny oppgave",
		EpostBody:      "<p>Du har fått en ny oppgave</p>",
		Sendevindu:     domain.SendevinduLoepende,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "EPOST", req["type"])
		assert.Equal(t, "post@example.com", req["mottaker"])
		assert.Equal(t, "Ny oppgave", req["tittel"])
		assert.Equal(t, varsel.EpostBody, req["innhold"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", time.Second)
	resp, err := klient.Send(context.Background(), varsel)
	require.NoError(t, err)
	assert.True(t, resp.Ok)
}

func TestAltinnKlientSendFeilkode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":"FEIL","feilkode":"30308","feilmelding":"mottaker mangler kontaktinfo"}`))
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", time.Second)
	resp, err := klient.Send(context.Background(), testVarsel())
	require.NoError(t, err)
	assert.False(t, resp.Ok)
	assert.Equal(t, "30308", resp.Feilkode)
	assert.Equal(t, "mottaker mangler kontaktinfo", resp.Feilmelding)
	assert.JSONEq(t, `{"status":"FEIL","feilkode":"30308","feilmelding":"mottaker mangler kontaktinfo"}`, resp.Raa)
}

func TestAltinnKlientServerfeil(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", time.Second)
	_, err := klient.Send(context.Background(), testVarsel())
	assert.ErrorIs(t, err, errs.ErrSendVarselFailed)
}

func TestAltinnKlientTimeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", 50*time.Millisecond)
	_, err := klient.Send(context.Background(), testVarsel())
	assert.ErrorIs(t, err, errs.ErrSendVarselFailed)
}

func TestAltinnKlientIkkeJSONRespons(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`OK`))
	}))
	defer srv.Close()

	klient := NewAltinnKlient(srv.URL, "test-key", time.Second)
	resp, err := klient.Send(context.Background(), testVarsel())
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	// 非 JSON 响应不能直接进 JSON 列
	assert.Equal(t, "null", resp.Raa)
}

func TestAltinnKlientUgyldigVarselType(t *testing.T) {
	t.Parallel()
	varsel := testVarsel()
	varsel.VarselType = "BREVPOST"

	klient := NewAltinnKlient("http://localhost:1", "test-key", time.Second)
	_, err := klient.Send(context.Background(), varsel)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
