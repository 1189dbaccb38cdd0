package dataapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fifo/internal/application/dto"
	"github.com/jhoicas/inventario-fifo/internal/infrastructure/dataapi"
)

const samplePayload = `{
  "message": "Inventario calculado",
  "fifoData": {
    "ARROZ-500": {
      "purchases": [
        {"batch_id": 2, "quantity": 5, "cost_per_unit": 3.00},
        {"batch_id": "1", "quantity": 5, "cost_per_unit": 1.00}
      ],
      "sales": [{"quantity": 7}]
    },
    "SIN-MOVS": {}
  }
}`

func TestFetchFIFOData_DecodificaPayload(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := dataapi.NewClient(dataapi.Config{BaseURL: srv.URL + "/api/"}, nil)
	payload, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{})
	require.NoError(t, err)

	assert.Equal(t, "/api/inventory-value", gotPath)
	assert.Empty(t, gotQuery)
	assert.Equal(t, "Inventario calculado", payload.Message)
	require.Contains(t, payload.FIFOData, "ARROZ-500")
	p := payload.FIFOData["ARROZ-500"]
	require.Len(t, p.Purchases, 2)
	assert.Equal(t, dto.BatchID(2), p.Purchases[0].BatchID)
	assert.Equal(t, dto.BatchID(1), p.Purchases[1].BatchID, "batch_id como string numérico")
	assert.Equal(t, "3", p.Purchases[0].CostPerUnit.String())
	require.Len(t, p.Sales, 1)
	assert.Empty(t, payload.FIFOData["SIN-MOVS"].Purchases)
}

func TestFetchFIFOData_ReenviaPeriodo(t *testing.T) {
	var gotStart, gotEnd string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start_date")
		gotEnd = r.URL.Query().Get("end_date")
		_, _ = w.Write([]byte(`{"fifoData":{}}`))
	}))
	defer srv.Close()

	c := dataapi.NewClient(dataapi.Config{BaseURL: srv.URL}, nil)
	_, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", gotStart)
	assert.Equal(t, "2024-01-31", gotEnd)
}

func TestFetchFIFOData_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := dataapi.NewClient(dataapi.Config{BaseURL: srv.URL}, nil)
	_, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchFIFOData_JSONInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fifoData": [`))
	}))
	defer srv.Close()

	c := dataapi.NewClient(dataapi.Config{BaseURL: srv.URL}, nil)
	_, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deserializar")
}

func TestFetchFIFOData_CircuitBreakerSeAbre(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var transitions []gobreaker.State
	c := dataapi.NewClient(dataapi.Config{
		BaseURL:          srv.URL,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		OnStateChange: func(_ string, _, to gobreaker.State) {
			transitions = append(transitions, to)
		},
	}, nil)

	for i := 0; i < 2; i++ {
		_, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{})
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, c.State())

	_, err := c.FetchFIFOData(context.Background(), dto.FIFOPeriod{})
	assert.ErrorIs(t, err, dataapi.ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "con el circuito abierto no se sale a la red")
	assert.Equal(t, []gobreaker.State{gobreaker.StateOpen}, transitions)
}

func TestFetchFIFOData_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := dataapi.NewClient(dataapi.Config{BaseURL: srv.URL}, nil)
	_, err := c.FetchFIFOData(ctx, dto.FIFOPeriod{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout o cancelación")
}
