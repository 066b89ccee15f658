package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/models"
	"github.com/ressit/ressit-pos-api/storage/memstore"
)

func newRouter(t *testing.T) *chi.Mux {
	t.Helper()
	repo := models.NewOrdersRepository(memstore.New(), models.DefaultIDAssignAttempts, time.UTC)
	r := chi.NewRouter()
	NewOrderHandler(repo, zap.NewNop()).RegisterRoutes(r)
	return r
}

func do(r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Parses the order date and numbers variations",
			requestBody: `{"categoryName":"Drinks","productName":"Cay","quantity":2,"price":"1.50",
				"totalPrice":"3.00","paymentType":"cash","taxValue":"2.6","hasVariations":true,
				"variations":[{"id":9,"name":"Sugar","price":"0"},{"id":9,"name":"Lemon","price":"0.20"}],
				"orderDateString":"2024-05-17 / 13:45"}`,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var order models.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
				assert.Equal(t, 1, order.ID)
				assert.True(t, time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC).Equal(order.OrderDate))
				require.Len(t, order.Variations, 2)
				assert.Equal(t, 1, order.Variations[0].ID)
				assert.Equal(t, 2, order.Variations[1].ID)
				assert.True(t, decimal.RequireFromString("3").Equal(order.TotalPrice))
				assert.Equal(t, "/getOrder/1", rec.Header().Get("Location"))
			},
		},
		{
			name:               "Malformed order date",
			requestBody:        `{"productName":"Cay","orderDateString":"17.05.2024 13:45"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Missing order date",
			requestBody:        `{"productName":"Cay"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `[`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(t)

			rec := do(r, "POST", "/createOrder", tc.requestBody)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestMalformedDateInsertsNothing(t *testing.T) {
	r := newRouter(t)

	rec := do(r, "POST", "/createOrder", `{"productName":"Cay","orderDateString":"yesterday"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, "GET", "/getAllOrders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrderUpdateReparsesDate(t *testing.T) {
	r := newRouter(t)
	require.Equal(t, http.StatusCreated,
		do(r, "POST", "/createOrder", `{"productName":"Cay","orderDateString":"2024-05-17 / 13:45"}`).Code)

	rec := do(r, "PUT", "/updateOrder/1", `{"productName":"Kahve","orderDateString":"2024-05-18 / 09:05"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, "GET", "/getOrder/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var order models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "Kahve", order.ProductName)
	assert.True(t, time.Date(2024, 5, 18, 9, 5, 0, 0, time.UTC).Equal(order.OrderDate))

	assert.Equal(t, http.StatusNotFound,
		do(r, "PUT", "/updateOrder/2", `{"orderDateString":"2024-05-18 / 09:05"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, "DELETE", "/deleteOrder/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, "DELETE", "/deleteOrder/1", "").Code)
}
