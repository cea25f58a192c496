package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dkozyrev/foodway/internal/domain"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/usecase/route"
)

// MockRouteService - мок для route service
type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) CreateRoute(ctx context.Context, req *route.CreateRouteRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteService) GetRouteByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) GetAllRoutes(ctx context.Context) ([]*domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteService) GetRoutesByDriver(ctx context.Context, driverID int64) ([]*domain.Route, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Route), args.Error(1)
}

func (m *MockRouteService) UpdateRoute(ctx context.Context, id int64, req *route.UpdateRouteRequest) (*domain.Route, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) DeleteRoute(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouteService) AddDestination(ctx context.Context, routeID int64, req *route.DestinationRequest) (int64, error) {
	args := m.Called(ctx, routeID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteService) RemoveDestination(ctx context.Context, routeID, destinationID int64) error {
	args := m.Called(ctx, routeID, destinationID)
	return args.Error(0)
}

func (m *MockRouteService) AddProduct(ctx context.Context, destinationID int64, req *route.ProductLineRequest) (int64, error) {
	args := m.Called(ctx, destinationID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteService) RemoveProduct(ctx context.Context, destinationID, productID int64) error {
	args := m.Called(ctx, destinationID, productID)
	return args.Error(0)
}

// withURLParams добавляет chi route params в контекст запроса
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// TestRouteHandler_CreateRoute тестирует создание маршрута
func TestRouteHandler_CreateRoute(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockRouteService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное создание",
			requestBody: map[string]interface{}{
				"Date":     "2025-06-15",
				"Truck_ID": 3,
				"Type":     true,
				"Destinations": []map[string]interface{}{
					{
						"Address_ID": 7,
						"Products": []map[string]interface{}{
							{"Product_ID": 2, "Quantity": 10},
						},
					},
				},
			},
			mockSetup: func(m *MockRouteService) {
				m.On("CreateRoute", mock.Anything, mock.AnythingOfType("*route.CreateRouteRequest")).
					Return(int64(42), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(42), resp["routeId"])
			},
		},
		{
			name: "маршрут без пунктов отклоняется",
			requestBody: map[string]interface{}{
				"Date":         "2025-06-15",
				"Truck_ID":     3,
				"Destinations": []map[string]interface{}{},
			},
			mockSetup: func(m *MockRouteService) {
				m.On("CreateRoute", mock.Anything, mock.AnythingOfType("*route.CreateRouteRequest")).
					Return(int64(0), domain.ErrInvalidRouteData)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "несуществующий грузовик",
			requestBody: map[string]interface{}{
				"Date":     "2025-06-15",
				"Truck_ID": 999,
				"Destinations": []map[string]interface{}{
					{"Address_ID": 7},
				},
			},
			mockSetup: func(m *MockRouteService) {
				m.On("CreateRoute", mock.Anything, mock.AnythingOfType("*route.CreateRouteRequest")).
					Return(int64(0), domain.ErrTruckNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid",
			mockSetup:      func(m *MockRouteService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/tours", bytes.NewReader(body))
			req = req.WithContext(CreateAuthContext(t, 1, "admin@test.com", domain.RoleAdmin))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.CreateRoute(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_GetRouteByID тестирует получение маршрута по ID
func TestRouteHandler_GetRouteByID(t *testing.T) {
	tests := []struct {
		name           string
		routeID        string
		mockSetup      func(*MockRouteService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:    "успешное получение",
			routeID: "42",
			mockSetup: func(m *MockRouteService) {
				m.On("GetRouteByID", mock.Anything, int64(42)).
					Return(CreateTestRoute(42, 3, true), nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(42), resp["id"])
				assert.Equal(t, "2025-06-15", resp["Date"])
				assert.Equal(t, true, resp["Type"])
				if dests, ok := resp["Destinations"].([]interface{}); ok {
					assert.Len(t, dests, 1)
				}
			},
		},
		{
			name:    "маршрут не найден",
			routeID: "99",
			mockSetup: func(m *MockRouteService) {
				m.On("GetRouteByID", mock.Anything, int64(99)).
					Return(nil, domain.ErrRouteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name:           "невалидный ID",
			routeID:        "abc",
			mockSetup:      func(m *MockRouteService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			req := httptest.NewRequest(http.MethodGet, "/tours/"+tt.routeID, nil)
			req = withURLParams(req, map[string]string{"id": tt.routeID})

			w := httptest.NewRecorder()
			handler.GetRouteByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_UpdateRoute тестирует обновление маршрута
func TestRouteHandler_UpdateRoute(t *testing.T) {
	tests := []struct {
		name           string
		routeID        string
		requestBody    interface{}
		mockSetup      func(*MockRouteService)
		expectedStatus int
	}{
		{
			name:        "успешное обновление",
			routeID:     "42",
			requestBody: map[string]interface{}{"Truck_ID": 5},
			mockSetup: func(m *MockRouteService) {
				m.On("UpdateRoute", mock.Anything, int64(42), mock.AnythingOfType("*route.UpdateRouteRequest")).
					Return(CreateTestRoute(42, 5, true), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "пустое обновление возвращает маршрут как есть",
			routeID:     "42",
			requestBody: map[string]interface{}{},
			mockSetup: func(m *MockRouteService) {
				m.On("UpdateRoute", mock.Anything, int64(42), mock.AnythingOfType("*route.UpdateRouteRequest")).
					Return(CreateTestRoute(42, 3, true), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "маршрут не найден",
			routeID:     "99",
			requestBody: map[string]interface{}{"Truck_ID": 5},
			mockSetup: func(m *MockRouteService) {
				m.On("UpdateRoute", mock.Anything, int64(99), mock.AnythingOfType("*route.UpdateRouteRequest")).
					Return(nil, domain.ErrRouteNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut, "/tours/"+tt.routeID, bytes.NewReader(body))
			req = withURLParams(req, map[string]string{"id": tt.routeID})
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			handler.UpdateRoute(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_DeleteRoute тестирует удаление маршрута
func TestRouteHandler_DeleteRoute(t *testing.T) {
	tests := []struct {
		name           string
		routeID        string
		mockSetup      func(*MockRouteService)
		expectedStatus int
	}{
		{
			name:    "успешное удаление",
			routeID: "42",
			mockSetup: func(m *MockRouteService) {
				m.On("DeleteRoute", mock.Anything, int64(42)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "маршрут не найден",
			routeID: "99",
			mockSetup: func(m *MockRouteService) {
				m.On("DeleteRoute", mock.Anything, int64(99)).Return(domain.ErrRouteNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			req := httptest.NewRequest(http.MethodDelete, "/tours/"+tt.routeID, nil)
			req = withURLParams(req, map[string]string{"id": tt.routeID})

			w := httptest.NewRecorder()
			handler.DeleteRoute(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_AddDestination тестирует добавление пункта к маршруту
func TestRouteHandler_AddDestination(t *testing.T) {
	tests := []struct {
		name           string
		routeID        string
		requestBody    interface{}
		mockSetup      func(*MockRouteService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name:    "успешное добавление",
			routeID: "42",
			requestBody: map[string]interface{}{
				"Address_ID": 7,
				"Products": []map[string]interface{}{
					{"Product_ID": 2, "Quantity": 5},
				},
			},
			mockSetup: func(m *MockRouteService) {
				m.On("AddDestination", mock.Anything, int64(42), mock.AnythingOfType("*route.DestinationRequest")).
					Return(int64(10), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(10), resp["destinationId"])
			},
		},
		{
			name:        "пункт без позиций допустим",
			routeID:     "42",
			requestBody: map[string]interface{}{"Address_ID": 7},
			mockSetup: func(m *MockRouteService) {
				m.On("AddDestination", mock.Anything, int64(42), mock.AnythingOfType("*route.DestinationRequest")).
					Return(int64(11), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(11), resp["destinationId"])
			},
		},
		{
			name:        "маршрут не найден",
			routeID:     "99",
			requestBody: map[string]interface{}{"Address_ID": 7},
			mockSetup: func(m *MockRouteService) {
				m.On("AddDestination", mock.Anything, int64(99), mock.AnythingOfType("*route.DestinationRequest")).
					Return(int64(0), domain.ErrRouteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/tours/"+tt.routeID+"/destinations", bytes.NewReader(body))
			req = withURLParams(req, map[string]string{"id": tt.routeID})
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			handler.AddDestination(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_AddProduct тестирует добавление позиции к пункту
func TestRouteHandler_AddProduct(t *testing.T) {
	tests := []struct {
		name           string
		destinationID  string
		requestBody    interface{}
		mockSetup      func(*MockRouteService)
		expectedStatus int
	}{
		{
			name:          "успешное добавление",
			destinationID: "10",
			requestBody:   map[string]interface{}{"Product_ID": 2, "Quantity": 5},
			mockSetup: func(m *MockRouteService) {
				m.On("AddProduct", mock.Anything, int64(10), mock.AnythingOfType("*route.ProductLineRequest")).
					Return(int64(20), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:          "нулевое количество отклоняется",
			destinationID: "10",
			requestBody:   map[string]interface{}{"Product_ID": 2, "Quantity": 0},
			mockSetup: func(m *MockRouteService) {
				m.On("AddProduct", mock.Anything, int64(10), mock.AnythingOfType("*route.ProductLineRequest")).
					Return(int64(0), domain.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "пункт не найден",
			destinationID: "99",
			requestBody:   map[string]interface{}{"Product_ID": 2, "Quantity": 5},
			mockSetup: func(m *MockRouteService) {
				m.On("AddProduct", mock.Anything, int64(99), mock.AnythingOfType("*route.ProductLineRequest")).
					Return(int64(0), domain.ErrDestinationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/destinations/"+tt.destinationID+"/products", bytes.NewReader(body))
			req = withURLParams(req, map[string]string{"id": tt.destinationID})
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			handler.AddProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestRouteHandler_RemoveDestination тестирует удаление пункта маршрута
func TestRouteHandler_RemoveDestination(t *testing.T) {
	tests := []struct {
		name           string
		params         map[string]string
		mockSetup      func(*MockRouteService)
		expectedStatus int
	}{
		{
			name:   "успешное удаление",
			params: map[string]string{"id": "42", "destinationId": "10"},
			mockSetup: func(m *MockRouteService) {
				m.On("RemoveDestination", mock.Anything, int64(42), int64(10)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "пункт чужого маршрута не удаляется",
			params: map[string]string{"id": "42", "destinationId": "77"},
			mockSetup: func(m *MockRouteService) {
				m.On("RemoveDestination", mock.Anything, int64(42), int64(77)).
					Return(domain.ErrDestinationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRouteService)
			tt.mockSetup(mockService)

			log := logger.NewDevelopment()
			handler := NewRouteHandler(mockService, log)

			req := httptest.NewRequest(http.MethodDelete, "/tours/42/destinations/10", nil)
			req = withURLParams(req, tt.params)

			w := httptest.NewRecorder()
			handler.RemoveDestination(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
