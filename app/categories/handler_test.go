package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/models"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	CreateErr  error
	ListErr    error
	GetErr     error
	UpdateErr  error
	DeleteErr  error
	LastSaved  *models.Category
	LastID     int
}

func (m *MockCategoryRepo) GetAllCategories(_ context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) CreateCategory(_ context.Context, cat *models.Category) error {
	m.LastSaved = cat
	if m.CreateErr != nil {
		return m.CreateErr
	}
	cat.ID = len(m.Categories) + 1
	return nil
}

func (m *MockCategoryRepo) GetCategory(_ context.Context, id int) (*models.Category, error) {
	m.LastID = id
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MockCategoryRepo) UpdateCategory(_ context.Context, id int, cat *models.Category) error {
	m.LastID = id
	m.LastSaved = cat
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	cat.ID = id
	return nil
}

func (m *MockCategoryRepo) DeleteCategory(_ context.Context, id int) error {
	m.LastID = id
	return m.DeleteErr
}

// --- Helpers ---

func serve(repo *MockCategoryRepo, method, url, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewCategoryHandler(repo, zap.NewNop()).RegisterRoutes(r)

	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	var errResp map[string]string
	err := json.NewDecoder(rec.Body).Decode(&errResp)
	assert.NoError(t, err)
	return errResp["error"]
}

// --- Tests: GET /getAllCategories ---

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with multiple categories",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{
					Categories: []models.Category{
						{ID: 1, Name: "Pizza", ImageURL: "pizza.png"},
						{ID: 2, Name: "Drinks", ImageURL: "drinks.png"},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []models.Category
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 2)
				assert.Equal(t, "Pizza", resp[0].Name)
				assert.Equal(t, "drinks.png", resp[1].ImageURL)
			},
		},
		{
			name: "Success with empty list",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{Categories: []models.Category{}}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{ListErr: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "failed to fetch categories", decodeError(t, rec))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()

			// Act
			rec := serve(mockRepo, "GET", "/getAllCategories", "")

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: POST /createCategory ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkRepoCall      func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"Desserts","imageUrl":"desserts.png"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp models.Category
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, "Desserts", resp.Name)
				assert.Equal(t, "/getCategory/1", rec.Header().Get("Location"))
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Desserts", repo.LastSaved.Name)
				assert.Equal(t, "desserts.png", repo.LastSaved.ImageURL)
			},
		},
		{
			name:        "Invalid JSON body",
			requestBody: `{invalid json`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Invalid JSON body", decodeError(t, rec))
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "CreateCategory should not be called with invalid JSON")
			},
		},
		{
			name:        "Repository error on create",
			requestBody: `{"name":"Toys"}`,
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{CreateErr: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Failed to create category", decodeError(t, rec))
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.NotNil(t, repo.LastSaved, "CreateCategory should have been called")
				assert.Equal(t, "Toys", repo.LastSaved.Name)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()

			// Act
			rec := serve(mockRepo, "POST", "/createCategory", tc.requestBody)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

// --- Tests: by-id routes ---

func TestHandleByID(t *testing.T) {
	stored := []models.Category{{ID: 3, Name: "Soups"}}

	testCases := []struct {
		name               string
		method             string
		url                string
		requestBody        string
		mockRepoSetup      func() *MockCategoryRepo
		expectedStatusCode int
		expectedError      string
		expectedRepoID     int
	}{
		{
			name:               "Get existing",
			method:             "GET",
			url:                "/getCategory/3",
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{Categories: stored} },
			expectedStatusCode: http.StatusOK,
			expectedRepoID:     3,
		},
		{
			name:               "Get missing",
			method:             "GET",
			url:                "/getCategory/9",
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{Categories: stored} },
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Category not found",
			expectedRepoID:     9,
		},
		{
			name:               "Get with non-numeric id",
			method:             "GET",
			url:                "/getCategory/soups",
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{} },
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Invalid category id",
		},
		{
			name:               "Update existing",
			method:             "PUT",
			url:                "/updateCategory/3",
			requestBody:        `{"id":77,"name":"Hot soups"}`,
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{} },
			expectedStatusCode: http.StatusOK,
			expectedRepoID:     3,
		},
		{
			name:               "Update missing",
			method:             "PUT",
			url:                "/updateCategory/4",
			requestBody:        `{"name":"Hot soups"}`,
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{UpdateErr: models.ErrNotFound} },
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Category not found",
			expectedRepoID:     4,
		},
		{
			name:               "Delete existing",
			method:             "DELETE",
			url:                "/deleteCategory/3",
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{} },
			expectedStatusCode: http.StatusOK,
			expectedRepoID:     3,
		},
		{
			name:               "Delete with store failure",
			method:             "DELETE",
			url:                "/deleteCategory/3",
			mockRepoSetup:      func() *MockCategoryRepo { return &MockCategoryRepo{DeleteErr: errors.New("timeout")} },
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "failed to delete category",
			expectedRepoID:     3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := tc.mockRepoSetup()

			rec := serve(mockRepo, tc.method, tc.url, tc.requestBody)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.expectedRepoID, mockRepo.LastID)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeError(t, rec))
			}
		})
	}
}
