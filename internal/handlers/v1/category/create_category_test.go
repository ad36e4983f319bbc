package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.StaticUserMiddleware("user-1"))
	NewCreateCategoryHandler(op).Register(api)
	return api
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	createdID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action *actions.CreateCategory) bool {
		return action.UserID == "user-1" && action.Name == "Food"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateCategory).CreatedID = createdID
	}).Return(nil)

	api := newCreateTestAPI(t, mockOp)
	resp := api.Post("/v1/category", map[string]any{"name": "Food", "categoryType": "expense"})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body CreateCategoryResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, createdID.String(), body.ID)
}

func TestHTTP_CreateCategory_DuplicateNameConflict(t *testing.T) {
	uniqueErr := fmt.Errorf("inserting category: %w", &pq.Error{Code: "23505"})

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(uniqueErr)

	api := newCreateTestAPI(t, mockOp)
	resp := api.Post("/v1/category", map[string]any{"name": "Food"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_CreateCategory_StorageError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	api := newCreateTestAPI(t, mockOp)
	resp := api.Post("/v1/category", map[string]any{"name": "Food"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_CreateCategory_Unauthenticated(t *testing.T) {
	mockOp := new(mockProcessor)

	_, api := humatest.New(t)
	NewCreateCategoryHandler(mockOp).Register(api)
	resp := api.Post("/v1/category", map[string]any{"name": "Food"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
