package account

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
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

func newUpdateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.StaticUserMiddleware("user-1"))
	NewUpdateAccountHandler(op).Register(api)
	return api
}

func TestHTTP_UpdateAccount_EmptyBodyRejected(t *testing.T) {
	mockOp := new(mockProcessor)

	api := newUpdateTestAPI(t, mockOp)
	resp := api.Patch("/v1/account/"+uuid.Must(uuid.NewV4()).String(), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_UpdateAccount_InvalidID(t *testing.T) {
	mockOp := new(mockProcessor)

	api := newUpdateTestAPI(t, mockOp)
	resp := api.Patch("/v1/account/not-a-uuid", map[string]any{"name": "Checking"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_UpdateAccount_NotOwned(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(actions.ErrNotOwned)

	api := newUpdateTestAPI(t, mockOp)
	resp := api.Patch("/v1/account/"+uuid.Must(uuid.NewV4()).String(), map[string]any{"name": "Checking"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateAccount_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(action *actions.UpdateAccount) bool {
		return action.UserID == "user-1" &&
			action.AccountID == accountID &&
			action.Name != nil && *action.Name == "Checking" &&
			action.AccountType == nil &&
			action.IsLiability == nil
	})).Return(nil)

	api := newUpdateTestAPI(t, mockOp)
	resp := api.Patch("/v1/account/"+accountID.String(), map[string]any{"name": "Checking"})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateAccount_Unauthenticated(t *testing.T) {
	mockOp := new(mockProcessor)

	_, api := humatest.New(t)
	NewUpdateAccountHandler(mockOp).Register(api)
	resp := api.Patch("/v1/account/"+uuid.Must(uuid.NewV4()).String(), map[string]any{"name": "Checking"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
