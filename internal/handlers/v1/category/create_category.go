package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name         string `json:"name" required:"true" minLength:"1" doc:"Display name, unique per user (case-insensitive)"`
	CategoryType string `json:"categoryType" doc:"Advisory tag: expense or income"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a category.
type CreateCategoryResponseBody struct {
	ID string `json:"id" doc:"Category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a new category for the authenticated user.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated", err)
	}

	action := &actions.CreateCategory{
		UserID:       userID,
		Name:         input.Body.Name,
		CategoryType: input.Body.CategoryType,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if sqlconfig.IsUniqueViolation(err) {
			return nil, huma.NewError(http.StatusConflict, "category name already in use")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponseBody{ID: action.CreatedID.String()},
	}, nil
}
