package handlers

import (
	"context"
	"errors"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	db          *gorm.DB
	authHandler *auth.AuthHandler
}

func NewUserHandler(db *gorm.DB, authHandler *auth.AuthHandler) *UserHandler {
	return &UserHandler{db: db, authHandler: authHandler}
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

type ListUsersInput struct {
	auth.AuthInput
}

type ListUsersOutput struct {
	Body []UserSummary
}

func (h *UserHandler) HandleListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	if _, err := h.authHandler.AuthorizeStaff(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	var users []models.User
	if err := h.db.WithContext(ctx).Order("username asc").Find(&users).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users")
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Avatar:   u.Avatar,
			Role:     u.Role,
		})
	}
	return &ListUsersOutput{Body: summaries}, nil
}

type SetRoleInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Role string `json:"role" doc:"admin, staff or user" required:"true"`
	}
}

type SetRoleOutput struct {
	Body UserSummary
}

// HandleSetRole changes a user's role. Only admins may do this, and an
// admin cannot demote themself, so the system never ends up without one.
func (h *UserHandler) HandleSetRole(ctx context.Context, input *SetRoleInput) (*SetRoleOutput, error) {
	admin, err := h.authHandler.AuthorizeAdmin(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	role := input.Body.Role
	if role != models.RoleAdmin && role != models.RoleStaff && role != models.RoleUser {
		return nil, huma.Error400BadRequest("Role must be admin, staff or user")
	}

	if admin.ID == input.ID && role != models.RoleAdmin {
		return nil, huma.Error400BadRequest("Cannot remove your own admin role")
	}

	var user models.User
	if err := h.db.WithContext(ctx).First(&user, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load user")
	}

	user.Role = role
	if err := h.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update user")
	}

	res := &SetRoleOutput{}
	res.Body = UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Role:     user.Role,
	}
	return res, nil
}
