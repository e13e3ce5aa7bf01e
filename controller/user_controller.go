package controller

import (
	"context"
	"net/http"
	"time"

	localCache "github.com/Ebesoh-Adrian/ADForexPre/cache"
	"github.com/Ebesoh-Adrian/ADForexPre/database"
	"github.com/Ebesoh-Adrian/ADForexPre/middleware"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/service"
	"github.com/Ebesoh-Adrian/ADForexPre/validator"

	"github.com/Oudwins/zog"
	"github.com/danielgtaylor/huma/v2"
	"github.com/mitchellh/mapstructure"
)

type UserController struct {
	userSvc      service.UserService
	isProduction bool
}

func NewUserController(s service.UserService, isProduction bool) *UserController {
	return &UserController{userSvc: s, isProduction: isProduction}
}

func (ctrl *UserController) RegisterRoutes(api huma.API) {
	authMw := middleware.HumaAuthMiddleware(api, ctrl.isProduction)

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/api/user/profile",
		Summary:     "Update Trading Profile",
		Description: "Updates the account currency and default leverage used to pre-fill the calculator",
		Middlewares: huma.Middlewares{authMw},
		Security:    []map[string][]string{{"cookie": {}}},
		Tags:        []string{"User"},
	}, ctrl.updateProfile)
}

func (ctrl *UserController) updateProfile(ctx context.Context, input *model.Request) (*model.DefaultResponse, error) {
	var req model.ProfilePatchDto
	if err := mapstructure.Decode(input.Body, &req); err != nil {
		return nil, huma.Error400BadRequest("Invalid Request")
	}

	authUser, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	if authUser.UserID != req.UserID {
		return nil, huma.Error403Forbidden("Unauthorized to update this profile")
	}

	if issues := zog.Struct(validator.UserIdShape).Validate(&req); issues != nil {
		return nil, huma.Error400BadRequest("Invalid Request")
	}

	ctxt, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user, err := ctrl.userSvc.UpdateProfile(ctxt, req.UserID, req)
	if err != nil {
		return NewErrorResponse("Failed to update profile"), nil
	}

	localCache.UserAuthCache.Delete(user.Email)
	if database.RedisHelper != nil {
		database.RedisHelper.Delete(model.CacheKeyForUser(req.UserID))
	}

	return NewResponse(user.ToDto(), "Profile updated successfully"), nil
}
