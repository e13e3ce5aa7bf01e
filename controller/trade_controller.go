package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/middleware"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/service"

	"github.com/danielgtaylor/huma/v2"
)

type TradeController struct {
	tradeSvc     service.TradeService
	isProduction bool
}

func NewTradeController(ts service.TradeService, isProduction bool) *TradeController {
	return &TradeController{tradeSvc: ts, isProduction: isProduction}
}

func (ctrl *TradeController) RegisterRoutes(api huma.API) {
	authMw := middleware.HumaAuthMiddleware(api, ctrl.isProduction)

	huma.Register(api, huma.Operation{
		OperationID: "calculate-trade",
		Method:      http.MethodPost,
		Path:        "/api/trades/calculate",
		Summary:     "Calculate Trade",
		Description: "Position sizing for the given parameters against the live quote",
		Tags:        []string{"Trades"},
	}, ctrl.calculate)

	huma.Register(api, huma.Operation{
		OperationID: "save-trade-setup",
		Method:      http.MethodPost,
		Path:        "/api/trades/setups",
		Summary:     "Save Trade Setup",
		Middlewares: huma.Middlewares{authMw},
		Security:    []map[string][]string{{"cookie": {}}},
		Tags:        []string{"Trades"},
	}, ctrl.saveSetup)

	huma.Register(api, huma.Operation{
		OperationID: "list-trade-setups",
		Method:      http.MethodGet,
		Path:        "/api/trades/setups",
		Summary:     "List Trade Setups",
		Middlewares: huma.Middlewares{authMw},
		Security:    []map[string][]string{{"cookie": {}}},
		Tags:        []string{"Trades"},
	}, ctrl.listSetups)

	huma.Register(api, huma.Operation{
		OperationID: "delete-trade-setup",
		Method:      http.MethodDelete,
		Path:        "/api/trades/setups/{id}",
		Summary:     "Delete Trade Setup",
		Middlewares: huma.Middlewares{authMw},
		Security:    []map[string][]string{{"cookie": {}}},
		Tags:        []string{"Trades"},
	}, ctrl.deleteSetup)
}

func (ctrl *TradeController) calculate(ctx context.Context, input *model.CalculateTradeRequest) (*model.CalculationResponse, error) {
	calc, err := ctrl.tradeSvc.Calculate(ctx, input.Body)
	if err != nil {
		return nil, tradeError(err)
	}
	return &model.CalculationResponse{Body: model.CalculationResult{
		Calculation: calc,
		Display:     calc.Display(input.Body.AccountCurrency),
	}}, nil
}

func (ctrl *TradeController) saveSetup(ctx context.Context, input *model.SaveSetupRequest) (*model.SetupResponse, error) {
	user, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	setup, err := ctrl.tradeSvc.SaveSetup(ctx, user.UserID, input.Body)
	if err != nil {
		return nil, tradeError(err)
	}
	return &model.SetupResponse{Body: *setup}, nil
}

func (ctrl *TradeController) listSetups(ctx context.Context, _ *struct{}) (*model.SetupListResponse, error) {
	user, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	setups, err := ctrl.tradeSvc.ListSetups(ctx, user.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load trade setups")
	}
	return &model.SetupListResponse{Body: setups}, nil
}

func (ctrl *TradeController) deleteSetup(ctx context.Context, input *model.DeleteSetupInput) (*model.DefaultResponse, error) {
	user, err := sessionUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctrl.tradeSvc.DeleteSetup(ctx, user.UserID, input.ID); err != nil {
		if errors.Is(err, customerrors.ErrSetupNotFound) {
			return nil, huma.Error404NotFound("trade setup not found")
		}
		return nil, huma.Error500InternalServerError("failed to delete trade setup")
	}

	return NewResponse(nil, "Trade setup deleted"), nil
}

func sessionUser(ctx context.Context) (model.UserDto, error) {
	val := ctx.Value("user")
	if val == nil {
		return model.UserDto{}, huma.Error401Unauthorized("User session not found")
	}
	user, ok := val.(model.UserDto)
	if !ok {
		return model.UserDto{}, huma.Error401Unauthorized("User session not found")
	}
	return user, nil
}

func tradeError(err error) error {
	switch {
	case errors.Is(err, customerrors.ErrUnknownSymbol):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, customerrors.ErrInvalidTradeInput):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("trade calculation failed")
	}
}
