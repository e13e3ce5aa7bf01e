package controller

import (
	"context"
	"net/http"

	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/service"

	"github.com/danielgtaylor/huma/v2"
)

type MarketController struct {
	marketSvc service.MarketDataService
}

func NewMarketController(ms service.MarketDataService) *MarketController {
	return &MarketController{marketSvc: ms}
}

func (ctrl *MarketController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-market-snapshot",
		Method:      http.MethodGet,
		Path:        "/api/market/snapshot",
		Summary:     "Market Snapshot",
		Description: "Full instrument set with market status and server time",
		Tags:        []string{"Market"},
	}, ctrl.getSnapshot)

	huma.Register(api, huma.Operation{
		OperationID: "list-pairs",
		Method:      http.MethodGet,
		Path:        "/api/market/pairs",
		Summary:     "List Pairs",
		Description: "All instruments, optionally filtered by category",
		Tags:        []string{"Market"},
	}, ctrl.listPairs)

	huma.Register(api, huma.Operation{
		OperationID: "get-pair",
		Method:      http.MethodGet,
		Path:        "/api/market/pairs/{symbol}",
		Summary:     "Get Pair",
		Tags:        []string{"Market"},
	}, ctrl.getPair)

	huma.Register(api, huma.Operation{
		OperationID: "list-symbols",
		Method:      http.MethodGet,
		Path:        "/api/market/symbols",
		Summary:     "List Symbols",
		Tags:        []string{"Market"},
	}, ctrl.listSymbols)

	huma.Register(api, huma.Operation{
		OperationID: "trending-pairs",
		Method:      http.MethodGet,
		Path:        "/api/market/trending",
		Summary:     "Trending Pairs",
		Description: "Pairs ranked by absolute percentage change",
		Tags:        []string{"Market"},
	}, ctrl.trending)

	huma.Register(api, huma.Operation{
		OperationID: "market-sentiment",
		Method:      http.MethodGet,
		Path:        "/api/market/sentiment",
		Summary:     "Market Sentiment",
		Tags:        []string{"Market"},
	}, ctrl.sentiment)
}

func (ctrl *MarketController) getSnapshot(ctx context.Context, _ *struct{}) (*model.SnapshotResponse, error) {
	snapshot, err := ctrl.marketSvc.GetSnapshot(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to read market snapshot")
	}
	return &model.SnapshotResponse{Body: snapshot}, nil
}

func (ctrl *MarketController) listPairs(ctx context.Context, input *model.ListPairsInput) (*model.PairListResponse, error) {
	category := model.PairCategory(input.Category)
	if input.Category != "" && !category.Valid() {
		return nil, huma.Error400BadRequest("unknown category: " + input.Category)
	}

	return &model.PairListResponse{Body: ctrl.marketSvc.PairsByCategory(category)}, nil
}

func (ctrl *MarketController) getPair(ctx context.Context, input *model.GetPairInput) (*model.PairResponse, error) {
	pair, ok := ctrl.marketSvc.GetPair(input.Symbol)
	if !ok {
		return nil, huma.Error404NotFound("no instrument for symbol: " + input.Symbol)
	}
	return &model.PairResponse{Body: *pair}, nil
}

func (ctrl *MarketController) listSymbols(ctx context.Context, _ *struct{}) (*model.SymbolListResponse, error) {
	return &model.SymbolListResponse{Body: ctrl.marketSvc.ListSymbols()}, nil
}

func (ctrl *MarketController) trending(ctx context.Context, input *model.TrendingInput) (*model.PairListResponse, error) {
	return &model.PairListResponse{Body: ctrl.marketSvc.Trending(input.Limit)}, nil
}

func (ctrl *MarketController) sentiment(ctx context.Context, _ *struct{}) (*model.SentimentResponse, error) {
	return &model.SentimentResponse{Body: ctrl.marketSvc.Sentiment()}, nil
}
