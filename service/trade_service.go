package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	localCache "github.com/Ebesoh-Adrian/ADForexPre/cache"
	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/engine"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/validator"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TradeSetupRepository is the persistence port for saved setups; the
// mongo implementation lives in the repository package and tests swap
// in a mock.
type TradeSetupRepository interface {
	Insert(ctx context.Context, setup model.TradeSetup) (*model.TradeSetup, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.TradeSetup, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID, userID int64) (int64, error)
}

type TradeService interface {
	Calculate(ctx context.Context, params model.TradeParameters) (model.TradeCalculation, error)
	SaveSetup(ctx context.Context, userID int64, params model.TradeParameters) (*model.TradeSetup, error)
	ListSetups(ctx context.Context, userID int64) ([]model.TradeSetup, error)
	DeleteSetup(ctx context.Context, userID int64, id string) error
}

type TradeServiceImpl struct {
	repo   TradeSetupRepository
	market MarketDataService
	now    func() time.Time
}

func NewTradeService(repo TradeSetupRepository, market MarketDataService) TradeService {
	return &TradeServiceImpl{
		repo:   repo,
		market: market,
		now:    time.Now,
	}
}

// Calculate validates the parameters, resolves the live quote and runs
// the sizing pipeline. The instrument must exist in the current feed.
func (s *TradeServiceImpl) Calculate(ctx context.Context, params model.TradeParameters) (model.TradeCalculation, error) {
	if issues := validator.TradeParamsSchema.Validate(&params); issues != nil {
		return model.TradeCalculation{}, fmt.Errorf("%w: %v", customerrors.ErrInvalidTradeInput, issues)
	}

	pair, ok := s.market.GetPair(params.Symbol)
	if !ok {
		return model.TradeCalculation{}, customerrors.ErrUnknownSymbol
	}

	return engine.TradeDetails(params, *pair)
}

// SaveSetup recomputes the calculation against the current quote and
// persists a new immutable record for the user.
func (s *TradeServiceImpl) SaveSetup(ctx context.Context, userID int64, params model.TradeParameters) (*model.TradeSetup, error) {
	calc, err := s.Calculate(ctx, params)
	if err != nil {
		return nil, err
	}

	setup := model.TradeSetup{
		UserID:      userID,
		Parameters:  params,
		Calculation: calc,
		CreatedAt:   s.now(),
	}

	saved, err := s.repo.Insert(ctx, setup)
	if err != nil {
		return nil, err
	}

	localCache.TradeSetupCache.Delete(setupCacheKey(userID))

	return saved, nil
}

// ListSetups returns the user's saved setups, newest first. Results are
// cached briefly; the cache is invalidated on every save and delete.
func (s *TradeServiceImpl) ListSetups(ctx context.Context, userID int64) ([]model.TradeSetup, error) {
	key := setupCacheKey(userID)

	if val, found := localCache.TradeSetupCache.Get(key); found {
		cached := val.([]model.TradeSetup)
		var out []model.TradeSetup
		if err := copier.Copy(&out, &cached); err == nil {
			return out, nil
		}
	}

	setups, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	localCache.TradeSetupCache.Set(key, setups, cache.DefaultExpiration)

	return setups, nil
}

// DeleteSetup removes exactly one setup owned by the user.
func (s *TradeServiceImpl) DeleteSetup(ctx context.Context, userID int64, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: malformed id", customerrors.ErrSetupNotFound)
	}

	deleted, err := s.repo.DeleteByID(ctx, objectID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return customerrors.ErrSetupNotFound
	}

	localCache.TradeSetupCache.Delete(setupCacheKey(userID))

	return nil
}

func setupCacheKey(userID int64) string {
	return "setups_" + strconv.FormatInt(userID, 10)
}
