package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	localCache "github.com/Ebesoh-Adrian/ADForexPre/cache"
	"github.com/Ebesoh-Adrian/ADForexPre/customerrors"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
	"github.com/Ebesoh-Adrian/ADForexPre/repository"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService interface {
	CreateUser(ctx context.Context, request model.UserDto) (*model.User, error)
	GetUser(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, email string, userId int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userId int64, patch model.ProfilePatchDto) (*model.User, error)
}

type UserServiceImpl struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, request model.UserDto) (*model.User, error) {
	existing, err := s.FindUser(ctx, request.Email, 0)
	if err != nil && !errors.Is(err, customerrors.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, customerrors.ErrUserAlreadyExists
	}

	user, err := request.ToEntity(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to process user data: %w", err)
	}

	userId, err := s.repo.GetNextSequence(ctx, "userid")
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user.UserID = int64(userId)
	if err := s.repo.Insert(ctx, *user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser is the email lookup used on every login; results are cached
// and the entry is dropped whenever the profile changes.
func (s *UserServiceImpl) GetUser(ctx context.Context, email string) (*model.User, error) {
	if val, found := localCache.UserAuthCache.Get(email); found {
		if user, ok := val.(*model.User); ok {
			return user, nil
		}
	}

	user, err := s.FindUser(ctx, email, 0)
	if err != nil {
		return nil, err
	}

	localCache.UserAuthCache.Set(email, user, cache.DefaultExpiration)
	return user, nil
}

func (s *UserServiceImpl) FindUser(ctx context.Context, email string, userId int64) (*model.User, error) {
	var orFilters []bson.M

	if userId > 0 {
		orFilters = append(orFilters, bson.M{"_id": userId})
	} else if email != "" {
		orFilters = append(orFilters, bson.M{"email": email})
	}

	if len(orFilters) == 0 {
		return nil, customerrors.ErrUserNotFound
	}

	user, err := s.repo.FindOneByFilter(ctx, bson.M{"$or": orFilters})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile patches the account-currency and default-leverage
// preferences used to pre-fill the calculator.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userId int64, patch model.ProfilePatchDto) (*model.User, error) {
	fields := bson.M{}
	if patch.AccountCurrency != "" {
		fields["accountCurrency"] = patch.AccountCurrency
	}
	if patch.DefaultLeverage > 0 {
		fields["defaultLeverage"] = patch.DefaultLeverage
	}
	if len(fields) == 0 {
		return nil, errors.New("nothing to update")
	}

	return s.repo.PatchFields(ctx, userId, fields)
}
