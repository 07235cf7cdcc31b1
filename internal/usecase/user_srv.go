package usecase

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/data/entity"
	"shareit/internal/data/repository"
	"shareit/internal/dto/request"
	"shareit/internal/dto/response"
	"shareit/pkg/apperror"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID int64) (*response.UserResponse, error)
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	user := &entity.User{Name: strings.TrimSpace(req.Name), Email: strings.TrimSpace(req.Email)}
	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			us.log.Warn("Email already registered", zap.String("email", user.Email))
			return nil, apperror.Conflict("Email %s is already registered", user.Email)
		}
		return nil, err
	}

	us.log.Info("User created", zap.Int64("user_id", user.ID))
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, userID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}

	if err := us.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			us.log.Warn("Email already registered", zap.String("email", user.Email), zap.Int64("user_id", userID))
			return nil, apperror.Conflict("Email %s is already registered", user.Email)
		}
		return nil, err
	}

	us.log.Info("User updated", zap.Int64("user_id", userID))
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.UserResponse, len(users))
	for i, u := range users {
		out[i] = response.UserToResponse(u)
	}
	return out, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID int64) error {
	deleted, err := us.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("User with id %d not found", userID)
	}

	us.log.Info("User deleted", zap.Int64("user_id", userID))
	return nil
}

func (us *userService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User with id %d not found", userID)
	}
	return user, nil
}
