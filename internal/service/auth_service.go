package service

import (
	"context"
	"time"

	"secure-chat-be/internal/dto"
	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/pkg/apperrors"
	"secure-chat-be/internal/pkg/passwd"
	"secure-chat-be/internal/pkg/token"
	"secure-chat-be/internal/repository/specification"
	"secure-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	Refresh(claims *token.Claims) (*dto.TokenResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService *token.Service
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenService *token.Service) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.Internal("failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email is already in use")
	}

	hash, err := passwd.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperrors.Internal("failed to create account", err)
	}

	return &dto.RegisterResponse{
		Message: "Registration successful",
		UserId:  user.Id,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	// Same response for unknown email and wrong password, no oracle.
	if user == nil {
		return nil, apperrors.Unauthenticated("incorrect email or password")
	}

	if !passwd.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.Unauthenticated("incorrect email or password")
	}

	if !user.IsActive {
		return nil, apperrors.Unauthenticated("account has been disabled")
	}

	accessToken, err := s.tokenService.Issue(user.Id, user.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, time.Now()); err != nil {
		return nil, apperrors.Internal("failed to record login", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokenService.TTL().Seconds()),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperrors.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	return toUserResponse(user), nil
}

func (s *authService) Refresh(claims *token.Claims) (*dto.TokenResponse, error) {
	accessToken, err := s.tokenService.Refresh(claims)
	if err != nil {
		return nil, apperrors.Internal("failed to refresh token", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokenService.TTL().Seconds()),
	}, nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}
