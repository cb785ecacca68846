package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login. Registration creates an admin account
// (a tenant) together with its default settings record.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, settingsRepo: settingsRepo, jwtCfg: jwtCfg}
}

// Register creates an admin account: bcrypt-hashes the password, persists the
// user with AdminID equal to its own ID, and seeds default settings.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	id := uuid.New().String()
	user := &entity.User{
		ID:           id,
		AdminID:      id, // the admin is its own tenant scope
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	settings := entity.DefaultSettings(id)
	if in.PressName != "" {
		settings.PressName = in.PressName
	}
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password and returns a signed token plus the user.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.AdminID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:      u.ID,
		AdminID: u.AdminID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Status:  u.Status,
	}
}
