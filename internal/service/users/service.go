package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
	userRepo "github.com/illapa-dev/TourOperatorService/internal/infra/storage/user"
	"github.com/illapa-dev/TourOperatorService/internal/service/users/models"
)

// Longitud mínima de contraseña para cuentas locales
const minPasswordLength = 8

// Service servicio para trabajar con usuarios
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService crea una nueva instancia del servicio de usuarios
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register registra un usuario nuevo. Las cuentas locales exigen
// contraseña y la guardan como hash bcrypt; las cuentas sociales
// no llevan contraseña.
func (s *Service) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	provider := domain.AuthProvider(req.AuthProvider)
	if req.AuthProvider == "" {
		provider = domain.ProviderLocal
	}

	if err := validateRegistration(req, provider); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         domain.RoleUser,
		AuthProvider: provider,
		Phone:        req.Phone,
		Country:      req.Country,
	}

	if provider == domain.ProviderLocal {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Register: failed to hash password for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
		}
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: duplicate email=%s", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d provider=%s", created.ID, provider)
	return models.FromDomainUser(created), nil
}

// Authenticate verifica las credenciales de una cuenta local.
// Devuelve el mismo error tanto para email desconocido como para
// contraseña incorrecta.
func (s *Service) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == nil {
		s.logger.Warn("Authenticate: user id=%d has no local credentials", user.ID)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: user id=%d logged in", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID obtiene un usuario por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainUser(user), nil
}

// GetDomainByID obtiene el usuario de dominio sin convertir. Lo usa el
// middleware de autorización para comprobar el rol.
func (s *Service) GetDomainByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, "GetDomainByID", id)
}

// List obtiene una página de usuarios
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error) {
	filter := domain.UsersFilter{
		Page:  req.Page,
		Limit: req.Limit,
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.UserListResponse{
		Data: models.FromDomainUserList(users),
		Meta: models.NewMeta(req.Page, req.Limit, total),
	}, nil
}

// Update actualiza el perfil de un usuario. El hash de contraseña y el
// proveedor de autenticación no se tocan por esta vía.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if !domain.IsValidRole(role) {
		s.logger.Warn("Update: invalid role=%s for user id=%d", req.Role, id)
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Role = role
	user.Phone = req.Phone
	user.Country = req.Country

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: duplicate email=%s for user id=%d", req.Email, id)
			return nil, ErrDuplicateEmail
		default:
			s.logger.Error("Update: repository error for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: updated user id=%d", id)
	return models.FromDomainUser(user), nil
}

// Delete elimina un usuario
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted user id=%d", id)
	return nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}

func validateRegistration(req *models.RegisterUserRequest, provider domain.AuthProvider) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	if !domain.IsValidAuthProvider(provider) {
		return fmt.Errorf("%w: unknown auth provider %q", ErrInvalidInput, provider)
	}

	if provider == domain.ProviderLocal && len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	return nil
}
