package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength longitud mínima de contraseña.
const minPasswordLength = 6

// UserUseCase CRUD de usuarios con borrado lógico. Siempre debe quedar al
// menos un ADMINISTRADOR activo: la desactivación del último se rechaza.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create crea un usuario: valida rol y contraseña, verifica email único entre
// activos y persiste el hash bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetActiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Lifecycle:    entity.NewActiveLifecycle(),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario activo por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.activeByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update actualiza nombre, email, rol y opcionalmente la contraseña.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.activeByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.userRepo.GetActiveByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		if len(*in.Password) < minPasswordLength {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		role, ok := entity.ParseRole(*in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		// Degradar al último administrador activo lo dejaría sin reemplazo.
		if user.Role == entity.RoleAdministrator && role != entity.RoleAdministrator {
			admins, err := uc.userRepo.CountActiveByRole(entity.RoleAdministrator)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, domain.ErrLastAdministrator
			}
		}
		user.Role = role
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios activos o inactivos.
func (uc *UserUseCase) List(active bool) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete borrado lógico. El único ADMINISTRADOR activo no puede eliminarse.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.activeByID(id)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleAdministrator {
		admins, err := uc.userRepo.CountActiveByRole(entity.RoleAdministrator)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdministrator
		}
	}
	user.Deactivate(time.Now())
	return uc.userRepo.Update(user)
}

// Restore reactiva un usuario eliminado lógicamente y limpia su fecha de borrado.
func (uc *UserUseCase) Restore(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.IsActive() {
		return domain.ErrAlreadyActive
	}
	// El email debe seguir siendo único entre activos al restaurar.
	other, err := uc.userRepo.GetActiveByEmail(user.Email)
	if err != nil {
		return err
	}
	if other != nil {
		return domain.ErrEmailAlreadyExists
	}
	user.Restore()
	return uc.userRepo.Update(user)
}

func (uc *UserUseCase) activeByID(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive() {
		return nil, domain.ErrEntityInactive
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt,
		DeletedAt: u.DeletedAt,
	}
}
