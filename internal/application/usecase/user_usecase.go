package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de cuentas (listado, perfil, baja).
// El registro vive en el use case de auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con limit/offset (sin hashes).
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Update actualiza el perfil propio. Si viene password nuevo se re-hashea;
// is_admin no es modificable por esta vía. Retorna ErrUserNotFound si la
// cuenta no existe y ErrEmailAlreadyExists si el email nuevo está tomado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.PaymentInfo != nil {
		user.PaymentInfo = *in.PaymentInfo
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete da de baja la cuenta; sus líneas de carrito cascadean en la DB.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
