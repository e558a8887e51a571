package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/repository"
)

const (
	maxContrasenia = 16
	maxCorreo      = 80
)

// CredencialService handles validation and CRUD over credenciales, the
// cascading save of the embedded rol, rol assignment and the login check
// with failed-attempt tracking.
type CredencialService struct {
	credenciales repository.CredencialRepository
	roles        repository.RolRepository
	rolService   *RolService
}

// NewCredencialService constructs a CredencialService over the given
// repositories. The RolService performs the rol cascade and validation.
func NewCredencialService(credenciales repository.CredencialRepository, roles repository.RolRepository, rolService *RolService) *CredencialService {
	return &CredencialService{credenciales: credenciales, roles: roles, rolService: rolService}
}

// FindAll returns every registered credencial with its rol.
func (s *CredencialService) FindAll(ctx context.Context) ([]model.Credencial, error) {
	out, err := s.credenciales.FindAll(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

// FindByID returns the credencial with the given id.
func (s *CredencialService) FindByID(ctx context.Context, id int64) (*model.Credencial, error) {
	cred, err := s.credenciales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound(fmt.Sprintf("No se encontró Credencial con ID: %d", id))
		}
		return nil, Internal(err)
	}
	return cred, nil
}

// Save persists a new credencial. The embedded rol is cascade-saved first
// and the stored rol (with its generated id) is attached back before the
// credencial itself is validated and written. A duplicate correo surfaces
// as a conflict.
func (s *CredencialService) Save(ctx context.Context, cred *model.Credencial) (*model.Credencial, error) {
	if cred == nil {
		return nil, Invalid("La credencial no puede ser nula")
	}

	rol, err := s.rolService.Save(ctx, cred.Rol)
	if err != nil {
		return nil, err
	}
	cred.Rol = rol

	if err := s.Validar(cred); err != nil {
		return nil, err
	}

	if err := s.credenciales.Save(ctx, cred); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("El correo ya está en uso. Por favor, use otro.")
		}
		return nil, Internal(err)
	}
	return cred, nil
}

// Update applies a partial update to an existing credencial. Supplied
// fields are bound-checked; a supplied correo must not appear anywhere in
// the table (the current row is not excluded, matching the stored
// behavior). Activo is always overwritten with the supplied value.
func (s *CredencialService) Update(ctx context.Context, in *model.CredencialUpdate, id int64) (*model.Credencial, error) {
	if in == nil {
		return nil, Invalid("El Credencial no puede ser nulo")
	}

	antigua, err := s.credenciales.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Credencial no encontrada")
		}
		return nil, Internal(err)
	}

	if in.Contrasenia != nil {
		if len(*in.Contrasenia) > maxContrasenia {
			return nil, Invalid("El valor contrasenia excede máximo de caracteres (16)")
		}
		antigua.Contrasenia = *in.Contrasenia
	}

	if in.Correo != nil {
		exists, err := s.credenciales.ExistsByCorreo(ctx, *in.Correo)
		if err != nil {
			return nil, Internal(err)
		}
		if exists {
			return nil, Conflict("El Correo ya existe")
		}
		if len(*in.Correo) > maxCorreo {
			return nil, Invalid("El valor correo excede máximo de caracteres (80)")
		}
		antigua.Correo = *in.Correo
	}

	antigua.Activo = in.Activo

	if err := s.credenciales.Save(ctx, antigua); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("El Correo ya existe")
		}
		return nil, Internal(err)
	}
	return antigua, nil
}

// Delete removes the credencial with the given id. The referenced rol is
// not cascaded.
func (s *CredencialService) Delete(ctx context.Context, id int64) error {
	exists, err := s.credenciales.ExistsByID(ctx, id)
	if err != nil {
		return Internal(err)
	}
	if !exists {
		return NotFound("Credencial no encontrada")
	}
	if err := s.credenciales.DeleteByID(ctx, id); err != nil {
		return Internal(err)
	}
	return nil
}

// Validar checks the shape of a credencial, including its embedded rol.
func (s *CredencialService) Validar(cred *model.Credencial) error {
	if cred == nil {
		return Invalid("La credencial es requerida")
	}
	if cred.Contrasenia == "" {
		return Invalid("La Contrasenia del ciudadano es requerido")
	}
	if len(cred.Contrasenia) > maxContrasenia {
		return Invalid("El valor Contrasenia excede máximo de caracteres (16)")
	}
	if cred.Correo == "" {
		return Invalid("El Correo es requerido")
	}
	if len(cred.Correo) > maxCorreo {
		return Invalid("El valor de Correo excede máximo de caracteres (80)")
	}
	if cred.IntentosFallidos < 0 {
		return Invalid("La Cantidad debe ser un número positivo")
	}
	return s.rolService.Validar(cred.Rol)
}

// VerificarCredenciales checks a login attempt. An unknown correo yields
// false with no side effects. A matching contrasenia yields true and does
// not touch the failed counter (it is never reset). A mismatch increments
// intentos_fallidos, persists it and yields false. The returned error is
// non-nil only on a persistence failure.
func (s *CredencialService) VerificarCredenciales(ctx context.Context, correo, contrasenia string) (bool, error) {
	cred, err := s.credenciales.FindByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, Internal(err)
	}

	if contrasenia == cred.Contrasenia {
		return true, nil
	}

	cred.IntentosFallidos++
	if err := s.credenciales.Save(ctx, cred); err != nil {
		return false, Internal(err)
	}
	return false, nil
}

// AsignarRol attaches an existing rol to an existing credencial.
func (s *CredencialService) AsignarRol(ctx context.Context, credencialID, rolID int64) error {
	rol, err := s.roles.FindByID(ctx, rolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Rol no encontrado")
		}
		return Internal(err)
	}

	cred, err := s.credenciales.FindByID(ctx, credencialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Credencial no encontrada")
		}
		return Internal(err)
	}

	cred.Rol = rol
	if err := s.credenciales.Save(ctx, cred); err != nil {
		return Internal(err)
	}
	return nil
}
