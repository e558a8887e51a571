package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/repository"
)

const maxNombreRol = 50

// RolService handles validation and CRUD over roles. It is also used by
// CredencialService to cascade-save the rol embedded in a credencial.
type RolService struct {
	roles repository.RolRepository
}

// NewRolService constructs a RolService over the given repository.
func NewRolService(roles repository.RolRepository) *RolService {
	return &RolService{roles: roles}
}

// FindAll returns every registered rol.
func (s *RolService) FindAll(ctx context.Context) ([]model.Rol, error) {
	out, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

// FindByID returns the rol with the given id.
func (s *RolService) FindByID(ctx context.Context, id int64) (*model.Rol, error) {
	rol, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound(fmt.Sprintf("No se encontró rol con ID: %d", id))
		}
		return nil, Internal(err)
	}
	return rol, nil
}

// Save validates and persists a new rol, filling in the generated id.
func (s *RolService) Save(ctx context.Context, rol *model.Rol) (*model.Rol, error) {
	if err := s.Validar(rol); err != nil {
		return nil, err
	}
	if err := s.roles.Save(ctx, rol); err != nil {
		return nil, Internal(err)
	}
	return rol, nil
}

// Update writes a new nombre on an existing rol. The nombre is mandatory.
func (s *RolService) Update(ctx context.Context, in *model.RolUpdate, id int64) (*model.Rol, error) {
	if in == nil {
		return nil, Invalid("El rol no puede ser nulo")
	}

	antiguo, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Rol no encontrada")
		}
		return nil, Internal(err)
	}

	if in.Nombre == "" {
		return nil, Invalid("El Nombre no puede ser nulo")
	}
	if len(in.Nombre) > maxNombreRol {
		return nil, Invalid("El Nombre no puede exceder los 50 caracteres")
	}

	antiguo.Nombre = in.Nombre
	if err := s.roles.Save(ctx, antiguo); err != nil {
		return nil, Internal(err)
	}
	return antiguo, nil
}

// Delete removes the rol with the given id.
func (s *RolService) Delete(ctx context.Context, id int64) error {
	exists, err := s.roles.ExistsByID(ctx, id)
	if err != nil {
		return Internal(err)
	}
	if !exists {
		return NotFound("Rol no encontrada")
	}
	if err := s.roles.DeleteByID(ctx, id); err != nil {
		return Internal(err)
	}
	return nil
}

// Validar checks the shape of a rol without touching the store. It is
// reused by the credencial cascade so an embedded rol obeys the same rules.
func (s *RolService) Validar(rol *model.Rol) error {
	if rol == nil {
		return Invalid("El rol es requerido")
	}
	if rol.Nombre == "" {
		return Invalid("El nombre del rol es requerido")
	}
	if len(rol.Nombre) > maxNombreRol {
		return Invalid("El valor nombre del rol excede máximo de caracteres (50)")
	}
	return nil
}
