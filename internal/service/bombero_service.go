package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/repository"
)

const (
	maxNombre      = 50
	maxDigitosRun  = 8
	maxDigitosFono = 9
)

// BomberoService handles validation and CRUD over bomberos, the cascading
// save of the embedded credencial (which itself cascades its rol) and
// credencial assignment.
type BomberoService struct {
	bomberos     repository.BomberoRepository
	credenciales repository.CredencialRepository
	credService  *CredencialService
}

// NewBomberoService constructs a BomberoService over the given
// repositories. The CredencialService performs the credencial cascade.
func NewBomberoService(bomberos repository.BomberoRepository, credenciales repository.CredencialRepository, credService *CredencialService) *BomberoService {
	return &BomberoService{bomberos: bomberos, credenciales: credenciales, credService: credService}
}

// FindAll returns every registered bombero with its credencial and rol.
func (s *BomberoService) FindAll(ctx context.Context) ([]model.Bombero, error) {
	out, err := s.bomberos.FindAll(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return out, nil
}

// FindByID returns the bombero with the given id.
func (s *BomberoService) FindByID(ctx context.Context, id int64) (*model.Bombero, error) {
	b, err := s.bomberos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound(fmt.Sprintf("No se encontró Bomberos con ID: %d", id))
		}
		return nil, Internal(err)
	}
	return b, nil
}

// Save persists a new bombero. The embedded credencial is cascade-saved
// first (cascading its rol in turn) and the stored credencial is attached
// back before the bombero itself is validated and written.
func (s *BomberoService) Save(ctx context.Context, b *model.Bombero) (*model.Bombero, error) {
	if b == nil {
		return nil, Invalid("El bombero no puede ser nulo")
	}

	cred, err := s.credService.Save(ctx, b.Credencial)
	if err != nil {
		return nil, err
	}

	if err := s.Validar(ctx, b); err != nil {
		return nil, err
	}

	b.Credencial = cred
	if err := s.bomberos.Save(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("Error: el correo de la credencial ya está en uso.")
		}
		return nil, Internal(err)
	}
	return b, nil
}

// Update applies a partial update to an existing bombero. Supplied fields
// are bound-checked; a supplied run or telefono must not appear anywhere
// in the table (the current row is not excluded, matching the stored
// behavior).
func (s *BomberoService) Update(ctx context.Context, in *model.BomberoUpdate, id int64) (*model.Bombero, error) {
	if in == nil {
		return nil, Invalid("El bombero no puede ser nulo")
	}

	antiguo, err := s.bomberos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Bombero no encontrado")
		}
		return nil, Internal(err)
	}

	if in.Nombre != nil {
		if len(*in.Nombre) > maxNombre {
			return nil, Invalid("El valor nombre excede máximo de caracteres (50)")
		}
		antiguo.Nombre = *in.Nombre
	}

	if in.Telefono != nil {
		exists, err := s.bomberos.ExistsByTelefono(ctx, *in.Telefono)
		if err != nil {
			return nil, Internal(err)
		}
		if exists {
			return nil, Conflict("El Telefono ya existe")
		}
		if len(strconv.Itoa(*in.Telefono)) > maxDigitosFono {
			return nil, Invalid("El valor telefono excede máximo de caracteres (9)")
		}
		antiguo.Telefono = *in.Telefono
	}

	if in.Run != nil {
		exists, err := s.bomberos.ExistsByRun(ctx, *in.Run)
		if err != nil {
			return nil, Internal(err)
		}
		if exists {
			return nil, Conflict("El RUN ya existe")
		}
		if len(strconv.Itoa(*in.Run)) > maxDigitosRun {
			return nil, Invalid("El valor RUN excede máximo de caracteres (8)")
		}
		antiguo.Run = *in.Run
	}

	if in.Dv != nil {
		if len(*in.Dv) != 1 {
			return nil, Invalid("El valor DV excede máximo de caracteres (1)")
		}
		antiguo.Dv = *in.Dv
	}

	if in.APaterno != nil {
		if len(*in.APaterno) > maxNombre {
			return nil, Invalid("El valor a_paterno excede máximo de caracteres (50)")
		}
		antiguo.APaterno = *in.APaterno
	}

	if in.AMaterno != nil {
		if len(*in.AMaterno) > maxNombre {
			return nil, Invalid("El valor a_materno excede máximo de caracteres (50)")
		}
		antiguo.AMaterno = *in.AMaterno
	}

	if in.FechaRegistro != nil {
		antiguo.FechaRegistro = *in.FechaRegistro
	}

	if err := s.bomberos.Save(ctx, antiguo); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflict("El RUN o Telefono ya existe")
		}
		return nil, Internal(err)
	}
	return antiguo, nil
}

// Delete removes the bombero with the given id. The referenced credencial
// is not cascaded.
func (s *BomberoService) Delete(ctx context.Context, id int64) error {
	exists, err := s.bomberos.ExistsByID(ctx, id)
	if err != nil {
		return Internal(err)
	}
	if !exists {
		return NotFound("Bombero no encontrado")
	}
	if err := s.bomberos.DeleteByID(ctx, id); err != nil {
		return Internal(err)
	}
	return nil
}

// Validar enforces all constraints on a prospective insert: positive run
// with at most 8 digits and unused, dv of exactly one character, required
// names of at most 50 characters each, positive telefono with at most 9
// digits and unused.
func (s *BomberoService) Validar(ctx context.Context, b *model.Bombero) error {
	if b == nil {
		return Invalid("El bombero es requerido")
	}

	if b.Run <= 0 {
		return Invalid("La Cantidad debe ser un número positivo")
	}
	if len(strconv.Itoa(b.Run)) > maxDigitosRun {
		return Invalid("El valor RUN excede máximo de caracteres (8)")
	}
	exists, err := s.bomberos.ExistsByRun(ctx, b.Run)
	if err != nil {
		return Internal(err)
	}
	if exists {
		return Conflict("El RUN ya existe")
	}

	if b.Dv == "" {
		return Invalid("El DV del bombero es requerido")
	}
	if len(b.Dv) != 1 {
		return Invalid("El valor DV excede máximo de caracteres (1)")
	}

	if b.Nombre == "" {
		return Invalid("El nombre del bombero es requerido")
	}
	if len(b.Nombre) > maxNombre {
		return Invalid("El valor nombre del bombero excede máximo de caracteres (50)")
	}

	if b.APaterno == "" {
		return Invalid("El apellido paterno del bombero es requerido")
	}
	if len(b.APaterno) > maxNombre {
		return Invalid("El valor apellido paterno del bombero excede máximo de caracteres (50)")
	}

	if b.AMaterno == "" {
		return Invalid("El apellido materno del bombero es requerido")
	}
	if len(b.AMaterno) > maxNombre {
		return Invalid("El valor apellido materno excede máximo de caracteres (50)")
	}

	if b.Telefono <= 0 {
		return Invalid("La Cantidad debe ser un número positivo")
	}
	if len(strconv.Itoa(b.Telefono)) > maxDigitosFono {
		return Invalid("El valor telefono excede máximo de caracteres (9)")
	}
	exists, err = s.bomberos.ExistsByTelefono(ctx, b.Telefono)
	if err != nil {
		return Internal(err)
	}
	if exists {
		return Conflict("El Telefono ya existe")
	}

	return nil
}

// AsignarCredencial attaches an existing credencial to an existing bombero.
func (s *BomberoService) AsignarCredencial(ctx context.Context, bomberoID, credencialID int64) error {
	b, err := s.bomberos.FindByID(ctx, bomberoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Bombero no encontrado")
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

	b.Credencial = cred
	if err := s.bomberos.Save(ctx, b); err != nil {
		return Internal(err)
	}
	return nil
}
