package service

import (
	"context"
	"sort"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/repository"
)

// In-memory repositories backing the service tests. They enforce the same
// unique keys as the MySQL schema (correo, run, telefono) by returning
// repository.ErrDuplicate, so conflict paths behave like the real store.

type fakeRolRepo struct {
	nextID int64
	roles  map[int64]model.Rol
}

func newFakeRolRepo() *fakeRolRepo {
	return &fakeRolRepo{roles: make(map[int64]model.Rol)}
}

func (f *fakeRolRepo) FindAll(ctx context.Context) ([]model.Rol, error) {
	out := make([]model.Rol, 0, len(f.roles))
	for _, rol := range f.roles {
		out = append(out, rol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRolRepo) FindByID(ctx context.Context, id int64) (*model.Rol, error) {
	rol, ok := f.roles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rol, nil
}

func (f *fakeRolRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.roles[id]
	return ok, nil
}

func (f *fakeRolRepo) Save(ctx context.Context, rol *model.Rol) error {
	if rol.ID == 0 {
		f.nextID++
		rol.ID = f.nextID
	}
	f.roles[rol.ID] = *rol
	return nil
}

func (f *fakeRolRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := f.roles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.roles, id)
	return nil
}

type fakeCredencialRepo struct {
	nextID       int64
	credenciales map[int64]model.Credencial
}

func newFakeCredencialRepo() *fakeCredencialRepo {
	return &fakeCredencialRepo{credenciales: make(map[int64]model.Credencial)}
}

func (f *fakeCredencialRepo) FindAll(ctx context.Context) ([]model.Credencial, error) {
	out := make([]model.Credencial, 0, len(f.credenciales))
	for _, c := range f.credenciales {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCredencialRepo) FindByID(ctx context.Context, id int64) (*model.Credencial, error) {
	c, ok := f.credenciales[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCredencialRepo) FindByCorreo(ctx context.Context, correo string) (*model.Credencial, error) {
	for _, c := range f.credenciales {
		if c.Correo == correo {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCredencialRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.credenciales[id]
	return ok, nil
}

func (f *fakeCredencialRepo) ExistsByCorreo(ctx context.Context, correo string) (bool, error) {
	for _, c := range f.credenciales {
		if c.Correo == correo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCredencialRepo) Save(ctx context.Context, cred *model.Credencial) error {
	for id, c := range f.credenciales {
		if id != cred.ID && c.Correo == cred.Correo {
			return repository.ErrDuplicate
		}
	}
	if cred.ID == 0 {
		f.nextID++
		cred.ID = f.nextID
	}
	f.credenciales[cred.ID] = *cred
	return nil
}

func (f *fakeCredencialRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := f.credenciales[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.credenciales, id)
	return nil
}

type fakeBomberoRepo struct {
	nextID   int64
	bomberos map[int64]model.Bombero
}

func newFakeBomberoRepo() *fakeBomberoRepo {
	return &fakeBomberoRepo{bomberos: make(map[int64]model.Bombero)}
}

func (f *fakeBomberoRepo) FindAll(ctx context.Context) ([]model.Bombero, error) {
	out := make([]model.Bombero, 0, len(f.bomberos))
	for _, b := range f.bomberos {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBomberoRepo) FindByID(ctx context.Context, id int64) (*model.Bombero, error) {
	b, ok := f.bomberos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBomberoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.bomberos[id]
	return ok, nil
}

func (f *fakeBomberoRepo) ExistsByRun(ctx context.Context, run int) (bool, error) {
	for _, b := range f.bomberos {
		if b.Run == run {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBomberoRepo) ExistsByTelefono(ctx context.Context, telefono int) (bool, error) {
	for _, b := range f.bomberos {
		if b.Telefono == telefono {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBomberoRepo) Save(ctx context.Context, b *model.Bombero) error {
	for id, other := range f.bomberos {
		if id != b.ID && (other.Run == b.Run || other.Telefono == b.Telefono) {
			return repository.ErrDuplicate
		}
	}
	if b.ID == 0 {
		f.nextID++
		b.ID = f.nextID
	}
	f.bomberos[b.ID] = *b
	return nil
}

func (f *fakeBomberoRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := f.bomberos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bomberos, id)
	return nil
}
