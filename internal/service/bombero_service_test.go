package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
)

func newBomberoFixture() (*BomberoService, *fakeBomberoRepo, *fakeCredencialRepo, *fakeRolRepo) {
	rolRepo := newFakeRolRepo()
	credRepo := newFakeCredencialRepo()
	bomberoRepo := newFakeBomberoRepo()
	rolService := NewRolService(rolRepo)
	credService := NewCredencialService(credRepo, rolRepo, rolService)
	return NewBomberoService(bomberoRepo, credRepo, credService), bomberoRepo, credRepo, rolRepo
}

func validBombero() *model.Bombero {
	return &model.Bombero{
		Run:           12345678,
		Dv:            "5",
		Nombre:        "Juan",
		APaterno:      "Pérez",
		AMaterno:      "González",
		FechaRegistro: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Telefono:      987654321,
		Credencial: &model.Credencial{
			Correo:      "juan@x.cl",
			Contrasenia: "secret",
			Activo:      true,
			Rol:         &model.Rol{Nombre: "Operador"},
		},
	}
}

func TestBomberoServiceSaveCascades(t *testing.T) {
	svc, bomberoRepo, credRepo, rolRepo := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	require.NotNil(t, b.Credencial)
	assert.NotZero(t, b.Credencial.ID)
	require.NotNil(t, b.Credencial.Rol)
	assert.NotZero(t, b.Credencial.Rol.ID)

	// one rol, one credencial and one bombero exist, linked by ids
	roles, _ := rolRepo.FindAll(ctx)
	credenciales, _ := credRepo.FindAll(ctx)
	bomberos, _ := bomberoRepo.FindAll(ctx)
	require.Len(t, roles, 1)
	require.Len(t, credenciales, 1)
	require.Len(t, bomberos, 1)
	assert.Equal(t, roles[0].ID, credenciales[0].Rol.ID)
	assert.Equal(t, credenciales[0].ID, bomberos[0].Credencial.ID)
}

func TestBomberoServiceSaveWithoutCredencial(t *testing.T) {
	svc, _, _, _ := newBomberoFixture()

	b := validBombero()
	b.Credencial = nil
	_, err := svc.Save(context.Background(), b)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestBomberoServiceSaveInvalidCredencialStopsCascade(t *testing.T) {
	svc, bomberoRepo, _, _ := newBomberoFixture()
	ctx := context.Background()

	b := validBombero()
	b.Credencial.Contrasenia = strings.Repeat("p", 17)
	_, err := svc.Save(ctx, b)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))

	bomberos, _ := bomberoRepo.FindAll(ctx)
	assert.Empty(t, bomberos)
}

func TestBomberoServiceValidar(t *testing.T) {
	svc, _, _, _ := newBomberoFixture()
	ctx := context.Background()

	check := func(mutate func(*model.Bombero), wantKind Kind, wantMsg string) {
		t.Helper()
		b := validBombero()
		mutate(b)
		err := svc.Validar(ctx, b)
		require.Error(t, err)
		assert.Equal(t, wantKind, KindOf(err))
		if wantMsg != "" {
			assert.EqualError(t, err, wantMsg)
		}
	}

	assert.NoError(t, svc.Validar(ctx, validBombero()))

	check(func(b *model.Bombero) { b.Run = 0 }, KindInvalid, "La Cantidad debe ser un número positivo")
	check(func(b *model.Bombero) { b.Run = -5 }, KindInvalid, "")
	check(func(b *model.Bombero) { b.Run = 123456789 }, KindInvalid, "El valor RUN excede máximo de caracteres (8)")
	check(func(b *model.Bombero) { b.Dv = "" }, KindInvalid, "El DV del bombero es requerido")
	check(func(b *model.Bombero) { b.Dv = "55" }, KindInvalid, "El valor DV excede máximo de caracteres (1)")
	check(func(b *model.Bombero) { b.Nombre = "" }, KindInvalid, "El nombre del bombero es requerido")
	check(func(b *model.Bombero) { b.Nombre = strings.Repeat("a", 51) }, KindInvalid, "")
	check(func(b *model.Bombero) { b.APaterno = "" }, KindInvalid, "")
	check(func(b *model.Bombero) { b.AMaterno = strings.Repeat("a", 51) }, KindInvalid, "")
	check(func(b *model.Bombero) { b.Telefono = 0 }, KindInvalid, "")
	check(func(b *model.Bombero) { b.Telefono = 1234567890 }, KindInvalid, "El valor telefono excede máximo de caracteres (9)")

	// boundary lengths pass
	b := validBombero()
	b.Run = 99999999
	b.Telefono = 999999999
	b.Nombre = strings.Repeat("a", 50)
	assert.NoError(t, svc.Validar(ctx, b))
}

func TestBomberoServiceValidarUniqueness(t *testing.T) {
	svc, _, _, _ := newBomberoFixture()
	ctx := context.Background()

	_, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	b := validBombero()
	b.Telefono = 111111111
	b.Credencial.Correo = "otro@x.cl"
	err = svc.Validar(ctx, b)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "El RUN ya existe")

	b = validBombero()
	b.Run = 11111111
	b.Credencial.Correo = "otro@x.cl"
	err = svc.Validar(ctx, b)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "El Telefono ya existe")
}

func TestBomberoServiceUpdatePartial(t *testing.T) {
	svc, bomberoRepo, _, _ := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	nombre := "Pedro"
	updated, err := svc.Update(ctx, &model.BomberoUpdate{Nombre: &nombre}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro", updated.Nombre)
	// everything else keeps its stored value
	assert.Equal(t, 12345678, updated.Run)
	assert.Equal(t, "5", updated.Dv)
	assert.Equal(t, "Pérez", updated.APaterno)
	assert.Equal(t, 987654321, updated.Telefono)

	stored, err := bomberoRepo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro", stored.Nombre)
}

func TestBomberoServiceUpdateBoundsAndCollision(t *testing.T) {
	svc, _, _, _ := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	// the uniqueness check covers the whole table, so re-submitting the
	// bombero's own run is rejected
	mismoRun := 12345678
	_, err = svc.Update(ctx, &model.BomberoUpdate{Run: &mismoRun}, b.ID)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.EqualError(t, err, "El RUN ya existe")

	runLargo := 123456789
	_, err = svc.Update(ctx, &model.BomberoUpdate{Run: &runLargo}, b.ID)
	assert.Equal(t, KindInvalid, KindOf(err))

	fonoLargo := 1234567890
	_, err = svc.Update(ctx, &model.BomberoUpdate{Telefono: &fonoLargo}, b.ID)
	assert.Equal(t, KindInvalid, KindOf(err))

	dvLargo := "KK"
	_, err = svc.Update(ctx, &model.BomberoUpdate{Dv: &dvLargo}, b.ID)
	assert.Equal(t, KindInvalid, KindOf(err))

	_, err = svc.Update(ctx, &model.BomberoUpdate{}, 404)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "Bombero no encontrado")

	_, err = svc.Update(ctx, nil, b.ID)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestBomberoServiceUpdateFechaRegistro(t *testing.T) {
	svc, _, _, _ := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	nueva := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, &model.BomberoUpdate{FechaRegistro: &nueva}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, nueva, updated.FechaRegistro)
}

func TestBomberoServiceAsignarCredencial(t *testing.T) {
	svc, bomberoRepo, credRepo, _ := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	otra := &model.Credencial{Correo: "otra@x.cl", Contrasenia: "pw", Activo: true}
	require.NoError(t, credRepo.Save(ctx, otra))

	require.NoError(t, svc.AsignarCredencial(ctx, b.ID, otra.ID))

	stored, err := bomberoRepo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Credencial)
	assert.Equal(t, otra.ID, stored.Credencial.ID)

	err = svc.AsignarCredencial(ctx, 404, otra.ID)
	assert.EqualError(t, err, "Bombero no encontrado")

	err = svc.AsignarCredencial(ctx, b.ID, 404)
	assert.EqualError(t, err, "Credencial no encontrada")
}

func TestBomberoServiceDelete(t *testing.T) {
	svc, _, credRepo, _ := newBomberoFixture()
	ctx := context.Background()

	b, err := svc.Save(ctx, validBombero())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))
	err = svc.Delete(ctx, b.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	// the referenced credencial is not cascaded on delete
	credenciales, _ := credRepo.FindAll(ctx)
	assert.Len(t, credenciales, 1)
}
