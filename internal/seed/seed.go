// Package seed loads demo data for the dev profile: a handful of roles
// and credenciales plus ten bomberos with valid RUTs, so the API has
// something to serve right after startup.
package seed

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
	"github.com/SAFE-Rescue/api-administrador/internal/utils"
)

const (
	numRoles        = 3
	numCredenciales = 5
	numBomberos     = 10
)

// Run inserts the demo records through the regular services so the data
// obeys the same validation and cascade rules as API traffic. Individual
// failures (e.g. a seeded correo colliding with existing rows on a rerun)
// are logged and skipped.
func Run(ctx context.Context, roles *service.RolService, credenciales *service.CredencialService, bomberos *service.BomberoService) {
	log.Println("seeding demo data (dev profile)")

	usedRuns := map[int]bool{}
	usedTelefonos := map[int]bool{}
	usedCorreos := map[string]bool{}

	for i := 0; i < numRoles; i++ {
		rol := &model.Rol{Nombre: gofakeit.JobTitle()}
		if _, err := roles.Save(ctx, rol); err != nil {
			log.Printf("seed: rol no guardado: %v", err)
		}
	}

	existing, err := roles.FindAll(ctx)
	if err != nil || len(existing) == 0 {
		log.Printf("seed: no hay roles disponibles, se detiene la carga")
		return
	}

	randomRol := func() *model.Rol {
		rol := existing[rand.Intn(len(existing))]
		return &model.Rol{ID: rol.ID, Nombre: rol.Nombre}
	}

	nuevaCredencial := func() *model.Credencial {
		correo := gofakeit.Email()
		for usedCorreos[correo] {
			correo = gofakeit.Email()
		}
		usedCorreos[correo] = true
		return &model.Credencial{
			Correo:      correo,
			Contrasenia: gofakeit.Password(true, true, true, false, false, 12),
			Activo:      true,
			Rol:         randomRol(),
		}
	}

	for i := 0; i < numCredenciales; i++ {
		if _, err := credenciales.Save(ctx, nuevaCredencial()); err != nil {
			log.Printf("seed: credencial no guardada: %v", err)
		}
	}

	for i := 0; i < numBomberos; i++ {
		run := gofakeit.Number(1000000, 99999999)
		for usedRuns[run] {
			run = gofakeit.Number(1000000, 99999999)
		}
		usedRuns[run] = true

		telefono := gofakeit.Number(100000000, 999999999)
		for usedTelefonos[telefono] {
			telefono = gofakeit.Number(100000000, 999999999)
		}
		usedTelefonos[telefono] = true

		b := &model.Bombero{
			Run:           run,
			Dv:            utils.DigitoVerificador(run),
			Nombre:        gofakeit.FirstName(),
			APaterno:      gofakeit.LastName(),
			AMaterno:      gofakeit.LastName(),
			FechaRegistro: time.Now().UTC(),
			Telefono:      telefono,
			Credencial:    nuevaCredencial(),
		}
		if _, err := bomberos.Save(ctx, b); err != nil {
			log.Printf("seed: bombero no guardado: %v", err)
		}
	}

	log.Println("seed: carga de datos de demostración finalizada")
}
