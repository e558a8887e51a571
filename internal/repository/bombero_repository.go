package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
)

// BomberoRepository is the persistence contract for bomberos. On top of the
// common operations it exposes existence checks on run and telefono, which
// back the uniqueness validations.
type BomberoRepository interface {
	FindAll(ctx context.Context) ([]model.Bombero, error)
	FindByID(ctx context.Context, id int64) (*model.Bombero, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByRun(ctx context.Context, run int) (bool, error)
	ExistsByTelefono(ctx context.Context, telefono int) (bool, error)
	Save(ctx context.Context, b *model.Bombero) error
	DeleteByID(ctx context.Context, id int64) error
}

// BomberoRepo encapsulates all database queries related to bomberos. Reads
// join credencial and rol so callers always receive the full record.
type BomberoRepo struct {
	db *sql.DB
}

// NewBomberoRepo constructs a BomberoRepo with the provided DB handle.
func NewBomberoRepo(db *sql.DB) *BomberoRepo { return &BomberoRepo{db: db} }

const bomberoColumns = `b.id, b.run, b.dv, b.nombre, b.a_paterno, b.a_materno, b.fecha_registro, b.telefono,
	c.id, c.correo, c.contrasenia, c.intentos_fallidos, c.activo, r.id, r.nombre`

const bomberoFrom = ` FROM bombero b
	LEFT JOIN credencial c ON c.id = b.credenciales_id
	LEFT JOIN rol r ON r.id = c.rol_id`

// scanBombero reads one bombero row plus its left-joined credencial and rol.
func scanBombero(scan func(dest ...any) error) (*model.Bombero, error) {
	var (
		b           model.Bombero
		credID      sql.NullInt64
		correo      sql.NullString
		contrasenia sql.NullString
		intentos    sql.NullInt64
		activo      sql.NullBool
		rolID       sql.NullInt64
		rolNombre   sql.NullString
	)
	err := scan(&b.ID, &b.Run, &b.Dv, &b.Nombre, &b.APaterno, &b.AMaterno, &b.FechaRegistro, &b.Telefono,
		&credID, &correo, &contrasenia, &intentos, &activo, &rolID, &rolNombre)
	if err != nil {
		return nil, err
	}
	if credID.Valid {
		b.Credencial = &model.Credencial{
			ID:               credID.Int64,
			Correo:           correo.String,
			Contrasenia:      contrasenia.String,
			IntentosFallidos: int(intentos.Int64),
			Activo:           activo.Bool,
		}
		if rolID.Valid {
			b.Credencial.Rol = &model.Rol{ID: rolID.Int64, Nombre: rolNombre.String}
		}
	}
	return &b, nil
}

// FindAll returns every bombero with its credencial and rol, ordered by id.
func (r *BomberoRepo) FindAll(ctx context.Context) ([]model.Bombero, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+bomberoColumns+bomberoFrom+" ORDER BY b.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Bombero
	for rows.Next() {
		b, err := scanBombero(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a bombero by id. Returns ErrNotFound when no row matches.
func (r *BomberoRepo) FindByID(ctx context.Context, id int64) (*model.Bombero, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bomberoColumns+bomberoFrom+" WHERE b.id = ?", id)
	b, err := scanBombero(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ExistsByID reports whether a bombero with the given id exists.
func (r *BomberoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bombero WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// ExistsByRun reports whether any bombero already uses the run. The check
// covers the whole table; it does not exclude a particular row.
func (r *BomberoRepo) ExistsByRun(ctx context.Context, run int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bombero WHERE run = ?)", run).Scan(&exists)
	return exists, err
}

// ExistsByTelefono reports whether any bombero already uses the telefono.
func (r *BomberoRepo) ExistsByTelefono(ctx context.Context, telefono int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bombero WHERE telefono = ?)", telefono).Scan(&exists)
	return exists, err
}

// Save inserts the bombero when its ID is zero and fills in the generated
// key; otherwise it updates the existing row. A unique-key violation on
// run or telefono surfaces as ErrDuplicate.
func (r *BomberoRepo) Save(ctx context.Context, b *model.Bombero) error {
	var credID sql.NullInt64
	if b.Credencial != nil {
		credID = sql.NullInt64{Int64: b.Credencial.ID, Valid: true}
	}
	if b.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO bombero (run, dv, nombre, a_paterno, a_materno, fecha_registro, telefono, credenciales_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			b.Run, b.Dv, b.Nombre, b.APaterno, b.AMaterno, b.FechaRegistro, b.Telefono, credID)
		if err != nil {
			if isDuplicate(err) {
				return ErrDuplicate
			}
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		b.ID = id
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE bombero SET run = ?, dv = ?, nombre = ?, a_paterno = ?, a_materno = ?, fecha_registro = ?, telefono = ?, credenciales_id = ? WHERE id = ?",
		b.Run, b.Dv, b.Nombre, b.APaterno, b.AMaterno, b.FechaRegistro, b.Telefono, credID, b.ID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteByID removes the bombero row. Returns ErrNotFound when nothing was
// deleted. The referenced credencial is left untouched.
func (r *BomberoRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bombero WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
