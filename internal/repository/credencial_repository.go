package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
)

// CredencialRepository is the persistence contract for credenciales. On top
// of the common operations it exposes lookups by correo, which back the
// login flow and the uniqueness checks on update.
type CredencialRepository interface {
	FindAll(ctx context.Context) ([]model.Credencial, error)
	FindByID(ctx context.Context, id int64) (*model.Credencial, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Credencial, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByCorreo(ctx context.Context, correo string) (bool, error)
	Save(ctx context.Context, cred *model.Credencial) error
	DeleteByID(ctx context.Context, id int64) error
}

// CredencialRepo encapsulates all database queries related to credenciales.
// Reads join the rol table so callers always receive the nested rol.
type CredencialRepo struct {
	db *sql.DB
}

// NewCredencialRepo constructs a CredencialRepo with the provided DB handle.
func NewCredencialRepo(db *sql.DB) *CredencialRepo { return &CredencialRepo{db: db} }

const credencialColumns = `c.id, c.correo, c.contrasenia, c.intentos_fallidos, c.activo, r.id, r.nombre`

// scanCredencial reads one credencial row plus its left-joined rol.
func scanCredencial(scan func(dest ...any) error) (*model.Credencial, error) {
	var (
		c         model.Credencial
		rolID     sql.NullInt64
		rolNombre sql.NullString
	)
	if err := scan(&c.ID, &c.Correo, &c.Contrasenia, &c.IntentosFallidos, &c.Activo, &rolID, &rolNombre); err != nil {
		return nil, err
	}
	if rolID.Valid {
		c.Rol = &model.Rol{ID: rolID.Int64, Nombre: rolNombre.String}
	}
	return &c, nil
}

// FindAll returns every credencial with its rol, ordered by id.
func (r *CredencialRepo) FindAll(ctx context.Context) ([]model.Credencial, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+credencialColumns+" FROM credencial c LEFT JOIN rol r ON r.id = c.rol_id ORDER BY c.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Credencial
	for rows.Next() {
		c, err := scanCredencial(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a credencial by id. Returns ErrNotFound when no row
// matches.
func (r *CredencialRepo) FindByID(ctx context.Context, id int64) (*model.Credencial, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+credencialColumns+" FROM credencial c LEFT JOIN rol r ON r.id = c.rol_id WHERE c.id = ?", id)
	c, err := scanCredencial(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// FindByCorreo fetches a credencial by its unique correo. Returns
// ErrNotFound when no row matches.
func (r *CredencialRepo) FindByCorreo(ctx context.Context, correo string) (*model.Credencial, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+credencialColumns+" FROM credencial c LEFT JOIN rol r ON r.id = c.rol_id WHERE c.correo = ?", correo)
	c, err := scanCredencial(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// ExistsByID reports whether a credencial with the given id exists.
func (r *CredencialRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM credencial WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// ExistsByCorreo reports whether any credencial already uses the correo.
// The check covers the whole table; it does not exclude a particular row.
func (r *CredencialRepo) ExistsByCorreo(ctx context.Context, correo string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM credencial WHERE correo = ?)", correo).Scan(&exists)
	return exists, err
}

// Save inserts the credencial when its ID is zero and fills in the
// generated key; otherwise it updates the existing row. A unique-key
// violation on correo surfaces as ErrDuplicate.
func (r *CredencialRepo) Save(ctx context.Context, cred *model.Credencial) error {
	var rolID sql.NullInt64
	if cred.Rol != nil {
		rolID = sql.NullInt64{Int64: cred.Rol.ID, Valid: true}
	}
	if cred.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO credencial (correo, contrasenia, intentos_fallidos, activo, rol_id) VALUES (?, ?, ?, ?, ?)",
			cred.Correo, cred.Contrasenia, cred.IntentosFallidos, cred.Activo, rolID)
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
		cred.ID = id
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE credencial SET correo = ?, contrasenia = ?, intentos_fallidos = ?, activo = ?, rol_id = ? WHERE id = ?",
		cred.Correo, cred.Contrasenia, cred.IntentosFallidos, cred.Activo, rolID, cred.ID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteByID removes the credencial row. Returns ErrNotFound when nothing
// was deleted. The referenced rol is left untouched.
func (r *CredencialRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM credencial WHERE id = ?", id)
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
