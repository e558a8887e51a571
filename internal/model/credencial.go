package model

// Credencial represents a row in the `credencial` table. It identifies a
// bombero to the system through a unique correo plus a plaintext
// contrasenia. The contrasenia is stored verbatim; there is no hashing
// anywhere in this service.
//
// Fields:
//  ID               – primary key, assigned by the database on insert.
//  Correo           – unique email, required, at most 80 characters.
//  Contrasenia      – plaintext password, required, at most 16 characters.
//  IntentosFallidos – failed login counter, never negative.
//  Activo           – whether the credencial may be used.
//  Rol              – the rol attached to this credencial (credencial.rol_id).
type Credencial struct {
	ID               int64  `json:"id"`                // credencial.id
	Correo           string `json:"correo"`            // credencial.correo
	Contrasenia      string `json:"contrasenia"`       // credencial.contrasenia
	IntentosFallidos int    `json:"intentos_fallidos"` // credencial.intentos_fallidos
	Activo           bool   `json:"activo"`            // credencial.activo
	Rol              *Rol   `json:"rol"`               // joined from rol via credencial.rol_id
}

// CredencialUpdate carries the fields accepted by PUT /credenciales/{id}.
// Correo and Contrasenia are optional; a nil pointer means the stored value
// is kept. Activo is always written back with whatever the request carried,
// absent means false.
type CredencialUpdate struct {
	Correo      *string `json:"correo"`
	Contrasenia *string `json:"contrasenia"`
	Activo      bool    `json:"activo"`
}

// Login is the request body of POST /credenciales/login.
type Login struct {
	Correo      string `json:"correo"`
	Contrasenia string `json:"contrasenia"`
}
