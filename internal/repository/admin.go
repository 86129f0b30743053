package repository

import (
	"context"
	"errors"

	"colivio/pkg/admin"
	"colivio/pkg/customerror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*admin.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*admin.Admin, error)
	InsertAdmin(ctx context.Context, a *admin.Admin) error

	GetInvite(ctx context.Context, token uuid.UUID) (*admin.Invite, error)
	GetInvites(ctx context.Context) ([]admin.Invite, error)
	InsertInvite(ctx context.Context, invite *admin.Invite) error
	MarkInviteAccepted(ctx context.Context, token uuid.UUID) error
}

type AdminRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewAdminRepository(pool *pgxpool.Pool, host string, port string) AdminRepositoryI {
	return &AdminRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (adminRepo *AdminRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		is_superuser BOOLEAN DEFAULT FALSE,
		jwt_version INTEGER DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := adminRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("adminRepo.CreateTables", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}

	createInviteTableQuery := `
	CREATE TABLE IF NOT EXISTS admin_invites (
		token UUID PRIMARY KEY,
		email TEXT NOT NULL,
		invited_by UUID NOT NULL REFERENCES admins(id),
		accepted BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err = adminRepo.Pool.Exec(ctx, createInviteTableQuery)
	if err != nil {
		return customerror.NewError("adminRepo.CreateTables", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return nil
}

func (adminRepo *AdminRepository) GetAdmin(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	var a admin.Admin
	query := `SELECT id, email, password_hash, is_superuser, jwt_version, created_at FROM admins WHERE id = $1`
	err := adminRepo.Pool.QueryRow(ctx, query, id).Scan(
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.IsSuperUser,
		&a.JWTVersion,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("adminRepo.GetAdmin", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return &a, nil
}

func (adminRepo *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var a admin.Admin
	query := `SELECT id, email, password_hash, is_superuser, jwt_version, created_at FROM admins WHERE email = $1`
	err := adminRepo.Pool.QueryRow(ctx, query, email).Scan(
		&a.UUID,
		&a.Email,
		&a.PasswordHash,
		&a.IsSuperUser,
		&a.JWTVersion,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("adminRepo.GetAdminByEmail", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return &a, nil
}

func (adminRepo *AdminRepository) InsertAdmin(ctx context.Context, a *admin.Admin) error {
	query := `INSERT INTO admins (id, email, password_hash, is_superuser) VALUES ($1, $2, $3, $4)`
	_, err := adminRepo.Pool.Exec(ctx, query, a.UUID, a.Email, a.PasswordHash, a.IsSuperUser)
	if err != nil {
		if isUniqueViolation(err) {
			return customerror.ErrAlreadyExists
		}
		return customerror.NewError("adminRepo.InsertAdmin", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return nil
}

func (adminRepo *AdminRepository) GetInvite(ctx context.Context, token uuid.UUID) (*admin.Invite, error) {
	var invite admin.Invite
	query := `SELECT token, email, invited_by, accepted, created_at FROM admin_invites WHERE token = $1`
	err := adminRepo.Pool.QueryRow(ctx, query, token).Scan(
		&invite.Token,
		&invite.Email,
		&invite.InvitedBy,
		&invite.Accepted,
		&invite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("adminRepo.GetInvite", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return &invite, nil
}

func (adminRepo *AdminRepository) GetInvites(ctx context.Context) ([]admin.Invite, error) {
	invites := []admin.Invite{}
	query := `SELECT token, email, invited_by, accepted, created_at FROM admin_invites ORDER BY created_at DESC`
	rows, err := adminRepo.Pool.Query(ctx, query)
	if err != nil {
		return nil, customerror.NewError("adminRepo.GetInvites", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	for rows.Next() {
		var invite admin.Invite
		err := rows.Scan(&invite.Token, &invite.Email, &invite.InvitedBy, &invite.Accepted, &invite.CreatedAt)
		if err != nil {
			return nil, customerror.NewError("adminRepo.GetInvites", adminRepo.Host+":"+adminRepo.Port, err.Error())
		}
		invites = append(invites, invite)
	}
	return invites, nil
}

func (adminRepo *AdminRepository) InsertInvite(ctx context.Context, invite *admin.Invite) error {
	query := `INSERT INTO admin_invites (token, email, invited_by) VALUES ($1, $2, $3)`
	_, err := adminRepo.Pool.Exec(ctx, query, invite.Token, invite.Email, invite.InvitedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return customerror.ErrAlreadyExists
		}
		return customerror.NewError("adminRepo.InsertInvite", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	return nil
}

func (adminRepo *AdminRepository) MarkInviteAccepted(ctx context.Context, token uuid.UUID) error {
	query := `UPDATE admin_invites SET accepted = TRUE WHERE token = $1`
	command, err := adminRepo.Pool.Exec(ctx, query, token)
	if err != nil {
		return customerror.NewError("adminRepo.MarkInviteAccepted", adminRepo.Host+":"+adminRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
