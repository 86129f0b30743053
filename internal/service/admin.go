package service

import (
	"context"
	"time"

	"colivio/internal/repository"
	modelsAdmin "colivio/pkg/admin"
	"colivio/pkg/customerror"
	"colivio/pkg/security"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AdminServiceI interface {
	Login(email string, password string) (*modelsAdmin.Admin, error)
	CreateInvite(email string, invitedBy *modelsAdmin.Admin) (*modelsAdmin.Invite, error)
	AcceptInvite(token uuid.UUID, password string) (*modelsAdmin.Admin, error)
	GetInvites() ([]modelsAdmin.Invite, error)
	EnsureSuperUser(email string, password string) error
}

type AdminService struct {
	adminRepo repository.AdminRepositoryI
	host      string
	port      string
}

func NewAdminService(adminRepo repository.AdminRepositoryI, host string, port string) AdminServiceI {
	return &AdminService{
		adminRepo: adminRepo,
		host:      host,
		port:      port,
	}
}

func (adminService *AdminService) Login(email string, password string) (*modelsAdmin.Admin, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	a, err := adminService.adminRepo.GetAdminByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, customerror.ErrWrongCredentials
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.Login")
		return nil, customeErr
	}
	if a.PasswordHash != security.HashPassword(password, a.Email) {
		return nil, customerror.ErrWrongCredentials
	}
	return a, nil
}

func (adminService *AdminService) CreateInvite(email string, invitedBy *modelsAdmin.Admin) (*modelsAdmin.Invite, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	_, err := adminService.adminRepo.GetAdminByEmail(ctx, email)
	if err == nil {
		return nil, customerror.ErrAlreadyExists
	}
	if err != pgx.ErrNoRows {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.CreateInvite")
		return nil, customeErr
	}
	invite := &modelsAdmin.Invite{
		Token:     uuid.New(),
		Email:     email,
		InvitedBy: invitedBy.UUID,
	}
	err = adminService.adminRepo.InsertInvite(ctx, invite)
	if err == customerror.ErrAlreadyExists {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.CreateInvite")
		return nil, customeErr
	}
	return invite, nil
}

func (adminService *AdminService) AcceptInvite(token uuid.UUID, password string) (*modelsAdmin.Admin, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	invite, err := adminService.adminRepo.GetInvite(ctx, token)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.AcceptInvite")
		return nil, customeErr
	}
	if invite.Accepted {
		return nil, customerror.ErrInviteAlreadyAccepted
	}
	a := &modelsAdmin.Admin{
		UUID:         uuid.New(),
		Email:        invite.Email,
		PasswordHash: security.HashPassword(password, invite.Email),
	}
	err = adminService.adminRepo.InsertAdmin(ctx, a)
	if err == customerror.ErrAlreadyExists {
		return nil, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.AcceptInvite")
		return nil, customeErr
	}
	err = adminService.adminRepo.MarkInviteAccepted(ctx, token)
	if err != nil && err != pgx.ErrNoRows {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.AcceptInvite")
		return nil, customeErr
	}
	return a, nil
}

func (adminService *AdminService) GetInvites() ([]modelsAdmin.Invite, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	invites, err := adminService.adminRepo.GetInvites(ctx)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.GetInvites")
		return []modelsAdmin.Invite{}, customeErr
	}
	return invites, nil
}

// EnsureSuperUser seeds the bootstrap superuser from config on startup.
func (adminService *AdminService) EnsureSuperUser(email string, password string) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	_, err := adminService.adminRepo.GetAdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.EnsureSuperUser")
		return customeErr
	}
	a := &modelsAdmin.Admin{
		UUID:         uuid.New(),
		Email:        email,
		PasswordHash: security.HashPassword(password, email),
		IsSuperUser:  true,
	}
	err = adminService.adminRepo.InsertAdmin(ctx, a)
	if err != nil && err != customerror.ErrAlreadyExists {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("AdminService.EnsureSuperUser")
		return customeErr
	}
	return nil
}
