package repository

import (
	"context"

	"colivio/pkg/customerror"
	"colivio/pkg/forms"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FormsRepositoryI interface {
	CreateTables(ctx context.Context) error
	InsertPartnerInquiry(ctx context.Context, inquiry *forms.PartnerInquiry) (int64, error)
	InsertCommunityMember(ctx context.Context, member *forms.CommunityMember) (int64, error)
}

type FormsRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewFormsRepository(pool *pgxpool.Pool, host string, port string) FormsRepositoryI {
	return &FormsRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (formsRepo *FormsRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS partner_inquiries (
		id BIGSERIAL PRIMARY KEY,
		space_name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		website TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := formsRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("formsRepo.CreateTables", formsRepo.Host+":"+formsRepo.Port, err.Error())
	}

	createTableQuery = `
	CREATE TABLE IF NOT EXISTS community_members (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err = formsRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("formsRepo.CreateTables", formsRepo.Host+":"+formsRepo.Port, err.Error())
	}
	return nil
}

func (formsRepo *FormsRepository) InsertPartnerInquiry(ctx context.Context, inquiry *forms.PartnerInquiry) (int64, error) {
	query := `INSERT INTO partner_inquiries (space_name, contact_name, email, website, location, message)
	VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int64
	err := formsRepo.Pool.QueryRow(ctx, query,
		inquiry.SpaceName, inquiry.ContactName, inquiry.Email, inquiry.Website, inquiry.Location, inquiry.Message,
	).Scan(&id)
	if err != nil {
		return 0, customerror.NewError("formsRepo.InsertPartnerInquiry", formsRepo.Host+":"+formsRepo.Port, err.Error())
	}
	return id, nil
}

func (formsRepo *FormsRepository) InsertCommunityMember(ctx context.Context, member *forms.CommunityMember) (int64, error) {
	query := `INSERT INTO community_members (name, email) VALUES ($1, $2) RETURNING id`
	var id int64
	err := formsRepo.Pool.QueryRow(ctx, query, member.Name, member.Email).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, customerror.ErrAlreadyExists
		}
		return 0, customerror.NewError("formsRepo.InsertCommunityMember", formsRepo.Host+":"+formsRepo.Port, err.Error())
	}
	return id, nil
}
