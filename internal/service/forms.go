package service

import (
	"context"
	"time"

	"colivio/internal/repository"
	"colivio/pkg/customerror"
	modelsForms "colivio/pkg/forms"
)

type FormsServiceI interface {
	SubmitPartnerInquiry(inquiry *modelsForms.PartnerInquiry) (int64, error)
	JoinCommunity(member *modelsForms.CommunityMember) (int64, error)
}

type FormsService struct {
	formsRepo repository.FormsRepositoryI
	host      string
	port      string
}

func NewFormsService(formsRepo repository.FormsRepositoryI, host string, port string) FormsServiceI {
	return &FormsService{
		formsRepo: formsRepo,
		host:      host,
		port:      port,
	}
}

func (formsService *FormsService) SubmitPartnerInquiry(inquiry *modelsForms.PartnerInquiry) (int64, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	id, err := formsService.formsRepo.InsertPartnerInquiry(ctx, inquiry)
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("FormsService.SubmitPartnerInquiry")
		return 0, customeErr
	}
	return id, nil
}

func (formsService *FormsService) JoinCommunity(member *modelsForms.CommunityMember) (int64, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	id, err := formsService.formsRepo.InsertCommunityMember(ctx, member)
	if err == customerror.ErrAlreadyExists {
		return 0, err
	}
	if err != nil {
		customeErr := err.(customerror.CustomError)
		customeErr.AppendModule("FormsService.JoinCommunity")
		return 0, customeErr
	}
	return id, nil
}
