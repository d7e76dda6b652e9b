package usecase

import (
	"context"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error)
	GetInquiries(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InquiryResponse], error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	log         *zap.Logger
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, log *zap.Logger) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		log:         log.With(zap.String("service", "inquiry")),
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create inquiry validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Store the submission
	inquiry := &entity.Inquiry{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		s.log.Error("Failed to create inquiry", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.Info("Inquiry received",
		zap.String("inquiry_id", inquiry.ID.String()),
		zap.String("email", inquiry.Email),
	)

	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

func (s *inquiryService) GetInquiries(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InquiryResponse], error) {
	inquiries, err := s.inquiryRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list inquiries", zap.Error(err))
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	total, err := s.inquiryRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count inquiries", zap.Error(err))
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	responses := make([]response.InquiryResponse, len(inquiries))
	for i, inquiry := range inquiries {
		responses[i] = response.InquiryToResponse(inquiry)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}
