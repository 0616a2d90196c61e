package usecase

import (
	"context"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"
	"accverse/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaxFormService manages incremental tax form drafts. A draft may be
// started anonymously; once a draft has an owner only that owner can
// touch it.
type TaxFormService interface {
	SaveProgress(ctx context.Context, userID *int64, req *request.SaveTaxFormProgressRequest) (*response.TaxFormResponse, error)
	Get(ctx context.Context, userID *int64, formID string) (*response.TaxFormResponse, error)
	Submit(ctx context.Context, userID *int64, req *request.SubmitTaxFormRequest) (*response.TaxFormResponse, error)
	ListTemplates(ctx context.Context) ([]response.TaxFormTemplateResponse, error)
}

type taxFormService struct {
	forms repository.TaxFormRepository
	log   *zap.Logger
}

func NewTaxFormService(forms repository.TaxFormRepository, log *zap.Logger) TaxFormService {
	return &taxFormService{
		forms: forms,
		log:   log.With(zap.String("service", "taxform")),
	}
}

func (s *taxFormService) owns(form *entity.TaxForm, userID *int64) bool {
	if form.UserID == nil {
		return true
	}
	return userID != nil && *userID == *form.UserID
}

func (s *taxFormService) SaveProgress(ctx context.Context, userID *int64, req *request.SaveTaxFormProgressRequest) (*response.TaxFormResponse, error) {
	var formID uuid.UUID
	if req.FormID == "" {
		formID = utils.GenerateUUID()
	} else {
		parsed, err := utils.ParseUUID(req.FormID)
		if err != nil {
			return nil, ErrNotFound
		}
		formID = parsed

		existing, err := s.forms.FindByFormID(ctx, formID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if !s.owns(existing, userID) {
				return nil, ErrForbidden
			}
			if existing.Status == entity.TaxFormSubmitted {
				return nil, ErrFormSubmitted
			}
		}
	}

	form := &entity.TaxForm{
		FormID:      formID,
		UserID:      userID,
		TemplateKey: req.TemplateKey,
		Progress:    req.Progress,
		Status:      entity.TaxFormDraft,
		UpdatedAt:   time.Now(),
	}

	if err := s.forms.SaveProgress(ctx, form); err != nil {
		return nil, err
	}

	saved, err := s.forms.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}

	resp := response.TaxFormToResponse(saved)
	return &resp, nil
}

func (s *taxFormService) Get(ctx context.Context, userID *int64, formIDStr string) (*response.TaxFormResponse, error) {
	formID, err := utils.ParseUUID(formIDStr)
	if err != nil {
		return nil, ErrNotFound
	}

	form, err := s.forms.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrNotFound
	}
	if !s.owns(form, userID) {
		return nil, ErrForbidden
	}

	resp := response.TaxFormToResponse(form)
	return &resp, nil
}

func (s *taxFormService) Submit(ctx context.Context, userID *int64, req *request.SubmitTaxFormRequest) (*response.TaxFormResponse, error) {
	saveReq := &request.SaveTaxFormProgressRequest{
		FormID:      req.FormID,
		TemplateKey: req.TemplateKey,
		Progress:    req.Progress,
	}
	if _, err := s.SaveProgress(ctx, userID, saveReq); err != nil {
		return nil, err
	}

	formID, err := utils.ParseUUID(req.FormID)
	if err != nil {
		return nil, ErrNotFound
	}

	ok, err := s.forms.MarkSubmitted(ctx, formID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrFormSubmitted
	}

	s.log.Info("Tax form submitted", zap.String("form_id", req.FormID))

	form, err := s.forms.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}

	resp := response.TaxFormToResponse(form)
	return &resp, nil
}

func (s *taxFormService) ListTemplates(ctx context.Context) ([]response.TaxFormTemplateResponse, error) {
	templates, err := s.forms.FindTemplates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.TaxFormTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, response.TemplateToResponse(t))
	}
	return out, nil
}
