package services

import (
	"context"

	"github.com/anjiri1684/tutor_booking/models"
	"github.com/anjiri1684/tutor_booking/notifications"
	"github.com/anjiri1684/tutor_booking/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RequestForm is a "find me a tutor" submission. Empty Goal and TimeForStudy
// take the form defaults.
type RequestForm struct {
	Name         string `json:"name" form:"name" validate:"required,min=2,max=30"`
	Phone        string `json:"phone" form:"phone" validate:"required,min=10,max=16"`
	Goal         string `json:"goal" form:"goal" validate:"required,oneof=travel study work relocate"`
	TimeForStudy string `json:"time" form:"time" validate:"required,time_budget"`
}

type RequestResult struct {
	Request *models.Request
	Goal    *models.Goal
}

type RequestService struct {
	db       *gorm.DB
	notifier notifications.Notifier
	validate *validator.Validate
	logger   *zap.Logger

	pending pendingNotices
}

func NewRequestService(db *gorm.DB, notifier notifications.Notifier, logger *zap.Logger) *RequestService {
	return &RequestService{
		db:       db,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger,
	}
}

func (s *RequestService) Submit(ctx context.Context, form RequestForm) (*RequestResult, error) {
	if form.Goal == "" {
		form.Goal = models.DefaultRequestGoal
	}
	if form.TimeForStudy == "" {
		form.TimeForStudy = models.DefaultTimeBudget
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, formError(err)
	}

	var (
		goal    *models.Goal
		request *models.Request
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = repository.NewGormGoalRepository(tx).GetByKey(ctx, form.Goal)
		if err != nil {
			return err
		}

		request = &models.Request{
			Name:         form.Name,
			Phone:        form.Phone,
			TimeForStudy: form.TimeForStudy,
			GoalID:       goal.ID,
		}
		return repository.NewGormRequestRepository(tx).Create(ctx, request)
	})
	if err != nil {
		return nil, err
	}
	request.Goal = goal

	s.logger.Info("Tutor request created",
		zap.Uint("request_id", request.ID),
		zap.String("goal", goal.Key),
		zap.String("time_for_study", request.TimeForStudy))

	notice := notifications.RequestNotice{
		RequestID:    request.ID,
		GoalLabel:    goal.Value,
		TimeForStudy: request.TimeForStudy,
		Name:         request.Name,
		Phone:        request.Phone,
	}
	s.pending.send(func() {
		if err := s.notifier.RequestCreated(context.WithoutCancel(ctx), notice); err != nil {
			s.logger.Error("Failed to send request notification",
				zap.Uint("request_id", notice.RequestID),
				zap.Error(err))
		}
	})

	return &RequestResult{Request: request, Goal: goal}, nil
}

// Wait blocks until notifications for earlier submissions have been sent or
// ctx is done.
func (s *RequestService) Wait(ctx context.Context) error {
	return s.pending.wait(ctx)
}
