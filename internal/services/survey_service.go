package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clean/internal/models/request_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/internal/skinprofile"
	"clean/pkg/utils"
)

type SurveyServiceInterface interface {
	Catalog() response_models.SurveyCatalogResponse
	Classify(request request_models.SkinSurveyRequest) (skinprofile.Result, error)
	// Submit classifies and stores the result on the account. A storage
	// failure is returned as-is; the caller resubmits.
	Submit(ctx context.Context, accountID string, request request_models.SkinSurveyRequest) (skinprofile.Result, error)
}

type SurveyService struct {
	accountRepo repositories.AccountRepository
}

func NewSurveyService(accountRepo repositories.AccountRepository) SurveyServiceInterface {
	return &SurveyService{accountRepo: accountRepo}
}

func (s *SurveyService) Catalog() response_models.SurveyCatalogResponse {
	resp := response_models.SurveyCatalogResponse{
		MinAnswer: skinprofile.MinAnswer,
		MaxAnswer: skinprofile.MaxAnswer,
	}
	for _, q := range skinprofile.SurveyQuestions() {
		types := make([]string, 0, len(q.SkinTypes))
		for _, t := range q.SkinTypes {
			types = append(types, t.String())
		}
		resp.SkinTypeQuestions = append(resp.SkinTypeQuestions, response_models.SurveyQuestionResponse{
			Code:      q.Code,
			Question:  q.Question,
			SkinTypes: types,
		})
	}
	for _, p := range skinprofile.ProblemQuestions() {
		resp.ProblemQuestions = append(resp.ProblemQuestions, response_models.ProblemQuestionResponse{
			Code:     p.Code,
			Name:     p.Name,
			Question: p.Question,
		})
	}
	return resp
}

func (s *SurveyService) Classify(request request_models.SkinSurveyRequest) (skinprofile.Result, error) {
	skinAnswers := skinprofile.SkinTypeAnswers(request.SkinTypeAnswers)
	problemAnswers := skinprofile.ProblemAnswers(request.ProblemAnswers)

	if err := skinprofile.ValidateSkinTypeAnswers(skinAnswers); err != nil {
		if errors.Is(err, skinprofile.ErrIncompleteAnswers) {
			return skinprofile.Result{}, fmt.Errorf("%w: %v", utils.ErrIncompleteSurvey, err)
		}
		return skinprofile.Result{}, fmt.Errorf("%w: %v", utils.ErrInvalidSurvey, err)
	}
	if err := skinprofile.ValidateProblemAnswers(problemAnswers); err != nil {
		return skinprofile.Result{}, fmt.Errorf("%w: %v", utils.ErrInvalidSurvey, err)
	}

	return skinprofile.Classify(skinAnswers, problemAnswers), nil
}

func (s *SurveyService) Submit(ctx context.Context, accountID string, request request_models.SkinSurveyRequest) (skinprofile.Result, error) {
	result, err := s.Classify(request)
	if err != nil {
		return skinprofile.Result{}, err
	}

	id, err := uuid.Parse(accountID)
	if err != nil {
		return skinprofile.Result{}, utils.ErrAccountNotFound
	}
	if err := persistSkinProfile(ctx, s.accountRepo, id, result.SkinType, result.Problems); err != nil {
		zap.L().Warn("storing survey result failed", zap.String("account_id", accountID), zap.Error(err))
		return skinprofile.Result{}, err
	}

	zap.L().Info("skin survey stored",
		zap.String("account_id", accountID),
		zap.String("skin_type", result.SkinType),
		zap.Int("problems", len(result.Problems)))
	return result, nil
}
