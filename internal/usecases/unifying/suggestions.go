package unifying

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
	"github.com/vfg2006/marketplace-ads-api/pkg/utils"
)

// GetOptimizationSuggestions avalia a performance recente das campanhas
// contra os limiares configurados e gera recomendações. Sem IDs na
// requisição, todas as campanhas entram na avaliação. Campanha cuja
// performance não pôde ser carregada é pulada, nunca derruba o lote.
func (s *Service) GetOptimizationSuggestions(campaignIDs []string) ([]*domain.Suggestion, error) {
	campaigns, err := s.campaignsForSuggestions(campaignIDs)
	if err != nil {
		return nil, err
	}

	dateRange := domain.DateRange{
		StartDate: utils.DaysAgo(s.cfg.Optimization.LookbackDays),
		EndDate:   utils.DaysAgo(0),
	}

	suggestions := make([]*domain.Suggestion, 0)

	for _, campaign := range campaigns {
		performance := campaign.Performance
		if performance == nil {
			platform := campaign.Platform

			loaded, err := s.GetCampaignPerformance(campaign.CampaignID, dateRange, &platform)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.CampaignID,
					"error":       err.Error(),
				}).Warn("unifying: performance indisponível, campanha pulada nas sugestões")
				continue
			}

			performance = loaded
		}

		suggestions = append(suggestions, s.suggestionsForCampaign(campaign, performance)...)
	}

	logrus.WithFields(logrus.Fields{
		"campaigns_evaluated": len(campaigns),
		"suggestions":         len(suggestions),
	}).Debug("unifying: sugestões de otimização geradas")

	return suggestions, nil
}

func (s *Service) campaignsForSuggestions(campaignIDs []string) ([]*domain.UnifiedCampaign, error) {
	if len(campaignIDs) == 0 {
		return s.GetAllCampaigns(nil)
	}

	campaigns := make([]*domain.UnifiedCampaign, 0, len(campaignIDs))

	for _, campaignID := range campaignIDs {
		campaign, err := s.GetCampaign(campaignID, nil)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("unifying: campanha não resolvida, pulada nas sugestões")
			continue
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// suggestionsForCampaign aplica as heurísticas de limiar. Cada regra é
// independente: uma campanha pode acumular sugestões de tipos
// diferentes na mesma avaliação.
func (s *Service) suggestionsForCampaign(
	campaign *domain.UnifiedCampaign,
	performance *domain.UnifiedCampaignPerformance,
) []*domain.Suggestion {
	suggestions := make([]*domain.Suggestion, 0)
	thresholds := s.cfg.Optimization

	// ACOS acima do alvo: reduzir lances. Só faz sentido onde ACOS
	// existe, então DSP (ACOS sempre zerado) nunca dispara esta regra.
	if performance.ACOS > thresholds.TargetACOS {
		suggestions = append(suggestions, newSuggestion(
			campaign.CampaignID,
			domain.SuggestionTypeBid,
			domain.SuggestionPriorityHigh,
			fmt.Sprintf("ACOS de %.2f%% acima do alvo de %.2f%%: reduzir lances para conter o custo por venda", performance.ACOS, thresholds.TargetACOS),
			performance.ACOS,
			thresholds.TargetACOS,
		))
	}

	// ROAS abaixo do alvo: revisar o targeting
	if performance.ROAS < thresholds.TargetROAS {
		suggestions = append(suggestions, newSuggestion(
			campaign.CampaignID,
			domain.SuggestionTypeTargeting,
			domain.SuggestionPriorityMedium,
			fmt.Sprintf("ROAS de %.2f abaixo do alvo de %.2f: revisar segmentação e alvos de baixa conversão", performance.ROAS, thresholds.TargetROAS),
			performance.ROAS,
			thresholds.TargetROAS,
		))
	}

	// Gasto muito abaixo do budget: a campanha não está entregando
	if campaign.Budget.Amount > 0 {
		spendRatio := utils.SafeDivide(performance.Spend, campaign.Budget.Amount)
		if spendRatio < thresholds.MinSpendBudgetRatio {
			suggestions = append(suggestions, newSuggestion(
				campaign.CampaignID,
				domain.SuggestionTypeBudget,
				domain.SuggestionPriorityLow,
				fmt.Sprintf("Gasto em %.0f%% do budget: considerar realocar budget ou ampliar alcance", spendRatio*100),
				spendRatio,
				thresholds.MinSpendBudgetRatio,
			))
		}
	}

	return suggestions
}

func newSuggestion(
	campaignID string,
	suggestionType domain.SuggestionType,
	priority domain.SuggestionPriority,
	message string,
	currentValue, projectedValue float64,
) *domain.Suggestion {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("unifying: falha ao gerar id de sugestão")
	}

	return &domain.Suggestion{
		ID:             id,
		CampaignID:     campaignID,
		Type:           suggestionType,
		Priority:       priority,
		Message:        message,
		CurrentValue:   currentValue,
		ProjectedValue: projectedValue,
		CreatedAt:      time.Now().UTC(),
	}
}
