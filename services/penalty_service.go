package services

import (
	"errors"
	"math"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

type PenaltyService struct{ db *gorm.DB }

func NewPenaltyService(db *gorm.DB) *PenaltyService { return &PenaltyService{db: db} }

// CreatePenalty evaluates one overage event against the threshold table and
// records the consequence. caloriesOver is the overage contribution of the
// single upload that triggered the check, not the day's cumulative overage.
//
//	< 500      no penalty
//	500–799    charity: $5 per started 100 calories
//	>= 800     social media lock: one day per started 800 calories
func (s *PenaltyService) CreatePenalty(userID uint, caloriesOver float64) (*models.Penalty, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}

	if caloriesOver < 500 {
		return nil, nil
	}

	penalty := models.Penalty{
		UserID:       userID,
		Date:         time.Now(),
		CaloriesOver: caloriesOver,
		Status:       models.PenaltyStatusPending,
	}

	if caloriesOver >= 800 {
		penalty.PenaltyType = models.PenaltySocialMediaLock
		durationDays := int(math.Ceil(caloriesOver / 800))
		end := time.Now().Add(time.Duration(durationDays) * 24 * time.Hour)
		penalty.EndDate = &end
	} else {
		penalty.PenaltyType = models.PenaltyCharity
		penalty.Amount = math.Ceil(caloriesOver/100) * 5
	}

	if err := s.db.Create(&penalty).Error; err != nil {
		return nil, err
	}
	return &penalty, nil
}

type ActivePenalties struct {
	HasActivePenalties bool             `json:"hasActivePenalties"`
	Penalties          []models.Penalty `json:"penalties"`
}

// CheckPenalties returns the active, unexpired penalties. Expiry is
// evaluated lazily here; no timer ever flips a penalty.
func (s *PenaltyService) CheckPenalties(userID uint) (*ActivePenalties, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}

	var penalties []models.Penalty
	if err := s.db.
		Where("user_id = ? AND status = ? AND end_date IS NOT NULL AND end_date > ?",
			userID, models.PenaltyStatusActive, time.Now()).
		Find(&penalties).Error; err != nil {
		return nil, err
	}

	return &ActivePenalties{
		HasActivePenalties: len(penalties) > 0,
		Penalties:          penalties,
	}, nil
}

// CompletePenalty marks a penalty as paid. Completing an already-paid
// penalty is a no-op returning the same record.
func (s *PenaltyService) CompletePenalty(userID, penaltyID uint) (*models.Penalty, error) {
	penalty, err := s.findPenalty(userID, penaltyID)
	if err != nil {
		return nil, err
	}
	if penalty.Status != models.PenaltyStatusPaid {
		penalty.Status = models.PenaltyStatusPaid
		if err := s.db.Save(penalty).Error; err != nil {
			return nil, err
		}
	}
	return penalty, nil
}

// ActivatePenalty transitions pending → active. Any other state is left
// untouched; paid is terminal.
func (s *PenaltyService) ActivatePenalty(userID, penaltyID uint) (*models.Penalty, error) {
	penalty, err := s.findPenalty(userID, penaltyID)
	if err != nil {
		return nil, err
	}
	if penalty.Status == models.PenaltyStatusPending {
		penalty.Status = models.PenaltyStatusActive
		if err := s.db.Save(penalty).Error; err != nil {
			return nil, err
		}
	}
	return penalty, nil
}

func (s *PenaltyService) PendingPenalties(userID uint) ([]models.Penalty, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}
	var penalties []models.Penalty
	err := s.db.
		Where("user_id = ? AND status = ?", userID, models.PenaltyStatusPending).
		Order("date DESC").
		Find(&penalties).Error
	return penalties, err
}

func (s *PenaltyService) findPenalty(userID, penaltyID uint) (*models.Penalty, error) {
	var penalty models.Penalty
	if err := s.db.Where("id = ? AND user_id = ?", penaltyID, userID).First(&penalty).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPenaltyNotFound
		}
		return nil, err
	}
	return &penalty, nil
}

func (s *PenaltyService) findUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
