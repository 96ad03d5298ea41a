package game

import (
	"errors"
	"time"

	"deviantdare/backend/internal/models"

	"gorm.io/gorm"
)

// Standalone dares follow the same claim/consent/guard discipline as switch
// games but without a gesture contest: the performer always owes the proof
// and the creator always grades it.

// LoadDare fetches a dare with its associations.
func (m *Machine) LoadDare(dareID uint) (*models.Dare, error) {
	var d models.Dare
	err := retryRead(func() error {
		return m.db.
			Preload("Creator").
			Preload("Performer").
			Preload("Tags").
			Preload("Proofs").
			First(&d, dareID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// CreateDare creates a dare in waiting_for_performer with a claim token.
func (m *Machine) CreateDare(creatorID uint, description string, difficulty models.Difficulty, tags []*models.Tag) (*models.Dare, error) {
	token := NewClaimToken()
	expires := time.Now().Add(m.claimTTL)

	d := models.Dare{
		CreatorID:      creatorID,
		Description:    description,
		Difficulty:     difficulty,
		Status:         models.DareWaitingForPerformer,
		ClaimToken:     &token,
		ClaimExpiresAt: &expires,
		Tags:           tags,
	}
	if err := m.db.Create(&d).Error; err != nil {
		return nil, err
	}
	return m.LoadDare(d.ID)
}

func (m *Machine) claimDare(d *models.Dare, userID uint, token string) (*models.Dare, error) {
	if err := checkDareClaim(d, userID, time.Now()); err != nil {
		return nil, err
	}
	if err := m.guardPair(userID, d.CreatorID); err != nil {
		return nil, err
	}

	res := m.db.Model(&models.Dare{}).
		Where("id = ? AND status = ? AND claim_token = ?", d.ID, models.DareWaitingForPerformer, token).
		Updates(map[string]interface{}{
			"status":           models.DareInProgress,
			"performer_id":     userID,
			"claim_token":      nil,
			"claim_expires_at": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyClaimed
	}
	return m.LoadDare(d.ID)
}

// CancelDare withdraws a pending dare. Creator only.
func (m *Machine) CancelDare(dareID, userID uint) (*models.Dare, error) {
	d, err := m.LoadDare(dareID)
	if err != nil {
		return nil, err
	}
	if err := checkDareCancel(d, userID); err != nil {
		return nil, err
	}

	res := m.db.Model(&models.Dare{}).
		Where("id = ? AND status = ?", dareID, models.DareWaitingForPerformer).
		Updates(map[string]interface{}{
			"status":           models.DareCancelled,
			"claim_token":      nil,
			"claim_expires_at": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidState
	}
	return m.LoadDare(dareID)
}

// SubmitDareProof records the performer's evidence.
func (m *Machine) SubmitDareProof(dareID, userID uint, content string) (*models.Dare, error) {
	d, err := m.LoadDare(dareID)
	if err != nil {
		return nil, err
	}
	if err := checkDareProof(d, userID); err != nil {
		return nil, err
	}
	if err := m.guardPair(userID, d.CreatorID); err != nil {
		return nil, err
	}

	proof := models.Proof{DareID: &d.ID, UserID: userID, Content: content}
	if err := m.db.Create(&proof).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyResolved
		}
		return nil, err
	}
	return m.LoadDare(dareID)
}

// GradeDare lets the creator review the performer's proof and completes the
// dare.
func (m *Machine) GradeDare(dareID, userID uint, approve bool) (*models.Dare, error) {
	d, err := m.LoadDare(dareID)
	if err != nil {
		return nil, err
	}
	proofID, err := checkDareGrade(d, userID)
	if err != nil {
		return nil, err
	}
	if d.PerformerID != nil {
		if err := m.guardPair(userID, *d.PerformerID); err != nil {
			return nil, err
		}
	}

	res := m.db.Model(&models.Proof{}).
		Where("id = ? AND reviewed = ?", proofID, false).
		Updates(map[string]interface{}{
			"reviewed":    true,
			"approved":    approve,
			"reviewed_by": userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyResolved
	}

	res = m.db.Model(&models.Dare{}).
		Where("id = ? AND status = ?", dareID, models.DareInProgress).
		Update("status", models.DareCompleted)
	if res.Error != nil {
		return nil, res.Error
	}
	return m.LoadDare(dareID)
}

// DareChickenOut is the performer's unilateral forfeit.
func (m *Machine) DareChickenOut(dareID, userID uint) (*models.Dare, error) {
	d, err := m.LoadDare(dareID)
	if err != nil {
		return nil, err
	}
	if err := checkDareChickenOut(d, userID); err != nil {
		return nil, err
	}

	res := m.db.Model(&models.Dare{}).
		Where("id = ? AND status = ?", dareID, models.DareInProgress).
		Update("status", models.DareForfeited)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidState
	}
	return m.LoadDare(dareID)
}

func checkDareClaim(d *models.Dare, userID uint, now time.Time) error {
	switch d.Status {
	case models.DareWaitingForPerformer:
		// claimable
	case models.DareInProgress:
		return ErrAlreadyClaimed
	default:
		return ErrInvalidState
	}
	if d.CreatorID == userID {
		return ErrInvalidState
	}
	if d.ClaimExpiresAt != nil && now.After(*d.ClaimExpiresAt) {
		return ErrExpired
	}
	return nil
}

func checkDareCancel(d *models.Dare, userID uint) error {
	if d.Status != models.DareWaitingForPerformer {
		return ErrInvalidState
	}
	if d.CreatorID != userID {
		return ErrNotYourTurn
	}
	return nil
}

func checkDareProof(d *models.Dare, userID uint) error {
	if d.Status != models.DareInProgress {
		return ErrInvalidState
	}
	if d.PerformerID == nil || *d.PerformerID != userID {
		return ErrNotYourTurn
	}
	for _, p := range d.Proofs {
		if p.UserID == userID {
			return ErrAlreadyResolved
		}
	}
	return nil
}

func checkDareGrade(d *models.Dare, userID uint) (uint, error) {
	if d.Status != models.DareInProgress {
		return 0, ErrInvalidState
	}
	if d.CreatorID != userID {
		return 0, ErrNotYourTurn
	}
	for _, p := range d.Proofs {
		if d.PerformerID != nil && p.UserID == *d.PerformerID && !p.Reviewed {
			return p.ID, nil
		}
	}
	return 0, ErrNotFound
}

func checkDareChickenOut(d *models.Dare, userID uint) error {
	if d.Status != models.DareInProgress {
		return ErrInvalidState
	}
	if d.PerformerID == nil || *d.PerformerID != userID {
		return ErrNotYourTurn
	}
	return nil
}
