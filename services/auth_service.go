package services

import (
	"errors"
	"time"

	"neocal-backend/models"
	"neocal-backend/utils"

	"gorm.io/gorm"
)

// AuthService issues and resolves anonymous sessions. Users carry no
// credentials; whoever holds the token is the user. With Required=false the
// service collapses to a single shared demo identity, created on first
// touch, and ignores whatever token was presented.
type AuthService struct {
	db            *gorm.DB
	secret        string
	ttl           time.Duration
	required      bool
	demoUserID    string
	defaultTarget int
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration, required bool, demoUserID string, defaultTarget int) *AuthService {
	return &AuthService{
		db:            db,
		secret:        secret,
		ttl:           ttl,
		required:      required,
		demoUserID:    demoUserID,
		defaultTarget: defaultTarget,
	}
}

func (s *AuthService) createUser(userID string) (*models.User, error) {
	user := &models.User{
		UserID:             userID,
		DailyCalorieTarget: s.defaultTarget,
		Timezone:           "UTC",
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAnonymousSession makes a fresh user and a signed session token.
func (s *AuthService) CreateAnonymousSession() (*models.User, string, error) {
	user, err := s.createUser(utils.GenerateID("user"))
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(s.secret, user.UserID, s.ttl)
	if err != nil {
		return nil, "", err
	}

	session := &models.Session{
		SessionID: utils.GenerateID("session"),
		UserID:    user.UserID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveToken maps a presented token to a user id. In demo mode every
// request resolves to the shared demo user regardless of the token.
func (s *AuthService) ResolveToken(token string) (string, error) {
	if !s.required {
		if err := s.ensureUser(s.demoUserID); err != nil {
			return "", err
		}
		return s.demoUserID, nil
	}

	userID, err := utils.ParseJWT(s.secret, token)
	if err != nil {
		return "", errors.New("invalid or expired token")
	}
	return userID, nil
}

func (s *AuthService) ensureUser(userID string) error {
	var user models.User
	err := s.db.First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_, err = s.createUser(userID)
	}
	return err
}

func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sets the fields that are present; nil means keep.
func (s *AuthService) UpdateProfile(userID string, calorieTarget *int, timezone *string) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if calorieTarget != nil {
		if *calorieTarget <= 0 {
			return nil, ErrInvalidAmount
		}
		user.DailyCalorieTarget = *calorieTarget
	}
	if timezone != nil {
		user.Timezone = *timezone
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
