package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authdomain "mindcare-client/internal/auth/domain"
)

const (
	keyToken    = "token"
	keyUsername = "username"
	keyRole     = "role"
)

// sessionRecord is one key of the session store.
type sessionRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (sessionRecord) TableName() string {
	return "session_store"
}

// gormSessionRepository implements SessionRepository on the local sqlite
// database.
type gormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates the store and migrates its table.
func NewSessionRepository(db *gorm.DB) (SessionRepository, error) {
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, err
	}
	return &gormSessionRepository{db: db}, nil
}

func (r *gormSessionRepository) Get() (*authdomain.Session, error) {
	var records []sessionRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}

	session := &authdomain.Session{}
	for _, record := range records {
		switch record.Key {
		case keyToken:
			session.Token = record.Value
		case keyUsername:
			session.Username = record.Value
		case keyRole:
			session.Role = authdomain.Role(record.Value)
		}
	}
	return session, nil
}

func (r *gormSessionRepository) Set(token, username string, role authdomain.Role) error {
	records := []sessionRecord{
		{Key: keyToken, Value: token},
		{Key: keyUsername, Value: username},
		{Key: keyRole, Value: string(role)},
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&records).Error
	})
}

func (r *gormSessionRepository) Clear() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("key IN ?", []string{keyToken, keyUsername, keyRole}).
			Delete(&sessionRecord{}).Error
	})
}
