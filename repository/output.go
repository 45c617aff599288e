package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devmeup/models"
)

// OutputRepository issues the parameterized queries against the aiOutput
// table. It carries no business logic; callers interpret the rows.
type OutputRepository struct {
	db *gorm.DB
}

func NewOutputRepository(db *gorm.DB) *OutputRepository {
	return &OutputRepository{db: db}
}

// ListByCreator fetches every stored output for the given creator identifier,
// most recent first. Ties on the timestamp fall back to insertion order.
func (r *OutputRepository) ListByCreator(ctx context.Context, identifier string) ([]models.AIOutput, error) {
	var rows []models.AIOutput
	err := r.db.WithContext(ctx).
		Where(`"createdBy" = ?`, identifier).
		Order(`"createdAt" DESC`).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Insert stores a manually created entry and returns it with its assigned id
// and timestamp. The query string is kept under the "input" key so the row
// normalizes the same way generated ones do.
func (r *OutputRepository) Insert(ctx context.Context, identifier, query, response string) (models.AIOutput, error) {
	form, err := json.Marshal(map[string]string{"input": query})
	if err != nil {
		return models.AIOutput{}, err
	}
	slug := "manual"
	row := models.AIOutput{
		FormData:     datatypes.JSON(form),
		AIResponse:   &response,
		TemplateSlug: &slug,
		CreatedBy:    identifier,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.AIOutput{}, err
	}
	return row, nil
}

// Ping checks database reachability and returns the server time
func (r *OutputRepository) Ping(ctx context.Context) (time.Time, error) {
	var now time.Time
	err := r.db.WithContext(ctx).Raw("SELECT NOW()").Scan(&now).Error
	if err != nil {
		return time.Time{}, err
	}
	return now, nil
}
