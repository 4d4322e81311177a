package repositories

import (
	"errors"
	"strings"

	"poll_scheduling_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

// likeEscaper neutralizes LIKE/ILIKE metacharacters in user-supplied input so
// an id prefix matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(text string) string {
	return likeEscaper.Replace(text)
}

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(poll *models.Poll) (*models.Poll, error)
	Update(poll *models.Poll) (*models.Poll, error)
	Delete(poll *models.Poll) error
	GetOne(pollID string) (*models.Poll, error)
	GetOneByIDPrefix(guildID, idPrefix string) (*models.Poll, error)
	GetManyByGuild(guildID string) ([]*models.Poll, error)
	GetAll() ([]*models.Poll, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(poll *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(poll).Insert()
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) Update(poll *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(poll).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) Delete(poll *models.Poll) error {
	_, err := r.db.Model(poll).WherePK().Delete()
	return err
}

func (r *pollRepository) GetOne(pollID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("id = ?", pollID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetOneByIDPrefix(guildID, idPrefix string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("guild_id = ?", guildID).
		Where("id ILIKE ?", escapeLikePattern(idPrefix)+"%").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetManyByGuild(guildID string) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("guild_id = ?", guildID).
		OrderExpr("created_at ASC").
		Select()

	return polls, err
}

func (r *pollRepository) GetAll() ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		OrderExpr("created_at ASC").
		Select()

	return polls, err
}
