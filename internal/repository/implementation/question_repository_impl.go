package implementation

import (
	"context"
	"errors"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/mapper"
	"secure-chat-be/internal/model"
	"secure-chat-be/internal/repository/contract"
	"secure-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	modelQuestion := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(modelQuestion).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(modelQuestion)
	return nil
}

func (r *QuestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	var modelQuestion model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelQuestion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelQuestion), nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var modelQuestions []*model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelQuestions).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelQuestions), nil
}
