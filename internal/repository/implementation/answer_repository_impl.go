package implementation

import (
	"context"

	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/mapper"
	"secure-chat-be/internal/model"
	"secure-chat-be/internal/repository/contract"
	"secure-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

func (r *AnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnswerRepositoryImpl) Create(ctx context.Context, answer *entity.Answer) error {
	modelAnswer := r.mapper.ToModel(answer)
	if err := r.db.WithContext(ctx).Create(modelAnswer).Error; err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(modelAnswer)
	return nil
}

func (r *AnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var modelAnswers []*model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAnswers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAnswers), nil
}
