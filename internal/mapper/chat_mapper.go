package mapper

import (
	"secure-chat-be/internal/entity"
	"secure-chat-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	return &entity.Session{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionTitle: s.SessionTitle,
		IsActive:     s.IsActive,
		StartedAt:    s.StartedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	return &model.Session{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionTitle: s.SessionTitle,
		IsActive:     s.IsActive,
		StartedAt:    s.StartedAt,
	}
}

func (m *SessionMapper) ToEntities(models []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	return &entity.Question{
		Id:        q.Id,
		SessionId: q.SessionId,
		Content:   q.Content,
		CreatedAt: q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	return &model.Question{
		Id:        q.Id,
		SessionId: q.SessionId,
		Content:   q.Content,
		CreatedAt: q.CreatedAt,
	}
}

func (m *QuestionMapper) ToEntities(models []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, 0, len(models))
	for _, q := range models {
		entities = append(entities, m.ToEntity(q))
	}
	return entities
}

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}

	return &entity.Answer{
		Id:          a.Id,
		QuestionId:  a.QuestionId,
		Content:     a.Content,
		GeneratedBy: a.GeneratedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}

	return &model.Answer{
		Id:          a.Id,
		QuestionId:  a.QuestionId,
		Content:     a.Content,
		GeneratedBy: a.GeneratedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *AnswerMapper) ToEntities(models []*model.Answer) []*entity.Answer {
	entities := make([]*entity.Answer, 0, len(models))
	for _, a := range models {
		entities = append(entities, m.ToEntity(a))
	}
	return entities
}
