package service

import (
	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
)

type QuestionService struct {
	PreguntaRepo *repository.PreguntaRepository
}

func NewQuestionService(preguntaRepo *repository.PreguntaRepository) *QuestionService {
	return &QuestionService{PreguntaRepo: preguntaRepo}
}

// GetAll 问卷为空时补种默认题目后返回
func (s *QuestionService) GetAll() ([]model.Pregunta, error) {
	preguntas, err := s.PreguntaRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(preguntas) > 0 {
		return preguntas, nil
	}

	if err := s.PreguntaRepo.CreateBatch(model.DefaultPreguntas()); err != nil {
		return nil, err
	}
	return s.PreguntaRepo.FindAll()
}
