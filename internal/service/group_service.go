package service

import (
	"errors"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"

	"gorm.io/gorm"
)

// UserWithStyle 组内成员及其当前主导风格；无累计记录时为空串
type UserWithStyle struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Grupo           string `json:"grupo"`
	EstiloDominante string `json:"estilo_dominante"`
}

// ProfessorGroups 教师及其负责的组名列表
type ProfessorGroups struct {
	ProfesorID      uint     `json:"profesor_id"`
	ProfesorNombre  string   `json:"profesor_nombre"`
	GruposAsignados []string `json:"grupos_asignados"`
}

type GroupService struct {
	GroupRepo  *repository.GroupRepository
	UserRepo   *repository.UserRepository
	PointsRepo *repository.LearningPointsRepository
}

func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository, pointsRepo *repository.LearningPointsRepository) *GroupService {
	return &GroupService{
		GroupRepo:  groupRepo,
		UserRepo:   userRepo,
		PointsRepo: pointsRepo,
	}
}

// AssignProfessor 组不存在时先建组，教师不存在时报 ErrProfessorNotFound
func (s *GroupService) AssignProfessor(grupo string, professorID uint) (uint, error) {
	group, err := s.GroupRepo.Ensure(grupo)
	if err != nil {
		return 0, err
	}

	professor, err := s.UserRepo.FindByID(professorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, util.ErrProfessorNotFound
	}
	if err != nil {
		return 0, err
	}

	if err := s.GroupRepo.AssignProfessor(group.ID, professor.ID); err != nil {
		return 0, err
	}
	return group.ID, nil
}

func (s *GroupService) AllGroups() ([]model.Group, error) {
	return s.GroupRepo.FindAll()
}

func (s *GroupService) GroupsByProfessor(professorID uint) ([]model.Group, error) {
	return s.GroupRepo.FindByProfessor(professorID)
}

func (s *GroupService) UsersInGroup(grupo string) ([]model.User, error) {
	return s.UserRepo.FindByGroup(grupo)
}

// UsersWithStyles 校验组归属后，给每个成员附上主导风格
func (s *GroupService) UsersWithStyles(professorID uint, grupo string) ([]UserWithStyle, error) {
	groups, err := s.GroupRepo.FindByProfessor(professorID)
	if err != nil {
		return nil, err
	}

	assigned := false
	for _, g := range groups {
		if g.Grupo == grupo {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, util.ErrGroupNotAssigned
	}

	users, err := s.UserRepo.FindByGroup(grupo)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	records, err := s.PointsRepo.FindByUserIDs(userIDs)
	if err != nil {
		return nil, err
	}
	styles := make(map[uint]string, len(records))
	for _, p := range records {
		styles[p.UserID] = p.EstiloDominante
	}

	result := make([]UserWithStyle, 0, len(users))
	for _, u := range users {
		result = append(result, UserWithStyle{
			ID:              u.ID,
			Username:        u.Username,
			Email:           u.Email,
			Grupo:           u.Grupo,
			EstiloDominante: styles[u.ID],
		})
	}
	return result, nil
}

func (s *GroupService) ProfessorsWithGroups() ([]ProfessorGroups, error) {
	professors, err := s.UserRepo.FindByType(model.TipoProfesor)
	if err != nil {
		return nil, err
	}

	result := make([]ProfessorGroups, 0, len(professors))
	for _, prof := range professors {
		groups, err := s.GroupRepo.FindByProfessor(prof.ID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(groups))
		for _, g := range groups {
			names = append(names, g.Grupo)
		}
		result = append(result, ProfessorGroups{
			ProfesorID:      prof.ID,
			ProfesorNombre:  prof.Username,
			GruposAsignados: names,
		})
	}
	return result, nil
}
