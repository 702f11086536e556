package service

import (
	"testing"

	"estilos_backend/internal/model"
	"estilos_backend/internal/repository"
	"estilos_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroupService(t *testing.T) (*GroupService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewGroupService(
		repository.NewGroupRepository(db),
		repository.NewUserRepository(db),
		repository.NewLearningPointsRepository(db),
	), db
}

func TestAssignProfessorCreatesGroup(t *testing.T) {
	svc, db := newGroupService(t)
	profe := createUser(t, db, "profe", "", model.TipoProfesor)

	groupID, err := svc.AssignProfessor("G1", profe.ID)
	require.NoError(t, err)
	assert.NotZero(t, groupID)

	var group model.Group
	require.NoError(t, db.First(&group, groupID).Error)
	assert.Equal(t, "G1", group.Grupo)
	assert.Equal(t, profe.ID, group.Profesor)
}

func TestAssignProfessorUnknownProfessor(t *testing.T) {
	svc, _ := newGroupService(t)

	_, err := svc.AssignProfessor("G1", 999)
	assert.ErrorIs(t, err, util.ErrProfessorNotFound)
}

func TestAssignProfessorReassignsExistingGroup(t *testing.T) {
	svc, db := newGroupService(t)
	primero := createUser(t, db, "primero", "", model.TipoProfesor)
	segundo := createUser(t, db, "segundo", "", model.TipoProfesor)

	firstID, err := svc.AssignProfessor("G1", primero.ID)
	require.NoError(t, err)

	secondID, err := svc.AssignProfessor("G1", segundo.ID)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	var group model.Group
	require.NoError(t, db.First(&group, firstID).Error)
	assert.Equal(t, segundo.ID, group.Profesor)
}

func TestAllGroupsEmpty(t *testing.T) {
	svc, _ := newGroupService(t)

	groups, err := svc.AllGroups()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupsByProfessor(t *testing.T) {
	svc, db := newGroupService(t)
	profe := createUser(t, db, "profe", "", model.TipoProfesor)
	otro := createUser(t, db, "otro", "", model.TipoProfesor)

	_, err := svc.AssignProfessor("G1", profe.ID)
	require.NoError(t, err)
	_, err = svc.AssignProfessor("G2", profe.ID)
	require.NoError(t, err)
	_, err = svc.AssignProfessor("G3", otro.ID)
	require.NoError(t, err)

	groups, err := svc.GroupsByProfessor(profe.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestUsersWithStylesRejectsUnassignedGroup(t *testing.T) {
	svc, db := newGroupService(t)
	profe := createUser(t, db, "profe", "", model.TipoProfesor)

	_, err := svc.AssignProfessor("G1", profe.ID)
	require.NoError(t, err)

	_, err = svc.UsersWithStyles(profe.ID, "G2")
	assert.ErrorIs(t, err, util.ErrGroupNotAssigned)
}

func TestUsersWithStylesAttachesDominantStyle(t *testing.T) {
	svc, db := newGroupService(t)
	profe := createUser(t, db, "profe", "", model.TipoProfesor)
	ana := createUser(t, db, "ana", "G1", model.TipoEstudiante)
	createUser(t, db, "luis", "G1", model.TipoEstudiante)

	_, err := svc.AssignProfessor("G1", profe.ID)
	require.NoError(t, err)

	_, err = svc.PointsRepo.AddPoints(ana.ID, 3, 1, 0)
	require.NoError(t, err)

	users, err := svc.UsersWithStyles(profe.ID, "G1")
	require.NoError(t, err)
	require.Len(t, users, 2)

	styles := make(map[string]string, len(users))
	for _, u := range users {
		styles[u.Username] = u.EstiloDominante
	}
	assert.Equal(t, model.EstiloVisual, styles["ana"])
	// 没有累计记录的成员风格为空串
	assert.Empty(t, styles["luis"])
}

func TestProfessorsWithGroups(t *testing.T) {
	svc, db := newGroupService(t)
	profe := createUser(t, db, "profe", "", model.TipoProfesor)
	createUser(t, db, "sin_grupos", "", model.TipoProfesor)

	_, err := svc.AssignProfessor("G1", profe.ID)
	require.NoError(t, err)

	result, err := svc.ProfessorsWithGroups()
	require.NoError(t, err)
	require.Len(t, result, 2)

	byName := make(map[string][]string, len(result))
	for _, p := range result {
		byName[p.ProfesorNombre] = p.GruposAsignados
	}
	assert.Equal(t, []string{"G1"}, byName["profe"])
	assert.Empty(t, byName["sin_grupos"])
}

func TestUsersInGroup(t *testing.T) {
	svc, db := newGroupService(t)
	createUser(t, db, "ana", "G1", model.TipoEstudiante)
	createUser(t, db, "luis", "G2", model.TipoEstudiante)

	users, err := svc.UsersInGroup("G1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)
}
