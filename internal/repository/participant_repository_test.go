package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatroom_web/internal/models"
	"chatroom_web/internal/testutil"
)

func TestParticipantRepository_CreateAndFind(t *testing.T) {
	repo := NewParticipantRepository(testutil.NewTestDB(t))

	participant := models.NewParticipant("alice")
	require.NoError(t, repo.Create(&participant))

	found, err := repo.FindByName("alice")
	require.NoError(t, err)
	require.Equal(t, "alice", found.Name)
	require.False(t, found.LastStatus.IsZero())

	_, err = repo.FindByName("bob")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestParticipantRepository_UniqueName(t *testing.T) {
	repo := NewParticipantRepository(testutil.NewTestDB(t))

	first := models.NewParticipant("alice")
	require.NoError(t, repo.Create(&first))

	second := models.NewParticipant("alice")
	require.ErrorIs(t, repo.Create(&second), gorm.ErrDuplicatedKey)
}

func TestParticipantRepository_UpdateLastStatus(t *testing.T) {
	repo := NewParticipantRepository(testutil.NewTestDB(t))

	participant := models.NewParticipant("alice")
	require.NoError(t, repo.Create(&participant))

	later := time.Now().Add(time.Minute)
	affected, err := repo.UpdateLastStatus("alice", later)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = repo.UpdateLastStatus("bob", later)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)
}

func TestParticipantRepository_FindStale(t *testing.T) {
	repo := NewParticipantRepository(testutil.NewTestDB(t))

	now := time.Now()
	for _, p := range []models.Participant{
		{Name: "fresh", LastStatus: now},
		{Name: "stale", LastStatus: now.Add(-time.Minute)},
	} {
		participant := p
		require.NoError(t, repo.Create(&participant))
	}

	stale, err := repo.FindStale(now.Add(-10 * time.Second))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, "stale", stale[0].Name)
}

func TestParticipantRepository_DeleteFreesName(t *testing.T) {
	repo := NewParticipantRepository(testutil.NewTestDB(t))

	participant := models.NewParticipant("alice")
	require.NoError(t, repo.Create(&participant))
	require.NoError(t, repo.DeleteByName("alice"))

	_, err := repo.FindByName("alice")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 離開後必須可以用同一個暱稱重新加入
	again := models.NewParticipant("alice")
	require.NoError(t, repo.Create(&again))
}
