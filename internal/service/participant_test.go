package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatroom_web/internal/models"
	"chatroom_web/internal/repository"
	"chatroom_web/internal/testutil"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(testutil.NewTestDB(t))
	return NewServices(repos), repos
}

func TestParticipantService_RegisterAndList(t *testing.T) {
	services, repos := newTestServices(t)

	require.NoError(t, services.Participant.Register("alice"))

	participants, err := services.Participant.List()
	require.NoError(t, err)
	require.Len(t, participants, 1)
	require.Equal(t, "alice", participants[0].Name)
	require.Greater(t, participants[0].LastStatus, int64(0))

	// 註冊時必須廣播一條加入事件
	messages, err := repos.Message.FindVisibleTo("bob", 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "alice", messages[0].FromName)
	require.Equal(t, models.BroadcastRecipient, messages[0].ToName)
	require.Equal(t, models.TypeStatus, messages[0].Type)
	require.Equal(t, "entra na sala...", messages[0].Text)
}

func TestParticipantService_RegisterDuplicate(t *testing.T) {
	services, _ := newTestServices(t)

	require.NoError(t, services.Participant.Register("alice"))
	require.ErrorIs(t, services.Participant.Register("alice"), ErrNameTaken)

	participants, err := services.Participant.List()
	require.NoError(t, err)
	require.Len(t, participants, 1)
}

func TestParticipantService_ListEmpty(t *testing.T) {
	services, _ := newTestServices(t)

	participants, err := services.Participant.List()
	require.NoError(t, err)
	require.NotNil(t, participants)
	require.Empty(t, participants)
}

func TestParticipantService_Heartbeat(t *testing.T) {
	services, repos := newTestServices(t)

	require.ErrorIs(t, services.Participant.Heartbeat("ghost"), ErrParticipantNotFound)

	require.NoError(t, services.Participant.Register("alice"))

	past := time.Now().Add(-time.Minute)
	_, err := repos.Participant.UpdateLastStatus("alice", past)
	require.NoError(t, err)

	require.NoError(t, services.Participant.Heartbeat("alice"))

	refreshed, err := repos.Participant.FindByName("alice")
	require.NoError(t, err)
	require.Equal(t, "alice", refreshed.Name)
	require.True(t, refreshed.LastStatus.After(past))
}

func TestParticipantService_Sweep(t *testing.T) {
	services, repos := newTestServices(t)

	require.NoError(t, services.Participant.Register("alice"))
	require.NoError(t, services.Participant.Register("bob"))

	now := time.Now()
	_, err := repos.Participant.UpdateLastStatus("alice", now.Add(-time.Minute))
	require.NoError(t, err)

	removed, err := services.Participant.Sweep(now, 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	participants, err := services.Participant.List()
	require.NoError(t, err)
	require.Len(t, participants, 1)
	require.Equal(t, "bob", participants[0].Name)

	// 被移除的參與者要有恰好一條離開事件
	messages, err := repos.Message.FindVisibleTo("carol", 0)
	require.NoError(t, err)

	departures := 0
	for _, message := range messages {
		if message.Type == models.TypeStatus && message.Text == "sai da sala..." {
			require.Equal(t, "alice", message.FromName)
			departures++
		}
	}
	require.Equal(t, 1, departures)
}

func TestParticipantService_SweepKeepsFresh(t *testing.T) {
	services, _ := newTestServices(t)

	require.NoError(t, services.Participant.Register("alice"))

	removed, err := services.Participant.Sweep(time.Now(), 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, removed)

	participants, err := services.Participant.List()
	require.NoError(t, err)
	require.Len(t, participants, 1)
}

func TestParticipantService_RegisterAfterSweep(t *testing.T) {
	services, repos := newTestServices(t)

	require.NoError(t, services.Participant.Register("alice"))

	now := time.Now()
	_, err := repos.Participant.UpdateLastStatus("alice", now.Add(-time.Minute))
	require.NoError(t, err)

	removed, err := services.Participant.Sweep(now, 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	// 離開後同名可以重新加入
	require.NoError(t, services.Participant.Register("alice"))
}
