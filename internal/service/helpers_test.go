package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/notify"
	"github.com/bagdasarian/devteam-dashboard/internal/repository/memory"
	"github.com/bagdasarian/devteam-dashboard/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "devTeamData"

type testServices struct {
	store    *store.Store
	kv       *memory.KVRepository
	members  MemberService
	projects ProjectService
	tasks    TaskService
	deletion *deletionService
}

// setupServices создает сервисы поверх хранилища в памяти с начальными данными
func setupServices(t *testing.T) *testServices {
	t.Helper()
	kv := memory.NewKVRepository()
	st := store.New(kv, testKey, notify.NewLogNotifier(zap.NewNop()), zap.NewNop())
	require.NoError(t, st.Load(context.Background()))

	writeMu := &sync.Mutex{}
	return &testServices{
		store:    st,
		kv:       kv,
		members:  NewMemberService(st, writeMu, zap.NewNop()),
		projects: NewProjectService(st, writeMu, zap.NewNop()),
		tasks:    NewTaskService(st, writeMu, zap.NewNop()),
		deletion: NewDeletionService(st, writeMu, time.Minute, zap.NewNop()).(*deletionService),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// failingKV читает успешно, но никогда не может записать
type failingKV struct {
	*memory.KVRepository
}

func (f failingKV) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}
