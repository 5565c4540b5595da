package application

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := &memStore{}
	sourceService := newTestService(source)

	_, err := sourceService.AddAccount(ctx, "Work", "sk-work-0001")
	require.NoError(t, err)
	cooling, err := sourceService.AddAccount(ctx, "Personal", "sk-personal-0001")
	require.NoError(t, err)
	require.NoError(t, sourceService.SetCooldown(ctx, cooling.ID, time.Hour))

	var buf bytes.Buffer
	require.NoError(t, sourceService.Export(ctx, &buf))

	target := &memStore{}
	added, err := newTestService(target).Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	restored, err := target.GetByKey(ctx, "sk-personal-0001")
	require.NoError(t, err)
	assert.Equal(t, "Personal", restored.Name)
	require.NotNil(t, restored.AvailableAt)
	assert.Equal(t, serviceNow.Add(time.Hour).UnixMilli(), restored.AvailableAt.UnixMilli())

	usable, err := target.GetByKey(ctx, "sk-work-0001")
	require.NoError(t, err)
	assert.Nil(t, usable.AvailableAt)
}

func TestExportOmitsAvailableAtWhenUsable(t *testing.T) {
	ctx := context.Background()
	service := newTestService(&memStore{})

	_, err := service.AddAccount(ctx, "Work", "sk-work-0001")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.Export(ctx, &buf))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "availableAt")
}

func TestExportEmptyStore(t *testing.T) {
	service := newTestService(&memStore{})

	var buf bytes.Buffer
	assert.Error(t, service.Export(context.Background(), &buf))
}

func TestImportDelimitedLines(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	service := newTestService(store)

	input := strings.Join([]string{
		"Work|sk-work-00001",
		"Personal,sk-personal-1",
		"|short",
		"no delimiter here",
		"",
	}, "\n")

	added, err := service.Import(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	work, err := store.GetByKey(ctx, "sk-work-00001")
	require.NoError(t, err)
	assert.Equal(t, "Work", work.Name)
}

func TestImportDefaultsMissingName(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	service := newTestService(store)

	added, err := service.Import(ctx, strings.NewReader("|sk-anon-00001\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	account, err := store.GetByKey(ctx, "sk-anon-00001")
	require.NoError(t, err)
	assert.Equal(t, "Imported", account.Name)
}

func TestImportSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	service := newTestService(store)

	_, err := service.AddAccount(ctx, "Work", "sk-work-00001")
	require.NoError(t, err)

	added, err := service.Import(ctx, strings.NewReader("Work|sk-work-00001\nNew|sk-new-000001\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Len(t, store.accounts, 2)
}

func TestImportUnrecognizedData(t *testing.T) {
	service := newTestService(&memStore{})

	_, err := service.Import(context.Background(), strings.NewReader("nothing usable"))
	assert.Error(t, err)
}
