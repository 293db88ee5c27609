// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morshues/msync/models"
)

func Test_buildSelectTasksByStatusQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectTasksByStatusQuery(ctx, models.StatusPending)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, string(models.StatusPending), args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from sync_tasks")
	require.Contains(t, q, "where")
	require.Contains(t, q, "status")
	require.Contains(t, q, "order by priority desc, created_at asc")

	// placeholder format should be ? (sqlite)
	require.Contains(t, query, "?")
}

func Test_buildSelectTasksByStatusQuery_SelectsAllExpectedColumns(t *testing.T) {
	ctx := context.Background()

	query, _, err := buildSelectTasksByStatusQuery(ctx, models.StatusCompleted)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	for _, c := range taskColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectTasksByStatusQuery_NoStatusesMatchesEverything(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectTasksByStatusQuery(ctx)
	require.NoError(t, err)

	require.Empty(t, args)
	require.NotContains(t, strings.ToLower(query), "where")
}

func Test_buildSelectTasksByStatusQuery_MultipleStatuses(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildSelectTasksByStatusQuery(ctx,
		models.StatusCompleted, models.StatusFailed, models.StatusCancelled)
	require.NoError(t, err)

	// squirrel generates IN (?,?,?) for a slice.
	require.Contains(t, query, "IN (?,?,?)")

	require.Len(t, args, 3)
	require.Equal(t, string(models.StatusCompleted), args[0])
	require.Equal(t, string(models.StatusFailed), args[1])
	require.Equal(t, string(models.StatusCancelled), args[2])
}

func Test_buildDeleteTasksByStatusQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildDeleteTasksByStatusQuery(ctx,
		models.StatusCompleted, models.StatusFailed)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from sync_tasks")
	require.Contains(t, q, "status in (?,?)")

	require.Len(t, args, 2)
	require.Equal(t, string(models.StatusCompleted), args[0])
	require.Equal(t, string(models.StatusFailed), args[1])
}

func Test_buildDeleteTasksByDirectionQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildDeleteTasksByDirectionQuery(ctx, models.DirectionDownload)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from sync_tasks")
	require.Contains(t, q, "direction = ?")

	require.Len(t, args, 1)
	require.Equal(t, string(models.DirectionDownload), args[0])
}

func Test_buildDeleteTasksByFolderQuery(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildDeleteTasksByFolderQuery(ctx, "/home/user/photos")
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from sync_tasks")
	require.Contains(t, q, "folder_path = ?")

	require.Len(t, args, 1)
	require.Equal(t, "/home/user/photos", args[0])
}
