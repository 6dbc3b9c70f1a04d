package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByUserIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo := NewPostgresRepository(nil)

	got, err := repo.ListByUserIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
