package form

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formpulse/backend/srvcerror"
)

func TestNewAccessCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := newAccessCode()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), code)
		seen[code] = true
	}
	// 100 draws from a 36^6 space colliding would mean a broken generator
	assert.Greater(t, len(seen), 90)
}

// alwaysCollidingRepo reports every code as taken.
type alwaysCollidingRepo struct {
	*InMemFormRepo
}

func (r *alwaysCollidingRepo) GetByCode(ctx context.Context, code string) (*FormRow, error) {
	return &FormRow{Uuid: "occupied", AccessCode: code}, nil
}

func TestAccessCodeRetryExhaustion(t *testing.T) {
	srvc := NewFormSrvc(&alwaysCollidingRepo{NewInMemFormRepo()})

	_, err := srvc.CreateForm(context.Background(), CreateFormParams{
		OwnerUUID: uuid.New(),
		Title:     "T",
		Questions: []QuestionInput{{Text: "Q"}},
	})
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, ErrCodeAccessCodeExhausted, srvcErr.ErrorCode())
}

func TestAccessCodeRetriesPastCollisions(t *testing.T) {
	repo := NewInMemFormRepo()
	srvc := NewFormSrvc(repo)

	// seed a handful of forms; each new code must dodge the taken ones
	for i := 0; i < 10; i++ {
		_, err := srvc.CreateForm(context.Background(), CreateFormParams{
			OwnerUUID: uuid.New(),
			Title:     "T",
			Questions: []QuestionInput{{Text: "Q"}},
		})
		require.NoError(t, err)
	}

	codes := map[string]bool{}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, row := range repo.rows {
		assert.False(t, codes[row.AccessCode], "duplicate access code assigned")
		codes[row.AccessCode] = true
	}
}
