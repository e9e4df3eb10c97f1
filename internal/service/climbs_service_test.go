package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/internal/service"
	"github.com/limbo/cragbook/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var climbID = uuid.New()

type gradeResolverMock struct {
	err   error
	calls int
}

func (grmock *gradeResolverMock) ResolveGrade(ctx context.Context, name string) (*entity.Grade, error) {
	grmock.calls++
	if grmock.err != nil {
		return nil, grmock.err
	}
	return &entity.Grade{ID: gradeID, Name: name}, nil
}

type sessionResolverMock struct {
	err error
}

func (srmock *sessionResolverMock) ResolveSession(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Session, error) {
	if srmock.err != nil {
		return nil, srmock.err
	}
	return &entity.Session{ID: sessionID, UserID: uid, Date: date}, nil
}

type climbRepoMock struct {
	state    mockState
	created  *entity.Climb
	rows     []repository.ClimbRow
	updated  []string
	listFrom time.Time
	countTo  time.Time
}

func (crmock *climbRepoMock) Create(ctx context.Context, climb *entity.Climb) (*entity.Climb, error) {
	switch crmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateTimeout:
		return nil, fmt.Errorf("creating climb db error: %w", context.DeadlineExceeded)
	}
	created := *climb
	created.ID = climbID
	crmock.created = &created
	return &created, nil
}

func (crmock *climbRepoMock) GetOwnedByID(ctx context.Context, id uuid.UUID) (*entity.OwnedClimb, error) {
	switch crmock.state {
	case stateNotFound:
		return nil, errorvalues.ErrClimbNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		return &entity.OwnedClimb{Climb: entity.Climb{ID: id, SessionID: sessionID}, UserID: uuid.New()}, nil
	default:
		return &entity.OwnedClimb{Climb: entity.Climb{ID: id, SessionID: sessionID}, UserID: userID}, nil
	}
}

func (crmock *climbRepoMock) UpdateDescription(ctx context.Context, id uuid.UUID, description *string) error {
	if description == nil {
		crmock.updated = append(crmock.updated, "description:<nil>")
	} else {
		crmock.updated = append(crmock.updated, "description:"+*description)
	}
	return nil
}

func (crmock *climbRepoMock) UpdateGrade(ctx context.Context, id, gID uuid.UUID) error {
	crmock.updated = append(crmock.updated, "grade")
	return nil
}

func (crmock *climbRepoMock) UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error {
	crmock.updated = append(crmock.updated, "attempts")
	return nil
}

func (crmock *climbRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	crmock.updated = append(crmock.updated, "delete")
	return nil
}

func (crmock *climbRepoMock) ListByUserAndDay(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]repository.ClimbRow, error) {
	crmock.listFrom = from
	switch crmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateTimeout:
		return nil, fmt.Errorf("listing climbs for day error: %w", context.DeadlineExceeded)
	}
	return crmock.rows, nil
}

func (crmock *climbRepoMock) CountByDay(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error) {
	crmock.countTo = to
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []entity.ClimbDay{{Date: from, Climbs: 2}}, nil
}

func newClimbsServiceWithMocks(repo *climbRepoMock, gr *gradeResolverMock) *service.ClimbsService {
	return service.NewClimbsService(repo, gr, &sessionResolverMock{}, &txManagerMock{}, nil, nil)
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestLogClimb(t *testing.T) {
	ctx := context.Background()
	t.Run("defaults to one attempt", func(t *testing.T) {
		repo := &climbRepoMock{}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		c, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V3"})
		require.NoError(t, err)
		assert.Equal(t, climbID, c.ID)
		assert.Equal(t, sessionID, c.SessionID)
		assert.Equal(t, gradeID, c.GradeID)
		assert.Equal(t, 1, c.Attempts)
		assert.Nil(t, c.Description)
	})
	t.Run("keeps attempts and trimmed description", func(t *testing.T) {
		repo := &climbRepoMock{}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		c, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{
			Date:        climbDate,
			Grade:       "V3",
			Attempts:    intPtr(2),
			Description: strPtr("  flash attempt "),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Attempts)
		require.NotNil(t, c.Description)
		assert.Equal(t, "flash attempt", *c.Description)
	})
	t.Run("blank description stored as absent", func(t *testing.T) {
		repo := &climbRepoMock{}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		c, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V3", Description: strPtr("   ")})
		require.NoError(t, err)
		assert.Nil(t, c.Description)
	})
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			req      *service.LogClimbRequest
			sentinel error
		}{
			{"nil request", nil, errorvalues.ErrValidation},
			{"unknown grade", &service.LogClimbRequest{Date: climbDate, Grade: "V18"}, errorvalues.ErrInvalidGrade},
			{"empty grade", &service.LogClimbRequest{Date: climbDate}, errorvalues.ErrInvalidGrade},
			{"zero attempts", &service.LogClimbRequest{Date: climbDate, Grade: "V1", Attempts: intPtr(0)}, errorvalues.ErrInvalidAttempts},
			{"too many attempts", &service.LogClimbRequest{Date: climbDate, Grade: "V1", Attempts: intPtr(100)}, errorvalues.ErrInvalidAttempts},
			{"missing date", &service.LogClimbRequest{Grade: "V1"}, errorvalues.ErrInvalidDate},
			{"long description", &service.LogClimbRequest{Date: climbDate, Grade: "V1", Description: strPtr(strings.Repeat("a", 501))}, errorvalues.ErrValidation},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := &climbRepoMock{}
				gr := &gradeResolverMock{}
				s := newClimbsServiceWithMocks(repo, gr)
				_, err := s.LogClimb(ctx, userID, tc.req)
				assert.ErrorIs(t, err, errorvalues.ErrValidation)
				assert.ErrorIs(t, err, tc.sentinel)
				assert.Equal(t, 0, gr.calls)
				assert.Nil(t, repo.created)
			})
		}
	})
	t.Run("anonymous user", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{}, &gradeResolverMock{})
		_, err := s.LogClimb(ctx, uuid.Nil, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.ErrorIs(t, err, errorvalues.ErrUnauthenticated)
	})
	t.Run("grade resolution error", func(t *testing.T) {
		repo := &climbRepoMock{}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{err: errors.New("db error")})
		_, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.Error(t, err)
		assert.Nil(t, repo.created)
	})
	t.Run("session resolution error", func(t *testing.T) {
		repo := &climbRepoMock{}
		s := service.NewClimbsService(repo, &gradeResolverMock{}, &sessionResolverMock{err: errors.New("db error")}, &txManagerMock{}, nil, nil)
		_, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.Error(t, err)
		assert.Nil(t, repo.created)
	})
	t.Run("db error", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{state: stateDBError}, &gradeResolverMock{})
		_, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.Error(t, err)
	})
	t.Run("timeouts keep their cause", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{state: stateTimeout}, &gradeResolverMock{})
		_, err := s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		s = service.NewClimbsService(&climbRepoMock{}, &gradeResolverMock{},
			&sessionResolverMock{err: context.DeadlineExceeded}, &txManagerMock{}, nil, nil)
		_, err = s.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate, Grade: "V1"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClimbUpdates(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		repo := &climbRepoMock{}
		gr := &gradeResolverMock{}
		s := newClimbsServiceWithMocks(repo, gr)
		assert.NoError(t, s.UpdateDescription(ctx, userID, climbID, " crimpy "))
		assert.NoError(t, s.UpdateDescription(ctx, userID, climbID, ""))
		assert.NoError(t, s.UpdateGrade(ctx, userID, climbID, "V4"))
		assert.NoError(t, s.UpdateAttempts(ctx, userID, climbID, 5))
		assert.NoError(t, s.RemoveClimb(ctx, userID, climbID))
		assert.Equal(t, []string{"description:crimpy", "description:<nil>", "grade", "attempts", "delete"}, repo.updated)
		assert.Equal(t, 1, gr.calls)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo := &climbRepoMock{state: stateWrongOwner}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		assert.ErrorIs(t, s.UpdateDescription(ctx, userID, climbID, "x"), errorvalues.ErrWrongOwner)
		assert.ErrorIs(t, s.UpdateGrade(ctx, userID, climbID, "V4"), errorvalues.ErrWrongOwner)
		assert.ErrorIs(t, s.UpdateAttempts(ctx, userID, climbID, 3), errorvalues.ErrWrongOwner)
		assert.ErrorIs(t, s.RemoveClimb(ctx, userID, climbID), errorvalues.ErrWrongOwner)
		assert.Empty(t, repo.updated)
	})
	t.Run("climb not found", func(t *testing.T) {
		repo := &climbRepoMock{state: stateNotFound}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		assert.ErrorIs(t, s.UpdateAttempts(ctx, userID, climbID, 3), errorvalues.ErrClimbNotFound)
		assert.ErrorIs(t, s.RemoveClimb(ctx, userID, climbID), errorvalues.ErrClimbNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{state: stateDBError}, &gradeResolverMock{})
		err := s.RemoveClimb(ctx, userID, climbID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrClimbNotFound)
	})
	t.Run("invalid values rejected before lookup", func(t *testing.T) {
		repo := &climbRepoMock{state: stateDBError}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		assert.ErrorIs(t, s.UpdateGrade(ctx, userID, climbID, "5.12a"), errorvalues.ErrInvalidGrade)
		assert.ErrorIs(t, s.UpdateAttempts(ctx, userID, climbID, 0), errorvalues.ErrInvalidAttempts)
		assert.ErrorIs(t, s.UpdateAttempts(ctx, userID, climbID, 100), errorvalues.ErrInvalidAttempts)
		assert.ErrorIs(t, s.UpdateDescription(ctx, userID, climbID, strings.Repeat("b", 501)), errorvalues.ErrValidation)
	})
	t.Run("anonymous user", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{}, &gradeResolverMock{})
		assert.ErrorIs(t, s.RemoveClimb(ctx, uuid.Nil, climbID), errorvalues.ErrUnauthenticated)
	})
}

func TestListClimbsForDate(t *testing.T) {
	ctx := context.Background()
	v1, v3, empty := "V1", "V3", ""
	t.Run("orders by grade then description", func(t *testing.T) {
		repo := &climbRepoMock{rows: []repository.ClimbRow{
			{ID: uuid.New(), SessionID: sessionID, GradeName: &v3, Description: strPtr("flash attempt"), Attempts: 2},
			{ID: uuid.New(), SessionID: sessionID, GradeName: &v3, Attempts: 1},
			{ID: uuid.New(), SessionID: sessionID, GradeName: &v1, Attempts: 1},
		}}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		views, err := s.ListClimbsForDate(ctx, userID, climbDate)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "V1", views[0].GradeName)
		assert.Equal(t, "V3", views[1].GradeName)
		assert.Equal(t, "", views[1].Description)
		assert.Equal(t, "V3", views[2].GradeName)
		assert.Equal(t, "flash attempt", views[2].Description)
	})
	t.Run("drops rows without grade", func(t *testing.T) {
		repo := &climbRepoMock{rows: []repository.ClimbRow{
			{ID: uuid.New(), SessionID: sessionID, GradeName: nil, Attempts: 1},
			{ID: uuid.New(), SessionID: sessionID, GradeName: &empty, Attempts: 1},
			{ID: uuid.New(), SessionID: sessionID, GradeName: &v1, Attempts: 1},
		}}
		s := newClimbsServiceWithMocks(repo, &gradeResolverMock{})
		views, err := s.ListClimbsForDate(ctx, userID, climbDate)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "V1", views[0].GradeName)
	})
	t.Run("empty day", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{}, &gradeResolverMock{})
		views, err := s.ListClimbsForDate(ctx, userID, climbDate)
		assert.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
	t.Run("db error", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{state: stateDBError}, &gradeResolverMock{})
		_, err := s.ListClimbsForDate(ctx, userID, climbDate)
		assert.Error(t, err)
	})
	t.Run("zero date", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{}, &gradeResolverMock{})
		_, err := s.ListClimbsForDate(ctx, userID, time.Time{})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("timeout keeps its cause", func(t *testing.T) {
		s := newClimbsServiceWithMocks(&climbRepoMock{state: stateTimeout}, &gradeResolverMock{})
		_, err := s.ListClimbsForDate(ctx, userID, climbDate)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
	t.Run("day is cut in the configured zone", func(t *testing.T) {
		cet := time.FixedZone("CET", 3600)
		repo := &climbRepoMock{}
		s := service.NewClimbsService(repo, &gradeResolverMock{}, &sessionResolverMock{}, &txManagerMock{}, cet, nil)
		// 23:30 UTC on March 1st is already March 2nd in CET
		_, err := s.ListClimbsForDate(ctx, userID, time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 3, 2, 0, 0, 0, 0, cet).Equal(repo.listFrom), "listed from %v", repo.listFrom)
	})
}

func TestSortClimbViewsUnknownGradesLast(t *testing.T) {
	views := []entity.ClimbView{
		{GradeName: "V10"},
		{GradeName: "zz"},
		{GradeName: "V2", Description: "b"},
		{GradeName: "V2", Description: "a"},
		{GradeName: "aa"},
	}
	service.SortClimbViews(views)
	got := make([]string, 0, len(views))
	for _, v := range views {
		got = append(got, v.GradeName+v.Description)
	}
	assert.Equal(t, []string{"V2a", "V2b", "V10", "aa", "zz"}, got)
}

func TestClimbDays(t *testing.T) {
	ctx := context.Background()
	s := newClimbsServiceWithMocks(&climbRepoMock{}, &gradeResolverMock{})
	t.Run("success", func(t *testing.T) {
		days, err := s.ClimbDays(ctx, userID, climbDate, climbDate.AddDate(0, 0, 30))
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, climbDate, days[0].Date)
	})
	t.Run("single day range", func(t *testing.T) {
		_, err := s.ClimbDays(ctx, userID, climbDate, climbDate)
		assert.NoError(t, err)
	})
	t.Run("reversed range", func(t *testing.T) {
		_, err := s.ClimbDays(ctx, userID, climbDate, climbDate.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("range longer than a year", func(t *testing.T) {
		_, err := s.ClimbDays(ctx, userID, climbDate, climbDate.AddDate(2, 0, 0))
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("range ends in the configured zone", func(t *testing.T) {
		cet := time.FixedZone("CET", 3600)
		repo := &climbRepoMock{}
		zoned := service.NewClimbsService(repo, &gradeResolverMock{}, &sessionResolverMock{}, &txManagerMock{}, cet, nil)
		_, err := zoned.ClimbDays(ctx, userID, climbDate, time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 3, 7, 0, 0, 0, 0, cet).Equal(repo.countTo), "counted to %v", repo.countTo)
	})
}

func newMemServices(store *memStore) (*service.ClimbsService, *service.StatsService) {
	grades := service.NewGradesService(memGrades{store}, nil)
	sessions := service.NewSessionsService(memSessions{store}, store, nil, nil)
	climbs := service.NewClimbsService(memClimbs{store}, grades, sessions, store, nil, nil)
	return climbs, service.NewStatsService(memStats{store})
}

func TestClimbingDayScenario(t *testing.T) {
	store := newMemStore()
	climbs, stats := newMemServices(store)
	ctx := context.Background()

	total, err := stats.TotalLoggedClimbs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	views, err := climbs.ListClimbsForDate(ctx, userID, climbDate)
	require.NoError(t, err)
	assert.Empty(t, views)

	flash, err := climbs.LogClimb(ctx, userID, &service.LogClimbRequest{
		Date:        climbDate.Add(10 * time.Hour),
		Grade:       "V3",
		Attempts:    intPtr(2),
		Description: strPtr("flash attempt"),
	})
	require.NoError(t, err)
	views, err = climbs.ListClimbsForDate(ctx, userID, climbDate)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "V3", views[0].GradeName)
	assert.Equal(t, 2, views[0].Attempts)
	assert.Equal(t, "flash attempt", views[0].Description)

	_, err = climbs.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate.Add(11 * time.Hour), Grade: "V1"})
	require.NoError(t, err)
	plain, err := climbs.LogClimb(ctx, userID, &service.LogClimbRequest{Date: climbDate.Add(12 * time.Hour), Grade: "V3"})
	require.NoError(t, err)

	views, err = climbs.ListClimbsForDate(ctx, userID, climbDate.Add(23*time.Hour))
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "V1", views[0].GradeName)
	assert.Equal(t, "V3", views[1].GradeName)
	assert.Equal(t, "", views[1].Description)
	assert.Equal(t, "V3", views[2].GradeName)
	assert.Equal(t, "flash attempt", views[2].Description)
	for _, v := range views {
		assert.Equal(t, flash.SessionID, v.SessionID)
	}
	assert.Len(t, store.sessionsOf(userID), 1)
	assert.Equal(t, 1, store.gradeCount("V3"))

	total, err = stats.TotalLoggedClimbs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	summary, err := stats.UserStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalClimbs)
	assert.Equal(t, 4, summary.TotalAttempts)
	assert.Equal(t, 1, summary.Sessions)
	assert.Equal(t, "V3", summary.HardestGrade)
	assert.Equal(t, []entity.GradeCount{{Grade: "V1", Count: 1}, {Grade: "V3", Count: 2}}, summary.PerGrade)

	// Another user's day stays separate
	otherViews, err := climbs.ListClimbsForDate(ctx, uuid.New(), climbDate)
	require.NoError(t, err)
	assert.Empty(t, otherViews)

	// Next day starts empty
	nextViews, err := climbs.ListClimbsForDate(ctx, userID, climbDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, nextViews)

	require.NoError(t, climbs.RemoveClimb(ctx, userID, flash.ID))
	views, err = climbs.ListClimbsForDate(ctx, userID, climbDate)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Len(t, store.sessionsOf(userID), 1)
	total, err = stats.TotalLoggedClimbs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// Regrading moves the climb in the listing without adding a row
	require.NoError(t, climbs.UpdateGrade(ctx, userID, plain.ID, "V0"))
	views, err = climbs.ListClimbsForDate(ctx, userID, climbDate)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, plain.ID, views[0].ID)
	assert.Equal(t, "V0", views[0].GradeName)
	assert.Equal(t, "V1", views[1].GradeName)
	assert.Equal(t, 2, store.climbCount())
	total, err = stats.TotalLoggedClimbs(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	days, err := climbs.ClimbDays(ctx, userID, climbDate.AddDate(0, 0, -3), climbDate.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].Climbs)
}

func TestLogClimbConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	store := newMemStore()
	climbs, stats := newMemServices(store)
	const callers = 20
	labels := []string{"V2", "V4", "V2", "V6"}
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := climbs.LogClimb(context.Background(), userID, &service.LogClimbRequest{
				Date:  climbDate.Add(time.Duration(i) * time.Minute),
				Grade: labels[i%len(labels)],
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.sessionsOf(userID), 1)
	assert.Equal(t, callers, store.climbCount())
	assert.Equal(t, 1, store.gradeCount("V2"))
	assert.Equal(t, 1, store.gradeCount("V4"))
	assert.Equal(t, 1, store.gradeCount("V6"))
	total, err := stats.TotalLoggedClimbs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, callers, total)
}
