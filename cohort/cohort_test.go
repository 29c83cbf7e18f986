package cohort_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praksis-io/backend/cohort"
	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/subm"
	"github.com/praksis-io/backend/team"
	"github.com/praksis-io/backend/user"
)

type world struct {
	userSrvc *user.UserSrvc
	teamSrvc *team.TeamSrvc
	submSrvc *subm.SubmSrvc
	curric   *curriculum.Curriculum
	users    map[string]*user.User
}

func newWorld(t *testing.T, usernames ...string) *world {
	t.Helper()
	ctx := context.Background()

	curric := curriculum.New()
	curric.Add(curriculum.NewStaticTrack("ruby", []string{"cake", "bob"}))

	userSrvc := user.NewUserService(user.NewInMemUserRepo())
	w := &world{
		userSrvc: userSrvc,
		teamSrvc: team.NewTeamService(team.NewInMemTeamRepo()),
		submSrvc: subm.NewSubmSrvc(subm.NewInMemSubmRepo(), curric, userSrvc),
		curric:   curric,
		users:    map[string]*user.User{},
	}
	for _, name := range usernames {
		created, err := userSrvc.CreateUser(ctx, user.CreateUserParams{
			Username: name,
			Email:    name + "@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		w.users[name] = created
	}
	return w
}

func (w *world) team(t *testing.T, slug, creator string, members ...string) {
	t.Helper()
	ctx := context.Background()
	created, err := w.teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		Slug:        slug,
		CreatorUUID: w.users[creator].UUID,
	})
	require.NoError(t, err)
	for _, m := range members {
		_, err := w.teamSrvc.AddMember(ctx, created.Slug, w.users[m].UUID)
		require.NoError(t, err)
	}
}

func (w *world) cohortFor(name string) *cohort.Cohort {
	return cohort.For(w.users[name].UUID, cohort.Deps{
		Teams: w.teamSrvc,
		Users: w.userSrvc,
		Subms: w.submSrvc,
	})
}

func usernames(users []user.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

func TestCohortSetsForAMemberOfTwoTeams(t *testing.T) {
	w := newWorld(t, "alice", "bob", "charlie", "dave", "eve")
	w.team(t, "team1", "alice", "bob", "charlie")
	w.team(t, "team2", "alice", "bob", "dave", "eve")
	ctx := context.Background()

	c := w.cohortFor("bob")

	members, err := c.Members(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"charlie", "dave", "eve"}, usernames(members))

	managers, err := c.Managers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(managers))

	users, err := c.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "charlie", "dave", "eve"}, usernames(users))
}

func TestSeesIncludesManagersAndCompletedPeers(t *testing.T) {
	w := newWorld(t, "alice", "bob", "charlie", "dave", "eve")
	w.team(t, "team1", "alice", "bob", "charlie")
	w.team(t, "team2", "alice", "bob", "dave", "eve")
	ctx := context.Background()

	// charlie completed ruby/cake with a submission, dave through the
	// legacy record, eve not at all
	_, err := w.submSrvc.CreateAttempt(ctx, subm.CreateAttemptParams{
		Author: w.users["charlie"].UUID,
		Code:   "CODE",
		Path:   "cake/cake.rb",
	})
	require.NoError(t, err)
	require.NoError(t, w.userSrvc.MarkCompleted(ctx, w.users["dave"].UUID, "ruby", "cake"))

	sees, err := w.cohortFor("bob").Sees(ctx, curriculum.Exercise{Language: "ruby", Slug: "cake"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "charlie", "dave"}, usernames(sees))
}

func TestSeesExcludesPeersCompletedElsewhere(t *testing.T) {
	w := newWorld(t, "alice", "bob", "charlie")
	w.team(t, "team1", "alice", "bob", "charlie")
	ctx := context.Background()

	require.NoError(t, w.userSrvc.MarkCompleted(ctx, w.users["charlie"].UUID, "ruby", "bob"))

	sees, err := w.cohortFor("bob").Sees(ctx, curriculum.Exercise{Language: "ruby", Slug: "cake"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(sees))
}

func TestCohortOfACreatorWithNoMemberships(t *testing.T) {
	w := newWorld(t, "alice", "bob", "charlie")
	w.team(t, "team1", "alice", "bob", "charlie")
	ctx := context.Background()

	c := w.cohortFor("alice")

	members, err := c.Members(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	managers, err := c.Managers(ctx)
	require.NoError(t, err)
	assert.Empty(t, managers)

	users, err := c.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSelfCreatedTeamDoesNotMakeSubjectItsOwnManager(t *testing.T) {
	w := newWorld(t, "alice", "bob")
	ctx := context.Background()

	created, err := w.teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		Slug:        "own",
		CreatorUUID: w.users["alice"].UUID,
	})
	require.NoError(t, err)
	_, err = w.teamSrvc.AddMember(ctx, created.Slug, w.users["alice"].UUID)
	require.NoError(t, err)
	_, err = w.teamSrvc.AddMember(ctx, created.Slug, w.users["bob"].UUID)
	require.NoError(t, err)

	c := w.cohortFor("alice")

	managers, err := c.Managers(ctx)
	require.NoError(t, err)
	assert.Empty(t, managers)

	members, err := c.Members(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames(members))
}
