package model

import (
	"time"
)

// EntityType identifies which primary table a link reference points at.
type EntityType string

const (
	EntityUser        EntityType = "user"
	EntityCompetition EntityType = "competition"
	EntityExercise    EntityType = "exercise"
	EntityTag         EntityType = "tag"
	EntityTeam        EntityType = "team"
	EntityContainer   EntityType = "container"
)

// LinkKind discriminates the six many-to-many association tables.
type LinkKind string

const (
	LinkUserCompetition      LinkKind = "user_competition"
	LinkUserTeam             LinkKind = "user_team"
	LinkTeamCompetition      LinkKind = "team_competition"
	LinkExerciseTag          LinkKind = "exercise_tag"
	LinkExerciseCompetition  LinkKind = "exercise_competition"
	LinkContainerCompetition LinkKind = "container_competition"
)

// LinkSpec describes the shape of one kind: the table it maps to, the
// entity types on each side, and the column/JSON field names. Pairs are
// ordered; the left and right sides are always different entity types.
type LinkSpec struct {
	Kind       LinkKind
	Table      string
	Left       EntityType
	Right      EntityType
	LeftField  string // column and JSON body field for the left reference
	RightField string // column and JSON body field for the right reference
}

var linkSpecs = map[LinkKind]LinkSpec{
	LinkUserCompetition: {
		Kind: LinkUserCompetition, Table: "user_competitions",
		Left: EntityUser, Right: EntityCompetition,
		LeftField: "user_id", RightField: "competition_id",
	},
	LinkUserTeam: {
		Kind: LinkUserTeam, Table: "user_teams",
		Left: EntityUser, Right: EntityTeam,
		LeftField: "user_id", RightField: "team_id",
	},
	LinkTeamCompetition: {
		Kind: LinkTeamCompetition, Table: "team_competitions",
		Left: EntityTeam, Right: EntityCompetition,
		LeftField: "team_id", RightField: "competition_id",
	},
	LinkExerciseTag: {
		Kind: LinkExerciseTag, Table: "exercise_tags",
		Left: EntityExercise, Right: EntityTag,
		LeftField: "exercise_id", RightField: "tag_id",
	},
	LinkExerciseCompetition: {
		Kind: LinkExerciseCompetition, Table: "exercise_competitions",
		Left: EntityExercise, Right: EntityCompetition,
		LeftField: "exercise_id", RightField: "competition_id",
	},
	LinkContainerCompetition: {
		Kind: LinkContainerCompetition, Table: "container_competitions",
		Left: EntityContainer, Right: EntityCompetition,
		LeftField: "container_id", RightField: "competition_id",
	},
}

// SpecFor resolves a kind to its spec. The second return is false for
// kinds outside the six known tables.
func SpecFor(kind LinkKind) (LinkSpec, bool) {
	spec, ok := linkSpecs[kind]
	return spec, ok
}

// AllLinkKinds returns every known kind in a stable order.
func AllLinkKinds() []LinkKind {
	return []LinkKind{
		LinkUserCompetition,
		LinkUserTeam,
		LinkTeamCompetition,
		LinkExerciseTag,
		LinkExerciseCompetition,
		LinkContainerCompetition,
	}
}

// Link is one association record. It carries no mutable state: a pair
// is either PRESENT (a row exists) or ABSENT.
type Link struct {
	ID        string    `json:"id"`
	Kind      LinkKind  `json:"kind"`
	LeftID    string    `json:"left_id"`
	RightID   string    `json:"right_id"`
	CreatedAt time.Time `json:"created_at"`
}
