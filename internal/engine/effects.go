package engine

import "github.com/ninakotova/gemgrid/internal/grid"

// Phase names the turn state machine's stations. The machine runs
// synchronously inside SubmitSelection; phases tag effects so consumers
// can group animation by stage.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseSwapTentative Phase = "swap_tentative"
	PhaseMatchCheck    Phase = "match_check"
	PhaseRollback      Phase = "rollback"
	PhaseCommit        Phase = "commit"
	PhaseGravityApply  Phase = "gravity_apply"
	PhaseCascadeLoop   Phase = "cascade_loop"
	PhaseScoreApply    Phase = "score_apply"
	PhaseSpecialUpdate Phase = "special_update"
	PhaseQueueRefill   Phase = "queue_refill"
)

// EffectKind tags one presentation-facing effect record.
type EffectKind string

const (
	EffectSwap          EffectKind = "swap"
	EffectRollback      EffectKind = "rollback"
	EffectClear         EffectKind = "clear"
	EffectMove          EffectKind = "move"
	EffectSpawn         EffectKind = "spawn"
	EffectOrbSpawn      EffectKind = "orb_spawn"
	EffectOrbExit       EffectKind = "orb_exit"
	EffectObstacleSpawn EffectKind = "obstacle_spawn"
	EffectObstacleExit  EffectKind = "obstacle_exit"
)

// Effect is one ordered presentation record. The sequence emitted for a
// turn is sufficient to drive animation without reading board internals.
type Effect struct {
	Kind    EffectKind
	Phase   Phase
	From    grid.Coord
	To      grid.Coord
	Tile    grid.Tile
	Cascade int  // cascade level for clear/move/spawn records, 0 otherwise
	Scored  bool // orb exits: reached the target edge
	Points  int  // orb exits: points awarded
}
