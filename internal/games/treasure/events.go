package treasure

import (
	"fmt"

	"github.com/vovakirdan/treasure-dash/internal/core"
)

// Event is something that happened during a Step.
type Event interface {
	event()
}

// Cause is the reason a life was lost.
type Cause int

const (
	CauseDeathZone Cause = iota
	CauseObstacle
)

func (c Cause) String() string {
	switch c {
	case CauseDeathZone:
		return "death zone"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// TreasureCollectedEvent fires when the player picks up a treasure.
type TreasureCollectedEvent struct {
	Index int
	Score int // Score after the award
}

func (TreasureCollectedEvent) event() {}

// LifeLostEvent fires once per cause that cost a life.
type LifeLostEvent struct {
	Cause Cause
	Lives int // Lives remaining
}

func (LifeLostEvent) event() {}

// LevelUpEvent fires after the next level has been generated.
type LevelUpEvent struct {
	Params Params
}

func (LevelUpEvent) event() {}

// GameOverEvent fires when the last life is lost.
type GameOverEvent struct {
	Score int
	Level int
}

func (GameOverEvent) event() {}

// NoticeFor converts an event into a UI banner.
// Events that do not deserve a banner return false.
func NoticeFor(e Event) (core.Notice, bool) {
	switch ev := e.(type) {
	case LevelUpEvent:
		p := ev.Params
		lines := []string{
			fmt.Sprintf("Obstacles: %d", p.Obstacles),
			fmt.Sprintf("Treasures: %d", p.Treasures),
			fmt.Sprintf("Death zone: %.0f", p.DeathZone),
		}
		if p.Moving > 0 {
			lines = append(lines, fmt.Sprintf("Moving obstacles: %d", p.Moving))
		}
		return core.Notice{Title: fmt.Sprintf("Level %d!", p.Level), Lines: lines}, true
	case LifeLostEvent:
		return core.Notice{
			Title: "Ouch!",
			Lines: []string{fmt.Sprintf("Hit the %s - %d lives left", ev.Cause, ev.Lives)},
		}, true
	case GameOverEvent:
		return core.Notice{
			Title: "Game Over",
			Lines: []string{fmt.Sprintf("Final score %d on level %d", ev.Score, ev.Level)},
		}, true
	default:
		return core.Notice{}, false
	}
}
