package jungle

import (
	"github.com/vovakirdan/jungle-drill/internal/events"
)

// TurnLeft rotates the player counter-clockwise.
func (s *Session) TurnLeft() Result {
	if s.open != nil {
		return result(OutcomeNoOp)
	}
	s.player.Dir = s.player.Dir.Left()
	return result(OutcomeStateUpdated)
}

// TurnRight rotates the player clockwise.
func (s *Session) TurnRight() Result {
	if s.open != nil {
		return result(OutcomeNoOp)
	}
	s.player.Dir = s.player.Dir.Right()
	return result(OutcomeStateUpdated)
}

// Forward tries to step one cell in the facing direction. Leaving the
// viewport is illegal, passable ground is walked onto, and grass opens the
// cell's question without moving.
func (s *Session) Forward() Result {
	if s.open != nil {
		return result(OutcomeNoOp)
	}

	target := s.player.Pos.Add(s.player.Dir.Delta())
	if !target.Within(s.viewSize) {
		return result(OutcomeIllegalMove, events.IllegalMoveEvent{Row: target.Row, Col: target.Col})
	}

	cell := s.board.At(target)
	if s.rules.Grassy(cell.Grass) {
		cell.Revealed = true
		s.open = &openQuestion{target: target, grassBefore: cell.Grass, scoreBefore: s.score}
		s.wrongAnswers = 0
		return result(OutcomeQuestionOpened, events.QuestionOpenedEvent{
			Row:    target.Row,
			Col:    target.Col,
			Prompt: cell.Question.Prompt(),
		})
	}

	s.player.Pos = target
	cell.Revealed = true
	res := result(OutcomeStateUpdated)
	if evt, ok := s.collectBonus(cell); ok {
		res.Events = append(res.Events, evt)
	}
	return res
}

// SubmitAnswer checks v against the open question.
func (s *Session) SubmitAnswer(v int) Result {
	if s.open == nil {
		return result(OutcomeNoOp)
	}

	target := s.open.target
	cell := s.board.At(target)

	if !cell.Question.Check(v) {
		cell.setGrass(s.rules.AfterWrong(cell.Grass), s.rules.MaxGrass)
		s.wrongAnswers++
		s.score = s.rules.penalize(s.score)
		return result(OutcomeIncorrect, events.AnswerIncorrectEvent{
			Row:          target.Row,
			Col:          target.Col,
			WrongAnswers: s.wrongAnswers,
		})
	}

	cell.setGrass(s.rules.AfterCorrect(cell.Grass), s.rules.MaxGrass)
	points := s.rules.CellScore(target.Row, target.Col, false)
	s.score += points
	res := result(OutcomeCorrect, events.AnswerCorrectEvent{Row: target.Row, Col: target.Col, Points: points})

	if evt, ok := s.collectBonus(cell); ok {
		res.Events = append(res.Events, evt)
	}

	s.player.Pos = target
	s.open = nil
	s.wrongAnswers = 0

	if next := s.rules.NextViewSize(s.board, s.viewSize); next > s.viewSize {
		s.viewSize = next
		res.Outcome = OutcomeLevelUnlocked
		res.Events = append(res.Events, events.LevelUnlockedEvent{ViewSize: next})
	}
	return res
}

// collectBonus pays out an uncollected bonus under eligible grass. Marking
// and scoring happen together so a bonus can never pay twice.
func (s *Session) collectBonus(cell *Cell) (events.Event, bool) {
	if !cell.IsBonus || cell.BonusCollected || !s.rules.BonusEligible(cell.Grass) {
		return nil, false
	}
	delta := s.rules.BonusDelta(cell.Row, cell.Col)
	cell.BonusCollected = true
	s.score += delta
	return events.BonusCollectedEvent{Row: cell.Row, Col: cell.Col, Points: delta}, true
}
