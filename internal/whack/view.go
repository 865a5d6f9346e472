package whack

import (
	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/money"
)

// buildView projects a session into its caller-facing shape. The hidden
// slots are only revealed once the session has resolved.
func buildView(session *domain.Session) *domain.SessionView {
	view := &domain.SessionView{
		ID:                      session.ID.String(),
		PlayerID:                session.PlayerID,
		Stage:                   session.Stage,
		Status:                  session.Status,
		Bet:                     money.Format(session.BetStage1),
		Pick:                    session.PickStage1,
		Pick2:                   session.PickStage2,
		FoundKind:               session.FoundKind,
		FoundSlot:               session.FoundSlot,
		PendingMultiplierTenths: session.PendingMultiplierTenths,
		Outcome:                 session.Outcome,
		FinalMultiplierTenths:   session.FinalMultiplierTenths,
		ExpiresAt:               session.ExpiresAt,
	}

	if session.BetStage2 > 0 {
		view.BetStage2 = money.Format(session.BetStage2)
	}
	if session.PendingPayout > 0 {
		view.PendingPayout = money.Format(session.PendingPayout)
	}
	if session.FinalPayout > 0 {
		view.Payout = money.Format(session.FinalPayout)
	}
	if session.Status == domain.StatusResolved {
		view.NormalSlot = session.NormalSlot
		view.GoldenSlot = session.GoldenSlot
	}

	return view
}
