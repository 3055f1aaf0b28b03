package game

// BettingRound drives one street of betting. It tracks whose turn it is, the
// amount to match, and the minimum raise size, and it decides when the round
// is closed.
//
// acted[seat] means "has acted since the last full raise". A full raise (one
// whose size is at least MinRaise) reopens the action: everyone except the
// raiser has acted[seat] reset and gets another turn. An all-in raise smaller
// than MinRaise updates CurrentBet but does not reopen action for players who
// already acted at the previous level.
type BettingRound struct {
	players []*Player

	// CurrentBet is the highest StreetBet any player holds this street.
	CurrentBet int
	// MinRaise is the size of the last full bet or raise this street, and
	// therefore the minimum size of the next raise.
	MinRaise int

	bigBlind int
	acted    []bool
	actor    int
}

// newBettingRound sets up a street of betting. startSeat is the first seat to
// consider for action; currentBet and minRaise seed the preflop blind levels
// (postflop both come in as zero bet with minRaise = big blind).
func newBettingRound(players []*Player, startSeat, currentBet, minRaise, bigBlind int) *BettingRound {
	r := &BettingRound{
		players:    players,
		CurrentBet: currentBet,
		MinRaise:   minRaise,
		bigBlind:   bigBlind,
		acted:      make([]bool, len(players)),
	}
	r.actor = r.nextToAct(startSeat)
	return r
}

// Actor returns the seat due to act, or -1 when the round is closed.
func (r *BettingRound) Actor() int {
	return r.actor
}

// Closed reports whether no further action is possible this street.
func (r *BettingRound) Closed() bool {
	return r.actor == -1
}

func (r *BettingRound) activeCount() int {
	n := 0
	for _, p := range r.players {
		if p.Status == Active {
			n++
		}
	}
	return n
}

// needsAction reports whether the seat still owes a decision: it faces an
// unmatched bet, or it has not acted since the last full raise and there is
// at least one other active player left to contest against.
func (r *BettingRound) needsAction(seat int) bool {
	p := r.players[seat]
	if p.Status != Active {
		return false
	}
	if p.StreetBet < r.CurrentBet {
		return true
	}
	return !r.acted[seat] && r.activeCount() > 1
}

// nextToAct scans clockwise starting at from, returning the first seat owing
// a decision, or -1 when the round is closed.
func (r *BettingRound) nextToAct(from int) int {
	n := len(r.players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if r.needsAction(seat) {
			return seat
		}
	}
	return -1
}

// ValidActions returns the legal actions for the current actor. The slice is
// ordered passive to aggressive. It is nil once the round is closed.
func (r *BettingRound) ValidActions() []ValidAction {
	if r.actor == -1 {
		return nil
	}
	p := r.players[r.actor]
	stack := p.Chips
	toCall := r.CurrentBet - p.StreetBet

	var valid []ValidAction
	if toCall <= 0 {
		valid = append(valid, ValidAction{Kind: Check})
		if stack > 0 {
			if r.CurrentBet == 0 {
				min := r.bigBlind
				if min > stack {
					min = stack
				}
				valid = append(valid, ValidAction{Kind: Bet, Min: min, Max: stack})
			} else if !r.acted[r.actor] {
				// Blind option: the bet is already matched but the big blind
				// may still raise their own blind.
				min := r.MinRaise
				if min > stack {
					min = stack
				}
				valid = append(valid, ValidAction{Kind: Raise, Min: min, Max: stack})
			}
			valid = append(valid, ValidAction{Kind: AllIn, Min: stack, Max: stack})
		}
		return valid
	}

	valid = append(valid, ValidAction{Kind: Fold})
	call := toCall
	if call > stack {
		call = stack
	}
	valid = append(valid, ValidAction{Kind: Call, Min: call, Max: call})
	if stack > toCall && !r.acted[r.actor] {
		min := toCall + r.MinRaise
		if min > stack {
			min = stack
		}
		valid = append(valid, ValidAction{Kind: Raise, Min: min, Max: stack})
	}
	if stack > 0 {
		valid = append(valid, ValidAction{Kind: AllIn, Min: stack, Max: stack})
	}
	return valid
}

// legal reports whether the action matches one of the valid actions.
func legal(action Action, valid []ValidAction) bool {
	for _, v := range valid {
		if action.Kind == v.Kind && action.Amount >= v.Min && action.Amount <= v.Max {
			return true
		}
	}
	return false
}

// Apply executes the current actor's action and advances the turn. An action
// outside the legal set returns an IllegalActionError and leaves the round
// untouched.
func (r *BettingRound) Apply(action Action) error {
	seat := r.actor
	valid := r.ValidActions()
	if !legal(action, valid) {
		return &IllegalActionError{Seat: seat, Attempted: action, Legal: valid}
	}

	p := r.players[seat]
	switch action.Kind {
	case Fold:
		p.Status = Folded
	case Check:
		// No chips move.
	case Call:
		p.pay(action.Amount)
	case Bet, Raise, AllIn:
		p.pay(action.Amount)
		if p.StreetBet > r.CurrentBet {
			raiseSize := p.StreetBet - r.CurrentBet
			if raiseSize >= r.MinRaise {
				// Full raise: action reopens for everyone else.
				r.MinRaise = raiseSize
				for i := range r.acted {
					r.acted[i] = false
				}
			}
			r.CurrentBet = p.StreetBet
		}
	}
	r.acted[seat] = true
	r.actor = r.nextToAct((seat + 1) % len(r.players))
	return nil
}
