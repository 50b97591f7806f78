package model

// ReactionState represents an account's reaction to a single video.
// Neutral is the zero value; an account is never both liking and
// disliking the same video.
type ReactionState string

const (
	ReactionNone     ReactionState = "NONE"
	ReactionLiked    ReactionState = "LIKED"
	ReactionDisliked ReactionState = "DISLIKED"
)

func (s ReactionState) IsValid() bool {
	switch s {
	case ReactionNone, ReactionLiked, ReactionDisliked:
		return true
	default:
		return false
	}
}

func (s ReactionState) String() string {
	return string(s)
}

// ReactionChange describes a single reaction transition together with
// the counter adjustments it implies on the video record. Deltas are
// applied atomically with the state write by the repository.
type ReactionChange struct {
	From         ReactionState
	To           ReactionState
	LikeDelta    int
	DislikeDelta int
}

// ToggleLike computes the transition for a like toggle from the current
// state. A second like returns to neutral; liking while disliked clears
// the dislike in the same transition, so the two counters can never
// drift apart.
func ToggleLike(current ReactionState) ReactionChange {
	switch current {
	case ReactionLiked:
		return ReactionChange{From: current, To: ReactionNone, LikeDelta: -1}
	case ReactionDisliked:
		return ReactionChange{From: current, To: ReactionLiked, LikeDelta: +1, DislikeDelta: -1}
	default:
		return ReactionChange{From: ReactionNone, To: ReactionLiked, LikeDelta: +1}
	}
}

// ToggleDislike is the mirror image of ToggleLike.
func ToggleDislike(current ReactionState) ReactionChange {
	switch current {
	case ReactionDisliked:
		return ReactionChange{From: current, To: ReactionNone, DislikeDelta: -1}
	case ReactionLiked:
		return ReactionChange{From: current, To: ReactionDisliked, LikeDelta: -1, DislikeDelta: +1}
	default:
		return ReactionChange{From: ReactionNone, To: ReactionDisliked, DislikeDelta: +1}
	}
}
