package model

import "testing"

func TestToggleLike(t *testing.T) {
	tests := []struct {
		name            string
		current         ReactionState
		want            ReactionState
		wantLikeDelta   int
		wantDislikeDelta int
	}{
		{
			name:          "neutral to liked",
			current:       ReactionNone,
			want:          ReactionLiked,
			wantLikeDelta: +1,
		},
		{
			name:          "liked back to neutral",
			current:       ReactionLiked,
			want:          ReactionNone,
			wantLikeDelta: -1,
		},
		{
			name:             "disliked displaced by like",
			current:          ReactionDisliked,
			want:             ReactionLiked,
			wantLikeDelta:    +1,
			wantDislikeDelta: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ToggleLike(tt.current)
			if change.From != tt.current {
				t.Errorf("From = %s, want %s", change.From, tt.current)
			}
			if change.To != tt.want {
				t.Errorf("To = %s, want %s", change.To, tt.want)
			}
			if change.LikeDelta != tt.wantLikeDelta {
				t.Errorf("LikeDelta = %d, want %d", change.LikeDelta, tt.wantLikeDelta)
			}
			if change.DislikeDelta != tt.wantDislikeDelta {
				t.Errorf("DislikeDelta = %d, want %d", change.DislikeDelta, tt.wantDislikeDelta)
			}
		})
	}
}

func TestToggleDislike(t *testing.T) {
	tests := []struct {
		name             string
		current          ReactionState
		want             ReactionState
		wantLikeDelta    int
		wantDislikeDelta int
	}{
		{
			name:             "neutral to disliked",
			current:          ReactionNone,
			want:             ReactionDisliked,
			wantDislikeDelta: +1,
		},
		{
			name:             "disliked back to neutral",
			current:          ReactionDisliked,
			want:             ReactionNone,
			wantDislikeDelta: -1,
		},
		{
			name:             "liked displaced by dislike",
			current:          ReactionLiked,
			want:             ReactionDisliked,
			wantLikeDelta:    -1,
			wantDislikeDelta: +1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ToggleDislike(tt.current)
			if change.To != tt.want {
				t.Errorf("To = %s, want %s", change.To, tt.want)
			}
			if change.LikeDelta != tt.wantLikeDelta {
				t.Errorf("LikeDelta = %d, want %d", change.LikeDelta, tt.wantLikeDelta)
			}
			if change.DislikeDelta != tt.wantDislikeDelta {
				t.Errorf("DislikeDelta = %d, want %d", change.DislikeDelta, tt.wantDislikeDelta)
			}
		})
	}
}

func TestToggleLike_TwiceIsIdentity(t *testing.T) {
	for _, start := range []ReactionState{ReactionNone, ReactionDisliked} {
		first := ToggleLike(start)
		second := ToggleLike(first.To)

		if second.To != ReactionNone && second.To != start {
			// From neutral: like then like returns to neutral.
			// From disliked: like then like also lands on neutral,
			// the dislike is gone for good.
			t.Errorf("start %s: second toggle landed on %s", start, second.To)
		}

		likeNet := first.LikeDelta + second.LikeDelta
		if likeNet != 0 {
			t.Errorf("start %s: net like delta = %d, want 0", start, likeNet)
		}
	}
}

func TestToggleLikeThenDislike_NetEffect(t *testing.T) {
	// A like immediately followed by a dislike must cancel the like
	// and register exactly one dislike.
	first := ToggleLike(ReactionNone)
	second := ToggleDislike(first.To)

	if second.To != ReactionDisliked {
		t.Fatalf("final state = %s, want %s", second.To, ReactionDisliked)
	}
	if net := first.LikeDelta + second.LikeDelta; net != 0 {
		t.Errorf("net like delta = %d, want 0", net)
	}
	if net := first.DislikeDelta + second.DislikeDelta; net != 1 {
		t.Errorf("net dislike delta = %d, want 1", net)
	}
}

func TestReactionState_IsValid(t *testing.T) {
	for _, s := range []ReactionState{ReactionNone, ReactionLiked, ReactionDisliked} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if ReactionState("MEH").IsValid() {
		t.Error("unknown state should be invalid")
	}
}
