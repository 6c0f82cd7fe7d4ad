package models

import (
	"testing"
)

func TestSocialLinks(t *testing.T) {
	t.Run("Normalized fills missing platforms", func(t *testing.T) {
		s := SocialLinks{"instagram": "@nova"}.Normalized()

		if len(s) != len(SocialPlatforms) {
			t.Fatalf("expected %d keys, got %d", len(SocialPlatforms), len(s))
		}
		if s["instagram"] != "@nova" {
			t.Errorf("expected instagram handle to survive, got %q", s["instagram"])
		}
		if v, ok := s["spotify"]; !ok || v != "" {
			t.Errorf("expected spotify key present and empty, got %q (present=%v)", v, ok)
		}
	})

	t.Run("Normalized drops unknown keys", func(t *testing.T) {
		s := SocialLinks{"myspace": "@nova"}.Normalized()
		if _, ok := s["myspace"]; ok {
			t.Error("unknown platform should be dropped")
		}
	})

	t.Run("Merge overrides only provided keys", func(t *testing.T) {
		cur := SocialLinks{"instagram": "@nova", "twitter": "@nova_official"}.Normalized()
		merged := cur.Merge(SocialLinks{"twitter": "@nova_hq"})

		if merged["twitter"] != "@nova_hq" {
			t.Errorf("expected twitter override, got %q", merged["twitter"])
		}
		if merged["instagram"] != "@nova" {
			t.Errorf("expected instagram kept, got %q", merged["instagram"])
		}
		if len(merged) != len(SocialPlatforms) {
			t.Errorf("merged map should stay fully keyed, got %d keys", len(merged))
		}
	})
}

func TestArtistProfile(t *testing.T) {
	t.Run("Normalize clamps negatives and fills socials", func(t *testing.T) {
		p := ArtistProfile{ID: "a1", Name: "Nova", Plays: -10, Rating: -1}
		p.Normalize()

		if p.Plays != 0 || p.Rating != 0 {
			t.Errorf("expected clamped aggregates, got plays=%d rating=%v", p.Plays, p.Rating)
		}
		if len(p.Socials) != len(SocialPlatforms) {
			t.Errorf("expected fully keyed socials, got %d keys", len(p.Socials))
		}
	})

	t.Run("PrimaryGenre falls back to Music", func(t *testing.T) {
		p := ArtistProfile{ID: "a1", Name: "Nova"}
		if got := p.PrimaryGenre(); got != "Music" {
			t.Errorf("expected fallback genre Music, got %q", got)
		}

		p.Genres = []string{"Electronic", "Synth-pop"}
		if got := p.PrimaryGenre(); got != "Electronic" {
			t.Errorf("expected Electronic, got %q", got)
		}
		if got := p.SecondaryGenre(); got != "Synth-pop" {
			t.Errorf("expected Synth-pop, got %q", got)
		}
	})

	t.Run("Validate rejects bad records", func(t *testing.T) {
		cases := []struct {
			name    string
			profile ArtistProfile
		}{
			{"missing id", ArtistProfile{Name: "Nova"}},
			{"missing name", ArtistProfile{ID: "a1"}},
			{"bad email", ArtistProfile{ID: "a1", Name: "Nova", Email: "not-an-email"}},
			{"negative aggregate", ArtistProfile{ID: "a1", Name: "Nova", Followers: -1}},
		}

		for _, tc := range cases {
			if err := tc.profile.Validate(); err == nil {
				t.Errorf("%s: expected validation error", tc.name)
			}
		}

		good := ArtistProfile{ID: "a1", Name: "Nova", Email: "nova@example.com"}
		if err := good.Validate(); err != nil {
			t.Errorf("unexpected error for valid profile: %v", err)
		}
	})

	t.Run("Public projection", func(t *testing.T) {
		p := ArtistProfile{
			ID:       "a1",
			Name:     "Nova",
			Genres:   []string{"Electronic"},
			Location: "Berlin",
			Plays:    1000,
		}
		pub := p.Public()

		if pub.PrimaryGenre != "Electronic" || pub.City != "Berlin" || pub.Plays != 1000 {
			t.Errorf("unexpected projection: %+v", pub)
		}
	})
}

func TestProfilePatch(t *testing.T) {
	strptr := func(s string) *string { return &s }

	t.Run("IsEmpty", func(t *testing.T) {
		if !(ProfilePatch{}).IsEmpty() {
			t.Error("zero patch should be empty")
		}
		if (ProfilePatch{Bio: strptr("hi")}).IsEmpty() {
			t.Error("patch with a field should not be empty")
		}
	})

	t.Run("Apply replaces scalars and deep-merges socials", func(t *testing.T) {
		cur := ArtistProfile{
			ID:      "a1",
			Name:    "Nova",
			Bio:     "old bio",
			Genres:  []string{"Electronic"},
			Socials: SocialLinks{"instagram": "@nova", "twitter": "@nova_official"}.Normalized(),
		}

		patch := ProfilePatch{
			Bio:     strptr("new bio"),
			Genres:  []string{"Electronic", "House"},
			Socials: SocialLinks{"twitter": "@nova_hq"},
		}

		out := patch.Apply(cur)

		if out.Bio != "new bio" {
			t.Errorf("expected bio replaced, got %q", out.Bio)
		}
		if len(out.Genres) != 2 || out.Genres[1] != "House" {
			t.Errorf("expected genres replaced wholesale, got %v", out.Genres)
		}
		if out.Socials["twitter"] != "@nova_hq" {
			t.Errorf("expected twitter override, got %q", out.Socials["twitter"])
		}
		if out.Socials["instagram"] != "@nova" {
			t.Errorf("expected instagram kept, got %q", out.Socials["instagram"])
		}
		if out.Name != "Nova" || out.ID != "a1" {
			t.Errorf("untouched fields changed: %+v", out)
		}
	})

	t.Run("Apply never mutates the identifier", func(t *testing.T) {
		cur := ArtistProfile{ID: "a1", Name: "Nova"}
		out := (ProfilePatch{Name: strptr("Supernova")}).Apply(cur)
		if out.ID != "a1" {
			t.Errorf("identifier must be immutable, got %q", out.ID)
		}
	})
}

func TestPatchFromMap(t *testing.T) {
	t.Run("drops disallowed keys", func(t *testing.T) {
		patch, dropped := PatchFromMap(map[string]any{
			"bio":     "hello",
			"balance": 9999.0,
			"id":      "evil",
		})

		if patch.Bio == nil || *patch.Bio != "hello" {
			t.Errorf("expected bio accepted, got %+v", patch)
		}
		if len(dropped) != 2 {
			t.Errorf("expected 2 dropped keys, got %v", dropped)
		}
	})

	t.Run("accepts JSON-shaped values", func(t *testing.T) {
		patch, _ := PatchFromMap(map[string]any{
			"genres":  []any{"Electronic", "House"},
			"socials": map[string]any{"tiktok": "@nova"},
		})

		if len(patch.Genres) != 2 {
			t.Errorf("expected genres parsed, got %v", patch.Genres)
		}
		if patch.Socials["tiktok"] != "@nova" {
			t.Errorf("expected socials parsed, got %v", patch.Socials)
		}
	})

	t.Run("drops mistyped values", func(t *testing.T) {
		patch, dropped := PatchFromMap(map[string]any{
			"name":   42,
			"genres": []any{"Electronic", 7},
		})

		if !patch.IsEmpty() {
			t.Errorf("expected empty patch, got %+v", patch)
		}
		if len(dropped) != 2 {
			t.Errorf("expected both keys dropped, got %v", dropped)
		}
	})
}
