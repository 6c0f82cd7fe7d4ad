package models

// Allow-listed patch field names accepted by profile updates. Any other
// submitted key is silently dropped before merging.
var patchFields = map[string]struct{}{
	"name":     {},
	"bio":      {},
	"avatar":   {},
	"location": {},
	"genres":   {},
	"socials":  {},
	"verified": {},
}

// ProfilePatch is a typed partial update to an [ArtistProfile].
//
// A nil field means "not provided"; the current value is kept. Top-level
// fields replace wholesale, the social handle map deep-merges per key.
type ProfilePatch struct {
	Name     *string     `json:"name,omitempty"`
	Bio      *string     `json:"bio,omitempty"`
	Avatar   *string     `json:"avatar,omitempty"`
	Location *string     `json:"location,omitempty"`
	Genres   []string    `json:"genres,omitempty"`
	Socials  SocialLinks `json:"socials,omitempty"`
	Verified *bool       `json:"verified,omitempty"`
}

// IsEmpty reports whether the patch provides no fields at all.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Bio == nil &&
		p.Avatar == nil &&
		p.Location == nil &&
		p.Genres == nil &&
		p.Socials == nil &&
		p.Verified == nil
}

// Apply merges the patch onto a profile snapshot and returns the result.
//
// The identifier, contact email, and creation timestamp are immutable and
// never touched. Scalars and the genre list replace wholesale when provided;
// the social handle map merges per key so unspecified platforms keep their
// current handles.
func (p ProfilePatch) Apply(cur ArtistProfile) ArtistProfile {
	out := cur
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Avatar != nil {
		out.Avatar = *p.Avatar
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Genres != nil {
		out.Genres = append([]string(nil), p.Genres...)
	}
	if p.Socials != nil {
		out.Socials = cur.Socials.Merge(p.Socials)
	}
	if p.Verified != nil {
		out.Verified = *p.Verified
	}
	out.Normalize()
	return out
}

// PatchFromMap converts a loosely typed field map into a [ProfilePatch],
// enforcing the allow-list. Returns the patch and the names of any dropped
// keys. Values with an unexpected dynamic type are dropped too.
func PatchFromMap(fields map[string]any) (ProfilePatch, []string) {
	var patch ProfilePatch
	var dropped []string

	for key, raw := range fields {
		if _, ok := patchFields[key]; !ok {
			dropped = append(dropped, key)
			continue
		}

		switch key {
		case "name", "bio", "avatar", "location":
			s, ok := raw.(string)
			if !ok {
				dropped = append(dropped, key)
				continue
			}
			v := s
			switch key {
			case "name":
				patch.Name = &v
			case "bio":
				patch.Bio = &v
			case "avatar":
				patch.Avatar = &v
			case "location":
				patch.Location = &v
			}
		case "genres":
			genres, ok := toStringSlice(raw)
			if !ok {
				dropped = append(dropped, key)
				continue
			}
			patch.Genres = genres
		case "socials":
			socials, ok := toSocialLinks(raw)
			if !ok {
				dropped = append(dropped, key)
				continue
			}
			patch.Socials = socials
		case "verified":
			b, ok := raw.(bool)
			if !ok {
				dropped = append(dropped, key)
				continue
			}
			patch.Verified = &b
		}
	}

	return patch, dropped
}

func toStringSlice(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func toSocialLinks(raw any) (SocialLinks, bool) {
	switch v := raw.(type) {
	case SocialLinks:
		return v, true
	case map[string]string:
		return SocialLinks(v), true
	case map[string]any:
		out := make(SocialLinks, len(v))
		for platform, handle := range v {
			s, ok := handle.(string)
			if !ok {
				return nil, false
			}
			out[platform] = s
		}
		return out, true
	default:
		return nil, false
	}
}
