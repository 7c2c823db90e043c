package layout

import (
	"strings"

	"github.com/petspa/salonsite/pkg/errors"
)

// Profile identifies a layout profile.
type Profile string

// The 14 layout profiles. The first six vary the visual treatment of a
// classic vertical page; the rest change the page structure itself.
const (
	Minimal  Profile = "minimal"
	Classic  Profile = "classic"
	Split    Profile = "split"
	Bold     Profile = "bold"
	Glass    Profile = "glass"
	Magazine Profile = "magazine"

	Brutalist    Profile = "brutalist"
	Sidebar      Profile = "sidebar"
	Fullscreen   Profile = "fullscreen"
	Horizontal   Profile = "horizontal"
	Bento        Profile = "bento"
	Storytelling Profile = "storytelling"
	BottomNav    Profile = "bottomnav"
	Masonry      Profile = "masonry"
)

// DefaultProfile is the profile every session starts with.
const DefaultProfile = Classic

// profiles is the declaration order, used for listings and switchers.
var profiles = []Profile{
	Minimal, Classic, Split, Bold, Glass, Magazine,
	Brutalist, Sidebar, Fullscreen, Horizontal, Bento, Storytelling, BottomNav, Masonry,
}

// Profiles returns every profile in declaration order.
// The returned slice is a copy.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Valid reports whether p is one of the declared profiles.
func (p Profile) Valid() bool {
	_, ok := registry[p]
	return ok
}

// String returns the profile identifier.
func (p Profile) String() string { return string(p) }

// ParseProfile converts user input into a Profile.
// Surrounding whitespace and case are ignored.
func ParseProfile(s string) (Profile, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	if err := errors.ValidateIdentifier(errors.ErrCodeInvalidProfile, "layout profile", id); err != nil {
		return "", err
	}
	p := Profile(id)
	if !p.Valid() {
		return "", errors.New(errors.ErrCodeInvalidProfile, "unknown layout profile %q", s)
	}
	return p, nil
}
