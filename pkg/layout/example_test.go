package layout_test

import (
	"fmt"

	"github.com/petspa/salonsite/pkg/layout"
)

func ExampleLookup() {
	cfg, err := layout.Lookup(layout.Bento)
	if err != nil {
		panic(err)
	}
	fmt.Println(cfg.Hero, cfg.AnimationDuration, cfg.EntryAnimation)
	// Output: HeroBento 450ms scale-in-bounce
}

func ExampleParseProfile() {
	p, err := layout.ParseProfile(" BottomNav ")
	fmt.Println(p, err)

	_, err = layout.ParseProfile("not-a-real-profile")
	fmt.Println(err)
	// Output:
	// bottomnav <nil>
	// INVALID_PROFILE: unknown layout profile "not-a-real-profile"
}
