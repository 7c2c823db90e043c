package diagram_test

import (
	"fmt"
	"strings"

	"github.com/petspa/salonsite/pkg/diagram"
	"github.com/petspa/salonsite/pkg/layout"
)

func ExampleToDOT() {
	dot := diagram.ToDOT(diagram.Options{
		Profiles: []layout.Profile{layout.Sidebar},
		Families: []string{"navigation"},
	})
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "profile:sidebar" -> "navigation:NavSidebar";
}
