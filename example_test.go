package navstack_test

import (
	"context"
	"fmt"

	"github.com/aretw0/navstack"
	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/session"
)

// Example shows the basic lifecycle: the initial chain is shown on the first
// resume and navigation runs immediately while the controller is active.
func Example() {
	host := memory.NewContainer()

	nav, err := navstack.NewBuilder().
		AddScreen(&page{title: "home"}, "").
		Show(host, "main").
		WithContainerID("c1").
		Build()
	if err != nil {
		panic(err)
	}

	nav.OnResume()
	nav.GoForward(&page{title: "settings"}, "settings")
	nav.GoBack()

	for _, c := range host.Calls() {
		fmt.Println(c)
	}
	// Output:
	// show c1 home
	// show c1 settings
	// detach c1 settings
	// show c1 home
}

// Example_suspended shows navigation recorded while suspended and replayed in
// order on resume.
func Example_suspended() {
	host := memory.NewContainer()
	nav, _ := navstack.NewBuilder().
		AddScreen(&page{title: "home"}, "").
		Show(host, "main").
		Build()

	nav.OnTransition(func(ev domain.TransitionEvent) {
		fmt.Printf("%s -> %s (depth %d)\n", ev.Kind, ev.To.Name(), ev.Depth)
	})

	fmt.Println("executed:", nav.GoForward(&page{title: "inbox"}, ""))
	fmt.Println("pending:", len(nav.Pending()))

	nav.OnResume()
	fmt.Println("pending:", len(nav.Pending()))
	// Output:
	// executed: false
	// pending: 2
	// forward -> home (depth 1)
	// forward -> inbox (depth 2)
	// pending: 0
}

// Example_saveState shows a stack surviving a restart through a snapshot store.
func Example_saveState() {
	ctx := context.Background()
	sessions := session.NewManager(memory.NewStore())

	first, _ := navstack.NewBuilder().
		AddScreen(&page{title: "home"}, "").
		AddScreen(&page{title: "article"}, "article").
		Show(memory.NewContainer(), "reader").
		WithSessions(sessions, pageFactory).
		Build()
	first.OnResume()
	first.OnPause()
	if err := first.SaveState(ctx); err != nil {
		panic(err)
	}

	second, _ := navstack.NewBuilder().
		Show(memory.NewContainer(), "reader").
		WithSessions(sessions, pageFactory).
		Build()
	restored, err := second.RestoreState(ctx)
	if err != nil {
		panic(err)
	}
	second.OnResume()

	top, _ := second.CurrentScreen()
	fmt.Println(restored, second.Len(), top.Name())
	// Output: true 2 article
}
