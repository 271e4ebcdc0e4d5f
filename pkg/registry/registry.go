package registry

import (
	"sync"

	"github.com/spf13/cobra"
)

// CommandRegistry collects subcommand registrations made from init functions
// and attaches them to a parent command later.
type CommandRegistry struct {
	mu    sync.Mutex
	funcs []func(*cobra.Command)
}

func (r *CommandRegistry) Register(f func(*cobra.Command)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs = append(r.funcs, f)
}

func (r *CommandRegistry) FillCommands(parent *cobra.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.funcs {
		f(parent)
	}
}
