package commands

import (
	"flag"
	"fmt"

	"github.com/devconf/devconf/internal/store"
)

// SetCommand applies a single configuration update from the command line.
type SetCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	path  string
	value string
	store *store.Store
}

// CreateSetCommand creates a new set command.
func CreateSetCommand() Runner {
	return &SetCommand{}
}

// Name returns the command name.
func (c *SetCommand) Name() string {
	return "set"
}

// Init initializes the set command with arguments.
func (c *SetCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("set", flag.ExitOnError)

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.fs.NArg() != 2 {
		return fmt.Errorf("usage: set <path> <value>")
	}
	c.path = c.fs.Arg(0)
	c.value = c.fs.Arg(1)

	cfg, err := loadServiceConfig(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.store = buildStore(cfg)

	return nil
}

// Run applies the update.
func (c *SetCommand) Run() error {
	res := c.store.Update(c.path, c.value)
	if !res.IsSuccess() {
		return fmt.Errorf("%s", res.Error())
	}

	fmt.Printf("%s = %s\n", res.Data().Path, res.Data().Value)
	return nil
}
