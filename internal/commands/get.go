package commands

import (
	"flag"
	"fmt"
	"sort"

	"github.com/devconf/devconf/internal/store"
	"github.com/devconf/devconf/internal/tree"
)

// GetCommand prints the full configuration tree or a single value.
type GetCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	path  string
	store *store.Store
}

// CreateGetCommand creates a new get command.
func CreateGetCommand() Runner {
	return &GetCommand{}
}

// Name returns the command name.
func (c *GetCommand) Name() string {
	return "get"
}

// Init initializes the get command with arguments.
func (c *GetCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("get", flag.ExitOnError)

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.fs.NArg() > 1 {
		return fmt.Errorf("usage: get [path]")
	}
	c.path = c.fs.Arg(0)

	cfg, err := loadServiceConfig(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.store = buildStore(cfg)

	return nil
}

// Run prints the requested configuration.
func (c *GetCommand) Run() error {
	if c.path == "" {
		res := c.store.GetAll()
		if !res.IsSuccess() {
			return fmt.Errorf("%s", res.Error())
		}
		printItems(res.Data().Items)
		return nil
	}

	res := c.store.GetByPath(c.path)
	if !res.IsSuccess() {
		return fmt.Errorf("%s", res.Error())
	}
	fmt.Println(res.Data().Value)
	return nil
}

// printItems prints leaves as "path = value" lines in sorted path order.
func printItems(items map[string]*tree.Item) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		item := items[k]
		if item.Children == nil {
			fmt.Printf("%s = %s\n", item.Path, item.Value)
			continue
		}
		printItems(item.Children)
	}
}
