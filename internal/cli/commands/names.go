package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/leapstack-labs/roman/internal/cli/output"
	"github.com/leapstack-labs/roman/internal/person"
	"github.com/leapstack-labs/roman/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a name is not in the store.
var ErrNotFound = errors.New("not known in database")

// NewNamesCommand creates the names command group.
func NewNamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Manage person records in the configured store",
		Long: `Add, fetch and list person records directly in the configured store,
without going through the HTTP service.

The memory store lives only for the duration of one command; use
--store sqlite or --store postgres to keep records between runs.`,
	}

	cmd.AddCommand(newNamesAddCommand())
	cmd.AddCommand(newNamesGetCommand())
	cmd.AddCommand(newNamesListCommand())
	cmd.AddCommand(newNamesSeedCommand())

	return cmd
}

func newNamesAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <name> <age>",
		Short:   "Store a person record",
		Example: `  roman names add Ada 36 --store sqlite`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("age must be an integer, got %q", args[1])
			}
			p := person.Person{Name: args[0], Age: age}

			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := putPerson(cmd.Context(), cc.Store, cc.Cfg.Collection, p); err != nil {
				return err
			}
			cc.Renderer.Println(fmt.Sprintf("Added %s to database", p.Name))
			return nil
		},
	}
}

func newNamesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a stored person record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := getPerson(cmd.Context(), cc.Store, cc.Cfg.Collection, args[0])
			if err != nil {
				return err
			}
			return renderPersons(cc.Renderer, []person.Person{p}, p)
		},
	}
}

func newNamesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored person records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := cc.Store.ListKeys(cmd.Context(), cc.Cfg.Collection)
			if err != nil {
				return err
			}

			persons := make([]person.Person, 0, len(names))
			for _, name := range names {
				p, err := getPerson(cmd.Context(), cc.Store, cc.Cfg.Collection, name)
				if err != nil {
					return err
				}
				persons = append(persons, p)
			}
			return renderPersons(cc.Renderer, persons, persons)
		},
	}
}

// seedFile is the layout of a names seed file.
type seedFile struct {
	Persons []person.Person `yaml:"persons"`
}

func newNamesSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Load person records from a YAML file",
		Long: `Load person records from a YAML file into the configured store.

The file lists records under a top-level persons key:

  persons:
    - name: Ada
      age: 36
    - name: Grace
      age: 85

Every record is validated before any is written.`,
		Example: `  roman names seed persons.yaml --store sqlite`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persons, err := loadSeedFile(args[0])
			if err != nil {
				return err
			}

			cc, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, p := range persons {
				if err := putPerson(cmd.Context(), cc.Store, cc.Cfg.Collection, p); err != nil {
					return err
				}
			}
			cc.Logger.Info("seeded persons", "file", args[0], "count", len(persons))
			cc.Renderer.Println(fmt.Sprintf("Loaded %d persons from %s", len(persons), args[0]))
			return nil
		},
	}
}

// loadSeedFile reads and validates every record in path.
func loadSeedFile(path string) ([]person.Person, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-supplied seed file
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i, p := range seed.Persons {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i+1, err)
		}
	}
	return seed.Persons, nil
}

func putPerson(ctx context.Context, st store.Store, collection string, p person.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := person.Marshal(p)
	if err != nil {
		return err
	}
	return st.Put(ctx, collection, p.Name, data)
}

func getPerson(ctx context.Context, st store.Store, collection, name string) (person.Person, error) {
	data, found, err := st.Get(ctx, collection, name)
	if err != nil {
		return person.Person{}, err
	}
	if !found {
		return person.Person{}, fmt.Errorf("'%s' %w", name, ErrNotFound)
	}
	return person.Unmarshal(data)
}

func renderPersons(r *output.Renderer, persons []person.Person, v any) error {
	rows := make([][]any, len(persons))
	for i, p := range persons {
		rows[i] = []any{p.Name, p.Age}
	}
	return r.Table([]string{"Name", "Age"}, rows, v)
}
