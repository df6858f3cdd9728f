// Command sqlstage renders a staged SELECT statement and optionally
// runs it against a SQLite database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/querystage/sqlstage"
	"github.com/querystage/sqlstage/internal/config"
	"github.com/querystage/sqlstage/internal/logging"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

type options struct {
	configPath string
	columns    []string
	table      string
	condition  string
	args       []string
	dialect    string
	strict     bool
	dsn        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sqlstage",
		Short: "Render a SELECT ... FROM ... WHERE statement",
		Long: `sqlstage assembles a statement clause by clause: SELECT, then FROM,
then WHERE. Clauses come from a YAML config file and/or flags, flags win.

Example:
  sqlstage --select id,name --from users --where "age > ?" --arg 18
  sqlstage --config query.yaml --dsn ./app.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringSliceVarP(&opts.columns, "select", "s", nil, "columns to select, comma separated")
	f.StringVarP(&opts.table, "from", "f", "", "table to select from")
	f.StringVarP(&opts.condition, "where", "w", "", "filter condition, ? for arguments")
	f.StringArrayVarP(&opts.args, "arg", "a", nil, "argument bound to a ? placeholder, repeatable")
	f.StringVar(&opts.dialect, "dialect", "", "none or postgres")
	f.BoolVar(&opts.strict, "strict", false, "refuse statements missing a clause")
	f.StringVar(&opts.dsn, "dsn", "", "SQLite DSN to run the statement against")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dialect, err := sqlstage.DialectByName(cfg.Dialect)
	if err != nil {
		return err
	}

	b := cfg.Query.Apply(dialect.New().WithLogger(logger))
	query, args, err := b.Build()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}
	if cfg.Query.Strict {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("incomplete statement: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, query)
	if len(args) > 0 {
		fmt.Fprintln(out, "args:", args)
	}

	if cfg.Database.DSN == "" {
		return nil
	}
	logger.Info("Running statement",
		zap.String("driver", cfg.Database.Driver),
		zap.Stringer("stage", b.Stage()))
	return execute(cmd.Context(), cfg.Database, b, out)
}

// loadConfig reads the config file, if any, and overrides it with flags.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("select") {
		cfg.Query.Select = cleanColumns(opts.columns)
	}
	if f.Changed("from") {
		cfg.Query.From = opts.table
	}
	if f.Changed("where") {
		cfg.Query.Where = opts.condition
	}
	if f.Changed("arg") {
		cfg.Query.Args = lo.Map(opts.args, func(a string, _ int) interface{} { return a })
	}
	if f.Changed("dialect") {
		cfg.Dialect = opts.dialect
	}
	if f.Changed("strict") {
		cfg.Query.Strict = opts.strict
	}
	if f.Changed("dsn") {
		cfg.Database.DSN = opts.dsn
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, cfg.Validate()
}

// cleanColumns trims column names and drops empty ones.
func cleanColumns(columns []string) []string {
	trimmed := lo.Map(columns, func(c string, _ int) string {
		return strings.TrimSpace(c)
	})
	return lo.Filter(trimmed, func(c string, _ int) bool {
		return c != ""
	})
}

// execute runs the statement and prints every row tab separated.
func execute(ctx context.Context, dbc config.DatabaseConfig, b *sqlstage.Builder, out io.Writer) error {
	db, err := sql.Open(dbc.Driver, dbc.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var columns []string
	err = b.Query(ctx, db, func(rows *sql.Rows) error {
		if columns == nil {
			var err error
			if columns, err = rows.Columns(); err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(columns, "\t"))
		}
		values := make([]interface{}, len(columns))
		dest := lo.Map(values, func(_ interface{}, n int) interface{} { return &values[n] })
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Join(lo.Map(values, formatValue), "\t"))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to run statement: %w", err)
	}
	return nil
}

func formatValue(v interface{}, _ int) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}
