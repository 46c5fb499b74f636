// Command fitcli works on the tracker data file directly, without the service.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/dashboard"
	"github.com/2beens/fittracker/internal/kvstore"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/storage"
	"github.com/2beens/fittracker/internal/water"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

const usage = `usage: fitcli [-file path] [-env env] [-config path] <command> [args]

commands:
  add     -activity NAME -duration MIN -distance KM -calories KCAL [-date YYYY-MM-DD] [-notes TEXT]
  edit    ID [-activity ...] [-duration ...] [-distance ...] [-calories ...] [-date ...] [-notes ...]
  rm      ID [-yes]
  ls      [-q TERM]
  stats
  profile [-name NAME] [-weight KG] [-height CM]
  bmi
  water   [+|-]
`

var errUsage = errors.New("invalid usage")

type app struct {
	stdin  io.Reader
	stdout io.Writer

	activities *activities.Repo
	engine     *analytics.Engine
	profile    *profile.Repo
	water      *water.Counter
	dashboard  *dashboard.Service
}

func main() {
	log.SetLevel(log.WarnLevel)
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("fitcli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "path to the JSON data file (default ~/.fittracker/data.json)")
	env := fs.String("env", "development", "config environment [dev | development | prod | production]")
	configPath := fs.String("config", "./config.toml", "path for the TOML config file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := loadConfig(*env, *configPath)
	if err != nil {
		return err
	}

	dataFile := *file
	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	if dataFile == "" {
		dataFile = pkg.DefaultDataFile("data.json")
	}

	a, err := newApp(ctx, cfg, dataFile, stdin, stdout)
	if err != nil {
		return err
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "add":
		return a.add(ctx, cmdArgs)
	case "edit":
		return a.edit(ctx, cmdArgs)
	case "rm":
		return a.remove(ctx, cmdArgs)
	case "ls":
		return a.list(ctx, cmdArgs)
	case "stats":
		return a.stats(ctx)
	case "profile":
		return a.saveProfile(ctx, cmdArgs)
	case "bmi":
		return a.bmi(ctx)
	case "water":
		return a.changeWater(ctx, cmdArgs)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// loadConfig falls back to defaults when there is no config file.
func loadConfig(env, path string) (*config.Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return config.Default(), nil
	}
	return config.Load(env, path)
}

func newApp(ctx context.Context, cfg *config.Config, dataFile string, stdin io.Reader, stdout io.Writer) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := kvstore.NewFileStore(dataFile)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}

	clk := clock.Real(loc)
	adapter := storage.NewAdapter(store)
	activitiesRepo := activities.NewRepo(ctx, adapter, clk)
	profileRepo := profile.NewRepo(ctx, adapter)
	waterCounter := water.NewCounter(ctx, adapter, clk)
	engine := analytics.NewEngine(activitiesRepo, clk, cfg.Goals)

	return &app{
		stdin:      stdin,
		stdout:     stdout,
		activities: activitiesRepo,
		engine:     engine,
		profile:    profileRepo,
		water:      waterCounter,
		dashboard:  dashboard.NewService(activitiesRepo, engine, profileRepo, waterCounter),
	}, nil
}

func activityFlags(name string, fields *activities.Fields) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&fields.Activity, "activity", fields.Activity, "activity type")
	fs.Func("duration", "duration in minutes", func(s string) error {
		fields.Duration = activities.Input(s)
		return nil
	})
	fs.Func("distance", "distance in km", func(s string) error {
		fields.Distance = activities.Input(s)
		return nil
	})
	fs.Func("calories", "calories burned", func(s string) error {
		fields.Calories = activities.Input(s)
		return nil
	})
	fs.StringVar(&fields.Date, "date", fields.Date, "date YYYY-MM-DD, today if empty")
	fs.StringVar(&fields.Notes, "notes", fields.Notes, "free text notes")
	return fs
}

func (a *app) add(ctx context.Context, args []string) error {
	var fields activities.Fields
	if err := activityFlags("add", &fields).Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	activity, err := a.activities.Add(ctx, fields)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, okStyle.Render("added "+activity.ID))
	fmt.Fprintln(a.stdout, renderActivities([]activities.Activity{*activity}))
	return nil
}

// edit starts from the stored values, so only the given flags change.
func (a *app) edit(ctx context.Context, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}

	current, err := a.activities.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	fields := activities.FieldsFrom(*current)
	if err := activityFlags("edit", &fields).Parse(rest); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	updated, err := a.activities.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, okStyle.Render("updated "+updated.ID))
	fmt.Fprintln(a.stdout, renderActivities([]activities.Activity{*updated}))
	return nil
}

func (a *app) remove(ctx context.Context, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	current, err := a.activities.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	if !*yes {
		fmt.Fprintf(a.stdout, "delete %s (%s, %s)? [y/N] ", current.ID, current.Activity, current.Date)
		answer, _ := bufio.NewReader(a.stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(a.stdout, "cancelled")
			return nil
		}
	}

	if err := a.activities.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, okStyle.Render("deleted "+id))
	return nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	term := fs.String("q", "", "search in activity type and notes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	list := a.activities.Search(ctx, *term)
	if len(list) == 0 {
		fmt.Fprintln(a.stdout, mutedStyle.Render(dashboard.EmptyMessage))
		return nil
	}
	fmt.Fprintln(a.stdout, renderActivities(list))
	return nil
}

func (a *app) stats(ctx context.Context) error {
	snapshot, err := a.dashboard.Snapshot(ctx, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, renderSummary(snapshot.Analytics))
	fmt.Fprintln(a.stdout, renderWater(snapshot.Water))
	return nil
}

func (a *app) saveProfile(ctx context.Context, args []string) error {
	fields := profile.FieldsFrom(a.profile.Get(ctx))

	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&fields.Name, "name", fields.Name, "name")
	fs.Func("weight", "weight in kg", func(s string) error {
		fields.Weight = pkg.Input(s)
		return nil
	})
	fs.Func("height", "height in cm", func(s string) error {
		fields.Height = pkg.Input(s)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	// no flags just shows the profile
	p := a.profile.Get(ctx)
	if fs.NFlag() > 0 {
		saved, err := a.profile.SaveFields(ctx, fields)
		if err != nil {
			return err
		}
		p = saved
		fmt.Fprintln(a.stdout, okStyle.Render("profile saved"))
	}
	fmt.Fprintln(a.stdout, renderProfile(p, profile.ViewOf(p)))
	return nil
}

func (a *app) bmi(ctx context.Context) error {
	view := profile.ViewOf(a.profile.Get(ctx))
	fmt.Fprintln(a.stdout, renderBMI(view))
	return nil
}

func (a *app) changeWater(ctx context.Context, args []string) error {
	var err error
	switch {
	case len(args) == 0:
	case args[0] == "+":
		_, err = a.water.Increment(ctx)
	case args[0] == "-":
		_, err = a.water.Decrement(ctx)
	default:
		return fmt.Errorf("%w: water takes + or -", errUsage)
	}
	if err != nil {
		return err
	}

	intake, err := a.water.Intake(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, renderWater(intake))
	return nil
}

func splitID(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("%w: activity id missing", errUsage)
	}
	return args[0], args[1:], nil
}
