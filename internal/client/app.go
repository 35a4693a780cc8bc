package client

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/tui"
	"github.com/MKhiriev/go-portfolio/models"
)

// PasswordPrompt reads a secret from the user.
type PasswordPrompt func(label string) (string, error)

type command struct {
	usage string
	nargs []int
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register":  {usage: "register <username> <email>", nargs: []int{2}, run: (*App).register},
	"login":     {usage: "login <username>", nargs: []int{1}, run: (*App).login},
	"me":        {usage: "me", nargs: []int{0}, run: (*App).me},
	"portfolio": {usage: "portfolio <username>", nargs: []int{1}, run: (*App).portfolio},
	"projects":  {usage: "projects <username>", nargs: []int{1}, run: (*App).projects},
	"skills":    {usage: "skills [category]", nargs: []int{0, 1}, run: (*App).skills},
}

type App struct {
	adapter adapter.ServerAdapter
	prompt  PasswordPrompt
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, prompt PasswordPrompt, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, prompt: prompt, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, Usage())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], Usage())
	}

	rest := args[1:]
	if !slices.Contains(cmd.nargs, len(rest)) {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(a, ctx, rest)
}

// Usage lists every command.
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, "  "+c.usage)
	}
	sort.Strings(lines)
	return "commands:\n" + strings.Join(lines, "\n")
}

func (a *App) register(ctx context.Context, args []string) error {
	password, err := a.prompt("password")
	if err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, models.User{Username: args[0], Email: args[1], Password: password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return a.print(tui.RenderUser(user))
}

// login prints the bare token so it can be captured into ADAPTER_TOKEN.
func (a *App) login(ctx context.Context, args []string) error {
	password, err := a.prompt("password")
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.Credentials{Username: args[0], Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.print(token)
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}
	return a.print(tui.RenderUser(user))
}

func (a *App) portfolio(ctx context.Context, args []string) error {
	portfolio, err := a.adapter.Portfolio(ctx, args[0])
	if err != nil {
		return fmt.Errorf("portfolio %s: %w", args[0], err)
	}
	return a.print(tui.RenderPortfolio(portfolio))
}

func (a *App) projects(ctx context.Context, args []string) error {
	projects, err := a.adapter.Projects(ctx, args[0])
	if err != nil {
		return fmt.Errorf("projects %s: %w", args[0], err)
	}
	return a.print(tui.RenderProjects(projects))
}

func (a *App) skills(ctx context.Context, args []string) error {
	var category string
	if len(args) == 1 {
		category = args[0]
	}

	skills, err := a.adapter.Skills(ctx, category)
	if err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	return a.print(tui.RenderSkills(skills))
}

func (a *App) print(s string) error {
	_, err := fmt.Fprintln(a.out, s)
	return err
}
