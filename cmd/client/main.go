// Command client maneja el cliente sin interfaz: restaura o abre sesión,
// carga las mascotas e imprime un resumen de la mascota activa.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pet-wellness/internal/app"
	"pet-wellness/internal/petstore"
	"pet-wellness/internal/platform/config"
	"pet-wellness/internal/platform/logger"
	"pet-wellness/internal/session"

	"go.uber.org/multierr"
)

func main() {
	var (
		cfgPath  = flag.String("config", os.Getenv("PETW_CONFIG"), "path to the TOML config file")
		email    = flag.String("email", "", "login email when there is no stored session")
		password = flag.String("password", "", "login password")
		logout   = flag.Bool("logout", false, "close the session after printing the summary")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerOptions())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *email, *password, *logout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.Logger, email, password string, logout bool) (err error) {
	a, err := app.New(cfg.Client, nil, log)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, a.Close()) }()

	state, err := a.Start(ctx)
	if err != nil {
		return err
	}

	if state != session.Authenticated {
		if email == "" {
			return errors.New("no stored session: pass -email and -password")
		}
		if _, err := a.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	u, _ := a.Session().User()
	fmt.Printf("Signed in as %s <%s>\n", u.Name, u.Email)

	st, err := a.Pets()
	if err != nil {
		return err
	}
	summary(os.Stdout, st)

	if logout {
		a.Logout(ctx)
		fmt.Println("Signed out")
	}
	return nil
}

func summary(w io.Writer, st *petstore.Store) {
	for _, p := range st.Pets() {
		fmt.Fprintf(w, "  %s %s (%s)\n", p.Avatar, p.Name, p.Species)
	}

	active, ok := st.ActivePet()
	if !ok {
		fmt.Fprintln(w, "No active pet")
		return
	}
	fmt.Fprintf(w, "\nActive: %s\n", active.Name)

	fmt.Fprintln(w, "Upcoming reminders:")
	upcoming := st.UpcomingReminders(3)
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "  all caught up")
	}
	for _, r := range upcoming {
		fmt.Fprintf(w, "  %s  %s\n", r.Due(), r.Title)
	}

	fmt.Fprintln(w, "Health:")
	for _, r := range st.HealthRecords() {
		fmt.Fprintf(w, "  %s  [%s] %s\n", r.Date, r.Type, r.Title)
	}

	fmt.Fprintln(w, "Training:")
	for _, g := range st.TrainingGoals() {
		fmt.Fprintf(w, "  %s  %d/%d\n", g.Title, g.CurrentCount, g.TargetCount)
	}

	fmt.Fprintln(w, "Insights:")
	for _, i := range st.Insights() {
		fmt.Fprintf(w, "  %s %s\n", i.Icon, i.Message)
	}
}
