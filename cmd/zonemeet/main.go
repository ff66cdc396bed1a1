package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zonemeet/zonemeet/internal/profile"
	"github.com/zonemeet/zonemeet/server"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "zonemeet",
	Short: "Timezone conversion and working-hours overlap service",
	RunE:  runServe,
}

func init() {
	viper.SetEnvPrefix("zonemeet")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "demo", "dev" or "prod"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of server")

	if err := viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Version: version,
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	p, err := loadProfile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	if p.IsDev() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	srv, err := server.NewServer(p)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	return srv.Shutdown(context.Background())
}
