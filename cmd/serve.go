package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lmehta/cohortplan/internal/api"
	"github.com/lmehta/cohortplan/internal/boundary"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve exposes the scheduling core over HTTP: composing experiences,
reading challenge boundaries, and checking drag moves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "Listen address (defaults to config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env for deployment environments; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	listen, _ := cmd.Flags().GetString("listen")
	if listen == "" {
		listen = cfg.Listen
	}

	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	composer := buildComposer(st, cfg)
	detector := boundary.NewDetector(st.ChallengeRepo())
	router := api.NewRouter(composer, detector, st.SessionRepo(), logger)

	logger.Info("listening", "addr", listen)
	return http.ListenAndServe(listen, router)
}
